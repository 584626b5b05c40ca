package main

import (
	"fmt"
	"os"

	"github.com/nbd-wtf/go-nostr-kinds"
	"github.com/nbd-wtf/go-nostr-kinds/nip02"
)

func main() {
	fmt.Println("Kind:")

	fmt.Println("  Kind from integer:")
	for _, code := range []uint16{1, 0, 3} {
		kind := nostr.FromCode(code)
		fmt.Printf("     - Kind %d: %s\n", code, kind.Variant())
	}

	fmt.Println()
	fmt.Println("  Kind from variant:")
	for _, v := range []nostr.KnownVariant{nostr.VariantTextNote, nostr.VariantMetadata, nostr.VariantContactList} {
		kind := nostr.FromVariant(v)
		fmt.Printf("     - Kind %s: %d\n", v, kind.Code())
	}

	fmt.Println()
	fmt.Println("  Kind from event builders:")
	note := nostr.NewTextNote("This is a note")
	fmt.Printf("     - NewTextNote(): %d - %s\n", note.Kind.Code(), note.Kind.Variant())

	meta, err := nostr.NewMetadata(nostr.ProfileMetadata{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("     - NewMetadata(): %d - %s\n", meta.Kind.Code(), meta.Kind.Variant())

	contacts := nip02.NewContactList(nil)
	fmt.Printf("     - NewContactList(): %d - %s\n", contacts.Kind.Code(), contacts.Kind.Variant())

	fmt.Println()
	kind := nostr.FromCode(1337)
	fmt.Printf("Custom event kind: %d - %s\n", kind.Code(), kind.Variant())
}
