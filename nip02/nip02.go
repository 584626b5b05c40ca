package nip02

import (
	"fmt"

	"github.com/nbd-wtf/go-nostr-kinds"
)

type Contact struct {
	PubKey  string
	Relay   string
	Petname string
}

// NewContactList builds a kind 3 event following the given pubkeys.
// Repeated pubkeys are only listed once and relay hints are normalized.
func NewContactList(contacts []Contact) nostr.Event {
	tags := make(nostr.Tags, 0, len(contacts))
	for _, c := range contacts {
		relay := nostr.NormalizeRelayURL(c.Relay)
		tag := nostr.Tag{"p", c.PubKey}
		if relay != "" || c.Petname != "" {
			tag = append(tag, relay)
		}
		if c.Petname != "" {
			tag = append(tag, c.Petname)
		}
		tags = tags.AppendUnique(tag)
	}

	return nostr.NewEvent(nostr.FromVariant(nostr.VariantContactList), "", tags...)
}

// ParseContactList reads the "p" tags out of a contact list event.
func ParseContactList(event nostr.Event) ([]Contact, error) {
	if !event.Is(nostr.VariantContactList) {
		return nil, fmt.Errorf("event is kind %s, not %d", event.Kind, nostr.KindContactList)
	}

	var contacts []Contact
	for tag := range event.Tags.FindAll("p") {
		c := Contact{PubKey: tag[1]}
		if len(tag) > 2 {
			c.Relay = nostr.NormalizeRelayURL(tag[2])
		}
		if len(tag) > 3 {
			c.Petname = tag[3]
		}
		contacts = append(contacts, c)
	}

	return contacts, nil
}
