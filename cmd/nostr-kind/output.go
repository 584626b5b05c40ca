package main

import (
	"fmt"
	"io"

	"github.com/mailru/easyjson/jwriter"
	"github.com/nbd-wtf/go-nostr-kinds"
)

func writeInfo(out io.Writer, asJSON bool, info nostr.KindInfo) error {
	if !asJSON {
		return writeRow(out, info)
	}

	w := jwriter.Writer{}
	info.MarshalEasyJSON(&w)
	w.RawByte('\n')
	_, err := w.DumpTo(out)
	return err
}

// writeInfoList always emits a JSON array, even for zero or one kind.
func writeInfoList(out io.Writer, asJSON bool, infos []nostr.KindInfo) error {
	if !asJSON {
		for _, info := range infos {
			if err := writeRow(out, info); err != nil {
				return err
			}
		}
		return nil
	}

	w := jwriter.Writer{}
	w.RawByte('[')
	for i, info := range infos {
		if i > 0 {
			w.RawByte(',')
		}
		info.MarshalEasyJSON(&w)
	}
	w.RawString("]\n")
	_, err := w.DumpTo(out)
	return err
}

func writeRow(out io.Writer, info nostr.KindInfo) error {
	_, err := fmt.Fprintf(out, "%-6d %-32s %-12s %s\n",
		info.Code.Code(), info.Name, info.Range, info.Title)
	return err
}
