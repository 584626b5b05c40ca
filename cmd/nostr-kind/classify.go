package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nbd-wtf/go-nostr-kinds"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newClassifyCmd(cfg *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "classify [event.json]",
		Short: "Classify the kind of a raw event read from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				raw []byte
				err error
			)
			if len(args) == 1 && args[0] != "-" {
				raw, err = os.ReadFile(args[0])
			} else {
				raw, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("read event: %w", err)
			}

			kind, err := nostr.KindFromEventJSON(raw)
			if err != nil {
				return err
			}
			nostr.InfoLogger.Printf("event has kind %s", kind)

			return writeInfo(cmd.OutOrStdout(), cfg.GetBool(cfgKeyJSON), nostr.Describe(kind))
		},
	}
}
