package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nbd-wtf/go-nostr-kinds"
	"github.com/nbd-wtf/go-nostr-kinds/nip90"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newShowCmd(cfg *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "show <code|name>",
		Short: "Describe a kind given its number or its name",
		Example: `  nostr-kind show 1
  nostr-kind show contact_list
  nostr-kind show 1337`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := resolveKind(args[0])
			if err != nil {
				return err
			}
			asJSON := cfg.GetBool(cfgKeyJSON)
			if err := writeInfo(cmd.OutOrStdout(), asJSON, nostr.Describe(kind)); err != nil {
				return err
			}
			if asJSON {
				return nil
			}
			return writeJobRole(cmd.OutOrStdout(), kind)
		},
	}
}

// resolveKind accepts either a number or anything ParseVariant understands.
func resolveKind(arg string) (nostr.Kind, error) {
	if n, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return nostr.KindFromInteger(n)
	}

	v, err := nostr.ParseVariant(arg)
	if err != nil {
		return 0, fmt.Errorf("'%s' is neither a kind number nor a kind name: %w", arg, err)
	}
	return nostr.FromVariant(v), nil
}

// writeJobRole adds a line for data vending machine kinds, which the core
// registry only knows as custom.
func writeJobRole(out io.Writer, kind nostr.Kind) error {
	role := nip90.RoleOf(kind)
	if role == nip90.NotAJob {
		return nil
	}

	line := "       nip90 job " + role.String()
	if job, ok := nip90.JobFor(kind); ok {
		line += ": " + job.Name
	}
	_, err := fmt.Fprintln(out, line)
	return err
}
