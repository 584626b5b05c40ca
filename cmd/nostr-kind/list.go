package main

import (
	"fmt"

	"github.com/nbd-wtf/go-nostr-kinds"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newListCmd(cfg *viper.Viper) *cobra.Command {
	var rangeName string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every kind with a known name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseRange(rangeName)
			if err != nil {
				return err
			}

			infos := make([]nostr.KindInfo, 0, len(nostr.Variants()))
			for _, v := range nostr.Variants() {
				info := nostr.Describe(v.Kind())
				if filter != nil && info.Range != *filter {
					continue
				}
				infos = append(infos, info)
			}

			nostr.InfoLogger.Printf("listing %d kinds", len(infos))
			return writeInfoList(cmd.OutOrStdout(), cfg.GetBool(cfgKeyJSON), infos)
		},
	}

	cmd.Flags().StringVar(&rangeName, "range", "", "only kinds in this range (regular, replaceable, ephemeral, addressable)")
	return cmd
}

func parseRange(name string) (*nostr.Range, error) {
	if name == "" {
		return nil, nil
	}
	for _, r := range []nostr.Range{nostr.Regular, nostr.Replaceable, nostr.Ephemeral, nostr.Addressable} {
		if r.String() == name {
			return &r, nil
		}
	}
	return nil, fmt.Errorf("unknown range '%s'", name)
}
