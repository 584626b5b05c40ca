package main

import (
	"os"

	"github.com/nbd-wtf/go-nostr-kinds"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "v0.1.0"

func newRootCmd() *cobra.Command {
	cfg := viper.New()

	root := &cobra.Command{
		Use:           "nostr-kind",
		Short:         "Inspect nostr event kinds",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cfg, cmd); err != nil {
				return err
			}
			if cfg.GetBool(cfgKeyVerbose) {
				nostr.InfoLogger.SetOutput(os.Stderr)
			}
			return nil
		},
	}

	root.PersistentFlags().String(cfgKeyConfig, "", "config file (yaml, toml or json)")
	root.PersistentFlags().Bool(cfgKeyJSON, false, "output as JSON")
	root.PersistentFlags().Bool(cfgKeyVerbose, false, "log what is going on to stderr")

	root.AddCommand(newShowCmd(cfg))
	root.AddCommand(newListCmd(cfg))
	root.AddCommand(newClassifyCmd(cfg))
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println("nostr-kind", version)
		},
	}
}
