package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix = "NOSTR_KIND"

	cfgKeyConfig  = "config"
	cfgKeyJSON    = "json"
	cfgKeyVerbose = "verbose"
)

// loadConfig layers flags over NOSTR_KIND_* environment variables over an
// optional config file.
func loadConfig(v *viper.Viper, cmd *cobra.Command) error {
	v.SetDefault(cfgKeyJSON, false)
	v.SetDefault(cfgKeyVerbose, false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range []string{cfgKeyConfig, cfgKeyJSON, cfgKeyVerbose} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
			return fmt.Errorf("bind flag %s: %w", key, err)
		}
	}

	path := v.GetString(cfgKeyConfig)
	if path == "" {
		return nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}
