// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the prospect-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/prospect-engine/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the prospect-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "prospect-engine",
	Short: "Generate deduplicated B2B prospect lists via a text-generation API",
	Long: `prospect-engine builds candidate prospect lists for B2B lead generation.
It prompts a generative text service with rotating topic segments, parses the
delimited rows each response contains, filters non-companies, deduplicates by
normalized name, and accumulates results until a target count is reached or
the call budget runs out. The final list is written as a six-column CSV.

An optional SQLite ledger remembers every accepted prospect, so later runs
extend the list instead of collecting the same companies again.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./prospect-engine.yaml or ~/.config/prospect-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("prospect-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "prospect-engine"))
		}
	}

	viper.SetEnvPrefix("PROSPECT_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
