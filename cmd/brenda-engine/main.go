// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the brenda-engine CLI: parsing the
// BRENDA flat file, storing enzymes in SQLite, and querying them back.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/brenda-engine/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds portal credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback when set, else the secret value for key.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the brenda-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "brenda-engine",
	Short: "Parse, store, and query the BRENDA enzyme database flat file",
	Long: `brenda-engine works with the BRENDA enzyme database flat file. It downloads
the file from the BRENDA portal, parses its sections into structured enzyme
records, stores them in a SQLite database, and answers EC-number lookups.

Each stage is a subcommand: fetch, parse, and store. The parser tolerates the
format's irregularities; records it cannot make sense of are kept as plain
text rather than rejected.`,
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

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./brenda-engine.yaml or ~/.config/brenda-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("brenda-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "brenda-engine"))
		}
	}

	viper.SetEnvPrefix("BRENDA_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// dbPath resolves the database path: flag, then config file, then default.
func dbPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("db"); path != "" {
		return path
	}
	if path := viper.GetString("store.path"); path != "" {
		return path
	}
	return "brenda.db"
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
