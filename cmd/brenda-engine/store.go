// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/brenda-engine/internal/store"
	"github.com/pdiddy/brenda-engine/pkg/types"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Query the enzyme database",
	Long: `Store queries a SQLite database previously populated by parse --db.
Use lookup to fetch enzymes by EC number or prefix, and export to dump the
whole database.`,
}

var storeLookupCmd = &cobra.Command{
	Use:   "lookup <ec-number>",
	Short: "Look up enzymes by EC number or dotted prefix",
	Long: `Lookup prints the enzymes registered under an EC number. A dotted prefix
("1.1.1") returns every enzyme beneath it.`,
	Args: cobra.ExactArgs(1),
	RunE: runStoreLookup,
}

func runStoreLookup(cmd *cobra.Command, args []string) error {
	s, err := store.Open(types.StoreConfig{Path: dbPath(cmd)})
	if err != nil {
		return err
	}
	defer s.Close()

	enzymes, err := s.Lookup(context.Background(), args[0])
	if err != nil {
		return err
	}
	if len(enzymes) == 0 {
		return fmt.Errorf("no enzymes under %q", args[0])
	}
	return writeFormatted(cmd, enzymes)
}

var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every stored enzyme as YAML or JSON",
	RunE:  runStoreExport,
}

func runStoreExport(cmd *cobra.Command, args []string) error {
	s, err := store.Open(types.StoreConfig{Path: dbPath(cmd)})
	if err != nil {
		return err
	}
	defer s.Close()

	enzymes, err := s.Export(context.Background())
	if err != nil {
		return err
	}
	return writeFormatted(cmd, enzymes)
}

func writeFormatted(cmd *cobra.Command, enzymes []*types.Enzyme) error {
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "yaml":
		return store.WriteYAML(os.Stdout, enzymes)
	case "json":
		return store.WriteJSON(os.Stdout, enzymes)
	default:
		return fmt.Errorf("unknown format %q (want yaml or json)", format)
	}
}

func init() {
	for _, c := range []*cobra.Command{storeLookupCmd, storeExportCmd} {
		c.Flags().String("db", "", "SQLite database to query")
		c.Flags().String("format", "yaml", "output format: yaml or json")
		storeCmd.AddCommand(c)
	}
	rootCmd.AddCommand(storeCmd)
}
