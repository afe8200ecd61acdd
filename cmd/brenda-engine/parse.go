// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/brenda-engine/internal/flatfile"
	"github.com/pdiddy/brenda-engine/internal/store"
	"github.com/pdiddy/brenda-engine/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse <flat-file>",
	Short: "Parse a BRENDA flat file into structured enzyme records",
	Long: `Parse reads a BRENDA flat file, extracts every enzyme with its proteins
and section entries, and reports what it found. With --db the enzymes are
stored in a SQLite database; with --out (or --format) they are written as
YAML or JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	labels, _ := cmd.Flags().GetStringSlice("data-bank-labels")
	if len(labels) == 0 {
		labels = viper.GetStringSlice("parser.data_bank_labels")
	}

	rd := flatfile.NewReader(types.ParserConfig{DataBankLabels: labels})
	res, err := rd.ParseFile(args[0])
	if err != nil {
		return err
	}

	stats := res.Stats()
	fmt.Fprintf(os.Stderr, "parsed %d enzymes, %d proteins, %d entries (%d records skipped)\n",
		stats.Enzymes, stats.Proteins, stats.Entries, stats.Skipped)

	if cmd.Flags().Changed("db") || viper.GetString("store.path") != "" {
		s, err := store.Open(types.StoreConfig{Path: dbPath(cmd)})
		if err != nil {
			return err
		}
		defer s.Close()

		summary, err := s.Ingest(context.Background(), res.Enzymes, os.Stdout)
		if err != nil {
			return err
		}
		if summary.Failed > 0 {
			return fmt.Errorf("%d enzyme(s) failed to store", summary.Failed)
		}
	}

	out, _ := cmd.Flags().GetString("out")
	if out != "" || cmd.Flags().Changed("format") {
		return writeEnzymes(cmd, res.Enzymes, out)
	}
	return nil
}

// writeEnzymes writes enzymes in the flag-selected format to path, or to
// stdout when path is empty.
func writeEnzymes(cmd *cobra.Command, enzymes []*types.Enzyme, path string) error {
	format, _ := cmd.Flags().GetString("format")

	w := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "yaml":
		return store.WriteYAML(w, enzymes)
	case "json":
		return store.WriteJSON(w, enzymes)
	default:
		return fmt.Errorf("unknown format %q (want yaml or json)", format)
	}
}

func init() {
	parseCmd.Flags().String("db", "", "SQLite database to store parsed enzymes in")
	parseCmd.Flags().String("out", "", "write parsed enzymes to this file")
	parseCmd.Flags().String("format", "yaml", "output format: yaml or json")
	parseCmd.Flags().StringSlice("data-bank-labels", nil, "data-bank names recognized next to accessions")

	rootCmd.AddCommand(parseCmd)
}
