// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/brenda-engine/internal/fetch"
	"github.com/pdiddy/brenda-engine/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the BRENDA flat file from the portal",
	Long: `Fetch downloads the BRENDA flat file. Portal credentials come from the
--email/--password flags or from .secrets/brenda-email and
.secrets/brenda-password; without credentials a plain GET is issued.`,
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	url, _ := cmd.Flags().GetString("url")
	if url == "" {
		url = viper.GetString("fetch.url")
	}
	if url == "" {
		return fmt.Errorf("no download URL: pass --url or set fetch.url in the config file")
	}

	out, _ := cmd.Flags().GetString("out")
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	maxRetries, _ := cmd.Flags().GetInt("max-retries")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	cfg := types.FetchConfig{
		URL:        url,
		Out:        out,
		MaxRetries: maxRetries,
		Timeout:    timeout,
	}
	return fetch.Download(context.Background(), cfg,
		secretDefault("brenda-email", email),
		secretDefault("brenda-password", password),
		os.Stdout)
}

func init() {
	fetchCmd.Flags().String("url", "", "flat-file download endpoint (default: fetch.url from config)")
	fetchCmd.Flags().String("out", "brenda_download.txt", "destination path for the flat file")
	fetchCmd.Flags().String("email", "", "BRENDA portal email (default: .secrets/brenda-email)")
	fetchCmd.Flags().String("password", "", "BRENDA portal password (default: .secrets/brenda-password)")
	fetchCmd.Flags().Int("max-retries", 0, "retry attempts on rate limiting (0 = default)")
	fetchCmd.Flags().Duration("timeout", 10*time.Minute, "request timeout")

	rootCmd.AddCommand(fetchCmd)
}
