// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads the BRENDA flat file from the BRENDA portal.
// Downloads to the registered-user endpoint authenticate with the portal
// email and password as form fields; without credentials a plain GET is
// issued, which works for mirrors of the file.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/brenda-engine/internal/httputil"
	"github.com/pdiddy/brenda-engine/pkg/types"
)

// defaultTimeout is sized for a multi-hundred-megabyte file.
const defaultTimeout = 10 * time.Minute

// Download fetches the flat file to cfg.Out, writing through a temporary
// file so an interrupted download never leaves a truncated result. When
// email and password are both set the request is a POST carrying them as
// form fields. Status lines go to w.
func Download(ctx context.Context, cfg types.FetchConfig, email, password string, w io.Writer) error {
	if cfg.URL == "" {
		return fmt.Errorf("fetch: no URL configured")
	}
	if cfg.Out == "" {
		return fmt.Errorf("fetch: no output path configured")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	client := &http.Client{Timeout: timeout}

	req, err := newRequest(ctx, cfg.URL, email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "downloading %s\n", cfg.URL)
	resp, err := httputil.DoWithRetry(ctx, client, req, cfg.MaxRetries)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch: HTTP %d from %s", resp.StatusCode, cfg.URL)
	}

	if dir := filepath.Dir(cfg.Out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("fetch: creating output directory: %w", err)
		}
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(cfg.Out), ".fetch-*.tmp")
	if err != nil {
		return fmt.Errorf("fetch: creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	n, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("fetch: writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("fetch: closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, cfg.Out); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("fetch: renaming temp file: %w", err)
	}

	fmt.Fprintf(w, "wrote %s (%d bytes)\n", cfg.Out, n)
	return nil
}

// newRequest builds the download request: a credentialed form POST when the
// portal login is configured, a plain GET otherwise.
func newRequest(ctx context.Context, endpoint, email, password string) (*http.Request, error) {
	if email != "" && password != "" {
		form := url.Values{
			"email":    {email},
			"password": {password},
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint,
			strings.NewReader(form.Encode()))
		if err != nil {
			return nil, fmt.Errorf("fetch: creating request: %w", err)
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: creating request: %w", err)
	}
	return req, nil
}
