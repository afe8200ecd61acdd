// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/brenda-engine/internal/httputil"
	"github.com/pdiddy/brenda-engine/pkg/types"
)

func init() {
	httputil.RetryBaseDelay = 1 * time.Millisecond
}

func TestDownloadGET(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte("ID\t1.1.1.1\n///\n"))
	}))
	defer ts.Close()

	out := filepath.Join(t.TempDir(), "brenda.txt")
	cfg := types.FetchConfig{URL: ts.URL, Out: out}
	err := Download(context.Background(), cfg, "", "", &bytes.Buffer{})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "ID\t1.1.1.1\n///\n", string(data))
}

func TestDownloadPostsCredentials(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "user@example.com", r.PostForm.Get("email"))
		assert.Equal(t, "hunter2", r.PostForm.Get("password"))
		w.Write([]byte("payload"))
	}))
	defer ts.Close()

	cfg := types.FetchConfig{URL: ts.URL, Out: filepath.Join(t.TempDir(), "brenda.txt")}
	err := Download(context.Background(), cfg, "user@example.com", "hunter2", &bytes.Buffer{})
	require.NoError(t, err)
}

func TestDownloadRetriesRateLimit(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		// The credential form must survive the retry.
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "user@example.com", r.PostForm.Get("email"))
		w.Write([]byte("payload"))
	}))
	defer ts.Close()

	cfg := types.FetchConfig{URL: ts.URL, Out: filepath.Join(t.TempDir(), "brenda.txt")}
	err := Download(context.Background(), cfg, "user@example.com", "hunter2", &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestDownloadHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	out := filepath.Join(t.TempDir(), "brenda.txt")
	cfg := types.FetchConfig{URL: ts.URL, Out: out}
	err := Download(context.Background(), cfg, "", "", &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 403")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no output file on failure")
}

func TestDownloadMissingConfig(t *testing.T) {
	err := Download(context.Background(), types.FetchConfig{Out: "x"}, "", "", &bytes.Buffer{})
	assert.Error(t, err)

	err = Download(context.Background(), types.FetchConfig{URL: "http://example.com"}, "", "", &bytes.Buffer{})
	assert.Error(t, err)
}
