// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ParserConfig holds settings for the flat-file parsing stage.
type ParserConfig struct {
	// DataBankLabels is the recognized set of data-bank names that may
	// accompany an accession in a PROTEIN record (matched case-insensitively,
	// dropped from the organism text). Empty means the built-in default set:
	// UniProt, Unipro, SwissProt, GenBank, TrEMBL, EMBL.
	DataBankLabels []string `json:"data_bank_labels,omitempty" yaml:"data_bank_labels,omitempty"`
}

// StoreConfig holds settings for the SQLite store stage.
type StoreConfig struct {
	// Path is the SQLite database file (default "brenda.db").
	Path string `json:"path" yaml:"path"`
}

// FetchConfig holds settings for downloading the BRENDA flat file.
type FetchConfig struct {
	// URL is the download endpoint for the flat file.
	URL string `json:"url" yaml:"url"`

	// Out is the destination path for the downloaded file.
	Out string `json:"out" yaml:"out"`

	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// MaxRetries is the number of retry attempts for rate-limited or
	// transiently failing requests (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}
