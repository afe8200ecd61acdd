// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/brenda-engine/pkg/types"
)

// WriteYAML writes the enzymes to w as a YAML document list.
func WriteYAML(w io.Writer, enzymes []*types.Enzyme) error {
	data, err := yaml.Marshal(enzymes)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing YAML: %w", err)
	}
	return nil
}

// WriteJSON writes the enzymes to w as indented JSON.
func WriteJSON(w io.Writer, enzymes []*types.Enzyme) error {
	data, err := json.MarshalIndent(enzymes, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	return nil
}
