// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data model shared across brenda-engine stages.
package types

// RecordKind selects the extraction mode for one logical BRENDA record.
type RecordKind string

const (
	// KindEntry is a generic information-section record (REACTION, KM_VALUE, ...).
	KindEntry RecordKind = "entry"

	// KindProtein is a PROTEIN (PR) record carrying an organism name,
	// accession identifiers, and literature references.
	KindProtein RecordKind = "protein"

	// KindComment is a record that is only text plus an optional trailing
	// comment, such as the EC number on an ID line.
	KindComment RecordKind = "comment"
)

// EntryComment is the parsed comment attached to an entry or protein.
//
// Text is the human-readable comment with id tags stripped. Proteins and
// References list the ids found while scanning the comment, flattened across
// all tags in encounter order; duplicates are kept.
type EntryComment struct {
	Text       string `json:"text" yaml:"text"`
	Proteins   []int  `json:"proteins,omitempty" yaml:"proteins,omitempty"`
	References []int  `json:"references,omitempty" yaml:"references,omitempty"`
}

// Entry is one parsed record of a BRENDA information section.
//
// Proteins and References hold one group per tag occurrence in the record
// body: #1,2,3# contributes the group [1 2 3]. Groups preserve the order the
// tags appear in; ids inside a group preserve the order they were written in.
type Entry struct {
	// Msg is the cleaned message body with all tags removed.
	Msg string `json:"msg" yaml:"msg"`

	// Information is the {…} tag content; empty means no information tag.
	Information string `json:"information,omitempty" yaml:"information,omitempty"`

	Comment    EntryComment `json:"comment" yaml:"comment"`
	Proteins   [][]int      `json:"proteins,omitempty" yaml:"proteins,omitempty"`
	References [][]int      `json:"references,omitempty" yaml:"references,omitempty"`
}

// Protein is one parsed PROTEIN (PR) record.
type Protein struct {
	// Organism is the species name left after tags, accessions, and
	// data-bank labels are removed.
	Organism string `json:"organism" yaml:"organism"`

	// Information is the {…} tag content; empty means no information tag.
	Information string `json:"information,omitempty" yaml:"information,omitempty"`

	Comment EntryComment `json:"comment" yaml:"comment"`

	// Identifiers are UniProt-style accessions (6 or 10 characters),
	// deduplicated in first-encounter order.
	Identifiers []string `json:"identifiers,omitempty" yaml:"identifiers,omitempty"`

	// References are literature ids in encounter order, duplicates kept.
	References []int `json:"references,omitempty" yaml:"references,omitempty"`
}

// Enzyme aggregates everything parsed for one EC number.
type Enzyme struct {
	ECNumber string `json:"ec_number" yaml:"ec_number"`

	// Comment is set when the ID line itself is annotated, e.g.
	// "transferred to EC 1.1.1.999".
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`

	// Proteins maps the numeric protein id used by #…# tags to the protein.
	Proteins map[int]Protein `json:"proteins,omitempty" yaml:"proteins,omitempty"`

	// Entries maps a section name (e.g. "REACTION") to its records in file order.
	Entries map[string][]Entry `json:"entries,omitempty" yaml:"entries,omitempty"`

	// References is reserved for the literature table (RF sections), which
	// is not parsed; it is always empty.
	References map[int]string `json:"references,omitempty" yaml:"references,omitempty"`
}

// NewEnzyme returns an Enzyme with its collections initialized.
func NewEnzyme(ec, comment string) *Enzyme {
	return &Enzyme{
		ECNumber:   ec,
		Comment:    comment,
		Proteins:   make(map[int]Protein),
		Entries:    make(map[string][]Entry),
		References: make(map[int]string),
	}
}
