// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// extract.go is the record extractor: it peels one logical record's text
// apart in a fixed order — stray delimiter cleanup, information tag, fused
// comment, id tag groups, accessions — and whatever remains is the message
// body (or the organism name, for PROTEIN records). Malformed input never
// fails extraction; anything the heuristics cannot place is kept as plain
// text.
package record

import (
	"fmt"
	"strings"

	"github.com/pdiddy/brenda-engine/pkg/types"
)

// Record is the structured result of extracting one logical record.
type Record struct {
	// Text is the cleaned message body; for KindProtein it is the organism.
	Text string

	// Information is the {…} tag content, empty when absent.
	Information string

	// Comment is always present; its Text may be empty when the record has
	// no comment, or when the comment held only tags.
	Comment types.EntryComment

	// Proteins and References hold one id group per tag occurrence outside
	// the comment span. Populated for KindEntry.
	Proteins   [][]int
	References [][]int

	// ProteinID is the record's own numeric id within its EC entry, taken
	// from the leading #…# tag. Populated for KindProtein; zero when the
	// tag is missing.
	ProteinID int

	// Identifiers are the accession numbers found in the record remainder.
	// Populated for KindProtein.
	Identifiers []string
}

// Extractor applies the tag scanner to whole records. The zero value is not
// usable; construct with NewExtractor.
type Extractor struct {
	labels map[string]struct{}
}

// NewExtractor returns an Extractor recognizing the given data-bank labels
// next to accessions. A nil or empty list selects DefaultDataBankLabels.
func NewExtractor(dataBankLabels []string) *Extractor {
	return &Extractor{labels: labelSet(dataBankLabels)}
}

var defaultExtractor = NewExtractor(nil)

// Extract runs the default Extractor. See Extractor.Extract.
func Extract(raw string, kind types.RecordKind) (Record, error) {
	return defaultExtractor.Extract(raw, kind)
}

// Extract turns one record's raw text into its structured fields. The only
// error is an unknown kind, which is a caller bug; data-quality problems are
// resolved by the scanner's noise policy and never surface.
func (x *Extractor) Extract(raw string, kind types.RecordKind) (Record, error) {
	switch kind {
	case types.KindEntry, types.KindProtein, types.KindComment:
	default:
		return Record{}, fmt.Errorf("record: unknown kind %q", kind)
	}

	var rec Record
	text := cleanStrayHashes(raw)
	text = cleanStrayPipes(text)

	text, rec.Information = extractInformation(text)

	// |…| spans come out before the parenthesis scan so stray brackets
	// inside them cannot confuse it; the (…) part still leads in the fused
	// comment body.
	text, pipeParts := extractPipeComments(text)
	lenient := kind != types.KindEntry
	text, paren, found := extractParenComment(text, lenient)

	var parts []string
	if found {
		if p := strings.TrimSpace(paren); p != "" {
			parts = append(parts, p)
		}
	}
	parts = append(parts, pipeParts...)
	commentRaw := strings.Join(parts, "; ")

	switch kind {
	case types.KindEntry:
		text, rec.Proteins = extractIDGroups(text, hashSpanRe)
		text, rec.References = extractIDGroups(text, angleSpanRe)
	case types.KindProtein:
		var groups [][]int
		text, groups = extractIDGroups(text, hashSpanRe)
		if len(groups) > 0 && len(groups[0]) > 0 {
			rec.ProteinID = groups[0][0]
		}
		text, rec.Identifiers = extractAccessions(text, x.labels)
		text, rec.References = extractIDGroups(text, angleSpanRe)
	}

	clean, cps, crs := scanCommentTags(commentRaw)
	rec.Comment = types.EntryComment{Text: clean, Proteins: cps, References: crs}

	rec.Text = normalizeSpace(text)
	return rec, nil
}

// FlatReferences returns the record's reference ids flattened across groups,
// the shape PROTEIN records carry them in.
func (r Record) FlatReferences() []int {
	var ids []int
	for _, g := range r.References {
		ids = append(ids, g...)
	}
	return ids
}
