// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// accession.go recognizes UniProt-style accession numbers inside PROTEIN
// record text. Accessions are six or ten characters
// (https://www.uniprot.org/help/accession_numbers) and may travel with a
// data-bank label that is dropped from the organism text.
package record

import (
	"regexp"
	"strings"
)

// DefaultDataBankLabels is the recognized set of data-bank names that may
// accompany an accession. Matching is case-insensitive; the label itself is
// discarded. The set is a configuration value so it can grow as BRENDA's
// formatting drifts.
var DefaultDataBankLabels = []string{
	"uniprot",
	"unipro",
	"swissprot",
	"genbank",
	"trembl",
	"embl",
}

// accessionRe matches a 6- or 10-character UniProt accession. The 10-character
// alternative comes first so the longer form wins at the same position.
var accessionRe = regexp.MustCompile(
	`\b(?:[A-NR-Z][0-9][A-Z][A-Z0-9]{2}[0-9][A-Z][A-Z0-9]{2}[0-9]|` +
		`[A-NR-Z][0-9][A-Z][A-Z0-9]{2}[0-9]|` +
		`[OPQ][0-9][A-Z0-9]{3}[0-9])\b`)

// labelSet folds a label list into a lookup set, falling back to the default
// set when the list is empty.
func labelSet(labels []string) map[string]struct{} {
	if len(labels) == 0 {
		labels = DefaultDataBankLabels
	}
	set := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		set[strings.ToLower(l)] = struct{}{}
	}
	return set
}

// extractAccessions removes accession numbers (and the separator text between
// them) from text and returns them deduplicated in first-encounter order. A
// recognized data-bank label directly before the first or after the last
// accession is dropped as well; an unrecognized word in that position stays in
// the organism text. Tokens that merely resemble an accession (wrong length,
// wrong shape) never match and are silently left alone.
func extractAccessions(text string, labels map[string]struct{}) (string, []string) {
	locs := accessionRe.FindAllStringIndex(text, -1)
	if locs == nil {
		return text, nil
	}

	seen := make(map[string]struct{}, len(locs))
	var ids []string
	for _, l := range locs {
		id := text[l[0]:l[1]]
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	start := locs[0][0]
	end := locs[len(locs)-1][1]
	start = absorbLabelBefore(text, start, labels)
	end = absorbLabelAfter(text, end, labels)

	return strings.TrimSpace(text[:start] + " " + text[end:]), ids
}

// absorbLabelBefore extends the cut leftwards over a recognized data-bank
// label ending just before start.
func absorbLabelBefore(text string, start int, labels map[string]struct{}) int {
	i := start
	for i > 0 && (text[i-1] == ' ' || text[i-1] == '\t') {
		i--
	}
	j := i
	for j > 0 && text[j-1] != ' ' && text[j-1] != '\t' {
		j--
	}
	if _, ok := labels[strings.ToLower(text[j:i])]; ok {
		return j
	}
	return start
}

// absorbLabelAfter extends the cut rightwards over a recognized data-bank
// label starting just after end. Trailing punctuation on the label (a comma
// between protein listings) is not part of the label.
func absorbLabelAfter(text string, end int, labels map[string]struct{}) int {
	i := end
	for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	j := i
	for j < len(text) && text[j] != ' ' && text[j] != '\t' {
		j++
	}
	word := strings.TrimRight(text[i:j], ",;.")
	if _, ok := labels[strings.ToLower(word)]; ok {
		return i + len(word)
	}
	return end
}
