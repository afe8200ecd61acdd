// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package flatfile reads the BRENDA database flat file: a line-oriented format
// of sections (PROTEIN, REACTION, ...), short-code record starts, continuation
// lines, and `///` enzyme terminators. The reader handles the physical layout
// and hands each assembled record to the record extractor; a malformed enzyme
// never aborts the file.
package flatfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/pdiddy/brenda-engine/internal/record"
	"github.com/pdiddy/brenda-engine/pkg/types"
)

// maxLineLen bounds a single physical line. Continuation lines keep records
// short, but some synonym lists run long.
const maxLineLen = 1024 * 1024

var (
	ecNumberRe   = regexp.MustCompile(`^[1-7](\.\d+){2}\.\d+$`)
	ecAnywhereRe = regexp.MustCompile(`[1-7](\.\d+){2}\.\d+`)
)

// Result is the outcome of parsing one flat file.
type Result struct {
	// Enzymes holds every parsed enzyme in file order.
	Enzymes []*types.Enzyme

	// Index maps full EC numbers and every dotted prefix ("1", "1.1",
	// "1.1.1", "1.1.1.261") to the enzymes registered under them.
	Index map[string][]*types.Enzyme

	// Skipped counts records dropped for missing a usable protein id.
	Skipped int
}

// Lookup returns the enzymes registered under an EC number or prefix.
func (res *Result) Lookup(ec string) []*types.Enzyme {
	return res.Index[ec]
}

// Stats summarizes a parse for reporting.
type Stats struct {
	Enzymes  int
	Proteins int
	Entries  int
	Skipped  int
}

// Stats counts the parsed material.
func (res *Result) Stats() Stats {
	s := Stats{Enzymes: len(res.Enzymes), Skipped: res.Skipped}
	for _, e := range res.Enzymes {
		s.Proteins += len(e.Proteins)
		for _, recs := range e.Entries {
			s.Entries += len(recs)
		}
	}
	return s
}

// Reader parses BRENDA flat files. The zero value is not usable; construct
// with NewReader.
type Reader struct {
	x *record.Extractor
}

// NewReader returns a Reader whose record extraction follows cfg. The zero
// config selects the default data-bank label set.
func NewReader(cfg types.ParserConfig) *Reader {
	return &Reader{x: record.NewExtractor(cfg.DataBankLabels)}
}

// ParseFile opens path and parses it.
func (rd *Reader) ParseFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("flatfile: %w", err)
	}
	defer f.Close()
	return rd.Parse(f)
}

// Parse reads one flat file from r. The only errors are I/O errors and
// over-long lines; malformed content is skipped, with the skip counted in the
// result.
func (rd *Reader) Parse(r io.Reader) (*Result, error) {
	res := &Result{Index: make(map[string][]*types.Enzyme)}

	var (
		cur       *types.Enzyme
		section   string
		short     string
		fragments []string
	)

	flush := func() {
		if cur == nil || len(fragments) == 0 {
			fragments = nil
			return
		}
		text := strings.Join(fragments, " ")
		fragments = nil
		rd.flushRecord(res, cur, section, text)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, "*") {
			continue
		}

		first, rest := splitFirst(line)
		switch {
		case first == "ID" && ecAnywhereRe.MatchString(rest):
			flush()
			section, short = "", ""
			cur = rd.parseID(res, rest)

		case Sections[first] != "":
			if rest != "" {
				// A continuation line that happens to open with a
				// section name.
				fragments = append(fragments, strings.TrimLeft(line, " \t"))
				continue
			}
			flush()
			section = first
			short = Sections[first]

		case short != "" && first == short:
			flush()
			if rest != "" {
				fragments = append(fragments, rest)
			}

		case first == "///":
			flush()
			cur = nil
			section, short = "", ""

		default:
			fragments = append(fragments, strings.TrimLeft(line, " \t"))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("flatfile: %w", err)
	}
	flush()
	return res, nil
}

// parseID handles the rest of an ID line: an EC number with an optional
// parenthesised comment ("1.1.1.888 (transferred from 1.1.1.999)"). A line
// whose remainder is not a bare EC number after comment removal yields nil,
// which drops everything up to the next valid enzyme.
func (rd *Reader) parseID(res *Result, rest string) *types.Enzyme {
	rec, err := rd.x.Extract(rest, types.KindComment)
	if err != nil {
		return nil
	}
	ec := rec.Text
	if !ecNumberRe.MatchString(ec) {
		return nil
	}

	enz := types.NewEnzyme(ec, rec.Comment.Text)
	res.Enzymes = append(res.Enzymes, enz)
	parts := strings.Split(ec, ".")
	for i := 1; i <= len(parts); i++ {
		key := strings.Join(parts[:i], ".")
		res.Index[key] = append(res.Index[key], enz)
	}
	return enz
}

// flushRecord extracts one assembled record and files it into the enzyme.
// REFERENCE records are consumed without being stored; the reference map on
// Enzyme stays reserved.
func (rd *Reader) flushRecord(res *Result, cur *types.Enzyme, section, text string) {
	switch section {
	case "":
		// Preamble text before the first section.
	case SectionReference:
	case SectionProtein:
		rec, err := rd.x.Extract(text, types.KindProtein)
		if err != nil || rec.ProteinID == 0 {
			res.Skipped++
			return
		}
		cur.Proteins[rec.ProteinID] = types.Protein{
			Organism:    rec.Text,
			Information: rec.Information,
			Comment:     rec.Comment,
			Identifiers: rec.Identifiers,
			References:  rec.FlatReferences(),
		}
	default:
		rec, err := rd.x.Extract(text, types.KindEntry)
		if err != nil {
			res.Skipped++
			return
		}
		cur.Entries[section] = append(cur.Entries[section], types.Entry{
			Msg:         rec.Text,
			Information: rec.Information,
			Comment:     rec.Comment,
			Proteins:    rec.Proteins,
			References:  rec.References,
		})
	}
}

// splitFirst splits a line at its first whitespace run.
func splitFirst(line string) (first, rest string) {
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimLeft(line[i:], " \t")
}
