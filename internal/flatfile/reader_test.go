package flatfile

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/brenda-engine/pkg/types"
)

const fixture = `*** BRENDA flat file excerpt ***

ID	1.1.1.261
PROTEIN
PR	#1# Methanosarcina barkeri Q45893 SwissProt
	<1,2>
PR	#2# Pyrococcus sp. (nomen
	rejiciendum) <3>
PR	#3# Homo sapiens SwissProt P29929
	{some information} <4>
REACTION
RE	dihydroxyacetone phosphate + NAD(P)H = sn-glycerol-1-phosphate +
	NAD(P)+ (ir) #1,2,3# <2,3>
REFERENCE
RF	<1> Author, A.: Glycerol-1-phosphate dehydrogenase (2001)
///
ID	1.1.1.888 (transferred from 1.1.1.999)
///
ID	1.1.1.999 stray text
REACTION
RE	orphan = record #1# <1>
///
`

func TestParse(t *testing.T) {
	res, err := NewReader(types.ParserConfig{}).Parse(strings.NewReader(fixture))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(res.Enzymes) != 2 {
		t.Fatalf("got %d enzymes, want 2", len(res.Enzymes))
	}

	enz := res.Enzymes[0]
	if enz.ECNumber != "1.1.1.261" {
		t.Errorf("ECNumber = %q", enz.ECNumber)
	}
	if len(enz.Proteins) != 3 {
		t.Fatalf("got %d proteins, want 3", len(enz.Proteins))
	}

	p1 := enz.Proteins[1]
	if p1.Organism != "Methanosarcina barkeri" {
		t.Errorf("protein 1 organism = %q", p1.Organism)
	}
	if !reflect.DeepEqual(p1.Identifiers, []string{"Q45893"}) {
		t.Errorf("protein 1 identifiers = %v", p1.Identifiers)
	}
	if !reflect.DeepEqual(p1.References, []int{1, 2}) {
		t.Errorf("protein 1 references = %v", p1.References)
	}

	// Continuation lines are joined with a single blank before extraction.
	p2 := enz.Proteins[2]
	if p2.Organism != "Pyrococcus sp." {
		t.Errorf("protein 2 organism = %q", p2.Organism)
	}
	if p2.Comment.Text != "nomen rejiciendum" {
		t.Errorf("protein 2 comment = %q", p2.Comment.Text)
	}

	p3 := enz.Proteins[3]
	if p3.Information != "some information" {
		t.Errorf("protein 3 information = %q", p3.Information)
	}
	if !reflect.DeepEqual(p3.Identifiers, []string{"P29929"}) {
		t.Errorf("protein 3 identifiers = %v", p3.Identifiers)
	}

	reactions := enz.Entries["REACTION"]
	if len(reactions) != 1 {
		t.Fatalf("got %d REACTION entries, want 1", len(reactions))
	}
	re := reactions[0]
	if re.Msg != "dihydroxyacetone phosphate + NAD(P)H = sn-glycerol-1-phosphate + NAD(P)+" {
		t.Errorf("reaction msg = %q", re.Msg)
	}
	if re.Comment.Text != "ir" {
		t.Errorf("reaction comment = %q", re.Comment.Text)
	}
	if !reflect.DeepEqual(re.Proteins, [][]int{{1, 2, 3}}) {
		t.Errorf("reaction proteins = %v", re.Proteins)
	}
	if !reflect.DeepEqual(re.References, [][]int{{2, 3}}) {
		t.Errorf("reaction references = %v", re.References)
	}

	// REFERENCE sections are consumed but not stored.
	if len(enz.Entries["REFERENCE"]) != 0 || len(enz.References) != 0 {
		t.Error("REFERENCE section must not be stored")
	}

	if got := res.Enzymes[1]; got.ECNumber != "1.1.1.888" || got.Comment != "transferred from 1.1.1.999" {
		t.Errorf("second enzyme = %q (%q)", got.ECNumber, got.Comment)
	}
}

func TestParseIndex(t *testing.T) {
	res, err := NewReader(types.ParserConfig{}).Parse(strings.NewReader(fixture))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := res.Lookup("1.1.1.261"); len(got) != 1 {
		t.Errorf("Lookup(full EC) = %d enzymes, want 1", len(got))
	}
	for _, prefix := range []string{"1", "1.1", "1.1.1"} {
		if got := res.Lookup(prefix); len(got) != 2 {
			t.Errorf("Lookup(%q) = %d enzymes, want 2", prefix, len(got))
		}
	}
	if got := res.Lookup("2"); got != nil {
		t.Errorf("Lookup(%q) = %v, want none", "2", got)
	}
}

func TestParseInvalidIDSkipsEnzyme(t *testing.T) {
	res, err := NewReader(types.ParserConfig{}).Parse(strings.NewReader(fixture))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	// "1.1.1.999 stray text" is not a bare EC number; its sections are
	// dropped up to the next terminator.
	if got := res.Lookup("1.1.1.999"); got != nil {
		t.Errorf("invalid ID registered: %v", got)
	}
	for _, e := range res.Enzymes {
		for section := range e.Entries {
			for _, entry := range e.Entries[section] {
				if strings.Contains(entry.Msg, "orphan") {
					t.Error("record after invalid ID was stored")
				}
			}
		}
	}
}

func TestParseStats(t *testing.T) {
	res, err := NewReader(types.ParserConfig{}).Parse(strings.NewReader(fixture))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := Stats{Enzymes: 2, Proteins: 3, Entries: 1}
	if got := res.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}

func TestSplitFirst(t *testing.T) {
	tests := []struct {
		line        string
		first, rest string
	}{
		{"PR\t#1# text", "PR", "#1# text"},
		{"PROTEIN", "PROTEIN", ""},
		{"ID  1.1.1.1", "ID", "1.1.1.1"},
	}
	for _, tt := range tests {
		first, rest := splitFirst(tt.line)
		if first != tt.first || rest != tt.rest {
			t.Errorf("splitFirst(%q) = %q, %q", tt.line, first, rest)
		}
	}
}
