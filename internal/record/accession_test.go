package record

import (
	"reflect"
	"testing"
)

func TestExtractAccessions(t *testing.T) {
	labels := labelSet(nil)

	tests := []struct {
		name     string
		text     string
		wantText string
		wantIDs  []string
	}{
		{
			name:     "label before accession",
			text:     "Homo sapiens SwissProt P29929",
			wantText: "Homo sapiens",
			wantIDs:  []string{"P29929"},
		},
		{
			name:     "label after accession",
			text:     "Methanosarcina barkeri Q45893 SwissProt",
			wantText: "Methanosarcina barkeri",
			wantIDs:  []string{"Q45893"},
		},
		{
			name:     "bare accession",
			text:     "Caenorhabditis elegans Q965D6",
			wantText: "Caenorhabditis elegans",
			wantIDs:  []string{"Q965D6"},
		},
		{
			name:     "ten character form wins over its six character prefix",
			text:     "Arabidopsis thaliana A0A022YWF9 UniProt",
			wantText: "Arabidopsis thaliana",
			wantIDs:  []string{"A0A022YWF9"},
		},
		{
			name:     "separator text between accessions is cut",
			text:     "Pseudomonas mendocina P29933, P29934 and P29929",
			wantText: "Pseudomonas mendocina",
			wantIDs:  []string{"P29933", "P29934", "P29929"},
		},
		{
			name:     "duplicates collapse in first-encounter order",
			text:     "Escherichia coli P0A6F5 and Q45893 and P0A6F5",
			wantText: "Escherichia coli",
			wantIDs:  []string{"P0A6F5", "Q45893"},
		},
		{
			name:     "wrong length lookalike never matches",
			text:     "Sulfolobus tokodaii P2992",
			wantText: "Sulfolobus tokodaii P2992",
		},
		{
			name:     "unrecognized word next to accession stays",
			text:     "Homo sapiens Swisprot P29929",
			wantText: "Homo sapiens Swisprot",
			wantIDs:  []string{"P29929"},
		},
		{
			name:     "no accessions",
			text:     "Commonote archaea",
			wantText: "Commonote archaea",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotText, gotIDs := extractAccessions(tt.text, labels)
			if gotText != tt.wantText {
				t.Errorf("residual = %q, want %q", gotText, tt.wantText)
			}
			if !reflect.DeepEqual(gotIDs, tt.wantIDs) {
				t.Errorf("ids = %v, want %v", gotIDs, tt.wantIDs)
			}
		})
	}
}

func TestLabelSetOverride(t *testing.T) {
	custom := labelSet([]string{"PDB"})
	if _, ok := custom["pdb"]; !ok {
		t.Error("custom label not folded to lower case")
	}
	if _, ok := custom["uniprot"]; ok {
		t.Error("default labels must not leak into a custom set")
	}

	text, ids := extractAccessions("Homo sapiens PDB P29929", custom)
	if text != "Homo sapiens" || !reflect.DeepEqual(ids, []string{"P29929"}) {
		t.Errorf("custom label: text=%q ids=%v", text, ids)
	}
}
