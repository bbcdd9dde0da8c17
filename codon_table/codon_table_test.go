package codon_table

import (
	"errors"
	"testing"

	common "gene_finder_go/utils"
)

func TestTableIsTotal(t *testing.T) {
	bases := "ACGT"
	stops := 0
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				codon := string([]byte{bases[i], bases[j], bases[k]})
				aa, err := AminoAcid(codon)
				if err != nil {
					t.Fatalf("AminoAcid(%s): %v", codon, err)
				}
				if aa == StopSymbol {
					stops++
				}
			}
		}
	}
	if stops != 3 {
		t.Errorf("found %d stop codons, want 3", stops)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		codon string
		want  Category
	}{
		{"ATG", Start},
		{"TAA", Stop},
		{"TAG", Stop},
		{"TGA", Stop},
		{"GCC", Coding},
		{"TGG", Coding},
	}
	for _, tt := range tests {
		got, err := Classify(tt.codon)
		if err != nil {
			t.Fatalf("Classify(%s): %v", tt.codon, err)
		}
		if got != tt.want {
			t.Errorf("Classify(%s) = %v, want %v", tt.codon, got, tt.want)
		}
	}
}

func TestUnknownCodon(t *testing.T) {
	for _, codon := range []string{"NNN", "AT", "atg", "ATGA"} {
		if _, err := AminoAcid(codon); !errors.Is(err, common.ErrInvalidSequence) {
			t.Errorf("AminoAcid(%q) err = %v", codon, err)
		}
		if _, err := Classify(codon); !errors.Is(err, common.ErrInvalidSequence) {
			t.Errorf("Classify(%q) err = %v", codon, err)
		}
	}
}
