// Package codon_table holds the standard genetic code used to classify and translate codons.
package codon_table

import (
	"fmt"

	common "gene_finder_go/utils"
)

const (
	StartCodon = "ATG"
	StopSymbol = '*'
)

// Category is the role a codon plays when reading a frame.
type Category int

const (
	Coding Category = iota
	Start
	Stop
)

func (c Category) String() string {
	switch c {
	case Start:
		return "start"
	case Stop:
		return "stop"
	}
	return "coding"
}

var aaTable = map[string]byte{
	// Phenylalanine
	"TTT": 'F', "TTC": 'F',
	// Leucine
	"TTA": 'L', "TTG": 'L', "CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	// Isoleucine
	"ATT": 'I', "ATC": 'I', "ATA": 'I',
	// Methionine (Start)
	"ATG": 'M',
	// Valine
	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	// Serine
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S', "AGT": 'S', "AGC": 'S',
	// Proline
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	// Threonine
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	// Alanine
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	// Tyrosine
	"TAT": 'Y', "TAC": 'Y',
	// Histidine
	"CAT": 'H', "CAC": 'H',
	// Glutamine
	"CAA": 'Q', "CAG": 'Q',
	// Asparagine
	"AAT": 'N', "AAC": 'N',
	// Lysine
	"AAA": 'K', "AAG": 'K',
	// Aspartic Acid
	"GAT": 'D', "GAC": 'D',
	// Glutamic Acid
	"GAA": 'E', "GAG": 'E',
	// Cysteine
	"TGT": 'C', "TGC": 'C',
	// Tryptophan
	"TGG": 'W',
	// Arginine
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R', "AGA": 'R', "AGG": 'R',
	// Glycine
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
	// Stop codons
	"TAA": StopSymbol, "TAG": StopSymbol, "TGA": StopSymbol,
}

// IsStart reports whether codon is the start codon.
func IsStart(codon string) bool {
	return codon == StartCodon
}

// IsStop reports whether codon is one of TAA, TAG, TGA.
func IsStop(codon string) bool {
	switch codon {
	case "TAA", "TAG", "TGA":
		return true
	}
	return false
}

// Classify places a codon in exactly one category.
func Classify(codon string) (Category, error) {
	if _, ok := aaTable[codon]; !ok {
		return Coding, fmt.Errorf("%w: unknown codon %q", common.ErrInvalidSequence, codon)
	}
	switch {
	case IsStart(codon):
		return Start, nil
	case IsStop(codon):
		return Stop, nil
	}
	return Coding, nil
}

// AminoAcid returns the one-letter amino acid for codon, '*' for stops.
func AminoAcid(codon string) (byte, error) {
	aa, ok := aaTable[codon]
	if !ok {
		return 0, fmt.Errorf("%w: unknown codon %q", common.ErrInvalidSequence, codon)
	}
	return aa, nil
}
