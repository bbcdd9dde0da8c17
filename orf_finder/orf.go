package orf_finder

import (
	"gene_finder_go/codon_table"
	common "gene_finder_go/utils"
)

type Strand string

const (
	Forward Strand = "+"
	Reverse Strand = "-"
)

// ORF is an open reading frame found on one strand.
// Start is the 0-based offset of its start codon in the scanned strand; for Reverse
// ORFs that is the reverse complement, not the input.
type ORF struct {
	Seq     string
	Start   int
	Frame   int
	Strand  Strand
	Partial bool // no in-frame stop before the end of the strand
}

func (o ORF) Len() int { return len(o.Seq) }

// Span returns the half-open [start, end) interval the ORF covers on the forward strand
// of a sequence of length seqLen.
func (o ORF) Span(seqLen int) (int, int) {
	if o.Strand == Reverse {
		return seqLen - (o.Start + len(o.Seq)), seqLen - o.Start
	}
	return o.Start, o.Start + len(o.Seq)
}

// RestOfORF takes a sequence assumed to begin with a start codon and returns it up to,
// but not including, the first in-frame stop codon. Without an in-frame stop the whole
// sequence is returned, trailing partial codon included.
func RestOfORF(seq string) string {
	for i := 3; i+3 <= len(seq); i += 3 {
		if codon_table.IsStop(seq[i : i+3]) {
			return seq[:i]
		}
	}
	return seq
}

// scanFrame walks codons from offset frame and collects non-nested ORFs. After an ORF
// the scan resumes past it and its stop codon, so start codons inside it are skipped.
func scanFrame(seq string, frame int, strand Strand) []ORF {
	var orfs []ORF
	i := frame
	for i+3 <= len(seq) {
		if codon_table.IsStart(seq[i : i+3]) {
			orf := RestOfORF(seq[i:])
			orfs = append(orfs, ORF{
				Seq:     orf,
				Start:   i,
				Frame:   frame,
				Strand:  strand,
				Partial: i+len(orf) == len(seq),
			})
			i += len(orf)
		}
		i += 3
	}
	return orfs
}

// FindAllORFsOneFrame finds all non-nested ORFs whose start codon sits at a multiple of 3.
func FindAllORFsOneFrame(seq string) []ORF {
	return scanFrame(seq, 0, Forward)
}

// FindAllORFs runs the single-frame scan for frames 0, 1 and 2 and concatenates the
// results in that order. Nesting is only suppressed within a frame.
func FindAllORFs(seq string) []ORF {
	return allFrames(seq, Forward)
}

func allFrames(seq string, strand Strand) []ORF {
	var orfs []ORF
	for frame := 0; frame < 3; frame++ {
		orfs = append(orfs, scanFrame(seq, frame, strand)...)
	}
	return orfs
}

// FindAllORFsBothStrands returns the ORFs of seq followed by those of its reverse complement.
func FindAllORFsBothStrands(seq string) ([]ORF, error) {
	rc, err := common.ReverseComplement(seq)
	if err != nil {
		return nil, err
	}
	orfs := allFrames(seq, Forward)
	return append(orfs, allFrames(rc, Reverse)...), nil
}

// FindORFsOnStrands is FindAllORFsBothStrands restricted to the requested strand(s):
// "positive", "negative" or "both".
func FindORFsOnStrands(seq string, strands string) ([]ORF, error) {
	switch strands {
	case "positive":
		if err := common.ValidateDNA(seq); err != nil {
			return nil, err
		}
		return allFrames(seq, Forward), nil
	case "negative":
		rc, err := common.ReverseComplement(seq)
		if err != nil {
			return nil, err
		}
		return allFrames(rc, Reverse), nil
	}
	return FindAllORFsBothStrands(seq)
}

// Longest returns the first ORF of maximal length; ok is false when orfs is empty.
func Longest(orfs []ORF) (longest ORF, ok bool) {
	for _, orf := range orfs {
		if !ok || len(orf.Seq) > len(longest.Seq) {
			longest, ok = orf, true
		}
	}
	return longest, ok
}

// LongestORF finds the longest ORF on both strands of seq.
func LongestORF(seq string) (ORF, error) {
	orfs, err := FindAllORFsBothStrands(seq)
	if err != nil {
		return ORF{}, err
	}
	longest, _ := Longest(orfs)
	return longest, nil
}

// Sequences strips ORFs down to their nucleotide strings, keeping order.
func Sequences(orfs []ORF) []string {
	out := make([]string, len(orfs))
	for i, orf := range orfs {
		out[i] = orf.Seq
	}
	return out
}
