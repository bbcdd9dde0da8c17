package common

import (
	"errors"
	"fmt"
)

// ErrInvalidSequence is returned when a symbol outside {A, C, G, T} is found.
var ErrInvalidSequence = errors.New("invalid sequence")

// Complement returns the Watson-Crick partner of a single base (A<->T, C<->G).
// Anything else is rejected; no default base is substituted.
func Complement(base byte) (byte, error) {
	switch base {
	case 'A':
		return 'T', nil
	case 'T':
		return 'A', nil
	case 'C':
		return 'G', nil
	case 'G':
		return 'C', nil
	}
	return 0, fmt.Errorf("%w: unrecognized nucleotide %q", ErrInvalidSequence, base)
}

// ReverseComplement takes a DNA sequence string and returns its reverse complement.
// Position i of the result holds the complement of position len(seq)-1-i.
func ReverseComplement(seq string) (string, error) {
	n := len(seq)
	rc := make([]byte, n)
	for i := 0; i < n; i++ {
		c, err := Complement(seq[n-1-i])
		if err != nil {
			return "", fmt.Errorf("position %d: %w", n-1-i, err)
		}
		rc[i] = c
	}
	return string(rc), nil
}

// ValidateDNA reports the first non-ACGT symbol in seq, if any.
func ValidateDNA(seq string) error {
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A', 'C', 'G', 'T':
			continue
		}
		return fmt.Errorf("%w: unrecognized nucleotide %q at position %d", ErrInvalidSequence, seq[i], i)
	}
	return nil
}
