package translate

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gene_finder_go/codon_table"
	common "gene_finder_go/utils"
)

// CodingStrandToAA translates seq codon by codon from offset 0. A trailing partial codon
// is dropped. Start and stop structure is not checked; stops come out as '*'.
func CodingStrandToAA(seq string) (string, error) {
	n := len(seq) - len(seq)%3
	protein := make([]byte, 0, n/3)
	for i := 0; i < n; i += 3 {
		aa, err := codon_table.AminoAcid(seq[i : i+3])
		if err != nil {
			return "", fmt.Errorf("codon at %d: %w", i, err)
		}
		protein = append(protein, aa)
	}
	return string(protein), nil
}

// Run is the translate tool: frame-0 translation of every record, written as FASTA.
func Run(args []string) {
	fs := flag.NewFlagSet("translate", flag.ExitOnError)

	inputFile := fs.String("in_file", "", "Input FASTA file (coding sequences)")
	outFile := fs.String("out_file", "", "Output file (default is stdout)")

	err := fs.Parse(args)
	if err != nil {
		fmt.Println("Error parsing flags:", err)
		os.Exit(1)
	}
	if len(fs.Args()) > 0 {
		fmt.Printf("Unrecognized arguments: %v\n", fs.Args())
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}
	if *inputFile == "" {
		log.Fatal("Error: -in_file is required")
	}

	writer, closeOut, err := common.OpenOutput(*outFile)
	if err != nil {
		log.Fatal(err)
	}

	err = common.StreamFastaWithOpts(*inputFile, func(id, seq string, _ map[string]interface{}) error {
		protein, err := CodingStrandToAA(seq)
		if err != nil {
			return err
		}
		return common.WriteFastaRecord(writer, id, protein)
	}, nil)
	if err != nil {
		log.Fatalf("error translating %s: %v", *inputFile, err)
	}

	if err := closeOut(); err != nil {
		log.Fatalf("failed to write output: %v", err)
	}
}
