package orf_finder

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"gene_finder_go/config"
	common "gene_finder_go/utils"
)

// WriteGFF writes one GFF3 line per ORF at or above minLen, in forward-strand
// coordinates. Partial ORFs are skipped when suppPartial is set.
func WriteGFF(w io.Writer, seqID string, seqLen int, orfs []ORF, minLen int, suppPartial bool) error {
	for i, orf := range orfs {
		if suppPartial && orf.Partial {
			continue // Skip incomplete ORFs if user requests suppression
		}
		if orf.Len() < minLen {
			continue
		}

		start, end := orf.Span(seqLen)

		frame := orf.Frame + 1
		if orf.Strand == Reverse {
			frame = -frame
		}

		attrs := fmt.Sprintf(
			"ID=%s_orf%d;Length_nt=%d;Length_aa=%d;Frame=%d",
			seqID, i+1, orf.Len(), orf.Len()/3, frame,
		)
		if orf.Partial {
			attrs += ";Partial=Yes"
		}

		// GFF3 uses 1-based inclusive coordinates; the stop codon is not part of the ORF
		_, err := fmt.Fprintf(w, "%s\tgene_finder\tORF\t%d\t%d\t.\t%s\t0\t%s\n",
			seqID, start+1, end, orf.Strand, attrs)
		if err != nil {
			return err
		}
	}
	return nil
}

func orfHandler(id string, seq string, opts map[string]interface{}) error {
	strand := opts["strand"].(string)
	minLen := opts["minLen"].(int)
	suppInc := opts["supp_inc"].(bool)
	writer := opts["writer"].(*bufio.Writer)

	orfs, err := FindORFsOnStrands(seq, strand)
	if err != nil {
		return err
	}
	return WriteGFF(writer, id, len(seq), orfs, minLen, suppInc)
}

// Run is the orf_finder tool: every non-nested ORF of every record as GFF3.
func Run(args []string) {
	fs := flag.NewFlagSet("orf_finder", flag.ExitOnError)

	inputFile := fs.String("in_file", "", "Input FASTA file")
	fs.Int("minlen", config.DefaultMinLen, "Minimum ORF length")
	fs.String("strand", config.DefaultStrand, "DNA directionality for analysis (both/positive/negative)")
	outFile := fs.String("out_file", "", "Output file (default is stdout)")
	suppInc := fs.Bool("supp_inc", false, "Suppress incomplete ORFs (those without stop codons)")
	configFile := fs.String("config", "", "Settings file (yaml, json or toml)")

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

	settings, err := config.FromFlags(fs, *configFile)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	writer, closeOut, err := common.OpenOutput(*outFile)
	if err != nil {
		log.Fatal(err)
	}

	opts := map[string]interface{}{
		"strand":   strings.ToLower(settings.ORF.Strand),
		"minLen":   settings.ORF.MinLen,
		"writer":   writer,
		"supp_inc": *suppInc,
	}

	writer.WriteString("##gff-version 3\n")

	err = common.StreamFastaWithOpts(*inputFile, orfHandler, opts)
	if err != nil {
		log.Fatalf("error running ORF finder: %v", err)
	}

	if err := closeOut(); err != nil {
		log.Fatalf("failed to write output: %v", err)
	}
}
