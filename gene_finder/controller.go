package gene_finder

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"gene_finder_go/config"
	"gene_finder_go/null_model"
	common "gene_finder_go/utils"
)

// WriteFasta writes each gene's protein as a FASTA record.
func WriteFasta(w io.Writer, seqID string, seqLen int, r Report) error {
	for i, g := range r.Genes {
		start, end := g.Span(seqLen)
		header := fmt.Sprintf("%s_gene%d strand=%s frame=%d start=%d end=%d len_nt=%d threshold=%d pvalue=%.3g",
			seqID, i+1, g.Strand, g.Frame+1, start+1, end, g.Len(), r.Threshold, g.PValue)
		if err := common.WriteFastaRecord(w, header, g.Protein); err != nil {
			return err
		}
	}
	return nil
}

// WriteTSV writes one row per gene. The header is written by the caller.
func WriteTSV(w io.Writer, seqID string, seqLen int, r Report) error {
	for i, g := range r.Genes {
		start, end := g.Span(seqLen)
		_, err := fmt.Fprintf(w, "%s\t%s_gene%d\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%.3g\t%s\n",
			seqID, seqID, i+1, g.Strand, g.Frame+1, start+1, end, g.Len(), len(g.Protein),
			r.Threshold, g.PValue, g.Protein)
		if err != nil {
			return err
		}
	}
	return nil
}

const tsvHeader = "#seq_id\tgene_id\tstrand\tframe\tstart\tend\tlength_nt\tlength_aa\tthreshold\tpvalue\tprotein\n"

func geneHandler(id string, seq string, opts map[string]interface{}) error {
	finder := opts["finder"].(Finder)
	writer := opts["writer"].(*bufio.Writer)
	format := opts["format"].(string)
	plotFile := opts["plot"].(string)
	multi := opts["multi"].(bool)
	verbose := opts["verbose"].(bool)

	report, err := finder.Find(seq)
	if err != nil {
		return err
	}
	if verbose {
		log.Printf("%s: %d nt, threshold %d nt (mean %.1f, p95 %.0f), %d gene(s)",
			id, len(seq), report.Threshold, report.Summary.Mean, report.Summary.P95, len(report.Genes))
	}

	if plotFile != "" {
		out := null_model.PlotPath(plotFile, id, multi)
		if err := null_model.WriteHistogram(report.Lengths, report.Threshold, out); err != nil {
			return fmt.Errorf("failed to write histogram: %w", err)
		}
	}

	if format == "tsv" {
		return WriteTSV(writer, id, len(seq), report)
	}
	return WriteFasta(writer, id, len(seq), report)
}

// Run is the gene_finder tool.
func Run(args []string) {
	fs := flag.NewFlagSet("gene_finder", flag.ExitOnError)

	inputFile := fs.String("in_file", "", "Input FASTA file")
	outFile := fs.String("out_file", "", "Output file (default is stdout)")
	format := fs.String("format", "fasta", "Output format (fasta/tsv)")
	plotFile := fs.String("plot", "", "Null model histogram per record (png, svg or pdf)")
	configFile := config.RegisterFlags(fs)

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
	f := strings.ToLower(*format)
	if f != "fasta" && f != "tsv" {
		log.Fatalf("Invalid format: %s. Allowed values are 'fasta' or 'tsv'.", *format)
	}

	settings, err := config.FromFlags(fs, *configFile)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	settings.NullModel.Seed = null_model.ResolveSeed(settings.NullModel.Seed)
	if settings.Verbose {
		log.Printf("null model: %d trials, seed %d", settings.NullModel.Trials, settings.NullModel.Seed)
	}

	multi := false
	if *plotFile != "" {
		records, err := common.LoadRecords(*inputFile)
		if err != nil {
			log.Fatalf("error reading %s: %v", *inputFile, err)
		}
		multi = len(records) > 1
	}

	writer, closeOut, err := common.OpenOutput(*outFile)
	if err != nil {
		log.Fatal(err)
	}

	opts := map[string]interface{}{
		"finder":  NewFinder(settings),
		"writer":  writer,
		"format":  f,
		"plot":    *plotFile,
		"multi":   multi,
		"verbose": settings.Verbose,
	}

	if f == "tsv" {
		writer.WriteString(tsvHeader)
	}

	err = common.StreamFastaWithOpts(*inputFile, geneHandler, opts)
	if err != nil {
		log.Fatalf("error running gene finder: %v", err)
	}

	if err := closeOut(); err != nil {
		log.Fatalf("failed to write output: %v", err)
	}
}
