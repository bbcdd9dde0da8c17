package null_model

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gene_finder_go/config"
	common "gene_finder_go/utils"
)

// ResolveSeed turns the "0 means clock" convention into a concrete seed.
func ResolveSeed(seed uint64) uint64 {
	if seed == 0 {
		return uint64(time.Now().UnixNano())
	}
	return seed
}

// PlotPath gives each record its own image when the input holds several.
func PlotPath(base, id string, multi bool) string {
	if !multi {
		return base
	}
	ext := filepath.Ext(base)
	safeID := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ' ' {
			return '_'
		}
		return r
	}, id)
	return strings.TrimSuffix(base, ext) + "_" + safeID + ext
}

func nullHandler(id string, seq string, opts map[string]interface{}) error {
	settings := opts["settings"].(config.Settings)
	writer := opts["writer"].(*bufio.Writer)
	plotFile := opts["plot"].(string)
	multi := opts["multi"].(bool)

	est := Estimator{
		Trials:  settings.NullModel.Trials,
		Workers: settings.NullModel.Workers,
		Seed:    settings.NullModel.Seed,
	}
	res, err := est.Run(seq)
	if err != nil {
		return err
	}
	sum := Summarize(res.Lengths)

	fmt.Fprintf(writer, "%s\t%d\t%d\t%d\t%.2f\t%.2f\t%.0f\t%.0f\n",
		id, len(seq), sum.Trials, res.Threshold, sum.Mean, sum.StdDev, sum.Median, sum.P95)

	if plotFile != "" {
		out := PlotPath(plotFile, id, multi)
		if err := WriteHistogram(res.Lengths, res.Threshold, out); err != nil {
			return fmt.Errorf("failed to write histogram: %w", err)
		}
		if settings.Verbose {
			log.Printf("%s: wrote histogram to %s", id, out)
		}
	}
	return nil
}

// Run is the null_model tool: report the chance-level ORF length for each record.
func Run(args []string) {
	fs := flag.NewFlagSet("null_model", flag.ExitOnError)

	inputFile := fs.String("in_file", "", "Input FASTA file")
	outFile := fs.String("out_file", "", "Output file (default is stdout)")
	plotFile := fs.String("plot", "", "Histogram of trial lengths (png, svg or pdf)")
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

	settings, err := config.FromFlags(fs, *configFile)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	settings.NullModel.Seed = ResolveSeed(settings.NullModel.Seed)
	if settings.Verbose {
		log.Printf("null model: %d trials, seed %d", settings.NullModel.Trials, settings.NullModel.Seed)
	}

	records, err := common.LoadRecords(*inputFile)
	if err != nil {
		log.Fatalf("error reading %s: %v", *inputFile, err)
	}

	writer, closeOut, err := common.OpenOutput(*outFile)
	if err != nil {
		log.Fatal(err)
	}

	opts := map[string]interface{}{
		"settings": settings,
		"writer":   writer,
		"plot":     *plotFile,
		"multi":    len(records) > 1,
	}

	writer.WriteString("#seq_id\tlength_nt\ttrials\tthreshold\tmean\tstddev\tmedian\tp95\n")
	for _, rec := range records {
		if err := nullHandler(rec.ID, rec.Seq, opts); err != nil {
			log.Fatalf("error running null model on %s: %v", rec.ID, err)
		}
	}

	if err := closeOut(); err != nil {
		log.Fatalf("failed to write output: %v", err)
	}
}
