package ran_dna_gen

import (
	"compress/gzip"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	common "gene_finder_go/utils"
)

// SequenceRequest holds parameters for one sequence
type SequenceRequest struct {
	ID     string
	Length int
	GCBias float64
}

// MultiSeqFlag parses multiple -seq inputs
type MultiSeqFlag []SequenceRequest

func (m *MultiSeqFlag) String() string {
	return fmt.Sprint(*m)
}

func (m *MultiSeqFlag) Set(value string) error {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return fmt.Errorf("expected format: name,length,gc_bias")
	}
	length, err1 := strconv.Atoi(parts[1])
	gc, err2 := strconv.ParseFloat(parts[2], 64)
	if err1 != nil || err2 != nil || length < 0 || gc < 0.0 || gc > 1.0 {
		return fmt.Errorf("invalid sequence format or values")
	}
	*m = append(*m, SequenceRequest{
		ID:     parts[0],
		Length: length,
		GCBias: gc,
	})
	return nil
}

// RandSeq generates a random DNA sequence of given length and GC bias (0.0-1.0)
func RandSeq(rng *rand.Rand, seqLength int, gcBias float64) string {
	cWeight := gcBias / 2
	aWeight := (1 - gcBias) / 2
	tWeight := (1 - gcBias) / 2

	seq := make([]byte, seqLength)
	for i := 0; i < seqLength; i++ {
		r := rng.Float64()
		switch {
		case r < aWeight:
			seq[i] = 'A'
		case r < aWeight+tWeight:
			seq[i] = 'T'
		case r < aWeight+tWeight+cWeight:
			seq[i] = 'C'
		default:
			seq[i] = 'G'
		}
	}
	return string(seq)
}

// WriteRecords writes one FASTA record per request.
func WriteRecords(w io.Writer, rng *rand.Rand, reqs []SequenceRequest) error {
	for _, req := range reqs {
		if err := common.WriteFastaRecord(w, req.ID, RandSeq(rng, req.Length, req.GCBias)); err != nil {
			return err
		}
	}
	return nil
}

func Run(args []string) {
	fs := flag.NewFlagSet("ran_dna_gen", flag.ExitOnError)

	length := fs.Int("length", 100, "Length of generated DNA sequence")
	gc := fs.Float64("gc_bias", 0.5, "GC bias (0.0-1.0)")
	seed := fs.Uint64("seed", 0, "Seed for RNG")
	outFile := fs.String("out_file", "", "Output FASTA file")
	name := fs.String("name", "random_seq", "Sequence name (FASTA header)")
	gzipOption := fs.Bool("gzip", false, "Compress output using gzip (.gz)")

	var multiSeq MultiSeqFlag
	fs.Var(&multiSeq, "seq", "Define sequence as 'name,length,gc_bias' (can be repeated)")

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
	if *gc < 0.0 || *gc > 0.99 {
		fmt.Println("GC bias must be between 0.0 and 0.99")
		os.Exit(1)
	}
	if *length < 0 {
		fmt.Println("Length must not be negative")
		os.Exit(1)
	}

	s := *seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(s, s>>1|1))

	reqs := []SequenceRequest(multiSeq)
	if len(reqs) == 0 {
		reqs = []SequenceRequest{{ID: *name, Length: *length, GCBias: *gc}}
	}

	if *outFile == "" {
		if *gzipOption {
			fmt.Fprintln(os.Stderr, "Cannot gzip to stdout directly. Please specify an output file.")
			os.Exit(1)
		}
		if err := WriteRecords(os.Stdout, rng, reqs); err != nil {
			fmt.Println("Error writing sequence:", err)
			os.Exit(1)
		}
		return
	}

	outputPath := *outFile
	if *gzipOption {
		outputPath += ".gz"
	}
	file, err := os.Create(outputPath)
	if err != nil {
		fmt.Println("Error creating file:", err)
		os.Exit(1)
	}
	defer file.Close()

	var w io.Writer = file
	if *gzipOption {
		gw := gzip.NewWriter(file)
		defer gw.Close()
		w = gw
	}
	if err := WriteRecords(w, rng, reqs); err != nil {
		fmt.Println("Error writing to file:", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Wrote %d sequence(s) to %s\n", len(reqs), outputPath)
}
