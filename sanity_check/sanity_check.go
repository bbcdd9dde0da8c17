package sanity_check

import (
	"fmt"
	"io"
	"os"
	"reflect"

	"gene_finder_go/config"
	"gene_finder_go/null_model"
	"gene_finder_go/orf_finder"
	"gene_finder_go/translate"
	common "gene_finder_go/utils"
)

// Case is one known input/output pair for a pipeline stage.
type Case struct {
	Name string
	Got  func() (interface{}, error)
	Want interface{}
}

func reverseComplement(s string) func() (interface{}, error) {
	return func() (interface{}, error) { return common.ReverseComplement(s) }
}

func restOfORF(s string) func() (interface{}, error) {
	return func() (interface{}, error) { return orf_finder.RestOfORF(s), nil }
}

func oneFrame(s string) func() (interface{}, error) {
	return func() (interface{}, error) { return orf_finder.Sequences(orf_finder.FindAllORFsOneFrame(s)), nil }
}

func translateAA(s string) func() (interface{}, error) {
	return func() (interface{}, error) { return translate.CodingStrandToAA(s) }
}

// Cases are the documented examples of every stage.
func Cases() []Case {
	return []Case{
		{"reverse complement", reverseComplement("ATGCCCGCTTT"), "AAAGCGGGCAT"},
		{"reverse complement", reverseComplement("CCGCGTTCA"), "TGAACGCGG"},
		{"rest of ORF", restOfORF("ATGTGAA"), "ATG"},
		{"rest of ORF", restOfORF("ATGAGATAGG"), "ATGAGA"},
		{"rest of ORF", restOfORF("ATGTAG"), "ATG"},
		{"one frame", oneFrame("ATGCATGAATGTAGATAGATGTGCCC"), []string{"ATGCATGAATGTAGA", "ATGTGCCC"}},
		{"one frame", oneFrame("GCATGAATGTAG"), []string{"ATG"}},
		{"three frames", func() (interface{}, error) {
			return orf_finder.Sequences(orf_finder.FindAllORFs("ATGCATGAATGTAG")), nil
		}, []string{"ATGCATGAATGTAG", "ATGAATGTAG", "ATG"}},
		{"both strands", func() (interface{}, error) {
			orfs, err := orf_finder.FindAllORFsBothStrands("ATGCGAATGTAGCATCAAA")
			return orf_finder.Sequences(orfs), err
		}, []string{"ATGCGAATG", "ATGCTACATTCGCAT"}},
		{"longest ORF", func() (interface{}, error) {
			orf, err := orf_finder.LongestORF("ATGCGAATGTAGCATCAAA")
			return orf.Seq, err
		}, "ATGCTACATTCGCAT"},
		{"translate", translateAA("ATGCGA"), "MR"},
		{"translate", translateAA("ATGCCCGCTTT"), "MPA"},
		{"null model", func() (interface{}, error) {
			return null_model.LongestORFNoncoding("CCGGCCGG", 10, null_model.NewRand(1))
		}, 0},
	}
}

// Check runs every case and writes one line per case to w. It returns the number of failures.
func Check(w io.Writer) int {
	failed := 0
	for _, c := range Cases() {
		got, err := c.Got()
		status := "ok"
		switch {
		case err != nil:
			status = fmt.Sprintf("FAIL (%v)", err)
		case !reflect.DeepEqual(got, c.Want):
			status = fmt.Sprintf("FAIL (got %v, want %v)", got, c.Want)
		}
		if status != "ok" {
			failed++
		}
		fmt.Fprintf(w, "  %-20s %s\n", c.Name, status)
	}
	return failed
}

// Run performs a simple sanity check to ensure the pipeline is
// running properly printing helpful message and version number.
func Run(args []string) {
	fmt.Printf("Running gene_finder_go self test (%s)\n", config.Main_version)
	if failed := Check(os.Stdout); failed > 0 {
		fmt.Printf("%d check(s) failed\n", failed)
		os.Exit(1)
	}
	fmt.Println("All checks passed!")
}
