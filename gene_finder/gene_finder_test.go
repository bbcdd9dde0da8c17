package gene_finder

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"gene_finder_go/codon_table"
	"gene_finder_go/null_model"
	"gene_finder_go/orf_finder"
	"gene_finder_go/ran_dna_gen"
	"gene_finder_go/translate"
	common "gene_finder_go/utils"
)

// plantedORF is ATG, then the given number of random non-stop codons, then TAA.
func plantedORF(rng *rand.Rand, codons int) string {
	var sb strings.Builder
	sb.WriteString(codon_table.StartCodon)
	for sb.Len() < 3+3*codons {
		c := ran_dna_gen.RandSeq(rng, 3, 0.5)
		if codon_table.IsStop(c) {
			continue
		}
		sb.WriteString(c)
	}
	sb.WriteString("TAA")
	return sb.String()
}

func plantedSequence() (seq string, orf string) {
	rng := rand.New(rand.NewPCG(2024, 1))
	orf = plantedORF(rng, 400)
	seq = ran_dna_gen.RandSeq(rng, 300, 0.5) + orf + ran_dna_gen.RandSeq(rng, 300, 0.5)
	return seq, orf
}

func TestFinderFindsPlantedGene(t *testing.T) {
	seq, orf := plantedSequence()
	finder := Finder{Estimator: null_model.Estimator{Trials: 200, Seed: 17}}

	report, err := finder.Find(seq)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if report.Threshold >= len(orf)-3 {
		t.Fatalf("threshold %d swallowed the planted ORF (%d nt)", report.Threshold, len(orf)-3)
	}
	if len(report.Lengths) != 200 || report.Summary.Trials != 200 {
		t.Errorf("null model kept %d lengths, summary of %d", len(report.Lengths), report.Summary.Trials)
	}

	want, _ := translate.CodingStrandToAA(orf[:len(orf)-3])
	found := false
	for _, g := range report.Genes {
		if strings.HasSuffix(g.Protein, want) {
			found = true
			if g.PValue > 0.01 {
				t.Errorf("planted gene p-value %.3g", g.PValue)
			}
		}
	}
	if !found {
		t.Errorf("planted protein not among %d genes", len(report.Genes))
	}
}

func TestFinderRespectsThreshold(t *testing.T) {
	seq := ran_dna_gen.RandSeq(rand.New(rand.NewPCG(8, 8)), 900, 0.45)
	report, err := Finder{Estimator: null_model.Estimator{Trials: 20, Seed: 3}}.Find(seq)
	if err != nil {
		t.Fatal(err)
	}

	orfs, _ := orf_finder.FindAllORFsBothStrands(seq)
	var kept []orf_finder.ORF
	for _, orf := range orfs {
		if orf.Len() > report.Threshold {
			kept = append(kept, orf)
		}
	}
	if len(kept) != len(report.Genes) {
		t.Fatalf("%d ORFs above threshold, %d genes", len(kept), len(report.Genes))
	}
	for i, g := range report.Genes {
		if g.Len() <= report.Threshold {
			t.Errorf("gene %d (%d nt) not above threshold %d", i, g.Len(), report.Threshold)
		}
		if g.ORF != kept[i] {
			t.Errorf("gene %d out of discovery order", i)
		}
		want, _ := translate.CodingStrandToAA(g.Seq)
		if g.Protein != want {
			t.Errorf("gene %d protein mismatch", i)
		}
	}
}

func TestFinderDeterministic(t *testing.T) {
	seq, _ := plantedSequence()
	a, err := Finder{Estimator: null_model.Estimator{Trials: 30, Workers: 2, Seed: 5}}.Find(seq)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Finder{Estimator: null_model.Estimator{Trials: 30, Workers: 6, Seed: 5}}.Find(seq)
	if err != nil {
		t.Fatal(err)
	}
	if a.Threshold != b.Threshold || len(a.Genes) != len(b.Genes) {
		t.Errorf("runs differ: %d/%d genes, thresholds %d/%d", len(a.Genes), len(b.Genes), a.Threshold, b.Threshold)
	}
}

func TestFinderErrors(t *testing.T) {
	if _, err := (Finder{Estimator: null_model.Estimator{Trials: 5}}).Find("ATGXTAA"); !errors.Is(err, common.ErrInvalidSequence) {
		t.Errorf("err = %v, want ErrInvalidSequence", err)
	}
	if _, err := (Finder{}).Find("ATG"); !errors.Is(err, null_model.ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}

	report, err := Finder{Estimator: null_model.Estimator{Trials: 5}}.Find("")
	if err != nil || report.Threshold != 0 || len(report.Genes) != 0 {
		t.Errorf("empty input: %+v, %v", report, err)
	}
}

func TestGeneFinder(t *testing.T) {
	seq, orf := plantedSequence()
	proteins, err := GeneFinder(seq, 100, null_model.NewRand(9))
	if err != nil {
		t.Fatal(err)
	}
	want, _ := translate.CodingStrandToAA(orf[:len(orf)-3])
	found := false
	for _, p := range proteins {
		if strings.HasSuffix(p, want) {
			found = true
		}
	}
	if !found {
		t.Errorf("planted protein missing from %d proteins", len(proteins))
	}

	if got, err := GeneFinder("", 10, null_model.NewRand(1)); err != nil || len(got) != 0 {
		t.Errorf("empty input: %v, %v", got, err)
	}
	if _, err := GeneFinder("ATG", 0, null_model.NewRand(1)); !errors.Is(err, null_model.ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestWriters(t *testing.T) {
	report := Report{
		Threshold: 6,
		Genes: []Gene{{
			ORF:     orf_finder.ORF{Seq: "ATGCGAATG", Start: 0, Frame: 0, Strand: orf_finder.Forward},
			Protein: "MRM",
			PValue:  0.001,
		}},
	}

	var sb strings.Builder
	if err := WriteFasta(&sb, "s1", 19, report); err != nil {
		t.Fatal(err)
	}
	want := ">s1_gene1 strand=+ frame=1 start=1 end=9 len_nt=9 threshold=6 pvalue=0.001\nMRM\n"
	if sb.String() != want {
		t.Errorf("WriteFasta = %q, want %q", sb.String(), want)
	}

	sb.Reset()
	if err := WriteTSV(&sb, "s1", 19, report); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "s1\ts1_gene1\t+\t1\t1\t9\t9\t3\t6\t0.001\tMRM\n" {
		t.Errorf("WriteTSV = %q", sb.String())
	}
}
