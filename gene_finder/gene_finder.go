// Package gene_finder ties the pipeline together: a shuffle-based noise threshold,
// ORFs on both strands, and translation of every ORF longer than the threshold.
package gene_finder

import (
	"math/rand/v2"

	"gene_finder_go/config"
	"gene_finder_go/null_model"
	"gene_finder_go/orf_finder"
	"gene_finder_go/translate"
	common "gene_finder_go/utils"
)

// Gene is an ORF that beat the noise threshold, with its translation.
type Gene struct {
	orf_finder.ORF
	Protein string
	PValue  float64 // chance of a shuffled ORF this long under a normal fit of the null
}

// Report is the outcome for one sequence.
type Report struct {
	Threshold int
	Summary   null_model.Summary
	Lengths   []int // per-trial longest shuffled ORF
	Genes     []Gene
}

// Finder runs the full pipeline with a parallel null model.
type Finder struct {
	Estimator null_model.Estimator
}

// NewFinder builds a Finder from settings. A zero seed is kept as 0, not resolved
// against the clock; callers that want clock seeding resolve it first.
func NewFinder(s config.Settings) Finder {
	return Finder{Estimator: null_model.Estimator{
		Trials:  s.NullModel.Trials,
		Workers: s.NullModel.Workers,
		Seed:    s.NullModel.Seed,
	}}
}

// Find returns the genes of seq in ORF discovery order: forward frames 0-2, then
// reverse-complement frames 0-2. ORFs at or below the threshold are dropped silently.
func (f Finder) Find(seq string) (Report, error) {
	if err := common.ValidateDNA(seq); err != nil {
		return Report{}, err
	}

	res, err := f.Estimator.Run(seq)
	if err != nil {
		return Report{}, err
	}

	orfs, err := orf_finder.FindAllORFsBothStrands(seq)
	if err != nil {
		return Report{}, err
	}

	summary := null_model.Summarize(res.Lengths)
	genes, err := keepAndTranslate(orfs, res.Threshold)
	if err != nil {
		return Report{}, err
	}
	for i := range genes {
		genes[i].PValue = summary.PValue(genes[i].Len())
	}

	return Report{Threshold: res.Threshold, Summary: summary, Lengths: res.Lengths, Genes: genes}, nil
}

// GeneFinder returns the amino acid sequences likely coded by seq, using trials
// sequential shuffles drawn from rng for the threshold.
func GeneFinder(seq string, trials int, rng *rand.Rand) ([]string, error) {
	threshold, err := null_model.LongestORFNoncoding(seq, trials, rng)
	if err != nil {
		return nil, err
	}
	orfs, err := orf_finder.FindAllORFsBothStrands(seq)
	if err != nil {
		return nil, err
	}
	genes, err := keepAndTranslate(orfs, threshold)
	if err != nil {
		return nil, err
	}
	proteins := make([]string, len(genes))
	for i, g := range genes {
		proteins[i] = g.Protein
	}
	return proteins, nil
}

func keepAndTranslate(orfs []orf_finder.ORF, threshold int) ([]Gene, error) {
	var genes []Gene
	for _, orf := range orfs {
		if orf.Len() <= threshold {
			continue
		}
		protein, err := translate.CodingStrandToAA(orf.Seq)
		if err != nil {
			return nil, err
		}
		genes = append(genes, Gene{ORF: orf, Protein: protein})
	}
	return genes, nil
}
