package null_model

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Summary describes the distribution of per-trial longest-ORF lengths.
type Summary struct {
	Trials int
	Mean   float64
	StdDev float64
	Median float64
	P95    float64
	Max    int
}

// Summarize computes a Summary. An empty input gives the zero Summary.
func Summarize(lengths []int) Summary {
	if len(lengths) == 0 {
		return Summary{}
	}

	xs := make([]float64, len(lengths))
	longest := 0
	for i, l := range lengths {
		xs[i] = float64(l)
		if l > longest {
			longest = l
		}
	}
	sort.Float64s(xs)

	mean, stddev := stat.MeanStdDev(xs, nil)
	if len(xs) < 2 || math.IsNaN(stddev) {
		stddev = 0
	}

	return Summary{
		Trials: len(xs),
		Mean:   mean,
		StdDev: stddev,
		Median: stat.Quantile(0.5, stat.Empirical, xs, nil),
		P95:    stat.Quantile(0.95, stat.Empirical, xs, nil),
		Max:    longest,
	}
}

// PValue approximates how likely a chance ORF reaches length, using a normal fit of
// the null distribution. With no spread it degenerates to a step at the mean.
func (s Summary) PValue(length int) float64 {
	x := float64(length)
	if s.StdDev == 0 {
		if x > s.Mean {
			return 0
		}
		return 1
	}
	normDist := distuv.Normal{Mu: s.Mean, Sigma: s.StdDev}
	return normDist.Survival(x)
}
