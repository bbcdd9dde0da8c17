// Package null_model estimates how long an ORF gets by chance. The input is shuffled many
// times and the longest ORF of each shuffle is recorded; the maximum over all shuffles is
// the noise threshold a real ORF has to beat.
package null_model

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"

	"gene_finder_go/orf_finder"
	common "gene_finder_go/utils"
)

// ErrInvalidConfig is returned for a non-positive trial count.
var ErrInvalidConfig = errors.New("invalid configuration")

// streamMix decorrelates the two PCG seed words derived from a single user seed.
const streamMix = 0x9E3779B97F4A7C15

// NewRand returns a generator seeded deterministically from seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^streamMix))
}

// Shuffle returns a uniformly random permutation of the symbols of seq (Fisher-Yates).
func Shuffle(seq string, rng *rand.Rand) string {
	b := []byte(seq)
	rng.Shuffle(len(b), func(i, j int) { b[i], b[j] = b[j], b[i] })
	return string(b)
}

// longestInShuffle is a single trial.
func longestInShuffle(seq string, rng *rand.Rand) (int, error) {
	orfs, err := orf_finder.FindAllORFsBothStrands(Shuffle(seq, rng))
	if err != nil {
		return 0, err
	}
	longest, _ := orf_finder.Longest(orfs)
	return longest.Len(), nil
}

// LongestORFNoncoding returns the maximum, over trials shuffles of seq, of the longest
// ORF found on either strand. Trials run one after another on rng.
func LongestORFNoncoding(seq string, trials int, rng *rand.Rand) (int, error) {
	if trials <= 0 {
		return 0, fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidConfig, trials)
	}
	if err := common.ValidateDNA(seq); err != nil {
		return 0, err
	}
	longest := 0
	for i := 0; i < trials; i++ {
		n, err := longestInShuffle(seq, rng)
		if err != nil {
			return 0, err
		}
		if n > longest {
			longest = n
		}
	}
	return longest, nil
}

// Estimator runs the shuffle trials on a worker pool.
type Estimator struct {
	Trials  int
	Workers int // <= 0 means runtime.NumCPU()
	Seed    uint64
}

// Result of an Estimator run. Lengths holds each trial's longest ORF in trial order.
type Result struct {
	Threshold int
	Lengths   []int
}

type trialJob struct {
	trial        int
	seed, stream uint64
}

type trialResult struct {
	trial  int
	length int
	err    error
}

// Run performs the trials. Every trial gets its own generator, seeded from a master
// generator in trial order, so the result depends on Seed only and not on Workers.
func (e Estimator) Run(seq string) (Result, error) {
	if e.Trials <= 0 {
		return Result{}, fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidConfig, e.Trials)
	}
	if err := common.ValidateDNA(seq); err != nil {
		return Result{}, err
	}

	lengths := make([]int, e.Trials)
	if len(seq) == 0 {
		return Result{Lengths: lengths}, nil
	}

	numWorkers := e.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > e.Trials {
		numWorkers = e.Trials
	}

	jobChan := make(chan trialJob, numWorkers*2)
	resultChan := make(chan trialResult, numWorkers*2)

	var wg sync.WaitGroup

	// Worker pool
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobChan {
				rng := rand.New(rand.NewPCG(job.seed, job.stream))
				n, err := longestInShuffle(seq, rng)
				resultChan <- trialResult{trial: job.trial, length: n, err: err}
			}
		}()
	}

	// Feed trials
	go func() {
		master := NewRand(e.Seed)
		for t := 0; t < e.Trials; t++ {
			jobChan <- trialJob{trial: t, seed: master.Uint64(), stream: master.Uint64()}
		}
		close(jobChan)
		wg.Wait()
		close(resultChan)
	}()

	// Max reduction
	var res Result
	var firstErr error
	for r := range resultChan {
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
			}
			continue
		}
		lengths[r.trial] = r.length
		if r.length > res.Threshold {
			res.Threshold = r.length
		}
	}
	if firstErr != nil {
		return Result{}, firstErr
	}
	res.Lengths = lengths
	return res, nil
}
