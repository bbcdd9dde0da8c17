// benchmark.go
// A reusable benchmarking module for gene_finder_go
// Measures execution time and memory usage for any wrapped tool run

package benchmark

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"
)

// Stats is the resource usage of one measured run.
type Stats struct {
	Elapsed        time.Duration
	AllocMB        float64
	TotalAllocMB   float64
	PeakHeapMB     float64
	GCCycles       uint32
	GoroutineStart int
	GoroutineEnd   int
}

const mb = 1024.0 * 1024.0

// Measure runs f and reports its resource usage.
func Measure(f func()) Stats {
	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	startGoroutines := runtime.NumGoroutine()
	start := time.Now()

	f()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&memEnd)

	return Stats{
		Elapsed:        elapsed,
		AllocMB:        (float64(memEnd.Alloc) - float64(memStart.Alloc)) / mb,
		TotalAllocMB:   float64(memEnd.TotalAlloc-memStart.TotalAlloc) / mb,
		PeakHeapMB:     float64(memEnd.HeapAlloc) / mb,
		GCCycles:       memEnd.NumGC - memStart.NumGC,
		GoroutineStart: startGoroutines,
		GoroutineEnd:   runtime.NumGoroutine(),
	}
}

// Report writes the environment and s in the [Benchmark] line format.
func Report(w io.Writer, label string, s Stats) {
	fmt.Fprintf(w, "[Benchmark] Running: %s\n", label)
	if host, err := os.Hostname(); err == nil {
		fmt.Fprintln(w, "[Benchmark] Hostname:", host)
	}
	fmt.Fprintln(w, "[Benchmark] Go Version:", runtime.Version())
	fmt.Fprintf(w, "[Benchmark] OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "[Benchmark] Time Elapsed: %v\n", s.Elapsed)
	fmt.Fprintf(w, "[Benchmark] Memory Used: %.2f MB\n", s.AllocMB)
	fmt.Fprintf(w, "[Benchmark] Total Allocated: %.2f MB\n", s.TotalAllocMB)
	fmt.Fprintf(w, "[Benchmark] Peak Heap: %.2f MB\n", s.PeakHeapMB)
	fmt.Fprintf(w, "[Benchmark] GC Cycles: %d\n", s.GCCycles)
	fmt.Fprintf(w, "[Benchmark] CPU Cores: %d\n", runtime.NumCPU())
	fmt.Fprintf(w, "[Benchmark] Goroutines: %d -> %d\n", s.GoroutineStart, s.GoroutineEnd)
	fmt.Fprintln(w, "[Benchmark] ----------------------------------------")
}

// Run wraps a tool run and reports to stderr, keeping stdout for tool output.
func Run(label string, f func()) {
	fmt.Fprintln(os.Stderr, "[Benchmark] Timestamp:", time.Now().Format(time.RFC1123))
	Report(os.Stderr, label, Measure(f))
}
