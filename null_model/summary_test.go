package null_model

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestSummarize(t *testing.T) {
	s := Summarize([]int{4, 1, 3, 2})
	if s.Trials != 4 || s.Max != 4 {
		t.Errorf("Summarize = %+v", s)
	}
	if math.Abs(s.Mean-2.5) > 1e-9 {
		t.Errorf("Mean = %v, want 2.5", s.Mean)
	}
	if math.Abs(s.StdDev-math.Sqrt(5.0/3.0)) > 1e-9 {
		t.Errorf("StdDev = %v", s.StdDev)
	}
	if s.Median < 2 || s.Median > 3 {
		t.Errorf("Median = %v", s.Median)
	}
	if s.P95 != 4 {
		t.Errorf("P95 = %v, want 4", s.P95)
	}

	if got := Summarize(nil); got != (Summary{}) {
		t.Errorf("Summarize(nil) = %+v", got)
	}
	if got := Summarize([]int{9}); got.StdDev != 0 || got.Mean != 9 {
		t.Errorf("single value: %+v", got)
	}
}

func TestPValue(t *testing.T) {
	s := Summarize([]int{30, 33, 36, 39, 42, 45, 48})
	prev := 1.0
	for _, l := range []int{0, 30, 39, 48, 90, 300} {
		p := s.PValue(l)
		if p < 0 || p > 1 {
			t.Fatalf("PValue(%d) = %v out of range", l, p)
		}
		if p > prev {
			t.Errorf("PValue not decreasing at %d: %v > %v", l, p, prev)
		}
		prev = p
	}
	if p := s.PValue(39); math.Abs(p-0.5) > 1e-9 {
		t.Errorf("PValue at mean = %v, want 0.5", p)
	}

	flat := Summarize([]int{12, 12, 12})
	if flat.PValue(12) != 1 || flat.PValue(13) != 0 {
		t.Error("degenerate null should be a step at the mean")
	}
}

func TestWriteHistogram(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"null.png", "null.svg"} {
		path := filepath.Join(dir, name)
		if err := WriteHistogram([]int{9, 12, 12, 15, 21, 30, 12}, 30, path); err != nil {
			t.Fatalf("WriteHistogram(%s): %v", name, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}

	if err := WriteHistogram(nil, 0, filepath.Join(dir, "none.png")); err == nil {
		t.Error("expected error for empty lengths")
	}
}

func TestPlotPath(t *testing.T) {
	if got := PlotPath("out/null.png", "chr1", false); got != "out/null.png" {
		t.Errorf("single record: %s", got)
	}
	if got := PlotPath("out/null.png", "chr 1", true); got != "out/null_chr_1.png" {
		t.Errorf("multi record: %s", got)
	}
}
