package benchmark

import (
	"strings"
	"testing"
	"time"
)

func TestMeasure(t *testing.T) {
	ran := false
	s := Measure(func() {
		ran = true
		time.Sleep(5 * time.Millisecond)
	})
	if !ran {
		t.Fatal("function not called")
	}
	if s.Elapsed < 5*time.Millisecond {
		t.Errorf("Elapsed = %v", s.Elapsed)
	}
}

func TestReport(t *testing.T) {
	var sb strings.Builder
	Report(&sb, "gene_finder -in_file x.fa", Stats{Elapsed: time.Second, GCCycles: 2})
	out := sb.String()
	for _, want := range []string{"Running: gene_finder -in_file x.fa", "Time Elapsed: 1s", "GC Cycles: 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
