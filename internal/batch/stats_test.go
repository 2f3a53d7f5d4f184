package batch

import (
	"math"
	"testing"
)

func TestStats(t *testing.T) {
	xs := []float64{4.0, 6.0}

	if got := mean(xs); got != 5.0 {
		t.Errorf("mean = %v, want 5.0", got)
	}
	if got := median(xs); got != 5.0 {
		t.Errorf("median = %v, want 5.0", got)
	}
	if got := sampleStdDev(xs); math.Abs(got-math.Sqrt2) > 1e-9 {
		t.Errorf("sampleStdDev = %v, want sqrt(2)", got)
	}
	if got := minOf(xs); got != 4.0 {
		t.Errorf("minOf = %v, want 4.0", got)
	}
	if got := maxOf(xs); got != 6.0 {
		t.Errorf("maxOf = %v, want 6.0", got)
	}
}

func TestMedianOddCount(t *testing.T) {
	if got := median([]float64{9.0, 1.0, 5.0}); got != 5.0 {
		t.Errorf("median = %v, want 5.0", got)
	}
}

func TestStatsDegenerateInputs(t *testing.T) {
	if got := sampleStdDev([]float64{7.0}); got != 0.0 {
		t.Errorf("single-sample stddev = %v, want 0", got)
	}
	for name, got := range map[string]float64{
		"mean":   mean(nil),
		"median": median(nil),
		"stddev": sampleStdDev(nil),
		"min":    minOf(nil),
		"max":    maxOf(nil),
	} {
		if got != 0.0 {
			t.Errorf("%s(nil) = %v, want 0", name, got)
		}
	}
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	xs := []float64{3.0, 1.0, 2.0}
	median(xs)
	if xs[0] != 3.0 || xs[1] != 1.0 || xs[2] != 2.0 {
		t.Errorf("median reordered its input: %v", xs)
	}
}
