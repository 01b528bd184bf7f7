package testutil

import (
	"math"
	"testing"
)

// RequireRelNearlyEqual fails t if got and want differ by more than eps
// relative to the larger magnitude.
func RequireRelNearlyEqual(t testing.TB, name string, got, want, eps float64) {
	t.Helper()
	diff := math.Abs(got - want)
	scale := math.Max(math.Abs(got), math.Abs(want))
	if scale == 0 {
		scale = 1
	}
	if !(diff/scale <= eps) {
		t.Fatalf("%s: got %.17g, want %.17g (rel diff %.3g > eps %.3g)", name, got, want, diff/scale, eps)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireBitIdentical fails t unless got and want have the same length and
// identical IEEE bit patterns at every index.
func RequireBitIdentical(t testing.TB, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if math.Float64bits(got[i]) != math.Float64bits(want[i]) {
			t.Fatalf("index %d: got %v, want %v (bits differ)", i, got[i], want[i])
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t testing.TB, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireNonFinite fails t unless v is NaN or Inf.
func RequireNonFinite(t testing.TB, name string, v float64) {
	t.Helper()
	if !math.IsNaN(v) && !math.IsInf(v, 0) {
		t.Fatalf("%s: got finite value %v, want NaN or Inf", name, v)
	}
}
