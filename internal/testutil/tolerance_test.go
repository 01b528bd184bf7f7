package testutil

import (
	"math"
	"testing"
)

// recorder captures Fatalf calls so failing paths can be asserted.
type recorder struct {
	testing.TB
	failed bool
}

func (r *recorder) Helper() {}

func (r *recorder) Fatalf(string, ...any) { r.failed = true }

func TestRequireRelNearlyEqual(t *testing.T) {
	RequireRelNearlyEqual(t, "same", 8.792421547841762, 8.792421547841762, 1e-12)
	RequireRelNearlyEqual(t, "close", 1e6, 1e6+1e-4, 1e-9)
	RequireRelNearlyEqual(t, "zero", 0, 0, 1e-12)

	r := &recorder{TB: t}
	RequireRelNearlyEqual(r, "far", 1, 1.1, 1e-3)
	if !r.failed {
		t.Fatal("expected failure for distant values")
	}

	r = &recorder{TB: t}
	RequireRelNearlyEqual(r, "nan", math.NaN(), 1, 1e-3)
	if !r.failed {
		t.Fatal("expected failure for NaN")
	}
}

func TestRequireSliceNearlyEqual(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1, 2 + 1e-12}, 1e-9)

	r := &recorder{TB: t}
	RequireSliceNearlyEqual(r, []float64{1}, []float64{1, 2}, 1e-9)
	if !r.failed {
		t.Fatal("expected failure for length mismatch")
	}
}

func TestRequireBitIdentical(t *testing.T) {
	RequireBitIdentical(t, []float64{1, math.Inf(1)}, []float64{1, math.Inf(1)})

	r := &recorder{TB: t}
	RequireBitIdentical(r, []float64{1}, []float64{math.Nextafter(1, 2)})
	if !r.failed {
		t.Fatal("expected failure for one-ulp difference")
	}
}

func TestFiniteAssertions(t *testing.T) {
	RequireFinite(t, []float64{0, -1, 1e300})
	RequireNonFinite(t, "nan", math.NaN())
	RequireNonFinite(t, "inf", math.Inf(-1))

	r := &recorder{TB: t}
	RequireFinite(r, []float64{1, math.NaN()})
	if !r.failed {
		t.Fatal("expected failure for NaN")
	}

	r = &recorder{TB: t}
	RequireNonFinite(r, "finite", 2)
	if !r.failed {
		t.Fatal("expected failure for finite value")
	}
}
