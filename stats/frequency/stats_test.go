package frequency

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b, tol float64) bool {
	if math.IsInf(a, -1) && math.IsInf(b, -1) {
		return true
	}

	if math.IsInf(a, 1) && math.IsInf(b, 1) {
		return true
	}

	return math.Abs(a-b) <= tol
}

func linearAxis(n int, start, step float64) []float64 {
	f := make([]float64, n)
	for i := range f {
		f[i] = start + float64(i)*step
	}
	return f
}

// triangle returns a curve peaking at index peak with value 1 and falling
// linearly by slope per sample on both sides.
func triangle(n, peak int, slope float64) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1 - slope*math.Abs(float64(i-peak))
	}
	return v
}

func TestCalculateErrors(t *testing.T) {
	if _, err := Calculate(nil, nil, Amplitude); !errors.Is(err, ErrEmptyCurve) {
		t.Fatalf("err = %v, want ErrEmptyCurve", err)
	}

	if _, err := Calculate([]float64{1}, []float64{1, 2}, Amplitude); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("err = %v, want ErrLengthMismatch", err)
	}
}

func TestCalculateBasic(t *testing.T) {
	freq := []float64{100, 200, 300, 400}
	vals := []float64{1, 4, 2, 1}

	s, err := Calculate(freq, vals, Amplitude)
	if err != nil {
		t.Fatal(err)
	}

	if s.Count != 4 || s.NonFinite != 0 {
		t.Fatalf("Count=%d NonFinite=%d", s.Count, s.NonFinite)
	}
	if s.Max != 4 || s.MaxFreq != 200 {
		t.Errorf("Max=%v@%v, want 4@200", s.Max, s.MaxFreq)
	}
	if s.Min != 1 || s.MinFreq != 100 {
		t.Errorf("Min=%v@%v, want 1@100", s.Min, s.MinFreq)
	}
	if !almostEqual(s.Average, 2, tolerance) {
		t.Errorf("Average=%v, want 2", s.Average)
	}
	if !almostEqual(s.Average_dB, 20*math.Log10(2), tolerance) {
		t.Errorf("Average_dB=%v", s.Average_dB)
	}
	if !almostEqual(s.Range_dB, 20*math.Log10(4), tolerance) {
		t.Errorf("Range_dB=%v", s.Range_dB)
	}

	wantCentroid := (100*1 + 200*4 + 300*2 + 400*1) / 8.0
	if !almostEqual(s.Centroid, wantCentroid, tolerance) {
		t.Errorf("Centroid=%v, want %v", s.Centroid, wantCentroid)
	}
}

func TestCalculatePowerScale(t *testing.T) {
	s, err := Calculate([]float64{1, 2}, []float64{10, 10}, Power)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(s.Average_dB, 10, tolerance) {
		t.Errorf("Average_dB=%v, want 10", s.Average_dB)
	}
}

func TestCalculateSkipsNonFinite(t *testing.T) {
	freq := []float64{100, 200, 300, 400}
	vals := []float64{1, math.NaN(), math.Inf(1), 3}

	s, err := Calculate(freq, vals, Amplitude)
	if err != nil {
		t.Fatal(err)
	}

	if s.Count != 2 || s.NonFinite != 2 {
		t.Fatalf("Count=%d NonFinite=%d, want 2/2", s.Count, s.NonFinite)
	}
	if s.Max != 3 || s.MaxFreq != 400 {
		t.Errorf("Max=%v@%v, want 3@400", s.Max, s.MaxFreq)
	}
}

func TestCalculateAllNonFinite(t *testing.T) {
	s, err := Calculate([]float64{1, 2}, []float64{math.NaN(), math.NaN()}, Amplitude)
	if err != nil {
		t.Fatal(err)
	}
	if s.Count != 0 || s.NonFinite != 2 {
		t.Fatalf("Count=%d NonFinite=%d", s.Count, s.NonFinite)
	}
	if !math.IsNaN(s.Max) || !math.IsNaN(s.Average) {
		t.Fatalf("expected NaN extrema, got %+v", s)
	}
}

func TestPeak(t *testing.T) {
	idx, f, v := Peak([]float64{1, 2, 3}, []float64{0.5, math.Inf(1), 0.7})
	if idx != 2 || f != 3 || v != 0.7 {
		t.Fatalf("Peak = (%d, %v, %v), want (2, 3, 0.7)", idx, f, v)
	}

	idx, _, _ = Peak([]float64{1}, []float64{math.NaN()})
	if idx != -1 {
		t.Fatalf("Peak idx = %d, want -1", idx)
	}
}

func TestBandwidthTriangle(t *testing.T) {
	// 1 Hz spacing, peak at 50 Hz, slope 0.01 per Hz.
	freq := linearAxis(101, 0, 1)
	vals := triangle(101, 50, 0.01)

	// Amplitude crossing at 1/sqrt(2): offset = (1-1/sqrt(2))/0.01 on each side.
	offset := (1 - 1/math.Sqrt2) / 0.01
	want := 2 * offset

	got := Bandwidth(freq, vals)
	if !almostEqual(got, want, 1e-6) {
		t.Fatalf("Bandwidth = %v, want %v", got, want)
	}

	// Half power: offset = 0.5/0.01 = 50 Hz each side, which hits the edges.
	gotPower := PowerBandwidth(freq, vals)
	if !almostEqual(gotPower, 100, 1e-6) {
		t.Fatalf("PowerBandwidth = %v, want 100", gotPower)
	}
}

func TestBandwidthEdgeCases(t *testing.T) {
	if bw := Bandwidth([]float64{1}, []float64{1}); bw != 0 {
		t.Errorf("single sample bandwidth = %v, want 0", bw)
	}
	if bw := Bandwidth([]float64{1, 2}, []float64{0, 0}); bw != 0 {
		t.Errorf("zero curve bandwidth = %v, want 0", bw)
	}
	// Flat curve never crosses: whole axis.
	if bw := Bandwidth([]float64{100, 200, 300}, []float64{1, 1, 1}); !almostEqual(bw, 200, tolerance) {
		t.Errorf("flat curve bandwidth = %v, want 200", bw)
	}
}
