package spectrum

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestMagnitudePhasePower(t *testing.T) {
	z := []complex128{3 + 4i, -1 - 1i, 0}

	mag := Magnitude(z)
	if len(mag) != len(z) {
		t.Fatalf("Magnitude length mismatch: got=%d want=%d", len(mag), len(z))
	}

	if math.Abs(mag[0]-5) > 1e-12 {
		t.Fatalf("Magnitude[0]=%f want=5", mag[0])
	}

	if math.Abs(mag[1]-math.Sqrt2) > 1e-12 {
		t.Fatalf("Magnitude[1]=%f want=%f", mag[1], math.Sqrt2)
	}

	pow := Power(z)
	if math.Abs(pow[0]-25) > 1e-12 {
		t.Fatalf("Power[0]=%f want=25", pow[0])
	}

	phase := Phase(z)
	if math.Abs(phase[0]-math.Atan2(4, 3)) > 1e-12 {
		t.Fatalf("Phase[0]=%f mismatch", phase[0])
	}
}

func TestMagnitudeEmpty(t *testing.T) {
	if Magnitude(nil) != nil || Power(nil) != nil || Phase(nil) != nil {
		t.Fatal("expected nil for empty input")
	}
}

func TestMagnitudeMatchesCmplxAbs(t *testing.T) {
	z := make([]complex128, 257)
	for i := range z {
		z[i] = complex(float64(i)-128, 0.25*float64(i))
	}

	mag := Magnitude(z)
	for i, c := range z {
		if math.Abs(mag[i]-cmplx.Abs(c)) > 1e-9 {
			t.Fatalf("mag[%d]=%v want=%v", i, mag[i], cmplx.Abs(c))
		}
	}
}

func TestMagnitudePropagatesNonFinite(t *testing.T) {
	z := []complex128{1, complex(math.Inf(1), 0), complex(math.NaN(), 1)}
	mag := Magnitude(z)

	if !math.IsInf(mag[1], 1) {
		t.Fatalf("mag[1]=%v want +Inf", mag[1])
	}
	if !math.IsNaN(mag[2]) && !math.IsInf(mag[2], 0) {
		t.Fatalf("mag[2]=%v want non-finite", mag[2])
	}
}

func TestUnwrapPhase(t *testing.T) {
	in := []float64{2.8, -2.7, -2.6}

	out := UnwrapPhase(in)
	if len(out) != len(in) {
		t.Fatalf("unwrap length mismatch")
	}

	if out[1] <= out[0] {
		t.Fatalf("expected increasing unwrapped phase: %v", out)
	}

	if math.Abs((out[1]-out[0])-(2*math.Pi-5.5)) > 1e-12 {
		t.Fatalf("unexpected unwrap delta: %f", out[1]-out[0])
	}
}

func TestGroupDelayPureDelay(t *testing.T) {
	const delay = 2.5e-3

	freq := []float64{100, 150, 250, 400, 800, 1000}
	phase := make([]float64, len(freq))
	for i, f := range freq {
		phase[i] = -2 * math.Pi * f * delay
	}

	gd, err := GroupDelay(freq, phase)
	if err != nil {
		t.Fatalf("GroupDelay error: %v", err)
	}

	for i, v := range gd {
		if math.Abs(v-delay) > 1e-12 {
			t.Fatalf("gd[%d]=%g want=%g", i, v, delay)
		}
	}
}

func TestGroupDelayErrors(t *testing.T) {
	tests := []struct {
		name  string
		freq  []float64
		phase []float64
	}{
		{"too short", []float64{1}, []float64{0}},
		{"length mismatch", []float64{1, 2, 3}, []float64{0, 1}},
		{"not increasing", []float64{1, 1}, []float64{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GroupDelay(tt.freq, tt.phase); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestSmoothFractionalOctave(t *testing.T) {
	freq := []float64{100, 125, 160, 200, 250, 315}
	vals := []float64{1, 1, 9, 1, 1, 1}

	out, err := SmoothFractionalOctave(freq, vals, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(vals) {
		t.Fatalf("length mismatch")
	}

	wide, err := SmoothFractionalOctave(freq, vals, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !(wide[2] < vals[2]) {
		t.Fatalf("octave smoothing should lower the peak: %v", wide)
	}
}

func TestSmoothFractionalOctaveNonFinite(t *testing.T) {
	freq := []float64{100, 110, 120, 130, 400}
	vals := []float64{0.1, math.NaN(), 0.1, math.Inf(1), 0.1}

	out, err := SmoothFractionalOctave(freq, vals, 3)
	if err != nil {
		t.Fatal(err)
	}

	if !math.IsNaN(out[1]) || !math.IsInf(out[3], 1) {
		t.Fatalf("non-finite slots not kept: %v", out)
	}
	for _, i := range []int{0, 2, 4} {
		if math.Abs(out[i]-0.1) > 1e-15 {
			t.Fatalf("out[%d] = %v, want 0.1", i, out[i])
		}
	}
}

func TestSmoothFractionalOctaveErrors(t *testing.T) {
	if _, err := SmoothFractionalOctave(nil, nil, 3); err == nil {
		t.Fatal("expected error for empty input")
	}
	if _, err := SmoothFractionalOctave([]float64{1, 2}, []float64{1}, 3); err == nil {
		t.Fatal("expected error for length mismatch")
	}
	if _, err := SmoothFractionalOctave([]float64{1, 2}, []float64{1, 1}, 0); err == nil {
		t.Fatal("expected error for zero fraction")
	}
	if _, err := SmoothFractionalOctave([]float64{0, 2}, []float64{1, 1}, 3); err == nil {
		t.Fatal("expected error for zero frequency")
	}
	if _, err := SmoothFractionalOctave([]float64{2, 1}, []float64{1, 1}, 3); err == nil {
		t.Fatal("expected error for decreasing frequency")
	}
}
