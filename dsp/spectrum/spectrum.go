package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-driver/dsp/core"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |z| for each point of a complex response.
//
// The computation runs on the SIMD kernels of algo-vecmath. Scratch buffers
// are pooled, so in steady state this allocates only the output slice.
// Non-finite inputs propagate into the result.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	MagnitudeInto(out, in)
	return out
}

// MagnitudeInto writes |in[i]| into dst. dst must be at least len(in) long.
func MagnitudeInto(dst []float64, in []complex128) {
	if len(in) == 0 {
		return
	}

	re, im, buf := getScratch(len(in))
	split(re, im, in)
	vecmath.Magnitude(dst[:len(in)], re, im)
	putScratch(buf)
}

// Power returns |z|^2 for each point of a complex response.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	split(re, im, in)
	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

func split(re, im []float64, in []complex128) {
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
}

// Phase returns arg(z) for each point in radians.
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// UnwrapPhase returns a new phase slice with +/-2*pi discontinuities removed.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}
	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		out[i] = phase[i] + offset
	}
	return out
}

// GroupDelay computes -dφ/dω in seconds from an unwrapped phase curve
// sampled at freqHz.
//
// freqHz must be strictly increasing. A centered difference is used for
// interior points and one-sided differences at the endpoints, so the axis
// does not need to be uniform.
func GroupDelay(freqHz, unwrapped []float64) ([]float64, error) {
	if len(unwrapped) < 2 {
		return nil, fmt.Errorf("group delay requires at least 2 phase points: %d", len(unwrapped))
	}
	if len(freqHz) != len(unwrapped) {
		return nil, fmt.Errorf("group delay length mismatch: %d != %d", len(freqHz), len(unwrapped))
	}
	if err := checkIncreasing(freqHz, "group delay"); err != nil {
		return nil, err
	}

	out := make([]float64, len(unwrapped))
	last := len(unwrapped) - 1
	for i := range unwrapped {
		lo, hi := i-1, i+1
		switch i {
		case 0:
			lo = 0
		case last:
			hi = last
		}
		dphi := unwrapped[hi] - unwrapped[lo]
		dw := 2 * math.Pi * (freqHz[hi] - freqHz[lo])
		out[i] = -dphi / dw
	}
	return out, nil
}

// SmoothFractionalOctave applies 1/N-octave smoothing on linear-domain
// values using the arithmetic mean over each fractional-octave band.
//
// Non-finite values are left in place and excluded from the band means of
// their neighbours.
//
// freqHz and values must have equal length and freqHz must be strictly
// increasing with positive values.
func SmoothFractionalOctave(freqHz, values []float64, fraction int) ([]float64, error) {
	if len(freqHz) == 0 || len(values) == 0 {
		return nil, fmt.Errorf("fractional-octave smoothing requires non-empty inputs")
	}
	if len(freqHz) != len(values) {
		return nil, fmt.Errorf("fractional-octave input length mismatch: %d != %d", len(freqHz), len(values))
	}
	if fraction <= 0 {
		return nil, fmt.Errorf("fractional-octave fraction must be > 0: %d", fraction)
	}
	if freqHz[0] <= 0 {
		return nil, fmt.Errorf("fractional-octave frequencies must be > 0 at index 0")
	}
	if err := checkIncreasing(freqHz, "fractional-octave"); err != nil {
		return nil, err
	}

	out := make([]float64, len(values))
	halfBand := math.Pow(2, 1/(2*float64(fraction)))

	for i, f := range freqHz {
		if !core.IsFinite(values[i]) {
			out[i] = values[i]
			continue
		}

		fLo := f / halfBand
		fHi := f * halfBand

		i0 := sort.Search(len(freqHz), func(k int) bool { return freqHz[k] >= fLo })
		i1 := sort.Search(len(freqHz), func(k int) bool { return freqHz[k] > fHi })

		sum := 0.0
		count := 0
		for j := i0; j < i1; j++ {
			if core.IsFinite(values[j]) {
				sum += values[j]
				count++
			}
		}
		out[i] = sum / float64(count)
	}

	return out, nil
}

func checkIncreasing(x []float64, what string) error {
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return fmt.Errorf("%s frequencies must be strictly increasing at index %d", what, i)
		}
	}
	return nil
}
