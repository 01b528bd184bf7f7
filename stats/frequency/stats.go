package frequency

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-driver/dsp/core"
)

// Errors returned by [Calculate].
var (
	ErrEmptyCurve     = errors.New("frequency: curve is empty")
	ErrLengthMismatch = errors.New("frequency: frequency and value lengths differ")
)

// Scale tells how curve values relate to energy, which fixes the dB
// convention and the -3 dB threshold.
type Scale int

const (
	// Amplitude values (voltage, impedance magnitude) use 20*log10 and a
	// peak/sqrt(2) bandwidth threshold.
	Amplitude Scale = iota
	// Power values (efficiency, acoustic power) use 10*log10 and a peak/2
	// bandwidth threshold.
	Power
)

// Stats summarizes a response curve sampled over a frequency axis.
// Only finite samples contribute; NonFinite counts the rest.
type Stats struct {
	Count      int
	NonFinite  int
	Max        float64
	MaxFreq    float64
	Min        float64
	MinFreq    float64
	Average    float64
	Average_dB float64
	Range_dB   float64 // Max relative to Min
	Centroid   float64 // value-weighted mean frequency (Hz)
	Bandwidth  float64 // -3 dB bandwidth around the peak (Hz)
}

func (s Scale) toDB(v float64) float64 {
	if s == Power {
		return core.LinearPowerToDB(v)
	}
	return core.LinearToDB(v)
}

func (s Scale) threshold(peak float64) float64 {
	if s == Power {
		return peak / 2
	}
	return peak / math.Sqrt2
}

// Calculate computes curve statistics for values sampled at freqHz.
//
// freqHz is expected in increasing order as produced by a sweep grid. If no
// sample is finite the extrema are NaN and Count is zero.
func Calculate(freqHz, values []float64, scale Scale) (Stats, error) {
	if len(values) == 0 {
		return Stats{}, ErrEmptyCurve
	}
	if len(freqHz) != len(values) {
		return Stats{}, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(freqHz), len(values))
	}

	s := Stats{
		Max: math.NaN(),
		Min: math.NaN(),
	}

	sum := 0.0
	weighted := 0.0
	for i, v := range values {
		if !core.IsFinite(v) {
			s.NonFinite++
			continue
		}
		if s.Count == 0 || v > s.Max {
			s.Max = v
			s.MaxFreq = freqHz[i]
		}
		if s.Count == 0 || v < s.Min {
			s.Min = v
			s.MinFreq = freqHz[i]
		}
		s.Count++
		sum += v
		weighted += v * freqHz[i]
	}

	if s.Count == 0 {
		s.Average = math.NaN()
		s.Average_dB = math.NaN()
		s.Range_dB = math.NaN()
		return s, nil
	}

	s.Average = sum / float64(s.Count)
	s.Average_dB = scale.toDB(s.Average)
	s.Range_dB = scale.toDB(s.Max) - scale.toDB(s.Min)
	if sum != 0 {
		s.Centroid = weighted / sum
	}
	s.Bandwidth = bandwidth(freqHz, values, scale)

	return s, nil
}

// Peak returns the index, frequency and value of the largest finite sample.
// The index is -1 when the curve has no finite sample.
func Peak(freqHz, values []float64) (int, float64, float64) {
	idx := -1
	for i, v := range values {
		if !core.IsFinite(v) {
			continue
		}
		if idx < 0 || v > values[idx] {
			idx = i
		}
	}
	if idx < 0 || idx >= len(freqHz) {
		return -1, math.NaN(), math.NaN()
	}
	return idx, freqHz[idx], values[idx]
}

// Bandwidth returns the -3 dB bandwidth in Hz around the peak of an
// amplitude curve.
//
// The crossings of peak/sqrt(2) are located on both sides of the peak and
// refined by linear interpolation. A side that never crosses the threshold
// is clamped to the curve edge.
func Bandwidth(freqHz, magnitude []float64) float64 {
	return bandwidth(freqHz, magnitude, Amplitude)
}

// PowerBandwidth is [Bandwidth] for power-like curves (half-power points).
func PowerBandwidth(freqHz, power []float64) float64 {
	return bandwidth(freqHz, power, Power)
}

func bandwidth(freqHz, values []float64, scale Scale) float64 {
	n := len(values)
	if n < 2 || len(freqHz) != n {
		return 0
	}

	peakIdx, _, peakVal := Peak(freqHz, values)
	if peakIdx < 0 || peakVal <= 0 {
		return 0
	}

	threshold := scale.threshold(peakVal)

	lowerFreq := freqHz[0]
	for i := peakIdx; i >= 1; i-- {
		if values[i-1] <= threshold && values[i] > threshold {
			lowerFreq = interpFreq(freqHz[i-1], freqHz[i], values[i-1], values[i], threshold)
			break
		}
	}

	upperFreq := freqHz[n-1]
	for i := peakIdx; i < n-1; i++ {
		if values[i+1] <= threshold && values[i] > threshold {
			upperFreq = interpFreq(freqHz[i], freqHz[i+1], values[i], values[i+1], threshold)
			break
		}
	}

	bw := upperFreq - lowerFreq
	if bw < 0 {
		return 0
	}
	return bw
}

// interpFreq linearly interpolates the frequency at which the curve crosses
// threshold between two neighbouring samples.
func interpFreq(fLow, fHigh, vLow, vHigh, threshold float64) float64 {
	denom := vHigh - vLow
	if denom == 0 {
		return (fLow + fHigh) / 2
	}
	t := (threshold - vLow) / denom
	return fLow + t*(fHigh-fLow)
}
