package ir

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-driver/dsp/core"
)

// Errors returned by IR analysis functions.
var (
	ErrEmptyIR           = errors.New("ir: impulse response is empty")
	ErrInvalidSampleRate = errors.New("ir: sample rate must be positive")
	ErrNoDecay           = errors.New("ir: insufficient decay for decay time")
	ErrNonFinite         = errors.New("ir: impulse response contains NaN or Inf")
)

// floorDB is the Schroeder curve value reported once no energy is left.
const floorDB = -200

// DefaultEarlyWindow is the early-energy window used by [Analyzer.Analyze].
const DefaultEarlyWindow = 0.005

// Metrics holds impulse response analysis results.
type Metrics struct {
	PeakIndex  int     // sample index of the absolute maximum
	PeakTime   float64 // PeakIndex in seconds
	PeakValue  float64 // signed sample value at PeakIndex
	Energy     float64 // sum of squares
	CenterTime float64 // energy centroid in seconds
	DecayTime  float64 // extrapolated 60 dB decay in seconds, 0 if undetermined
	EarlyRatio float64 // energy fraction within EarlyWindow of the peak
}

// Analyzer computes IR metrics at a fixed sample rate.
type Analyzer struct {
	SampleRate float64
	// EarlyWindow is the window in seconds for Metrics.EarlyRatio.
	EarlyWindow float64
}

// NewAnalyzer creates an IR analyzer with the given sample rate.
func NewAnalyzer(sampleRate float64) *Analyzer {
	return &Analyzer{SampleRate: sampleRate, EarlyWindow: DefaultEarlyWindow}
}

func (a *Analyzer) check(ir []float64) error {
	if len(ir) == 0 {
		return ErrEmptyIR
	}
	if !(a.SampleRate > 0) {
		return ErrInvalidSampleRate
	}
	if n := core.CountNonFinite(ir); n > 0 {
		return fmt.Errorf("%w: %d samples", ErrNonFinite, n)
	}
	return nil
}

// Analyze computes all metrics. Energy-based metrics are measured from the
// peak onwards.
func (a *Analyzer) Analyze(ir []float64) (Metrics, error) {
	if err := a.check(ir); err != nil {
		return Metrics{}, err
	}

	peak := findPeak(ir)
	tail := ir[peak:]

	m := Metrics{
		PeakIndex:  peak,
		PeakTime:   float64(peak) / a.SampleRate,
		PeakValue:  ir[peak],
		Energy:     energy(ir),
		CenterTime: a.centerTime(tail),
		EarlyRatio: a.earlyRatio(tail),
	}
	m.DecayTime = a.decayTime(schroeder(tail), -5, -25)

	return m, nil
}

// SchroederCurve returns the backward-integrated energy in dB relative to
// the total energy. The curve starts at 0 dB and is floored at -200 dB.
func (a *Analyzer) SchroederCurve(ir []float64) ([]float64, error) {
	if len(ir) == 0 {
		return nil, ErrEmptyIR
	}
	return schroeder(ir), nil
}

// DecayTime fits a line to the Schroeder curve between startDB and endDB
// and extrapolates it to a 60 dB decay.
func (a *Analyzer) DecayTime(ir []float64, startDB, endDB float64) (float64, error) {
	if err := a.check(ir); err != nil {
		return 0, err
	}

	t := a.decayTime(schroeder(ir[findPeak(ir):]), startDB, endDB)
	if t == 0 {
		return 0, ErrNoDecay
	}
	return t, nil
}

// CenterTime returns the energy centroid in seconds.
func (a *Analyzer) CenterTime(ir []float64) (float64, error) {
	if err := a.check(ir); err != nil {
		return 0, err
	}
	return a.centerTime(ir), nil
}

func schroeder(ir []float64) []float64 {
	out := make([]float64, len(ir))

	var sum float64
	for i := len(ir) - 1; i >= 0; i-- {
		sum += ir[i] * ir[i]
		out[i] = sum
	}

	total := out[0]
	if total <= 0 {
		for i := range out {
			out[i] = floorDB
		}
		return out
	}

	for i, v := range out {
		if v <= 0 {
			out[i] = floorDB
			continue
		}
		out[i] = core.LinearPowerToDB(v / total)
	}
	return out
}

func (a *Analyzer) decayTime(curve []float64, startDB, endDB float64) float64 {
	lo, hi := -1, -1
	for i, v := range curve {
		if lo < 0 && v <= startDB {
			lo = i
		}
		if lo >= 0 && v <= endDB {
			hi = i
			break
		}
	}
	if lo < 0 || hi <= lo {
		return 0
	}

	// Least squares slope in dB per sample.
	var sx, sy, sxx, sxy float64
	for i := lo; i <= hi; i++ {
		x := float64(i - lo)
		y := curve[i]
		sx += x
		sy += y
		sxx += x * x
		sxy += x * y
	}

	n := float64(hi - lo + 1)
	den := n*sxx - sx*sx
	if den == 0 {
		return 0
	}

	slope := (n*sxy - sx*sy) / den
	if slope >= 0 {
		return 0
	}

	return -60 / (slope * a.SampleRate)
}

func (a *Analyzer) centerTime(ir []float64) float64 {
	var num, den float64
	for i, v := range ir {
		e := v * v
		num += float64(i) / a.SampleRate * e
		den += e
	}
	if den <= 0 {
		return 0
	}
	return num / den
}

func (a *Analyzer) earlyRatio(ir []float64) float64 {
	total := energy(ir)
	if total <= 0 {
		return 0
	}

	n := int(math.Round(a.EarlyWindow * a.SampleRate))
	n = min(max(n, 1), len(ir))
	return energy(ir[:n]) / total
}

func energy(x []float64) float64 {
	var e float64
	for _, v := range x {
		e += v * v
	}
	return e
}

func findPeak(ir []float64) int {
	idx := 0
	peak := 0.0
	for i, v := range ir {
		if av := math.Abs(v); av > peak {
			peak = av
			idx = i
		}
	}
	return idx
}
