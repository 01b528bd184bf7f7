// Package report turns sweep results into tables, CSV and JSON documents.
package report

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/cwbudde/algo-driver/dsp/core"
	"github.com/cwbudde/algo-driver/dsp/spectrum"
	"github.com/cwbudde/algo-driver/stats/frequency"
	"github.com/cwbudde/algo-driver/transducer"
)

// Number is a float64 that encodes NaN and ±Inf as JSON null.
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if !core.IsFinite(f) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

// UnmarshalJSON implements json.Unmarshaler; null decodes to NaN.
func (n *Number) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*n = Number(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

func numbers(in []float64) []Number {
	if in == nil {
		return nil
	}
	out := make([]Number, len(in))
	for i, v := range in {
		out[i] = Number(v)
	}
	return out
}

// Summary holds curve statistics of one response.
type Summary struct {
	PeakVoltage        Number `json:"peakVoltage"`
	PeakVoltageFreq    Number `json:"peakVoltageFreq"`
	MinVoltage         Number `json:"minVoltage"`
	MinVoltageFreq     Number `json:"minVoltageFreq"`
	PeakEfficiency     Number `json:"peakEfficiency"`
	PeakEfficiencyFreq Number `json:"peakEfficiencyFreq"`
	MeanEfficiency     Number `json:"meanEfficiency"`
	MeanEfficiency_dB  Number `json:"meanEfficiencyDb"`
	EfficiencyBW       Number `json:"efficiencyBandwidth"`
}

// Response is the serialized form of a sweep. Slices are aligned with
// Frequencies.
type Response struct {
	Frequencies      []Number `json:"frequencies"`
	VoltageMagnitude []Number `json:"voltageMagnitude"`
	Efficiency       []Number `json:"efficiency"`
	EfficiencyDB     []Number `json:"efficiencyDb"`

	ImpedanceMagnitude []Number `json:"impedanceMagnitude,omitempty"`
	ImpedancePhase     []Number `json:"impedancePhaseDeg,omitempty"`
	GroupDelay         []Number `json:"groupDelay,omitempty"`

	NonFinite int      `json:"nonFinite"`
	Summary   *Summary `json:"summary,omitempty"`
}

// Options control which derived curves are built.
type Options struct {
	// Smooth applies 1/Smooth-octave smoothing to the efficiency curve when
	// positive. Requires a sweep with at least two points.
	Smooth int
	// Summary adds curve statistics.
	Summary bool
}

// Build converts a solver result. Impedance columns are added when the
// result carries impedance data.
func Build(res transducer.Result, opts Options) (*Response, error) {
	eff := res.Efficiency
	if opts.Smooth > 0 && res.Len() > 1 {
		smoothed, err := spectrum.SmoothFractionalOctave(res.Frequencies, eff, opts.Smooth)
		if err != nil {
			return nil, fmt.Errorf("report: %w", err)
		}
		eff = smoothed
	}

	effDB := make([]float64, len(eff))
	for i, v := range eff {
		effDB[i] = core.LinearPowerToDB(v)
	}

	out := &Response{
		Frequencies:      numbers(res.Frequencies),
		VoltageMagnitude: numbers(res.VoltageMagnitude),
		Efficiency:       numbers(eff),
		EfficiencyDB:     numbers(effDB),
		NonFinite:        res.NonFinite,
	}

	if len(res.Impedance) == res.Len() && res.Len() > 0 {
		mag := spectrum.Magnitude(res.Impedance)
		phase := spectrum.UnwrapPhase(spectrum.Phase(res.Impedance))

		deg := make([]float64, len(phase))
		for i, v := range phase {
			deg[i] = v * 180 / math.Pi
		}
		out.ImpedanceMagnitude = numbers(mag)
		out.ImpedancePhase = numbers(deg)

		if res.Len() > 1 {
			gd, err := spectrum.GroupDelay(res.Frequencies, phase)
			if err == nil {
				out.GroupDelay = numbers(gd)
			}
		}
	}

	if opts.Summary {
		s, err := Summarize(res.Frequencies, res.VoltageMagnitude, eff)
		if err != nil {
			return nil, err
		}
		out.Summary = s
	}

	return out, nil
}

// Summarize computes voltage and efficiency statistics.
func Summarize(freqs, voltage, efficiency []float64) (*Summary, error) {
	vs, err := frequency.Calculate(freqs, voltage, frequency.Amplitude)
	if err != nil {
		return nil, fmt.Errorf("report: voltage summary: %w", err)
	}

	es, err := frequency.Calculate(freqs, efficiency, frequency.Power)
	if err != nil {
		return nil, fmt.Errorf("report: efficiency summary: %w", err)
	}

	return &Summary{
		PeakVoltage:        Number(vs.Max),
		PeakVoltageFreq:    Number(vs.MaxFreq),
		MinVoltage:         Number(vs.Min),
		MinVoltageFreq:     Number(vs.MinFreq),
		PeakEfficiency:     Number(es.Max),
		PeakEfficiencyFreq: Number(es.MaxFreq),
		MeanEfficiency:     Number(es.Average),
		MeanEfficiency_dB:  Number(es.Average_dB),
		EfficiencyBW:       Number(es.Bandwidth),
	}, nil
}
