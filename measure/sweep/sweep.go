package sweep

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// DefaultPoints is the number of samples in a default grid.
const DefaultPoints = 300

// Errors returned by grid functions.
var (
	ErrInvalidFrequency = errors.New("sweep: frequency must be positive and finite")
	ErrFrequencyOrder   = errors.New("sweep: start frequency must be less than end frequency")
	ErrInvalidPoints    = errors.New("sweep: point count must be >= 1")
	ErrUnknownSpacing   = errors.New("sweep: unknown spacing")
)

// Spacing selects how grid points are distributed between the endpoints.
type Spacing int

const (
	// Linear places points at a constant frequency step.
	Linear Spacing = iota
	// Logarithmic places points at a constant frequency ratio.
	Logarithmic
)

// String returns the spacing name used in config files and query strings.
func (s Spacing) String() string {
	switch s {
	case Linear:
		return "linear"
	case Logarithmic:
		return "log"
	default:
		return fmt.Sprintf("Spacing(%d)", int(s))
	}
}

// ParseSpacing parses "linear"/"lin" or "log"/"logarithmic".
// The empty string selects [Linear].
func ParseSpacing(s string) (Spacing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "linear", "lin":
		return Linear, nil
	case "log", "logarithmic":
		return Logarithmic, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSpacing, s)
	}
}

// Grid describes an ordered frequency sweep.
type Grid struct {
	StartFreq float64 // first frequency in Hz
	EndFreq   float64 // last frequency in Hz
	Points    int     // number of samples, including both endpoints
	Spacing   Spacing
}

// Default returns the linear grid [f0/4, 1.5*f0] with n points.
func Default(f0 float64, n int) *Grid {
	return &Grid{
		StartFreq: f0 / 4,
		EndFreq:   1.5 * f0,
		Points:    n,
		Spacing:   Linear,
	}
}

// Validate checks that the grid parameters are valid.
func (g *Grid) Validate() error {
	if !(g.StartFreq > 0) || !(g.EndFreq > 0) || math.IsInf(g.StartFreq, 0) || math.IsInf(g.EndFreq, 0) {
		return ErrInvalidFrequency
	}

	if g.Points < 1 {
		return ErrInvalidPoints
	}

	if g.Points > 1 && g.StartFreq >= g.EndFreq {
		return ErrFrequencyOrder
	}

	if g.Spacing != Linear && g.Spacing != Logarithmic {
		return ErrUnknownSpacing
	}

	return nil
}

// Frequencies returns the grid samples in increasing order.
//
// For linear spacing sample i is start + i*(end-start)/(n-1); for
// logarithmic spacing it is start*(end/start)^(i/(n-1)). The last sample is
// pinned to EndFreq so both endpoints are exact.
func (g *Grid) Frequencies() ([]float64, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	n := g.Points
	out := make([]float64, n)
	out[0] = g.StartFreq
	if n == 1 {
		return out, nil
	}

	switch g.Spacing {
	case Logarithmic:
		lnRatio := math.Log(g.EndFreq / g.StartFreq)
		for i := 1; i < n; i++ {
			out[i] = g.StartFreq * math.Exp(float64(i)/float64(n-1)*lnRatio)
		}
	default:
		step := (g.EndFreq - g.StartFreq) / float64(n-1)
		for i := 1; i < n; i++ {
			out[i] = g.StartFreq + float64(i)*step
		}
	}

	out[n-1] = g.EndFreq
	return out, nil
}

// MustFrequencies is like [Grid.Frequencies] but panics on an invalid grid.
// It is meant for package-level test fixtures and examples.
func (g *Grid) MustFrequencies() []float64 {
	f, err := g.Frequencies()
	if err != nil {
		panic(err)
	}
	return f
}
