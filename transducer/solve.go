package transducer

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-driver/dsp/core"
	"github.com/cwbudde/algo-driver/dsp/spectrum"
)

// ErrNumericDegeneracy is returned in strict mode when a sample evaluates to
// NaN or Inf.
var ErrNumericDegeneracy = errors.New("transducer: non-finite sample")

// cancelCheckInterval is the number of samples evaluated between two
// context checks.
const cancelCheckInterval = 256

// Result is the response of one sweep. All slices are aligned with
// Frequencies.
type Result struct {
	Frequencies      []float64
	VoltageMagnitude []float64
	Efficiency       []float64
	// Impedance is the total circuit impedance, filled only with
	// [WithImpedance].
	Impedance []complex128
	// NonFinite counts samples whose voltage or efficiency is NaN or Inf.
	NonFinite int
}

// Len returns the number of samples.
func (r Result) Len() int { return len(r.Frequencies) }

// Solve evaluates the driver response at every frequency.
//
// Preconditions are checked before the sweep starts and reported as errors
// wrapping [ErrInvalidParameter]. Numerical degeneracies do not stop the
// sweep: the affected slots hold NaN or Inf and are counted in
// [Result.NonFinite].
func Solve(p Parameters, freqs []float64, opts ...Option) (Result, error) {
	return SolveContext(context.Background(), p, freqs, opts...)
}

// SolveContext is [Solve] with cancellation and optional parallel workers.
//
// Samples are independent, so the sweep is split into contiguous chunks and
// every worker writes only its own slots. The output is identical to a
// single-worker run.
func SolveContext(ctx context.Context, p Parameters, freqs []float64, opts ...Option) (Result, error) {
	cfg := ApplyOptions(opts...)

	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	if err := validateFrequencies(freqs); err != nil {
		return Result{}, err
	}

	n := len(freqs)
	d := p.Derived()

	res := Result{
		Frequencies:      append([]float64(nil), freqs...),
		VoltageMagnitude: make([]float64, n),
		Efficiency:       make([]float64, n),
	}
	if cfg.KeepImpedance {
		res.Impedance = make([]complex128, n)
	}

	voltage := make([]complex128, n)

	evaluate := func(ctx context.Context, lo, hi int) error {
		for start := lo; start < hi; start += cancelCheckInterval {
			if err := ctx.Err(); err != nil {
				return err
			}
			end := min(start+cancelCheckInterval, hi)
			for i := start; i < end; i++ {
				pt := Evaluate(p, d, freqs[i])
				voltage[i] = pt.V
				res.Efficiency[i] = pt.Efficiency
				if res.Impedance != nil {
					res.Impedance[i] = pt.ZTot
				}
			}
		}
		return nil
	}

	workers := min(cfg.Workers, n)
	if workers <= 1 {
		if err := evaluate(ctx, 0, n); err != nil {
			return Result{}, err
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		chunk := (n + workers - 1) / workers
		for lo := 0; lo < n; lo += chunk {
			hi := min(lo+chunk, n)
			g.Go(func() error {
				return evaluate(gctx, lo, hi)
			})
		}
		if err := g.Wait(); err != nil {
			return Result{}, err
		}
	}

	spectrum.MagnitudeInto(res.VoltageMagnitude, voltage)

	for i := range res.Efficiency {
		if !core.AllFinite(res.VoltageMagnitude[i], res.Efficiency[i]) {
			res.NonFinite++
		}
	}

	if cfg.StrictFinite && res.NonFinite > 0 {
		return res, fmt.Errorf("%w: %d of %d samples", ErrNumericDegeneracy, res.NonFinite, n)
	}

	return res, nil
}

func validateFrequencies(freqs []float64) error {
	if len(freqs) == 0 {
		return ErrEmptySweep
	}

	for i, f := range freqs {
		if !(f > 0) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: index %d (%g Hz)", ErrInvalidFrequency, i, f)
		}
	}

	return nil
}
