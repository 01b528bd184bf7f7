package transducer

import (
	"errors"
	"fmt"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-driver/dsp/core"
)

// Errors returned by [ImpulseResponse].
var (
	ErrInvalidSampleRate = errors.New("transducer: sample rate must be positive")
	ErrInvalidSize       = errors.New("transducer: impulse size must be a power of two >= 4")
)

// Transfer returns the velocity-per-volt transfer U/V at f Hz.
func Transfer(p Parameters, d Derived, f float64) complex128 {
	pt := Evaluate(p, d, f)
	return pt.U / pt.V
}

// ImpulseResponse returns size samples of the driver's velocity-per-volt
// impulse response at the given sample rate.
//
// A non-finite transfer bin fails with [ErrNumericDegeneracy].
//
// The transfer U/V is evaluated on the FFT bins 1..size/2. The DC bin is
// set to zero because the model is undefined at 0 Hz, and the Nyquist bin
// keeps only its real part so the spectrum is Hermitian and the inverse
// transform is real.
func ImpulseResponse(p Parameters, sampleRate float64, size int) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if !(sampleRate > 0) {
		return nil, ErrInvalidSampleRate
	}

	if size < 4 || bits.OnesCount(uint(size)) != 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	d := p.Derived()
	half := size / 2
	binHz := sampleRate / float64(size)

	freq := make([]complex128, size)
	for k := 1; k <= half; k++ {
		f := float64(k) * binHz
		freq[k] = Transfer(p, d, f)
		if !core.IsFiniteComplex(freq[k]) {
			return nil, fmt.Errorf("%w: transfer at %g Hz", ErrNumericDegeneracy, f)
		}
	}
	freq[half] = complex(real(freq[half]), 0)
	for k := 1; k < half; k++ {
		freq[size-k] = complex(real(freq[k]), -imag(freq[k]))
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("transducer: failed to create FFT plan: %w", err)
	}

	timeDomain := make([]complex128, size)
	if err := plan.Inverse(timeDomain, freq); err != nil {
		return nil, fmt.Errorf("transducer: inverse FFT failed: %w", err)
	}

	out := make([]float64, size)
	for i := range out {
		out[i] = real(timeDomain[i])
	}

	return out, nil
}
