package transducer

// SolveConfig defines how a sweep is evaluated.
type SolveConfig struct {
	// Workers is the number of goroutines sharing the sweep. Values below 2
	// evaluate on the calling goroutine.
	Workers int
	// KeepImpedance stores the total circuit impedance per sample in
	// [Result.Impedance].
	KeepImpedance bool
	// StrictFinite turns non-finite samples into an [ErrNumericDegeneracy]
	// error instead of only counting them.
	StrictFinite bool
}

// Option mutates a SolveConfig.
type Option func(*SolveConfig)

// DefaultSolveConfig returns a single-worker configuration that propagates
// non-finite samples.
func DefaultSolveConfig() SolveConfig {
	return SolveConfig{Workers: 1}
}

// WithWorkers sets the number of goroutines used by [SolveContext].
func WithWorkers(n int) Option {
	return func(cfg *SolveConfig) {
		if n > 0 {
			cfg.Workers = n
		}
	}
}

// WithImpedance keeps the complex total impedance of every sample.
func WithImpedance() Option {
	return func(cfg *SolveConfig) {
		cfg.KeepImpedance = true
	}
}

// WithStrictFinite reports non-finite samples as an error.
func WithStrictFinite() Option {
	return func(cfg *SolveConfig) {
		cfg.StrictFinite = true
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) SolveConfig {
	cfg := DefaultSolveConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
