// Package transducer computes the frequency response of a voice-coil driver
// that loads a damped acoustic transmission line through a small air
// volume, as in a compression driver feeding a tube.
//
// For every frequency f of a sweep the solver forms the mechanical
// impedance ZM (moving mass, suspension, air volume and the line input
// impedance), reflects it to the electrical side as BL²/ZM, adds the coil
// and generator impedances, and derives
//
//   - the terminal voltage V = I·Ztot for a constant drive current I, and
//   - the efficiency, the ratio of delivered acoustic power to electrical
//     input power.
//
// # Usage
//
//	p := transducer.DefaultParameters()
//	freqs, _ := sweep.Default(p.CenterFreq, sweep.DefaultPoints).Frequencies()
//	res, err := transducer.Solve(p, freqs)
//	// res.VoltageMagnitude[i] and res.Efficiency[i] belong to freqs[i]
//
// Samples are independent, so large sweeps can be spread over goroutines:
//
//	res, err := transducer.SolveContext(ctx, p, freqs, transducer.WithWorkers(8))
//
// # Degenerate samples
//
// Invalid constants (zero Q, zero speed of sound, non-positive frequency)
// are rejected before any sample is computed. A sample whose mechanical
// impedance or input power is exactly zero is not an error: IEEE NaN/Inf
// flows into its slot and [Result.NonFinite] counts it. Use
// [WithStrictFinite] to get an error instead.
package transducer
