// Package ir analyzes driver impulse responses.
//
// Metrics are derived from the squared response and its Schroeder backward
// integral:
//
//   - PeakIndex, PeakTime: location of the absolute maximum
//   - Energy: sum of squares
//   - CenterTime: temporal energy centroid
//   - DecayTime: time for a 60 dB energy decay, extrapolated from the
//     -5 to -25 dB slope of the Schroeder curve
//   - EarlyRatio: energy fraction inside the first EarlyWindow seconds
//
// # Usage
//
//	h, _ := transducer.ImpulseResponse(p, 48000, 4096)
//	m, err := ir.NewAnalyzer(48000).Analyze(h)
package ir
