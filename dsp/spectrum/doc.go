// Package spectrum provides helpers for complex-valued frequency responses.
//
// The functions operate on curves sampled over an arbitrary, strictly
// increasing frequency axis (for example an impedance curve produced by a
// driver simulation) rather than on uniformly spaced FFT bins.
package spectrum
