// Package sweep builds the frequency grids a driver simulation is evaluated
// on.
//
// A grid is an ordered, strictly increasing sequence of frequencies. The
// default grid spans a quarter of the driver's center frequency up to one
// and a half times it with linear spacing:
//
//	g := sweep.Default(800, sweep.DefaultPoints)
//	freqs, _ := g.Frequencies()
//	// freqs[0] == 200, freqs[299] == 1200
//
// Logarithmic spacing gives each octave the same number of points, which
// suits wide-band plots:
//
//	g := &sweep.Grid{StartFreq: 20, EndFreq: 20000, Points: 200, Spacing: sweep.Logarithmic}
//
// Both endpoints are reproduced exactly.
package sweep
