package sweep_test

import (
	"fmt"

	"github.com/cwbudde/algo-driver/measure/sweep"
)

func ExampleDefault() {
	g := sweep.Default(800, sweep.DefaultPoints)

	freqs, err := g.Frequencies()
	if err != nil {
		panic(err)
	}

	fmt.Printf("%d points from %.1f Hz to %.1f Hz\n", len(freqs), freqs[0], freqs[len(freqs)-1])

	// Output:
	// 300 points from 200.0 Hz to 1200.0 Hz
}

func ExampleGrid_Frequencies() {
	g := &sweep.Grid{StartFreq: 125, EndFreq: 1000, Points: 4, Spacing: sweep.Logarithmic}

	freqs, err := g.Frequencies()
	if err != nil {
		panic(err)
	}

	for _, f := range freqs {
		fmt.Printf("%.0f ", f)
	}
	fmt.Println()

	// Output:
	// 125 250 500 1000
}
