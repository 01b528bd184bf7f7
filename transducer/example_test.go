package transducer_test

import (
	"fmt"

	"github.com/cwbudde/algo-driver/measure/sweep"
	"github.com/cwbudde/algo-driver/transducer"
)

func ExampleSolve() {
	p := transducer.DefaultParameters()

	freqs, err := sweep.Default(p.CenterFreq, sweep.DefaultPoints).Frequencies()
	if err != nil {
		panic(err)
	}

	res, err := transducer.Solve(p, freqs)
	if err != nil {
		panic(err)
	}

	fmt.Printf("samples: %d\n", res.Len())
	fmt.Printf("%.0f Hz: |V| = %.4f V, efficiency = %.4f\n",
		res.Frequencies[0], res.VoltageMagnitude[0], res.Efficiency[0])
	fmt.Printf("%.0f Hz: |V| = %.4f V, efficiency = %.4f\n",
		res.Frequencies[res.Len()-1], res.VoltageMagnitude[res.Len()-1], res.Efficiency[res.Len()-1])

	// Output:
	// samples: 300
	// 200 Hz: |V| = 8.7924 V, efficiency = 0.2057
	// 1200 Hz: |V| = 8.2795 V, efficiency = 0.0708
}

func ExampleEvaluate() {
	p := transducer.DefaultParameters()
	pt := transducer.Evaluate(p, p.Derived(), p.CenterFreq)

	fmt.Printf("ZM = %.4f%+.4fi N·s/m\n", real(pt.ZM), imag(pt.ZM))

	// Output:
	// ZM = 1.1503+16.8581i N·s/m
}
