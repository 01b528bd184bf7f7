package frequency_test

import (
	"fmt"

	"github.com/cwbudde/algo-driver/stats/frequency"
)

func ExampleCalculate() {
	freq := []float64{200, 400, 600, 800, 1000}
	efficiency := []float64{0.1, 0.2, 0.8, 0.3, 0.1}

	s, err := frequency.Calculate(freq, efficiency, frequency.Power)
	if err != nil {
		panic(err)
	}

	fmt.Printf("peak %.1f at %.0f Hz\n", s.Max, s.MaxFreq)
	fmt.Printf("average %.2f\n", s.Average)

	// Output:
	// peak 0.8 at 600 Hz
	// average 0.30
}
