package core_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-driver/dsp/core"
)

func ExampleCountNonFinite() {
	efficiency := []float64{0.21, math.NaN(), 0.07}
	fmt.Println(core.CountNonFinite(efficiency))

	// Output:
	// 1
}

func ExampleLinearPowerToDB() {
	fmt.Printf("%.1f dB\n", core.LinearPowerToDB(0.5))

	// Output:
	// -3.0 dB
}
