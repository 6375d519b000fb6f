package transform_test

import (
	"fmt"

	"github.com/cwbudde/algo-sigproc/dsp/transform"
)

func ExampleForwardReal() {
	X, err := transform.ForwardReal([]float64{1, 1, 1, 1})
	if err != nil {
		panic(err)
	}

	for _, v := range X {
		fmt.Printf("%.1f ", real(v))
	}
	fmt.Println()

	// Output:
	// 4.0 0.0 0.0 0.0
}

func ExampleNew() {
	e := transform.New(transform.WithArbitraryLength(transform.StrategyBluestein))

	X, err := e.Forward([]complex128{1, 0, 0, 0, 0, 0})
	if err != nil {
		panic(err)
	}
	x, err := e.Inverse(X)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.3f\n", real(x[0]))

	// Output:
	// 1.000
}
