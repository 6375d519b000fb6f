package conv_test

import (
	"fmt"

	"github.com/cwbudde/algo-sigproc/dsp/conv"
)

func ExampleDirect() {
	y, err := conv.Direct([]float64{1, 1}, []float64{1, 2, 3})
	if err != nil {
		panic(err)
	}
	fmt.Println(y)
	// Output: [1 3 5 3]
}

func ExampleConvolveMode() {
	ramp := []float64{1, 2, 3, 4, 5}
	diff := []float64{1, 0, -1}

	for _, mode := range []conv.Mode{conv.ModeFull, conv.ModeSame, conv.ModeValid} {
		y, _ := conv.ConvolveMode(ramp, diff, mode)
		fmt.Println(y)
	}
	// Output:
	// [1 2 2 2 2 -4 -5]
	// [2 2 2 2 -4]
	// [2 2 2]
}

func ExampleCircular() {
	y, _ := conv.Circular([]float64{1, 2, 3}, []float64{0, 1, 0})
	fmt.Printf("%.1f\n", y)
	// Output: [3.0 1.0 2.0]
}
