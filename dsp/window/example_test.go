package window_test

import (
	"fmt"

	"github.com/cwbudde/algo-sigproc/dsp/window"
)

func ExampleGenerate() {
	w, err := window.Generate(window.TypeHann, 4)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.2f %.2f %.2f %.2f\n", w[0], w[1], w[2], w[3])
	// Output:
	// 0.00 0.75 0.75 0.00
}

func ExampleCoefficients_Apply() {
	c, err := window.New(window.TypeHann, 4)
	if err != nil {
		panic(err)
	}
	out, err := c.Apply([]float64{1, 1, 1, 1})
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.2f %.2f %.2f %.2f\n", out[0], out[1], out[2], out[3])
	// Output:
	// 0.00 0.75 0.75 0.00
}

func ExampleInfo() {
	m := window.Info(window.TypeHann)
	fmt.Printf("%s %.1f\n", m.Name, m.ENBW)
	// Output:
	// Hann 1.5
}
