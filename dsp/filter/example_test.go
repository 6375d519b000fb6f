package filter_test

import (
	"fmt"

	"github.com/cwbudde/algo-sigproc/dsp/buffer"
	"github.com/cwbudde/algo-sigproc/dsp/filter"
	"github.com/cwbudde/algo-sigproc/dsp/filter/design"
)

func ExampleFilter_Apply() {
	f, err := filter.New(design.Spec{
		Response:   design.Lowpass,
		Order:      2,
		Cutoff:     1000,
		SampleRate: 8000,
	})
	if err != nil {
		panic(err)
	}

	step := []float64{1, 1, 1, 1, 1, 1, 1, 1}
	first, _ := buffer.FromSlice(step[:4], 8000)
	second, _ := buffer.FromSlice(step[4:], 8000)

	a, _ := f.Apply(first)
	b, _ := f.Apply(second)
	fmt.Printf("%.4f\n", a.Samples())
	fmt.Printf("%.4f\n", b.Samples())
	fmt.Println(f.State())
	// Output:
	// [0.0976 0.3849 0.7209 0.9419]
	// [1.0382 1.0554 1.0395 1.0188]
	// applied
}
