package spectrum_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sigproc/dsp/buffer"
	"github.com/cwbudde/algo-sigproc/dsp/spectrum"
	"github.com/cwbudde/algo-sigproc/dsp/window"
)

func ExampleMagnitude() {
	bins := []complex128{1 + 0i, 0 + 1i, -1 + 0i}
	mag := spectrum.Magnitude(bins)
	fmt.Printf("%.1f %.1f %.1f\n", mag[0], mag[1], mag[2])
	// Output:
	// 1.0 1.0 1.0
}

func ExampleUnwrapPhase() {
	wrapped := []float64{2.8, -2.7, -2.6}
	unwrapped := spectrum.UnwrapPhase(wrapped)
	fmt.Printf("%.3f %.3f %.3f\n", unwrapped[0], unwrapped[1], unwrapped[2])
	// Output:
	// 2.800 3.583 3.683
}

func ExampleAnalyze() {
	const sr = 1000.0
	x := make([]float64, 200)
	for i := range x {
		x[i] = 0.25 * math.Sin(2*math.Pi*50*float64(i)/sr)
	}
	b, _ := buffer.FromSlice(x, sr)

	s, _ := spectrum.Analyze(b, window.TypeHann, window.WithPeriodic())
	f, amp := s.Peak()
	fmt.Printf("peak %.1f Hz, amplitude %.3f\n", f, amp)
	// Output:
	// peak 50.0 Hz, amplitude 0.250
}
