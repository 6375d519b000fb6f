package core_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-sigproc/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(44100),
		core.WithSeed(42),
	)

	fmt.Printf("sampleRate=%.0f seed=%d\n", cfg.SampleRate, cfg.Seed)

	// Output:
	// sampleRate=44100 seed=42
}

func ExampleEnsureLen() {
	buf := make([]float64, 2, 4)
	buf[0], buf[1] = 1, 2
	buf = core.EnsureLen(buf, 4)
	fmt.Println(buf)

	core.Zero(buf[:2])
	fmt.Println(buf)

	// Output:
	// [1 2 0 0]
	// [0 0 0 0]
}

func ExampleNextPowerOfTwo() {
	err := fmt.Errorf("transform: length 0: %w", core.ErrInvalidLength)
	fmt.Println(core.NextPowerOfTwo(100), errors.Is(err, core.ErrInvalidLength))

	// Output:
	// 128 true
}
