package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/tphakala/simd/c128"

	"github.com/cwbudde/algo-sigproc/dsp/core"
	"github.com/cwbudde/algo-sigproc/dsp/transform"
)

// FFT performs linear convolution of a and b by multiplying their
// zero-padded spectra. The FFT size is the next power of two at or above
// len(a)+len(b)-1.
func FFT(a, b []float64) ([]float64, error) {
	if err := checkInputs(a, b); err != nil {
		return nil, err
	}
	outLen := len(a) + len(b) - 1
	n := core.NextPowerOfTwo(outLen)

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	fa := padComplex(a, n)
	fb := padComplex(b, n)
	if err := plan.Forward(fa, fa); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	if err := plan.Forward(fb, fb); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	c128.Mul(fa, fa, fb)

	if err := plan.Inverse(fa, fa); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	out := make([]float64, outLen)
	for i := range out {
		out[i] = real(fa[i])
	}
	return out, nil
}

// Circular returns the N-point circular convolution of two sequences of
// equal length N. Any N >= 1 is accepted; the spectra come from the
// default transform engine.
func Circular(a, b []float64) ([]float64, error) {
	if err := checkInputs(a, b); err != nil {
		return nil, err
	}
	if len(a) != len(b) {
		return nil, fmt.Errorf("conv: circular operands have lengths %d and %d: %w",
			len(a), len(b), core.ErrDimensionMismatch)
	}

	fa, err := transform.ForwardReal(a)
	if err != nil {
		return nil, fmt.Errorf("conv: %w", err)
	}
	fb, err := transform.ForwardReal(b)
	if err != nil {
		return nil, fmt.Errorf("conv: %w", err)
	}

	c128.Mul(fa, fa, fb)

	out, err := transform.InverseReal(fa)
	if err != nil {
		return nil, fmt.Errorf("conv: %w", err)
	}
	return out, nil
}

func padComplex(x []float64, n int) []complex128 {
	out := make([]complex128, n)
	for i, v := range x {
		out[i] = complex(v, 0)
	}
	return out
}
