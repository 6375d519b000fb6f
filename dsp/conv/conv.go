package conv

import (
	"fmt"

	"github.com/tphakala/simd/f64"

	"github.com/cwbudde/algo-sigproc/dsp/core"
)

// Mode specifies the output region of a convolution.
type Mode int

const (
	// ModeFull returns the full convolution result with length len(a)+len(b)-1.
	ModeFull Mode = iota

	// ModeSame returns output with the same length as the first input.
	ModeSame

	// ModeValid returns only the portion where signals fully overlap,
	// with length max(len(a), len(b)) - min(len(a), len(b)) + 1.
	ModeValid
)

// directThreshold is the kernel length above which Convolve uses FFT.
const directThreshold = 64

// Direct performs time-domain linear convolution of a and b and returns a
// new slice of length len(a)+len(b)-1.
func Direct(a, b []float64) ([]float64, error) {
	if err := checkInputs(a, b); err != nil {
		return nil, err
	}
	dst := make([]float64, len(a)+len(b)-1)
	directTo(dst, a, b)
	return dst, nil
}

// DirectTo writes the linear convolution of a and b into dst, which must
// have length len(a)+len(b)-1. dst is left untouched on error.
func DirectTo(dst, a, b []float64) error {
	if err := checkInputs(a, b); err != nil {
		return err
	}
	if want := len(a) + len(b) - 1; len(dst) != want {
		return fmt.Errorf("conv: dst length %d, want %d: %w", len(dst), want, core.ErrDimensionMismatch)
	}
	directTo(dst, a, b)
	return nil
}

// directTo computes each output as a dot product of the reversed kernel
// with a window of the zero-padded input.
func directTo(dst, a, b []float64) {
	m := len(b)
	padded := make([]float64, len(a)+2*(m-1))
	copy(padded[m-1:], a)

	rev := make([]float64, m)
	for k, v := range b {
		rev[m-1-k] = v
	}
	for n := range dst {
		dst[n] = f64.DotProduct(rev, padded[n:n+m])
	}
}

// Convolve performs linear convolution, choosing Direct for short kernels
// and FFT otherwise.
func Convolve(a, b []float64) ([]float64, error) {
	if err := checkInputs(a, b); err != nil {
		return nil, err
	}
	if min(len(a), len(b)) <= directThreshold {
		return Direct(a, b)
	}
	return FFT(a, b)
}

// ConvolveMode performs convolution and trims the result to mode.
func ConvolveMode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := Convolve(a, b)
	if err != nil {
		return nil, err
	}
	return trimToMode(full, len(a), len(b), mode), nil
}

// trimToMode extracts the requested region of a full convolution result.
func trimToMode(full []float64, lenA, lenB int, mode Mode) []float64 {
	switch mode {
	case ModeSame:
		start := (lenB - 1) / 2
		return full[start : start+lenA]
	case ModeValid:
		if lenA >= lenB {
			return full[lenB-1 : lenA]
		}
		return full[lenA-1 : lenB]
	default:
		return full
	}
}

func checkInputs(a, b []float64) error {
	if len(a) == 0 || len(b) == 0 {
		return fmt.Errorf("conv: empty operand (len %d, %d): %w", len(a), len(b), core.ErrInvalidLength)
	}
	return nil
}
