package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-sigproc/dsp/buffer"
	"github.com/cwbudde/algo-sigproc/dsp/core"
)

// dbFloor is the lowest level reported by the dB conversions.
const dbFloor = -300.0

var scratch = buffer.NewPool[float64]()

// split copies re/im parts of in into pooled scratch. The caller returns
// both slices with scratch.Put.
func split(in []complex128) (re, im []float64) {
	re = scratch.Get(len(in))
	im = scratch.Get(len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im
}

// Magnitude returns |X[k]| for each bin. Scratch memory is pooled, so in
// steady state only the output slice is allocated.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	re, im := split(in)
	vecmath.Magnitude(out, re, im)
	scratch.Put(re)
	scratch.Put(im)
	return out
}

// MagnitudeFromParts computes sqrt(re[k]^2 + im[k]^2) into dst. All three
// slices must have the same length.
func MagnitudeFromParts(dst, re, im []float64) {
	vecmath.Magnitude(dst, re, im)
}

// Power returns |X[k]|^2 for each bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	re, im := split(in)
	vecmath.Power(out, re, im)
	scratch.Put(re)
	scratch.Put(im)
	return out
}

// PowerFromParts computes re[k]^2 + im[k]^2 into dst.
func PowerFromParts(dst, re, im []float64) {
	vecmath.Power(dst, re, im)
}

// Phase returns arg(X[k]) in radians.
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// PowerDB returns 10*log10|X[k]|^2, floored at -300 dB.
func PowerDB(in []complex128) []float64 {
	p := Power(in)
	for i, v := range p {
		p[i] = math.Max(core.LinearPowerToDB(v), dbFloor)
	}
	return p
}

// UnwrapPhase returns a new phase slice with +/-2*pi discontinuities removed.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}
	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		out[i] = phase[i] + offset
	}
	return out
}

// GroupDelay computes group delay in samples from unwrapped phase over
// uniformly spaced bins of an fftSize-point transform. Interior bins use a
// centered difference.
func GroupDelay(unwrapped []float64, fftSize int) ([]float64, error) {
	if len(unwrapped) < 2 {
		return nil, fmt.Errorf("spectrum: group delay needs at least 2 phase points, got %d: %w",
			len(unwrapped), core.ErrInvalidLength)
	}
	if fftSize <= 0 {
		return nil, fmt.Errorf("spectrum: group delay fft size %d: %w", fftSize, core.ErrInvalidLength)
	}
	dw := 2 * math.Pi / float64(fftSize)
	out := make([]float64, len(unwrapped))
	for i := range unwrapped {
		var dphi float64
		switch i {
		case 0:
			dphi = unwrapped[1] - unwrapped[0]
		case len(unwrapped) - 1:
			dphi = unwrapped[i] - unwrapped[i-1]
		default:
			dphi = (unwrapped[i+1] - unwrapped[i-1]) / 2
		}
		out[i] = -dphi / dw
	}
	return out, nil
}

// BinFrequencies returns the center frequency in Hz of the first count
// bins of an n-point transform at sampleRate.
func BinFrequencies(count, n int, sampleRate float64) []float64 {
	if count <= 0 || n <= 0 {
		return nil
	}
	out := make([]float64, count)
	if count == 1 {
		return out
	}
	return floats.Span(out, 0, float64(count-1)*sampleRate/float64(n))
}

// PeakBin returns the index and value of the largest element of mag.
func PeakBin(mag []float64) (int, float64, error) {
	if len(mag) == 0 {
		return 0, 0, fmt.Errorf("spectrum: peak of empty slice: %w", core.ErrInvalidLength)
	}
	i := floats.MaxIdx(mag)
	return i, mag[i], nil
}

// InterpolatePeak refines a peak index k with a parabolic fit through the
// neighbouring bins and returns the fractional bin position.
func InterpolatePeak(mag []float64, k int) float64 {
	if k <= 0 || k >= len(mag)-1 {
		return float64(k)
	}
	a, b, c := mag[k-1], mag[k], mag[k+1]
	den := a - 2*b + c
	if den == 0 {
		return float64(k)
	}
	return float64(k) + 0.5*(a-c)/den
}
