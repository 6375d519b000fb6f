package fir

import (
	"math"
	"math/cmplx"

	"github.com/tphakala/simd/f64"
)

// Filter implements a direct-form FIR filter.
type Filter struct {
	taps     []float64 // h[k], as given
	reversed []float64 // h[N-1-k], aligned with the delay window
	delay    []float64 // 2N mirrored history
	pos      int       // write cursor in [0, N)
}

// New creates a FIR filter from the given taps. The taps are copied.
// The filter order is len(taps)-1.
func New(taps []float64) *Filter {
	n := len(taps)
	f := &Filter{
		taps:     append([]float64(nil), taps...),
		reversed: make([]float64, n),
		delay:    make([]float64, 2*n),
	}
	for k, h := range taps {
		f.reversed[n-1-k] = h
	}
	return f
}

// ProcessSample filters one input sample.
//
//	y[n] = sum_{k=0}^{N-1} h[k] * x[n-k]
func (f *Filter) ProcessSample(x float64) float64 {
	n := len(f.taps)
	if n == 0 {
		return 0
	}

	f.delay[f.pos] = x
	f.delay[f.pos+n] = x
	y := f64.DotProduct(f.reversed, f.delay[f.pos+1:f.pos+1+n])

	f.pos++
	if f.pos == n {
		f.pos = 0
	}
	return y
}

// ProcessBlock filters a block of samples in place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. dst must be at least as long as src.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset clears the delay line to zero.
func (f *Filter) Reset() {
	clear(f.delay)
	f.pos = 0
}

// Clone returns an independent copy of the filter, including its history.
func (f *Filter) Clone() *Filter {
	return &Filter{
		taps:     append([]float64(nil), f.taps...),
		reversed: append([]float64(nil), f.reversed...),
		delay:    append([]float64(nil), f.delay...),
		pos:      f.pos,
	}
}

// Order returns the filter order (len(taps) - 1).
func (f *Filter) Order() int {
	return len(f.taps) - 1
}

// Taps returns a copy of the filter taps.
func (f *Filter) Taps() []float64 {
	return append([]float64(nil), f.taps...)
}

// Response computes the complex frequency response H(e^{jw}) at the given
// frequency (Hz) and sample rate (Hz).
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	var h complex128
	for k, c := range f.taps {
		h += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return h
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz, sampleRate)))
}
