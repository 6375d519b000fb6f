package design

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-sigproc/dsp/filter/biquad"
)

// Kind tells which representation a Coefficients value carries.
type Kind int

const (
	// KindIIR carries a biquad cascade in Sections.
	KindIIR Kind = iota
	// KindFIR carries a tap set in Taps.
	KindFIR
)

func (k Kind) String() string {
	if k == KindFIR {
		return "fir"
	}
	return "iir"
}

// Coefficients is the output of Design. Exactly one of Sections and Taps
// is populated, as selected by Kind.
type Coefficients struct {
	Kind       Kind
	Sections   []biquad.Coefficients
	Taps       []float64
	SampleRate float64
}

// Order returns the digital filter order.
func (c Coefficients) Order() int {
	if c.Kind == KindFIR {
		return len(c.Taps) - 1
	}
	n := 0
	for i := range c.Sections {
		n += c.Sections[i].Order()
	}
	return n
}

// Response evaluates the complex frequency response at freqHz.
func (c Coefficients) Response(freqHz float64) complex128 {
	if c.Kind == KindFIR {
		return tapResponse(c.Taps, freqHz, c.SampleRate)
	}
	h := complex(1, 0)
	for i := range c.Sections {
		h *= c.Sections[i].Response(freqHz, c.SampleRate)
	}
	return h
}

// MagnitudeDB returns 20*log10|H(freqHz)|.
func (c Coefficients) MagnitudeDB(freqHz float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz)))
}

// Stable reports whether every IIR section has its poles strictly inside
// the unit circle. FIR coefficients are always stable.
func (c Coefficients) Stable() bool {
	for i := range c.Sections {
		if !c.Sections[i].Stable() {
			return false
		}
	}
	return true
}

func tapResponse(taps []float64, freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	var h complex128
	for n, t := range taps {
		h += complex(t, 0) * cmplx.Exp(complex(0, -w*float64(n)))
	}
	return h
}
