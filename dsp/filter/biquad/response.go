package biquad

import (
	"math"
	"math/cmplx"
)

// Response evaluates H(e^jw) at freqHz for the given sample rate.
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	zInv := cmplx.Rect(1, -2*math.Pi*freqHz/sampleRate)
	num := complex(c.B0, 0) + zInv*(complex(c.B1, 0)+zInv*complex(c.B2, 0))
	den := 1 + zInv*(complex(c.A1, 0)+zInv*complex(c.A2, 0))
	return num / den
}

// Response is the product of the section responses.
func (c *Chain) Response(freqHz, sampleRate float64) complex128 {
	h := complex(1, 0)
	for i := range c.sections {
		h *= c.sections[i].Response(freqHz, sampleRate)
	}
	return h
}

// MagnitudeDB returns 20*log10|H| at freqHz.
func (c *Chain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// ImpulseResponse returns the first n samples of the chain's response to a
// unit impulse. The chain's own state is left as it was.
func (c *Chain) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}
	saved := c.State()
	defer c.SetState(saved)

	c.Reset()
	ir := make([]float64, n)
	ir[0] = 1
	c.ProcessBlock(ir)
	return ir
}
