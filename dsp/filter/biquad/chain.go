package biquad

// Chain runs sections in series. Each section owns its delay line, so a
// chain carries state from one call to the next.
type Chain struct {
	sections []Section
}

// NewChain returns a chain with one section per coefficient set, in order.
func NewChain(coeffs []Coefficients) *Chain {
	c := &Chain{sections: make([]Section, len(coeffs))}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}
	return c
}

// Len returns the number of sections.
func (c *Chain) Len() int { return len(c.sections) }

// Order returns the sum of the section orders.
func (c *Chain) Order() int {
	n := 0
	for i := range c.sections {
		n += c.sections[i].Order()
	}
	return n
}

// Coefficients returns a copy of every section's coefficients.
func (c *Chain) Coefficients() []Coefficients {
	out := make([]Coefficients, len(c.sections))
	for i := range c.sections {
		out[i] = c.sections[i].Coefficients
	}
	return out
}

// ProcessSample filters one sample through every section.
func (c *Chain) ProcessSample(x float64) float64 {
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}
	return x
}

// ProcessBlock filters buf in place.
func (c *Chain) ProcessBlock(buf []float64) {
	c.ProcessBlockTo(buf, buf)
}

// ProcessBlockTo filters src into dst, which may be src itself. Each
// section runs over the whole block before the next one, which gives the
// same output as running the cascade sample by sample.
func (c *Chain) ProcessBlockTo(dst, src []float64) {
	if len(c.sections) == 0 {
		copy(dst, src)
		return
	}
	c.sections[0].ProcessBlockTo(dst, src)
	out := dst[:len(src)]
	for i := 1; i < len(c.sections); i++ {
		c.sections[i].ProcessBlock(out)
	}
}

// Reset empties every delay line.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// Clone returns a chain with the same coefficients and a copy of the
// current state.
func (c *Chain) Clone() *Chain {
	return &Chain{sections: append([]Section(nil), c.sections...)}
}

// State returns a copy of every section's delay line.
func (c *Chain) State() [][2]float64 {
	out := make([][2]float64, len(c.sections))
	for i := range c.sections {
		out[i] = c.sections[i].State()
	}
	return out
}

// SetState restores delay lines saved with State. It panics if the number
// of entries differs from Len.
func (c *Chain) SetState(z [][2]float64) {
	if len(z) != len(c.sections) {
		panic("biquad: SetState length does not match chain")
	}
	for i := range c.sections {
		c.sections[i].SetState(z[i])
	}
}
