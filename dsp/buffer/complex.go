package buffer

// Complex is a fixed-length sequence of complex samples, typically the
// output of a forward transform. The sample rate is that of the time-domain
// signal the spectrum was taken from.
type Complex struct {
	samples    []complex128
	sampleRate float64
}

// NewComplex returns a zero-filled Complex buffer.
func NewComplex(length int, sampleRate float64) (*Complex, error) {
	if err := validate(length, sampleRate); err != nil {
		return nil, err
	}
	return &Complex{samples: make([]complex128, length), sampleRate: sampleRate}, nil
}

// ComplexFromSlice wraps s without copying.
func ComplexFromSlice(s []complex128, sampleRate float64) (*Complex, error) {
	if err := validate(len(s), sampleRate); err != nil {
		return nil, err
	}
	return &Complex{samples: s, sampleRate: sampleRate}, nil
}

// FromReal returns a Complex copy of b with zero imaginary parts.
func FromReal(b *Buffer) *Complex {
	s := make([]complex128, b.Len())
	for i, v := range b.samples {
		s[i] = complex(v, 0)
	}
	return &Complex{samples: s, sampleRate: b.sampleRate}
}

// Samples returns the underlying slice.
func (c *Complex) Samples() []complex128 {
	return c.samples
}

// At returns sample i.
func (c *Complex) At(i int) complex128 {
	return c.samples[i]
}

// Len returns the number of samples.
func (c *Complex) Len() int {
	return len(c.samples)
}

// SampleRate returns the sample rate in Hz.
func (c *Complex) SampleRate() float64 {
	return c.sampleRate
}

// BinSpacing returns the frequency distance between adjacent bins, sampleRate/N.
func (c *Complex) BinSpacing() float64 {
	return c.sampleRate / float64(len(c.samples))
}

// BinFrequency returns the center frequency of bin k in Hz.
func (c *Complex) BinFrequency(k int) float64 {
	return float64(k) * c.BinSpacing()
}

// Real returns the real parts as a new Buffer.
func (c *Complex) Real() *Buffer {
	s := make([]float64, len(c.samples))
	for i, v := range c.samples {
		s[i] = real(v)
	}
	return &Buffer{samples: s, sampleRate: c.sampleRate}
}

// Copy returns a deep copy.
func (c *Complex) Copy() *Complex {
	s := make([]complex128, len(c.samples))
	copy(s, c.samples)
	return &Complex{samples: s, sampleRate: c.sampleRate}
}
