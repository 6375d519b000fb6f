package biquad

// Coefficients describes one section with a0 normalized to 1:
//
//	H(z) = (B0 + B1 z^-1 + B2 z^-2) / (1 + A1 z^-1 + A2 z^-2)
//
// A first-order section leaves B2 and A2 at zero.
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// Order returns the power of the highest non-zero delay term: 2, 1 or 0.
func (c *Coefficients) Order() int {
	switch {
	case c.B2 != 0 || c.A2 != 0:
		return 2
	case c.B1 != 0 || c.A1 != 0:
		return 1
	default:
		return 0
	}
}

// Section runs one set of Coefficients in Direct Form II Transposed. The
// delay line z holds two pending partial sums:
//
//	y    = B0*x + z[0]
//	z[0] = B1*x - A1*y + z[1]
//	z[1] = B2*x - A2*y
type Section struct {
	Coefficients

	z [2]float64
}

// NewSection returns a section with an empty delay line.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one sample.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.z[0]
	s.z[0] = s.B1*x - s.A1*y + s.z[1]
	s.z[1] = s.B2*x - s.A2*y
	return y
}

// ProcessBlock filters buf in place.
func (s *Section) ProcessBlock(buf []float64) {
	s.ProcessBlockTo(buf, buf)
}

// ProcessBlockTo filters src into dst. dst must hold len(src) samples and
// may be src itself.
func (s *Section) ProcessBlockTo(dst, src []float64) {
	dst = dst[:len(src)]
	c := s.Coefficients
	z0, z1 := s.z[0], s.z[1]
	for i, x := range src {
		y := c.B0*x + z0
		z0 = c.B1*x - c.A1*y + z1
		z1 = c.B2*x - c.A2*y
		dst[i] = y
	}
	s.z = [2]float64{z0, z1}
}

// Reset empties the delay line.
func (s *Section) Reset() {
	s.z = [2]float64{}
}

// State returns a copy of the delay line.
func (s *Section) State() [2]float64 {
	return s.z
}

// SetState overwrites the delay line.
func (s *Section) SetState(z [2]float64) {
	s.z = z
}
