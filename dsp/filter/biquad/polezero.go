package biquad

import (
	"math"
	"math/cmplx"
)

// Poles returns the roots of z^2 + A1 z + A2.
func (c *Coefficients) Poles() [2]complex128 {
	return quadraticRoots(1, c.A1, c.A2)
}

// Zeros returns the roots of B0 z^2 + B1 z + B2.
func (c *Coefficients) Zeros() [2]complex128 {
	return quadraticRoots(c.B0, c.B1, c.B2)
}

// MaxPoleRadius returns the larger pole magnitude.
func (c *Coefficients) MaxPoleRadius() float64 {
	p := c.Poles()
	return math.Max(cmplx.Abs(p[0]), cmplx.Abs(p[1]))
}

// Stable reports whether both poles lie strictly inside the unit circle,
// using the stability triangle |A2| < 1, |A1| < 1 + A2.
func (c *Coefficients) Stable() bool {
	return math.Abs(c.A2) < 1 && math.Abs(c.A1) < 1+c.A2
}

// Stable reports whether every section is stable.
func (c *Chain) Stable() bool {
	for i := range c.sections {
		if !c.sections[i].Stable() {
			return false
		}
	}
	return true
}

// MaxPoleRadius returns the largest pole magnitude in the chain.
func (c *Chain) MaxPoleRadius() float64 {
	r := 0.0
	for i := range c.sections {
		r = math.Max(r, c.sections[i].MaxPoleRadius())
	}
	return r
}

// quadraticRoots solves a z^2 + b z + c = 0. A degenerate leading term
// leaves the root at infinity out and reports it as 0.
func quadraticRoots(a, b, c float64) [2]complex128 {
	switch {
	case a != 0:
		d := cmplx.Sqrt(complex(b*b-4*a*c, 0))
		return [2]complex128{
			(complex(-b, 0) + d) / complex(2*a, 0),
			(complex(-b, 0) - d) / complex(2*a, 0),
		}
	case b != 0:
		return [2]complex128{complex(-c/b, 0), 0}
	default:
		return [2]complex128{}
	}
}
