package window

import (
	"fmt"

	"github.com/cwbudde/algo-sigproc/dsp/buffer"
	"github.com/cwbudde/algo-sigproc/dsp/core"
)

// Coefficients is an immutable window of fixed length. It is safe for
// concurrent use.
type Coefficients struct {
	typ    Type
	values []float64
}

// New generates a window and wraps it as Coefficients.
func New(t Type, length int, opts ...Option) (*Coefficients, error) {
	values, err := Generate(t, length, opts...)
	if err != nil {
		return nil, err
	}
	return &Coefficients{typ: t, values: values}, nil
}

// Type returns the window type the coefficients were generated from.
func (c *Coefficients) Type() Type { return c.typ }

// Len returns the window length.
func (c *Coefficients) Len() int { return len(c.values) }

// At returns coefficient i.
func (c *Coefficients) At(i int) float64 { return c.values[i] }

// Values returns a copy of the coefficients.
func (c *Coefficients) Values() []float64 {
	return append([]float64(nil), c.values...)
}

// Apply multiplies samples pointwise by the window and returns a new slice.
func (c *Coefficients) Apply(samples []float64) ([]float64, error) {
	if err := c.checkLen(len(samples)); err != nil {
		return nil, err
	}
	out := make([]float64, len(samples))
	mulInto(out, samples, c.values)
	return out, nil
}

// ApplyComplex multiplies complex samples pointwise by the window and
// returns a new slice.
func (c *Coefficients) ApplyComplex(samples []complex128) ([]complex128, error) {
	if err := c.checkLen(len(samples)); err != nil {
		return nil, err
	}
	out := make([]complex128, len(samples))
	for i, v := range samples {
		w := c.values[i]
		out[i] = complex(real(v)*w, imag(v)*w)
	}
	return out, nil
}

// ApplyBuffer windows a real buffer, keeping its sample rate.
func (c *Coefficients) ApplyBuffer(b *buffer.Buffer) (*buffer.Buffer, error) {
	out, err := c.Apply(b.Samples())
	if err != nil {
		return nil, err
	}
	return buffer.FromSlice(out, b.SampleRate())
}

// ApplyComplexBuffer windows a complex buffer, keeping its sample rate.
func (c *Coefficients) ApplyComplexBuffer(b *buffer.Complex) (*buffer.Complex, error) {
	out, err := c.ApplyComplex(b.Samples())
	if err != nil {
		return nil, err
	}
	return buffer.ComplexFromSlice(out, b.SampleRate())
}

func (c *Coefficients) checkLen(n int) error {
	if n != len(c.values) {
		return fmt.Errorf("window: %s length %d applied to %d samples: %w",
			c.typ, len(c.values), n, core.ErrDimensionMismatch)
	}
	return nil
}
