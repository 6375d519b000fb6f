package transform

import (
	"github.com/cwbudde/algo-sigproc/dsp/buffer"
)

// ForwardBuffer returns the spectrum of a real buffer. The result keeps the
// buffer's sample rate, so BinSpacing on it is sampleRate/N.
func (e *Engine) ForwardBuffer(b *buffer.Buffer) (*buffer.Complex, error) {
	X, err := e.ForwardReal(b.Samples())
	if err != nil {
		return nil, err
	}
	return buffer.ComplexFromSlice(X, b.SampleRate())
}

// ForwardComplexBuffer returns the spectrum of a complex buffer.
func (e *Engine) ForwardComplexBuffer(c *buffer.Complex) (*buffer.Complex, error) {
	X, err := e.Forward(c.Samples())
	if err != nil {
		return nil, err
	}
	return buffer.ComplexFromSlice(X, c.SampleRate())
}

// InverseBuffer returns the complex inverse transform of a spectrum buffer.
func (e *Engine) InverseBuffer(c *buffer.Complex) (*buffer.Complex, error) {
	x, err := e.Inverse(c.Samples())
	if err != nil {
		return nil, err
	}
	return buffer.ComplexFromSlice(x, c.SampleRate())
}

// InverseRealBuffer returns the real part of the inverse transform of a
// spectrum buffer.
func (e *Engine) InverseRealBuffer(c *buffer.Complex) (*buffer.Buffer, error) {
	x, err := e.InverseReal(c.Samples())
	if err != nil {
		return nil, err
	}
	return buffer.FromSlice(x, c.SampleRate())
}

// ForwardBuffer transforms b with the default Engine.
func ForwardBuffer(b *buffer.Buffer) (*buffer.Complex, error) {
	return defaultEngine.ForwardBuffer(b)
}

// InverseBuffer inverts c with the default Engine.
func InverseBuffer(c *buffer.Complex) (*buffer.Complex, error) {
	return defaultEngine.InverseBuffer(c)
}

// InverseRealBuffer inverts c to a real buffer with the default Engine.
func InverseRealBuffer(c *buffer.Complex) (*buffer.Buffer, error) {
	return defaultEngine.InverseRealBuffer(c)
}
