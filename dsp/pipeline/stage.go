package pipeline

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-sigproc/dsp/buffer"
	"github.com/cwbudde/algo-sigproc/dsp/core"
	"github.com/cwbudde/algo-sigproc/dsp/filter"
	"github.com/cwbudde/algo-sigproc/dsp/transform"
	"github.com/cwbudde/algo-sigproc/dsp/window"
)

// ErrUnsupportedSignal is returned when a stage receives a signal from a
// domain it cannot process, such as real samples given to an inverse transform.
var ErrUnsupportedSignal = errors.New("pipeline: unsupported signal")

// Stage is one processing step.
type Stage interface {
	Name() string
	Process(in buffer.Signal) (buffer.Signal, error)
}

// Cloner is implemented by stages that own mutable state.
type Cloner interface {
	Clone() Stage
}

// signal converts a typed result to a Signal without leaking a typed nil.
func signal[T buffer.Signal](v T, err error) (buffer.Signal, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

func unsupported(stage string, in buffer.Signal) error {
	return fmt.Errorf("%w: %s stage cannot process %T", ErrUnsupportedSignal, stage, in)
}

type funcStage struct {
	name string
	fn   func(buffer.Signal) (buffer.Signal, error)
}

// Func adapts a function to a Stage. The function must be reentrant if the
// pipeline is shared.
func Func(name string, fn func(buffer.Signal) (buffer.Signal, error)) Stage {
	return funcStage{name: name, fn: fn}
}

func (s funcStage) Name() string { return s.name }

func (s funcStage) Process(in buffer.Signal) (buffer.Signal, error) { return s.fn(in) }

// WindowStage multiplies a real or complex buffer by a fixed window.
type WindowStage struct {
	coeffs *window.Coefficients
}

// Window returns a stage applying fixed coefficients. Buffers of another
// length fail with core.ErrDimensionMismatch.
func Window(c *window.Coefficients) *WindowStage {
	return &WindowStage{coeffs: c}
}

func (s *WindowStage) Name() string { return "window" }

func (s *WindowStage) Process(in buffer.Signal) (buffer.Signal, error) {
	switch b := in.(type) {
	case *buffer.Buffer:
		return signal(s.coeffs.ApplyBuffer(b))
	case *buffer.Complex:
		return signal(s.coeffs.ApplyComplexBuffer(b))
	default:
		return nil, unsupported(s.Name(), in)
	}
}

// WindowTypeStage generates a window matching each input length.
type WindowTypeStage struct {
	typ  window.Type
	opts []window.Option
}

// WindowType returns a stage that sizes a window of type t to each input.
func WindowType(t window.Type, opts ...window.Option) *WindowTypeStage {
	return &WindowTypeStage{typ: t, opts: opts}
}

func (s *WindowTypeStage) Name() string { return "window" }

func (s *WindowTypeStage) Process(in buffer.Signal) (buffer.Signal, error) {
	if in == nil {
		return nil, unsupported(s.Name(), in)
	}
	c, err := window.New(s.typ, in.Len(), s.opts...)
	if err != nil {
		return nil, err
	}
	return Window(c).Process(in)
}

// ForwardStage computes the forward transform of a real or complex buffer.
type ForwardStage struct {
	engine *transform.Engine
}

// Forward returns a forward-transform stage using e, or the default engine
// when e is nil.
func Forward(e *transform.Engine) *ForwardStage {
	if e == nil {
		e = transform.Default()
	}
	return &ForwardStage{engine: e}
}

func (s *ForwardStage) Name() string { return "forward" }

func (s *ForwardStage) Process(in buffer.Signal) (buffer.Signal, error) {
	switch b := in.(type) {
	case *buffer.Buffer:
		return signal(s.engine.ForwardBuffer(b))
	case *buffer.Complex:
		return signal(s.engine.ForwardComplexBuffer(b))
	default:
		return nil, unsupported(s.Name(), in)
	}
}

// InverseStage computes the inverse transform of complex bins.
type InverseStage struct {
	engine *transform.Engine
	real   bool
}

// Inverse returns an inverse-transform stage. With realOutput the result
// keeps only the real part as a *buffer.Buffer.
func Inverse(e *transform.Engine, realOutput bool) *InverseStage {
	if e == nil {
		e = transform.Default()
	}
	return &InverseStage{engine: e, real: realOutput}
}

func (s *InverseStage) Name() string { return "inverse" }

func (s *InverseStage) Process(in buffer.Signal) (buffer.Signal, error) {
	c, ok := in.(*buffer.Complex)
	if !ok {
		return nil, unsupported(s.Name(), in)
	}
	if s.real {
		return signal(s.engine.InverseRealBuffer(c))
	}
	return signal(s.engine.InverseBuffer(c))
}

// FilterStage runs a buffer through a filter. A complex buffer is filtered
// as a complex signal: its real and imaginary parts run through separate
// delay lines sharing the filter's coefficients.
type FilterStage struct {
	f     *filter.Filter
	imag  *filter.Filter
	batch bool
}

// Filter returns a streaming filter stage: delay-line state carries over
// from one Process call to the next.
func Filter(f *filter.Filter) *FilterStage {
	return newFilterStage(f, false)
}

// FilterBatch returns a filter stage that starts every call from zero
// history.
func FilterBatch(f *filter.Filter) *FilterStage {
	return newFilterStage(f, true)
}

func newFilterStage(f *filter.Filter, batch bool) *FilterStage {
	im := f.Clone()
	im.Reset()
	return &FilterStage{f: f, imag: im, batch: batch}
}

func (s *FilterStage) Name() string { return "filter" }

func (s *FilterStage) Process(in buffer.Signal) (buffer.Signal, error) {
	switch b := in.(type) {
	case *buffer.Buffer:
		return signal(s.apply(s.f, b))
	case *buffer.Complex:
		return signal(s.applyComplex(b))
	default:
		return nil, unsupported(s.Name(), in)
	}
}

func (s *FilterStage) apply(f *filter.Filter, b *buffer.Buffer) (*buffer.Buffer, error) {
	if s.batch {
		return f.ApplyBatch(b)
	}
	return f.Apply(b)
}

func (s *FilterStage) applyComplex(c *buffer.Complex) (*buffer.Complex, error) {
	if c == nil {
		return nil, fmt.Errorf("pipeline: nil complex buffer: %w", core.ErrInvalidLength)
	}
	samples := c.Samples()
	im := make([]float64, len(samples))
	for i, v := range samples {
		im[i] = imag(v)
	}
	imBuf, err := buffer.FromSlice(im, c.SampleRate())
	if err != nil {
		return nil, err
	}
	// Both parts pass the same rate check, so the real part only runs once
	// the imaginary part has been accepted.
	imOut, err := s.apply(s.imag, imBuf)
	if err != nil {
		return nil, err
	}
	reOut, err := s.apply(s.f, c.Real())
	if err != nil {
		return nil, err
	}

	out := make([]complex128, len(samples))
	for i := range out {
		out[i] = complex(reOut.At(i), imOut.At(i))
	}
	return buffer.ComplexFromSlice(out, c.SampleRate())
}

// Reset clears the delay lines of both parts.
func (s *FilterStage) Reset() {
	s.f.Reset()
	s.imag.Reset()
}

// Clone returns a stage with independent copies of the filter.
func (s *FilterStage) Clone() Stage {
	return &FilterStage{f: s.f.Clone(), imag: s.imag.Clone(), batch: s.batch}
}

// Filter returns the stage's filter.
func (s *FilterStage) Filter() *filter.Filter { return s.f }
