package filter

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-sigproc/dsp/buffer"
	"github.com/cwbudde/algo-sigproc/dsp/core"
	"github.com/cwbudde/algo-sigproc/dsp/filter/biquad"
	"github.com/cwbudde/algo-sigproc/dsp/filter/design"
	"github.com/cwbudde/algo-sigproc/dsp/filter/fir"
)

// State is the lifecycle state of a Filter.
type State int

const (
	// Designed means coefficients exist and no sample has been processed
	// since construction or the last Reset.
	Designed State = iota
	// Applied means the delay line holds history from a streaming call.
	Applied
)

func (s State) String() string {
	if s == Applied {
		return "applied"
	}
	return "designed"
}

// kernel is the streaming core shared by biquad.Chain and fir.Filter.
type kernel interface {
	ProcessBlockTo(dst, src []float64)
	Reset()
}

// Filter is a designed filter with its own delay-line state.
type Filter struct {
	spec   design.Spec
	coeffs design.Coefficients
	chain  *biquad.Chain
	fir    *fir.Filter
	state  State
}

// New designs spec and returns a Filter in the Designed state. Design
// options such as design.WithStabilityCheck are forwarded.
func New(spec design.Spec, opts ...design.Option) (*Filter, error) {
	coeffs, err := design.Design(spec, opts...)
	if err != nil {
		return nil, err
	}
	return FromCoefficients(spec, coeffs), nil
}

// FromCoefficients wraps already designed coefficients. spec supplies the
// sample rate the filter accepts.
func FromCoefficients(spec design.Spec, coeffs design.Coefficients) *Filter {
	f := &Filter{spec: spec, coeffs: coeffs}
	if coeffs.Kind == design.KindFIR {
		f.fir = fir.New(coeffs.Taps)
	} else {
		f.chain = biquad.NewChain(coeffs.Sections)
	}
	return f
}

func (f *Filter) kernel() kernel {
	if f.fir != nil {
		return f.fir
	}
	return f.chain
}

// Spec returns the specification the filter was designed from.
func (f *Filter) Spec() design.Spec { return f.spec }

// Coefficients returns the designed coefficients.
func (f *Filter) Coefficients() design.Coefficients { return f.coeffs }

// State reports whether the delay line holds history.
func (f *Filter) State() State { return f.state }

// Apply filters in into a new buffer and keeps the delay-line state for the
// next call.
func (f *Filter) Apply(in *buffer.Buffer) (*buffer.Buffer, error) {
	if err := f.check(in); err != nil {
		return nil, err
	}
	out := make([]float64, in.Len())
	f.kernel().ProcessBlockTo(out, in.Samples())
	f.state = Applied
	return buffer.FromSlice(out, in.SampleRate())
}

// ApplyBatch filters in from zero history and leaves the filter reset.
func (f *Filter) ApplyBatch(in *buffer.Buffer) (*buffer.Buffer, error) {
	if err := f.check(in); err != nil {
		return nil, err
	}
	f.Reset()
	defer f.Reset()
	return f.Apply(in)
}

// Process filters samples in place with state carried across calls.
func (f *Filter) Process(samples []float64) {
	f.kernel().ProcessBlockTo(samples, samples)
	if len(samples) > 0 {
		f.state = Applied
	}
}

// Reset clears the delay line without redesigning.
func (f *Filter) Reset() {
	f.kernel().Reset()
	f.state = Designed
}

// Clone returns a filter with the same coefficients and a copy of the
// current state.
func (f *Filter) Clone() *Filter {
	c := *f
	if f.fir != nil {
		c.fir = f.fir.Clone()
	} else {
		c.chain = f.chain.Clone()
	}
	return &c
}

// Response evaluates the complex frequency response at freqHz.
func (f *Filter) Response(freqHz float64) complex128 {
	return f.coeffs.Response(freqHz)
}

// MagnitudeDB returns the response magnitude in dB at freqHz.
func (f *Filter) MagnitudeDB(freqHz float64) float64 {
	return core.AmplitudeDB(cmplx.Abs(f.Response(freqHz)))
}

// ImpulseResponse returns the first n samples of the impulse response.
// The filter state is left untouched.
func (f *Filter) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}
	if f.chain != nil {
		return f.chain.ImpulseResponse(n)
	}
	ir := make([]float64, n)
	copy(ir, f.coeffs.Taps)
	return ir
}

func (f *Filter) check(in *buffer.Buffer) error {
	if in == nil {
		return fmt.Errorf("filter: nil buffer: %w", core.ErrInvalidLength)
	}
	if in.SampleRate() != f.spec.SampleRate {
		return fmt.Errorf("filter: buffer rate %g Hz does not match filter rate %g Hz: %w",
			in.SampleRate(), f.spec.SampleRate, core.ErrInvalidSpecification)
	}
	return nil
}
