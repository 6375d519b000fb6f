package design

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-sigproc/dsp/core"
	"github.com/cwbudde/algo-sigproc/dsp/window"
)

// Response is the pass/stop shape of a filter.
type Response int

const (
	Lowpass Response = iota
	Highpass
	Bandpass
	Bandstop
)

// Method is the design method.
type Method int

const (
	// Butterworth yields a maximally flat IIR biquad cascade.
	Butterworth Method = iota
	// WindowedSinc yields a linear-phase FIR tap set.
	WindowedSinc
)

const (
	// MaxIIROrder bounds the Butterworth prototype order.
	MaxIIROrder = 32
	// MaxFIROrder bounds the windowed-sinc order (taps - 1).
	MaxFIROrder = 8192
	// MaxStableOrder is the largest Butterworth prototype order verified to
	// stay stable for every cutoff down to 1e-3 of Nyquist. Higher orders
	// may place poles on or outside the unit circle at extreme cutoffs;
	// WithStabilityCheck turns that into an error.
	MaxStableOrder = 16
)

var responseNames = map[Response]string{
	Lowpass:  "lowpass",
	Highpass: "highpass",
	Bandpass: "bandpass",
	Bandstop: "bandstop",
}

var methodNames = map[Method]string{
	Butterworth:  "butterworth",
	WindowedSinc: "windowed-sinc",
}

func (r Response) String() string {
	if s, ok := responseNames[r]; ok {
		return s
	}
	return fmt.Sprintf("Response(%d)", int(r))
}

func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// IsBand reports whether the response needs two band edges.
func (r Response) IsBand() bool {
	return r == Bandpass || r == Bandstop
}

// ParseResponse maps a response name to its Response value.
func ParseResponse(name string) (Response, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "lp", "low":
		return Lowpass, nil
	case "hp", "high":
		return Highpass, nil
	case "bp", "band":
		return Bandpass, nil
	case "bs", "notch":
		return Bandstop, nil
	}
	for r, n := range responseNames {
		if n == key {
			return r, nil
		}
	}
	return 0, fmt.Errorf("design: unknown response %q: %w", name, core.ErrInvalidSpecification)
}

// ParseMethod maps a method name to its Method value.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "butterworth", "iir":
		return Butterworth, nil
	case "windowed-sinc", "sinc", "fir":
		return WindowedSinc, nil
	default:
		return 0, fmt.Errorf("design: unknown method %q: %w", name, core.ErrInvalidSpecification)
	}
}

// Spec is an immutable description of a filter.
type Spec struct {
	Response Response
	// Order is the prototype order. Butterworth band responses double it
	// in the digital domain; windowed-sinc designs have Order+1 taps.
	Order int
	// Cutoff is the cutoff in Hz, or the lower edge for band responses.
	Cutoff float64
	// CutoffHigh is the upper band edge in Hz for band responses.
	CutoffHigh float64
	// SampleRate is the rate in Hz the filter will run at.
	SampleRate float64
	Method     Method
	// Window names the FIR window ("" selects Hamming). Ignored for IIR.
	Window string
}

// Nyquist returns half the sample rate.
func (s Spec) Nyquist() float64 {
	return s.SampleRate / 2
}

// Validate checks the spec against the design domain.
func (s Spec) Validate() error {
	if !(s.SampleRate > 0) || math.IsInf(s.SampleRate, 0) {
		return invalid("sample rate %g must be positive and finite", s.SampleRate)
	}
	if _, ok := responseNames[s.Response]; !ok {
		return invalid("unknown response %d", int(s.Response))
	}
	if s.Order < 1 {
		return invalid("order %d must be >= 1", s.Order)
	}

	switch s.Method {
	case Butterworth:
		if s.Order > MaxIIROrder {
			return invalid("butterworth order %d exceeds %d", s.Order, MaxIIROrder)
		}
	case WindowedSinc:
		if s.Order > MaxFIROrder {
			return invalid("windowed-sinc order %d exceeds %d", s.Order, MaxFIROrder)
		}
		if (s.Response == Highpass || s.Response == Bandstop) && s.Order%2 != 0 {
			return invalid("windowed-sinc %s needs an even order, got %d", s.Response, s.Order)
		}
		if _, err := s.windowType(); err != nil {
			return err
		}
	default:
		return invalid("unknown method %d", int(s.Method))
	}

	if err := s.checkEdge("cutoff", s.Cutoff); err != nil {
		return err
	}
	if s.Response.IsBand() {
		if err := s.checkEdge("upper cutoff", s.CutoffHigh); err != nil {
			return err
		}
		if s.CutoffHigh <= s.Cutoff {
			return invalid("band edges %g..%g Hz are not increasing", s.Cutoff, s.CutoffHigh)
		}
	}
	return nil
}

func (s Spec) checkEdge(name string, f float64) error {
	if !(f > 0 && f < s.Nyquist()) {
		return invalid("%s %g Hz must lie in (0, %g) Hz", name, f, s.Nyquist())
	}
	return nil
}

func (s Spec) windowType() (window.Type, error) {
	if strings.TrimSpace(s.Window) == "" {
		return window.TypeHamming, nil
	}
	t, err := window.ParseType(s.Window)
	if err != nil {
		return 0, fmt.Errorf("design: %w", err)
	}
	return t, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("design: "+format+": %w", append(args, core.ErrInvalidSpecification)...)
}
