package transform

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-sigproc/dsp/core"
)

// Strategy selects the algorithm for lengths that are not a power of two.
type Strategy int

const (
	// StrategyDirect evaluates the DFT sum directly in O(N²).
	StrategyDirect Strategy = iota
	// StrategyBluestein re-expresses the DFT as a power-of-two convolution.
	StrategyBluestein
)

func (s Strategy) String() string {
	switch s {
	case StrategyDirect:
		return "direct"
	case StrategyBluestein:
		return "bluestein"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Backend selects the forward kernel implementation.
type Backend int

const (
	// BackendNative uses the kernels in this package.
	BackendNative Backend = iota
	// BackendAlgoFFT uses github.com/MeKo-Christian/algo-fft plans.
	BackendAlgoFFT
	// BackendGonum uses gonum.org/v1/gonum/dsp/fourier.
	BackendGonum
	// BackendGoDSP uses github.com/mjibson/go-dsp/fft.
	BackendGoDSP
)

var backendNames = map[Backend]string{
	BackendNative:  "native",
	BackendAlgoFFT: "algofft",
	BackendGonum:   "gonum",
	BackendGoDSP:   "godsp",
}

func (b Backend) String() string {
	if name, ok := backendNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Backend(%d)", int(b))
}

// ParseBackend maps a backend name to its Backend value.
func ParseBackend(name string) (Backend, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return BackendNative, nil
	}
	for b, n := range backendNames {
		if n == key {
			return b, nil
		}
	}
	return 0, fmt.Errorf("transform: unknown backend %q: %w", name, core.ErrInvalidSpecification)
}

// ParseStrategy maps a strategy name to its Strategy value.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "direct":
		return StrategyDirect, nil
	case "bluestein":
		return StrategyBluestein, nil
	default:
		return 0, fmt.Errorf("transform: unknown strategy %q: %w", name, core.ErrInvalidSpecification)
	}
}

type config struct {
	strategy Strategy
	backend  Backend
}

// Option configures an Engine.
type Option func(*config)

// WithArbitraryLength selects the algorithm used for non-power-of-two lengths.
func WithArbitraryLength(s Strategy) Option {
	return func(cfg *config) {
		cfg.strategy = s
	}
}

// WithBackend selects the forward kernel. Backends that cannot plan a given
// length fall back to the native kernels.
func WithBackend(b Backend) Option {
	return func(cfg *config) {
		cfg.backend = b
	}
}
