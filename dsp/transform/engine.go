package transform

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-sigproc/dsp/buffer"
	"github.com/cwbudde/algo-sigproc/dsp/core"
)

var complexScratch = buffer.NewPool[complex128]()

// Engine computes forward and inverse transforms with a fixed configuration.
type Engine struct {
	cfg config
}

// New returns an Engine configured by opts.
func New(opts ...Option) *Engine {
	cfg := config{strategy: StrategyDirect, backend: BackendNative}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Engine{cfg: cfg}
}

var defaultEngine = New()

// Default returns the package-level native Engine.
func Default() *Engine { return defaultEngine }

// Strategy returns the configured arbitrary-length strategy.
func (e *Engine) Strategy() Strategy { return e.cfg.strategy }

// Backend returns the configured backend.
func (e *Engine) Backend() Backend { return e.cfg.backend }

// Forward returns the DFT of x. x is not modified.
func (e *Engine) Forward(x []complex128) ([]complex128, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("transform: forward of empty input: %w", core.ErrInvalidLength)
	}
	out := make([]complex128, len(x))
	e.forward(out, x)
	return out, nil
}

// Inverse returns the inverse DFT of X, scaled by 1/N. X is not modified.
func (e *Engine) Inverse(X []complex128) ([]complex128, error) {
	n := len(X)
	if n == 0 {
		return nil, fmt.Errorf("transform: inverse of empty input: %w", core.ErrInvalidLength)
	}

	conj := complexScratch.Get(n)
	defer complexScratch.Put(conj)
	for i, v := range X {
		conj[i] = cmplx.Conj(v)
	}

	out := make([]complex128, n)
	e.forward(out, conj)

	scale := 1 / float64(n)
	for i, v := range out {
		out[i] = complex(real(v)*scale, -imag(v)*scale)
	}
	return out, nil
}

// forward dispatches to the configured backend, falling back to the native
// kernels when the backend declines the length.
func (e *Engine) forward(dst, src []complex128) {
	if len(src) == 1 {
		dst[0] = src[0]
		return
	}
	if k := kernelFor(e.cfg.backend); k != nil {
		err := k(dst, src)
		if err == nil {
			return
		}
		logFallback(e.cfg.backend, len(src), err)
	}
	e.forwardNative(dst, src)
}

func (e *Engine) forwardNative(dst, src []complex128) {
	switch {
	case core.IsPowerOfTwo(len(src)):
		forwardRadix2(dst, src)
	case e.cfg.strategy == StrategyBluestein:
		forwardBluestein(dst, src)
	default:
		forwardDirect(dst, src)
	}
}

// Forward returns the DFT of x using the default Engine.
func Forward(x []complex128) ([]complex128, error) {
	return defaultEngine.Forward(x)
}

// Inverse returns the inverse DFT of X using the default Engine.
func Inverse(X []complex128) ([]complex128, error) {
	return defaultEngine.Inverse(X)
}
