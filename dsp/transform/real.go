package transform

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-sigproc/dsp/core"
)

// ForwardReal returns the full N-bin DFT of the real sequence x.
//
// Even lengths pack x into a complex sequence of length N/2, transform it
// and separate the even and odd halves; the upper bins follow from
// Hermitian symmetry X[N-k] = conj(X[k]).
func (e *Engine) ForwardReal(x []float64) ([]complex128, error) {
	half, err := e.ForwardRealHalf(x)
	if err != nil {
		return nil, err
	}

	n := len(x)
	out := make([]complex128, n)
	copy(out, half)
	for k := len(half); k < n; k++ {
		out[k] = cmplx.Conj(out[n-k])
	}
	return out, nil
}

// ForwardRealHalf returns bins 0..N/2 of the DFT of the real sequence x.
func (e *Engine) ForwardRealHalf(x []float64) ([]complex128, error) {
	n := len(x)
	if n == 0 {
		return nil, fmt.Errorf("transform: forward of empty input: %w", core.ErrInvalidLength)
	}

	if n%2 != 0 {
		z := complexScratch.Get(n)
		defer complexScratch.Put(z)
		for i, v := range x {
			z[i] = complex(v, 0)
		}
		full := complexScratch.Get(n)
		defer complexScratch.Put(full)
		e.forward(full, z)

		out := make([]complex128, n/2+1)
		copy(out, full)
		return out, nil
	}

	m := n / 2
	z := complexScratch.Get(m)
	zf := complexScratch.Get(m)
	defer func() {
		complexScratch.Put(z)
		complexScratch.Put(zf)
	}()

	for i := range m {
		z[i] = complex(x[2*i], x[2*i+1])
	}
	e.forward(zf, z)

	out := make([]complex128, m+1)
	step := -2 * math.Pi / float64(n)
	for k := 0; k <= m; k++ {
		zk := zf[k%m]
		zc := cmplx.Conj(zf[(m-k)%m])
		even := (zk + zc) * 0.5
		odd := (zk - zc) * complex(0, -0.5)
		s, c := math.Sincos(step * float64(k))
		out[k] = even + complex(c, s)*odd
	}
	return out, nil
}

// InverseReal returns the real part of the inverse DFT of the full N-bin
// spectrum X.
func (e *Engine) InverseReal(X []complex128) ([]float64, error) {
	z, err := e.Inverse(X)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(z))
	for i, v := range z {
		out[i] = real(v)
	}
	return out, nil
}

// InverseRealHalf reconstructs a length-n real sequence from its
// half spectrum (n/2+1 bins), as produced by ForwardRealHalf.
func (e *Engine) InverseRealHalf(half []complex128, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("transform: inverse length %d: %w", n, core.ErrInvalidLength)
	}
	if len(half) != n/2+1 {
		return nil, fmt.Errorf("transform: half spectrum has %d bins, want %d: %w",
			len(half), n/2+1, core.ErrDimensionMismatch)
	}

	full := make([]complex128, n)
	copy(full, half)
	for k := len(half); k < n; k++ {
		full[k] = cmplx.Conj(full[n-k])
	}
	return e.InverseReal(full)
}

// ForwardReal returns the full DFT of x using the default Engine.
func ForwardReal(x []float64) ([]complex128, error) {
	return defaultEngine.ForwardReal(x)
}

// ForwardRealHalf returns bins 0..N/2 of the DFT of x using the default Engine.
func ForwardRealHalf(x []float64) ([]complex128, error) {
	return defaultEngine.ForwardRealHalf(x)
}

// InverseReal returns the real inverse DFT of X using the default Engine.
func InverseReal(X []complex128) ([]float64, error) {
	return defaultEngine.InverseReal(X)
}
