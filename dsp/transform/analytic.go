package transform

import "fmt"

// Analytic returns the analytic signal of x: real part x, imaginary part the
// Hilbert transform of x. Negative-frequency bins are removed and positive
// ones doubled; DC and, for even N, the Nyquist bin are kept as is.
func (e *Engine) Analytic(x []float64) ([]complex128, error) {
	X, err := e.ForwardReal(x)
	if err != nil {
		return nil, fmt.Errorf("transform: analytic: %w", err)
	}

	n := len(X)
	upper := (n + 1) / 2
	for k := 1; k < upper; k++ {
		X[k] *= 2
	}
	for k := n/2 + 1; k < n; k++ {
		X[k] = 0
	}

	return e.Inverse(X)
}

// Hilbert returns the Hilbert transform of x, the imaginary part of its
// analytic signal.
func (e *Engine) Hilbert(x []float64) ([]float64, error) {
	z, err := e.Analytic(x)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(z))
	for i, v := range z {
		out[i] = imag(v)
	}
	return out, nil
}

// Analytic returns the analytic signal of x using the default Engine.
func Analytic(x []float64) ([]complex128, error) {
	return defaultEngine.Analytic(x)
}

// Hilbert returns the Hilbert transform of x using the default Engine.
func Hilbert(x []float64) ([]float64, error) {
	return defaultEngine.Hilbert(x)
}
