// Package transform implements the discrete Fourier transform engine.
//
// Power-of-two lengths use a recursive radix-2 decimation-in-time kernel
// that walks the input by stride, writing into the caller's output array
// without per-level copies. Other lengths fall back to a direct O(N²)
// summation, or to Bluestein's chirp-z algorithm when requested with
// WithArbitraryLength(StrategyBluestein).
//
// The forward transform is unnormalized:
//
//	X[k] = Σ x[n]·exp(-2πi·nk/N)
//
// and the inverse carries the 1/N factor, so Inverse(Forward(x)) == x to
// within floating-point rounding.
//
// An Engine holds only immutable configuration and may be shared between
// goroutines. The package-level functions use a default native Engine.
package transform
