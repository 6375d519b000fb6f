package transform

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-sigproc/dsp/core"
)

// forwardBluestein computes an arbitrary-length DFT through a power-of-two
// circular convolution of length M >= 2N-1, using the identity
// nk = (n² + k² - (k-n)²)/2.
func forwardBluestein(dst, src []complex128) {
	n := len(src)
	m := core.NextPowerOfTwo(2*n - 1)

	// chirp[j] = exp(-πi·j²/N); j² is reduced mod 2N to keep the angle small.
	chirp := make([]complex128, n)
	twoN := 2 * n
	for j := range chirp {
		sq := (j * j) % twoN
		s, c := math.Sincos(-math.Pi * float64(sq) / float64(n))
		chirp[j] = complex(c, s)
	}

	a := complexScratch.Get(m)
	b := complexScratch.Get(m)
	fa := complexScratch.Get(m)
	fb := complexScratch.Get(m)
	defer func() {
		complexScratch.Put(a)
		complexScratch.Put(b)
		complexScratch.Put(fa)
		complexScratch.Put(fb)
	}()

	for j, v := range src {
		a[j] = v * chirp[j]
	}
	b[0] = cmplx.Conj(chirp[0])
	for j := 1; j < n; j++ {
		c := cmplx.Conj(chirp[j])
		b[j] = c
		b[m-j] = c
	}

	tw := twiddles(m, m/2)
	radix2(fa, a, m, 1, tw)
	radix2(fb, b, m, 1, tw)
	for i := range fa {
		fa[i] = cmplx.Conj(fa[i] * fb[i])
	}

	// Inverse via conjugation: conv = conj(F(conj(fa·fb)))/M.
	radix2(a, fa, m, 1, tw)
	scale := 1 / float64(m)
	for k := range n {
		conv := cmplx.Conj(a[k]) * complex(scale, 0)
		dst[k] = chirp[k] * conv
	}
}
