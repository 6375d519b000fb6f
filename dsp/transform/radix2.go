package transform

import "math"

// twiddles returns exp(-2πi·j/n) for j in [0, count).
func twiddles(n, count int) []complex128 {
	tw := make([]complex128, count)
	step := -2 * math.Pi / float64(n)
	for j := range tw {
		s, c := math.Sincos(step * float64(j))
		tw[j] = complex(c, s)
	}
	return tw
}

// radix2 writes into dst[:n] the DFT of src[0], src[stride], ...,
// src[(n-1)*stride]. tw holds the twiddles of the top-level length, so the
// twiddle for level length n is tw[k*stride].
//
// Even samples land in dst[:n/2], odd samples in dst[n/2:n]; the butterfly
// then combines them in place.
func radix2(dst, src []complex128, n, stride int, tw []complex128) {
	if n == 1 {
		dst[0] = src[0]
		return
	}

	half := n / 2
	radix2(dst[:half], src, half, 2*stride, tw)
	radix2(dst[half:n], src[stride:], half, 2*stride, tw)

	for k := range half {
		t := tw[k*stride] * dst[k+half]
		e := dst[k]
		dst[k] = e + t
		dst[k+half] = e - t
	}
}

// forwardRadix2 computes the DFT of a power-of-two length src into dst.
func forwardRadix2(dst, src []complex128) {
	n := len(src)
	radix2(dst, src, n, 1, twiddles(n, n/2))
}
