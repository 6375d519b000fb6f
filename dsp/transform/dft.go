package transform

// forwardDirect evaluates the DFT sum for any length. The exponent n·k is
// reduced modulo N incrementally so the root table is indexed exactly.
func forwardDirect(dst, src []complex128) {
	n := len(src)
	roots := twiddles(n, n)

	for k := range n {
		var sum complex128
		idx := 0
		for _, v := range src {
			sum += v * roots[idx]
			idx += k
			if idx >= n {
				idx -= n
			}
		}
		dst[k] = sum
	}
}
