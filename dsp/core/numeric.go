package core

import "math"

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two not below n, and 1 for
// n <= 1.
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// AmplitudeDB returns 20*log10(a). Zero maps to -Inf, negatives to NaN.
func AmplitudeDB(a float64) float64 {
	return toDB(a, 20)
}

// LinearPowerToDB returns 10*log10(p). Zero maps to -Inf, negatives to NaN.
func LinearPowerToDB(p float64) float64 {
	return toDB(p, 10)
}

func toDB(v, scale float64) float64 {
	switch {
	case v < 0:
		return math.NaN()
	case v == 0:
		return math.Inf(-1)
	default:
		return scale * math.Log10(v)
	}
}
