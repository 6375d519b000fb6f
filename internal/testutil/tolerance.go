package testutil

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireSliceNearlyEqual fails t unless got and want have equal length and
// every element pair is within eps (absolute).
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	require.Len(t, got, len(want), "length mismatch")
	worst, at := 0.0, -1
	for i := range got {
		if d := math.Abs(got[i] - want[i]); d > worst || math.IsNaN(d) {
			worst, at = d, i
		}
	}
	if at >= 0 && !(worst <= eps) {
		t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", at, got[at], want[at], worst, eps)
	}
}

// RequireComplexNearlyEqual fails t unless every |got[i]-want[i]| is within
// tol scaled by the largest magnitude in want, floored at 1.
func RequireComplexNearlyEqual(t testing.TB, got, want []complex128, tol float64) {
	t.Helper()
	require.Len(t, got, len(want), "length mismatch")

	scale := 1.0
	for _, v := range want {
		scale = math.Max(scale, cmplx.Abs(v))
	}
	for i := range got {
		if d := cmplx.Abs(got[i] - want[i]); !(d <= tol*scale) {
			t.Fatalf("index %d: got %v, want %v (diff %v > %v)", i, got[i], want[i], d, tol*scale)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t testing.TB, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}
