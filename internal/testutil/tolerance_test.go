package testutil

import (
	"testing"
)

func TestRequireSliceNearlyEqual(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2 + 1e-13}, []float64{1, 2}, 1e-12)
	RequireSliceNearlyEqual(t, []float64{}, nil, 0)
}

func TestRequireComplexNearlyEqualScales(t *testing.T) {
	// 1e-7 absolute error on magnitude-1000 data is within 1e-9 relative.
	want := []complex128{1000, 0, -1000i}
	got := []complex128{1000 + 1e-7, 1e-7, -1000i}
	RequireComplexNearlyEqual(t, got, want, 1e-9)
}

func TestRequireFinite(t *testing.T) {
	RequireFinite(t, []float64{0, -1e308, 1e-308})
}
