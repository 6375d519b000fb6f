package transform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-sigproc/internal/testutil"
)

func TestAnalyticRealPartIsInput(t *testing.T) {
	for _, n := range []int{1, 2, 9, 32, 50} {
		x := testutil.DeterministicNoise(int64(n), 1, n)
		z, err := Analytic(x)
		require.NoError(t, err)

		re := make([]float64, n)
		for i, v := range z {
			re[i] = real(v)
		}
		testutil.RequireSliceNearlyEqual(t, re, x, 1e-12)
	}
}

func TestHilbertOfCosineIsSine(t *testing.T) {
	for _, n := range []int{64, 45} {
		x := make([]float64, n)
		want := make([]float64, n)
		for i := range x {
			phase := 2 * math.Pi * 3 * float64(i) / float64(n)
			x[i] = math.Cos(phase)
			want[i] = math.Sin(phase)
		}

		h, err := Hilbert(x)
		require.NoError(t, err)
		testutil.RequireSliceNearlyEqual(t, h, want, 1e-12)
	}
}
