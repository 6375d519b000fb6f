package biquad

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwbudde/algo-sigproc/internal/testutil"
)

func TestResponse_DCAndNyquist(t *testing.T) {
	c := smoothing()
	// H(1) = sum(b) / sum(a), H(-1) = alternating sums.
	assert.InDelta(t, 1.0/0.84, real(c.Response(0, 48000)), 1e-12)
	assert.InDelta(t, 0.0, cmplx.Abs(c.Response(24000, 48000)), 1e-12)
}

func TestChain_ResponseIsProduct(t *testing.T) {
	coeffs := twoSections()
	chain := NewChain(coeffs)
	for _, f := range []float64{0, 100, 5000, 20000} {
		want := coeffs[0].Response(f, 48000) * coeffs[1].Response(f, 48000)
		got := chain.Response(f, 48000)
		assert.InDelta(t, 0.0, cmplx.Abs(got-want), 1e-12, "f=%v", f)
		assert.InDelta(t, 20*math.Log10(cmplx.Abs(want)), chain.MagnitudeDB(f, 48000), 1e-9)
	}
}

func TestChain_ImpulseResponseLeavesStateAlone(t *testing.T) {
	chain := NewChain(twoSections())
	chain.ProcessSample(0.7)
	before := chain.State()

	ir := chain.ImpulseResponse(8)
	assert.Equal(t, before, chain.State())

	fresh := NewChain(twoSections())
	want := make([]float64, 8)
	fresh.ProcessBlockTo(want, testutil.Impulse(8, 0))
	testutil.RequireSliceNearlyEqual(t, ir, want, 0)
	assert.Nil(t, chain.ImpulseResponse(0))
}
