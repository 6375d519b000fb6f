package biquad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-sigproc/internal/testutil"
)

func twoSections() []Coefficients {
	return []Coefficients{
		smoothing(),
		{B0: 0.1, B1: 0.2, B2: 0.1, A1: -0.5, A2: 0.1},
	}
}

func TestChain_Layout(t *testing.T) {
	c := NewChain(append(twoSections(), Coefficients{B0: 0.5, B1: 0.5, A1: 0.1}))
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 5, c.Order())
	assert.Equal(t, twoSections(), c.Coefficients()[:2])
}

func TestChain_MatchesManualCascade(t *testing.T) {
	coeffs := twoSections()
	s1, s2 := NewSection(coeffs[0]), NewSection(coeffs[1])
	c := NewChain(coeffs)

	for _, x := range testutil.DeterministicNoise(3, 1, 16) {
		assert.InDelta(t, s2.ProcessSample(s1.ProcessSample(x)), c.ProcessSample(x), 1e-15)
	}
}

func TestChain_StreamingEqualsWhole(t *testing.T) {
	input := testutil.DeterministicNoise(4, 1, 257)

	whole := NewChain(twoSections())
	want := make([]float64, len(input))
	whole.ProcessBlockTo(want, input)

	split := NewChain(twoSections())
	got := make([]float64, len(input))
	for _, r := range [][2]int{{0, 1}, {1, 100}, {100, 100}, {100, 257}} {
		split.ProcessBlockTo(got[r[0]:r[1]], input[r[0]:r[1]])
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-15)
	assert.Equal(t, whole.State(), split.State())
}

func TestChain_SourceUntouchedAndEmpty(t *testing.T) {
	src := []float64{1, 2, 3}
	dst := make([]float64, 3)
	NewChain(twoSections()).ProcessBlockTo(dst, src)
	assert.Equal(t, []float64{1, 2, 3}, src)

	NewChain(nil).ProcessBlockTo(dst, []float64{4, 5, 6})
	assert.Equal(t, []float64{4, 5, 6}, dst)
}

func TestChain_CloneAndReset(t *testing.T) {
	c := NewChain(twoSections())
	c.ProcessSample(1)

	clone := c.Clone()
	assert.Equal(t, c.State(), clone.State())
	assert.InDelta(t, c.ProcessSample(0), clone.ProcessSample(0), 0)

	c.Reset()
	assert.Equal(t, make([][2]float64, 2), c.State())
	assert.NotEqual(t, make([][2]float64, 2), clone.State())
}

func TestChain_SetStateLengthMismatch(t *testing.T) {
	c := NewChain(twoSections())
	require.Panics(t, func() { c.SetState(make([][2]float64, 1)) })
}
