package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(12000, 48000, 0.5, 5)
	RequireSliceNearlyEqual(t, s, []float64{0, 0.5, 0, -0.5, 0}, 1e-15)
	assert.Equal(t, s, DeterministicSine(12000, 48000, 0.5, 5))
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 0.25, 256)
	assert.Equal(t, a, DeterministicNoise(42, 0.25, 256))
	assert.NotEqual(t, a, DeterministicNoise(43, 0.25, 256))
	for _, v := range a {
		assert.GreaterOrEqual(t, v, -0.25)
		assert.Less(t, v, 0.25)
	}

	c := DeterministicComplexNoise(42, 1, 16)
	assert.Equal(t, c, DeterministicComplexNoise(42, 1, 16))
	assert.NotEqual(t, real(c[0]), imag(c[0]))
}

func TestImpulseAndDC(t *testing.T) {
	assert.Equal(t, []float64{0, 0, 1, 0}, Impulse(4, 2))
	assert.Equal(t, []float64{0, 0, 0}, Impulse(3, 3))
	assert.Equal(t, []float64{0, 0}, Impulse(2, -1))
	assert.Equal(t, []float64{-2, -2, -2}, DC(-2, 3))
	assert.Empty(t, DC(1, 0))
}

func TestBuffer(t *testing.T) {
	b := Buffer(t, []float64{1, 2}, 8000)
	assert.Equal(t, 2, b.Len())
	assert.InDelta(t, 8000.0, b.SampleRate(), 0)
}
