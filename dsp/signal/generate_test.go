package signal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-sigproc/dsp/buffer"
	"github.com/cwbudde/algo-sigproc/dsp/core"
)

func TestSine(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(48000))
	b, err := g.Sine(1000, 1, 64)
	require.NoError(t, err)
	assert.Equal(t, 64, b.Len())
	assert.InDelta(t, 48000.0, b.SampleRate(), 0)
	assert.InDelta(t, math.Sin(2*math.Pi*1000*5/48000), b.At(5), 1e-15)
}

func TestCosineWithPhaseAndOffset(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(8))
	c, err := g.Cosine(1, 2, 8, WithOffset(0.5))
	require.NoError(t, err)
	assert.InDelta(t, 2.5, c.At(0), 1e-15)
	assert.InDelta(t, 0.5, c.At(2), 1e-12)

	s, err := g.Sine(1, 2, 8, WithPhase(math.Pi/2), WithOffset(0.5))
	require.NoError(t, err)
	for i := range 8 {
		assert.InDelta(t, c.At(i), s.At(i), 1e-12)
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	g1 := NewGenerator(core.WithSeed(42))
	g2 := NewGenerator()
	g2.SetSeed(42)

	n1, err := g1.WhiteNoise(1, 16)
	require.NoError(t, err)
	n2, err := g2.WhiteNoise(1, 16)
	require.NoError(t, err)
	assert.Equal(t, n1.Samples(), n2.Samples())
	for _, v := range n1.Samples() {
		assert.LessOrEqual(t, math.Abs(v), 1.0)
	}

	g2.SetSeed(43)
	assert.Equal(t, int64(43), g2.Seed())
	n3, err := g2.WhiteNoise(1, 16)
	require.NoError(t, err)
	assert.NotEqual(t, n1.Samples(), n3.Samples())

	_, err = g1.WhiteNoise(-1, 16)
	require.ErrorIs(t, err, core.ErrInvalidSpecification)
}

func TestImpulse(t *testing.T) {
	g := NewGenerator()
	b, err := g.Impulse(0.75, 8, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0.75, 0, 0, 0, 0}, b.Samples())

	_, err = g.Impulse(1, 8, 8)
	require.ErrorIs(t, err, core.ErrInvalidLength)
}

func TestMultisineAndSweep(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(48000))
	m, err := g.Multisine([]float64{1000, 2000}, 1, 64)
	require.NoError(t, err)
	assert.Equal(t, 64, m.Len())
	for _, v := range m.Samples() {
		assert.LessOrEqual(t, math.Abs(v), 1.0)
	}
	_, err = g.Multisine(nil, 1, 64)
	require.ErrorIs(t, err, core.ErrInvalidSpecification)

	s, err := g.LinearSweep(20, 20000, 1, 128)
	require.NoError(t, err)
	assert.Equal(t, 128, s.Len())
	_, err = g.LinearSweep(20, 30000, 1, 128)
	require.ErrorIs(t, err, core.ErrInvalidSpecification)
}

func TestZeroLength(t *testing.T) {
	g := NewGenerator()
	_, err := g.Sine(100, 1, 0)
	require.ErrorIs(t, err, core.ErrInvalidLength)
	_, err = g.WhiteNoise(1, 0)
	require.ErrorIs(t, err, core.ErrInvalidLength)
}

func TestNormalize(t *testing.T) {
	in, err := buffer.FromSlice([]float64{-0.5, 1.0, -0.25}, 100)
	require.NoError(t, err)
	out, err := Normalize(in, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{-0.25, 0.5, -0.125}, out.Samples())
	assert.Equal(t, []float64{-0.5, 1.0, -0.25}, in.Samples())

	silent, err := buffer.New(4, 100)
	require.NoError(t, err)
	out, err = Normalize(silent, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, out.Samples())

	_, err = Normalize(in, -1)
	require.ErrorIs(t, err, core.ErrInvalidSpecification)
}
