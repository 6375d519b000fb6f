package buffer

import (
	"testing"

	"github.com/cwbudde/algo-sigproc/dsp/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplexBinSpacing(t *testing.T) {
	c, err := NewComplex(1024, 48000)
	require.NoError(t, err)
	assert.InDelta(t, 46.875, c.BinSpacing(), 1e-12)
	assert.InDelta(t, 468.75, c.BinFrequency(10), 1e-12)
}

func TestComplexFromSliceValidates(t *testing.T) {
	_, err := ComplexFromSlice([]complex128{}, 100)
	require.ErrorIs(t, err, core.ErrInvalidLength)

	_, err = ComplexFromSlice([]complex128{1}, 0)
	require.ErrorIs(t, err, core.ErrInvalidSpecification)
}

func TestFromRealAndBack(t *testing.T) {
	b, err := FromSlice([]float64{1, -2, 3}, 10)
	require.NoError(t, err)

	c := FromReal(b)
	assert.Equal(t, []complex128{1, -2, 3}, c.Samples())
	assert.Equal(t, 10.0, c.SampleRate())

	r := c.Real()
	assert.Equal(t, b.Samples(), r.Samples())
	r.Samples()[0] = 7
	assert.Equal(t, 1.0, b.At(0))
}

func TestComplexCopyIsDeep(t *testing.T) {
	c, err := ComplexFromSlice([]complex128{1 + 1i, 2}, 10)
	require.NoError(t, err)
	d := c.Copy()
	d.Samples()[0] = 0
	assert.Equal(t, 1+1i, c.At(0))
}
