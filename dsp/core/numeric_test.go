package core

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPowersOfTwo(t *testing.T) {
	for n, want := range map[int]struct {
		pow  bool
		next int
	}{
		-4:   {false, 1},
		0:    {false, 1},
		1:    {true, 1},
		6:    {false, 8},
		64:   {true, 64},
		1025: {false, 2048},
	} {
		assert.Equal(t, want.pow, IsPowerOfTwo(n), "IsPowerOfTwo(%d)", n)
		assert.Equal(t, want.next, NextPowerOfTwo(n), "NextPowerOfTwo(%d)", n)
	}
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(-1e300))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(-1)))
}

func TestDecibels(t *testing.T) {
	assert.InDelta(t, -6.0206, AmplitudeDB(0.5), 1e-4)
	assert.InDelta(t, 30.0, LinearPowerToDB(1000), 1e-12)
	assert.True(t, math.IsInf(AmplitudeDB(0), -1))
	assert.True(t, math.IsNaN(LinearPowerToDB(-2)))
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	err := fmt.Errorf("window: %d coefficients for %d samples: %w", 8, 4, ErrDimensionMismatch)
	require.ErrorIs(t, err, ErrDimensionMismatch)
	assert.NotErrorIs(t, err, ErrInvalidLength)
}
