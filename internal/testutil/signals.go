package testutil

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-sigproc/dsp/buffer"
)

// DeterministicSine returns amplitude*sin(2*pi*freqHz*n/sampleRate).
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise returns uniform noise in [-amplitude, amplitude) drawn
// from a source seeded with seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, length)
	for i := range out {
		out[i] = uniform(rng, amplitude)
	}
	return out
}

// DeterministicComplexNoise is DeterministicNoise with independent real and
// imaginary parts.
func DeterministicComplexNoise(seed int64, amplitude float64, length int) []complex128 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]complex128, length)
	for i := range out {
		re := uniform(rng, amplitude)
		out[i] = complex(re, uniform(rng, amplitude))
	}
	return out
}

func uniform(rng *rand.Rand, amplitude float64) float64 {
	return (rng.Float64()*2 - 1) * amplitude
}

// Impulse returns a unit impulse at pos. An out of range pos gives silence.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC returns length copies of value.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Buffer wraps samples in a buffer at sampleRate, failing t on error.
func Buffer(t testing.TB, samples []float64, sampleRate float64) *buffer.Buffer {
	t.Helper()
	b, err := buffer.FromSlice(samples, sampleRate)
	require.NoError(t, err)
	return b
}
