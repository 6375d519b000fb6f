package filter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-sigproc/dsp/buffer"
	"github.com/cwbudde/algo-sigproc/dsp/core"
	"github.com/cwbudde/algo-sigproc/dsp/filter/design"
	"github.com/cwbudde/algo-sigproc/internal/testutil"
)

const sr = 48000.0

var specs = map[string]design.Spec{
	"iir lowpass":  {Response: design.Lowpass, Order: 4, Cutoff: 2000, SampleRate: sr},
	"iir highpass": {Response: design.Highpass, Order: 5, Cutoff: 300, SampleRate: sr},
	"iir bandpass": {Response: design.Bandpass, Order: 3, Cutoff: 500, CutoffHigh: 3000, SampleRate: sr},
	"iir bandstop": {Response: design.Bandstop, Order: 2, Cutoff: 900, CutoffHigh: 1100, SampleRate: sr},
	"fir lowpass":  {Response: design.Lowpass, Order: 63, Cutoff: 4000, SampleRate: sr, Method: design.WindowedSinc},
	"fir bandstop": {Response: design.Bandstop, Order: 64, Cutoff: 4000, CutoffHigh: 8000, SampleRate: sr, Method: design.WindowedSinc},
}

func mustBuffer(t *testing.T, s []float64) *buffer.Buffer {
	t.Helper()
	b, err := buffer.FromSlice(s, sr)
	require.NoError(t, err)
	return b
}

func TestFilter_StreamingEquivalence(t *testing.T) {
	x := testutil.DeterministicNoise(7, 1, 1000)
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			f, err := New(spec)
			require.NoError(t, err)
			assert.Equal(t, Designed, f.State())

			whole, err := f.ApplyBatch(mustBuffer(t, x))
			require.NoError(t, err)
			assert.Equal(t, Designed, f.State())

			var streamed []float64
			for _, cut := range [][2]int{{0, 1}, {1, 137}, {137, 512}, {512, 1000}} {
				out, err := f.Apply(mustBuffer(t, x[cut[0]:cut[1]]))
				require.NoError(t, err)
				assert.Equal(t, Applied, f.State())
				streamed = append(streamed, out.Samples()...)
			}
			testutil.RequireSliceNearlyEqual(t, streamed, whole.Samples(), 1e-12)
		})
	}
}

func TestFilter_ZeroInputGivesZeroOutput(t *testing.T) {
	for name, spec := range specs {
		f, err := New(spec)
		require.NoError(t, err, name)
		out, err := f.Apply(mustBuffer(t, make([]float64, 256)))
		require.NoError(t, err)
		for i, v := range out.Samples() {
			require.Zero(t, v, "%s: sample %d", name, i)
		}
	}
}

func TestFilter_ResetClearsHistory(t *testing.T) {
	f, err := New(specs["iir lowpass"])
	require.NoError(t, err)
	x := testutil.DeterministicSine(1000, sr, 1, 512)

	first, err := f.Apply(mustBuffer(t, x))
	require.NoError(t, err)
	f.Reset()
	assert.Equal(t, Designed, f.State())
	again, err := f.Apply(mustBuffer(t, x))
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, again.Samples(), first.Samples(), 0)
}

func TestFilter_ApplyDoesNotMutateInput(t *testing.T) {
	f, err := New(specs["fir lowpass"])
	require.NoError(t, err)
	x := testutil.DeterministicNoise(3, 1, 64)
	orig := append([]float64(nil), x...)
	_, err = f.Apply(mustBuffer(t, x))
	require.NoError(t, err)
	assert.Equal(t, orig, x)
}

func TestFilter_AttenuatesStopband(t *testing.T) {
	f, err := New(specs["iir lowpass"])
	require.NoError(t, err)
	hi := testutil.DeterministicSine(15000, sr, 1, 4800)
	out, err := f.ApplyBatch(mustBuffer(t, hi))
	require.NoError(t, err)

	peak := 0.0
	for _, v := range out.Samples()[2400:] {
		peak = math.Max(peak, math.Abs(v))
	}
	want := math.Pow(10, f.MagnitudeDB(15000)/20)
	assert.InDelta(t, want, peak, 1e-3)
	assert.Less(t, peak, 0.01)
}

func TestFilter_Errors(t *testing.T) {
	_, err := New(design.Spec{Response: design.Lowpass, Order: 4, Cutoff: 0, SampleRate: sr})
	require.ErrorIs(t, err, core.ErrInvalidSpecification)
	_, err = New(design.Spec{Response: design.Lowpass, Order: 4, Cutoff: sr / 2, SampleRate: sr})
	require.ErrorIs(t, err, core.ErrInvalidSpecification)

	f, err := New(specs["iir lowpass"])
	require.NoError(t, err)
	other, err := buffer.FromSlice([]float64{1, 2, 3}, 44100)
	require.NoError(t, err)
	out, err := f.Apply(other)
	require.ErrorIs(t, err, core.ErrInvalidSpecification)
	assert.Nil(t, out)
	assert.Equal(t, Designed, f.State())

	_, err = f.ApplyBatch(nil)
	require.ErrorIs(t, err, core.ErrInvalidLength)
}

func TestFilter_CloneIsIndependent(t *testing.T) {
	for name, spec := range specs {
		f, err := New(spec)
		require.NoError(t, err)
		x := testutil.DeterministicNoise(11, 1, 300)
		_, err = f.Apply(mustBuffer(t, x[:150]))
		require.NoError(t, err)

		c := f.Clone()
		a, err := f.Apply(mustBuffer(t, x[150:]))
		require.NoError(t, err)
		b, err := c.Apply(mustBuffer(t, x[150:]))
		require.NoError(t, err)
		testutil.RequireSliceNearlyEqual(t, b.Samples(), a.Samples(), 0)

		c.Reset()
		assert.Equal(t, Applied, f.State(), name)
	}
}

func TestFilter_ImpulseResponseMatchesApply(t *testing.T) {
	for name, spec := range specs {
		f, err := New(spec)
		require.NoError(t, err)
		ir := f.ImpulseResponse(128)
		out, err := f.ApplyBatch(mustBuffer(t, testutil.Impulse(128, 0)))
		require.NoError(t, err, name)
		testutil.RequireSliceNearlyEqual(t, ir, out.Samples(), 1e-12)
	}
}

func TestFilter_ProcessInPlace(t *testing.T) {
	f, err := New(specs["iir bandpass"])
	require.NoError(t, err)
	x := testutil.DeterministicNoise(5, 1, 200)
	want, err := f.ApplyBatch(mustBuffer(t, x))
	require.NoError(t, err)

	got := append([]float64(nil), x...)
	f.Process(got[:80])
	f.Process(got[80:])
	testutil.RequireSliceNearlyEqual(t, got, want.Samples(), 1e-12)
	assert.InDelta(t, -3.0103, f.MagnitudeDB(500), 1e-3)
}
