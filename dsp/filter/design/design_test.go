package design

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-sigproc/dsp/core"
	"github.com/cwbudde/algo-sigproc/dsp/filter/biquad"
)

const (
	sr      = 48000.0
	halfPow = -3.010299956639812 // 10*log10(0.5)
)

func mustDesign(t *testing.T, s Spec, opts ...Option) Coefficients {
	t.Helper()
	c, err := Design(s, opts...)
	require.NoError(t, err)
	return c
}

func TestDesign_ButterworthLowpassCutoffAndDC(t *testing.T) {
	for _, order := range []int{1, 2, 3, 4, 5, 8} {
		c := mustDesign(t, Spec{Response: Lowpass, Order: order, Cutoff: 1000, SampleRate: sr})
		assert.Equal(t, KindIIR, c.Kind)
		assert.Len(t, c.Sections, (order+1)/2)
		assert.Equal(t, order, c.Order())
		assert.InDelta(t, 0, c.MagnitudeDB(0), 1e-9, "order %d DC", order)
		assert.InDelta(t, halfPow, c.MagnitudeDB(1000), 1e-6, "order %d cutoff", order)
		assert.Less(t, c.MagnitudeDB(10000), c.MagnitudeDB(2000))
		assert.True(t, c.Stable())
	}
}

func TestDesign_ButterworthHighpass(t *testing.T) {
	for _, order := range []int{1, 2, 3, 6} {
		c := mustDesign(t, Spec{Response: Highpass, Order: order, Cutoff: 2000, SampleRate: sr})
		assert.InDelta(t, 0, c.MagnitudeDB(sr/2), 1e-9, "order %d Nyquist", order)
		assert.InDelta(t, halfPow, c.MagnitudeDB(2000), 1e-6, "order %d cutoff", order)
		// At least the analog slope of 20*order dB per decade below cutoff.
		bound := -20*float64(order)*math.Log10(2000.0/100) + 1
		assert.Less(t, c.MagnitudeDB(100), bound, "order %d stopband", order)
	}
}

func TestDesign_ButterworthBandpass(t *testing.T) {
	for _, order := range []int{1, 2, 3, 4} {
		c := mustDesign(t, Spec{Response: Bandpass, Order: order, Cutoff: 500, CutoffHigh: 4000, SampleRate: sr})
		assert.Equal(t, 2*order, c.Order())
		assert.True(t, c.Stable())
		assert.InDelta(t, halfPow, c.MagnitudeDB(500), 1e-6, "order %d lower edge", order)
		assert.InDelta(t, halfPow, c.MagnitudeDB(4000), 1e-6, "order %d upper edge", order)

		center := math.Atan(math.Sqrt(math.Tan(math.Pi*500/sr)*math.Tan(math.Pi*4000/sr))) / math.Pi * sr
		assert.InDelta(t, 0, c.MagnitudeDB(center), 1e-9)
		assert.Less(t, c.MagnitudeDB(50), -15.0)
		assert.Less(t, c.MagnitudeDB(20000), -15.0)
	}
}

func TestDesign_ButterworthBandpassWide(t *testing.T) {
	// Wide enough for the odd-order prototype pole to map to two real poles.
	c := mustDesign(t, Spec{Response: Bandpass, Order: 3, Cutoff: 20, CutoffHigh: 20000, SampleRate: sr})
	assert.True(t, c.Stable())
	assert.InDelta(t, halfPow, c.MagnitudeDB(20), 1e-6)
	assert.InDelta(t, halfPow, c.MagnitudeDB(20000), 1e-6)
}

func TestDesign_ButterworthBandstop(t *testing.T) {
	for _, order := range []int{1, 2, 4} {
		c := mustDesign(t, Spec{Response: Bandstop, Order: order, Cutoff: 900, CutoffHigh: 1100, SampleRate: sr})
		assert.Equal(t, 2*order, c.Order())
		assert.InDelta(t, 0, c.MagnitudeDB(0), 1e-9)
		assert.InDelta(t, 0, c.MagnitudeDB(sr/2), 1e-6)
		assert.InDelta(t, halfPow, c.MagnitudeDB(900), 1e-6)
		assert.InDelta(t, halfPow, c.MagnitudeDB(1100), 1e-6)

		notch := math.Atan(math.Sqrt(math.Tan(math.Pi*900/sr)*math.Tan(math.Pi*1100/sr))) / math.Pi * sr
		assert.Less(t, c.MagnitudeDB(notch), -100.0)
	}
}

func TestDesign_WindowedSinc(t *testing.T) {
	lp := mustDesign(t, Spec{Response: Lowpass, Order: 128, Cutoff: 4000, SampleRate: sr, Method: WindowedSinc})
	require.Equal(t, KindFIR, lp.Kind)
	require.Len(t, lp.Taps, 129)
	assert.Equal(t, 128, lp.Order())
	assert.InDelta(t, 0, lp.MagnitudeDB(0), 1e-9)
	assert.InDelta(t, -6.02, lp.MagnitudeDB(4000), 0.1)
	assert.Less(t, lp.MagnitudeDB(8000), -40.0)
	for i := range lp.Taps {
		assert.InDelta(t, lp.Taps[i], lp.Taps[len(lp.Taps)-1-i], 1e-15, "symmetry at %d", i)
	}

	hp := mustDesign(t, Spec{Response: Highpass, Order: 128, Cutoff: 4000, SampleRate: sr, Method: WindowedSinc})
	assert.InDelta(t, 0, hp.MagnitudeDB(sr/2), 0.01)
	assert.Less(t, hp.MagnitudeDB(0), -40.0)

	bp := mustDesign(t, Spec{
		Response: Bandpass, Order: 256, Cutoff: 2000, CutoffHigh: 6000,
		SampleRate: sr, Method: WindowedSinc, Window: "blackman",
	})
	assert.InDelta(t, 0, bp.MagnitudeDB(4000), 1e-9)
	assert.Less(t, bp.MagnitudeDB(0), -40.0)
	assert.Less(t, bp.MagnitudeDB(12000), -40.0)

	bs := mustDesign(t, Spec{
		Response: Bandstop, Order: 256, Cutoff: 2000, CutoffHigh: 6000,
		SampleRate: sr, Method: WindowedSinc,
	})
	assert.InDelta(t, 0, bs.MagnitudeDB(0), 0.05)
	assert.Less(t, bs.MagnitudeDB(4000), -40.0)
}

func TestDesign_InvalidSpecification(t *testing.T) {
	nyq := sr / 2
	cases := map[string]Spec{
		"cutoff zero":        {Response: Lowpass, Order: 4, Cutoff: 0, SampleRate: sr},
		"cutoff nyquist":     {Response: Lowpass, Order: 4, Cutoff: nyq, SampleRate: sr},
		"cutoff above":       {Response: Highpass, Order: 4, Cutoff: nyq + 1, SampleRate: sr},
		"negative cutoff":    {Response: Lowpass, Order: 4, Cutoff: -10, SampleRate: sr},
		"nan cutoff":         {Response: Lowpass, Order: 4, Cutoff: math.NaN(), SampleRate: sr},
		"order zero":         {Response: Lowpass, Order: 0, Cutoff: 1000, SampleRate: sr},
		"order too high":     {Response: Lowpass, Order: MaxIIROrder + 1, Cutoff: 1000, SampleRate: sr},
		"fir order too high": {Response: Lowpass, Order: MaxFIROrder + 2, Cutoff: 1000, SampleRate: sr, Method: WindowedSinc},
		"zero sample rate":   {Response: Lowpass, Order: 4, Cutoff: 1000},
		"band reversed":      {Response: Bandpass, Order: 2, Cutoff: 4000, CutoffHigh: 1000, SampleRate: sr},
		"band upper nyquist": {Response: Bandstop, Order: 2, Cutoff: 1000, CutoffHigh: nyq, SampleRate: sr},
		"odd fir highpass":   {Response: Highpass, Order: 31, Cutoff: 1000, SampleRate: sr, Method: WindowedSinc},
		"odd fir bandstop":   {Response: Bandstop, Order: 31, Cutoff: 1000, CutoffHigh: 2000, SampleRate: sr, Method: WindowedSinc},
		"unknown window":     {Response: Lowpass, Order: 32, Cutoff: 1000, SampleRate: sr, Method: WindowedSinc, Window: "nope"},
		"unknown response":   {Response: Response(99), Order: 2, Cutoff: 1000, SampleRate: sr},
		"unknown method":     {Response: Lowpass, Order: 2, Cutoff: 1000, SampleRate: sr, Method: Method(99)},
	}
	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Design(s)
			require.ErrorIs(t, err, core.ErrInvalidSpecification)
		})
	}
}

func TestDesign_StabilityCheck(t *testing.T) {
	for _, cutoff := range []float64{24, 100, 1000, 20000, 23900} {
		c, err := Design(Spec{Response: Lowpass, Order: MaxStableOrder, Cutoff: cutoff, SampleRate: sr}, WithStabilityCheck())
		require.NoError(t, err, "cutoff %g", cutoff)
		assert.Less(t, c.Sections[len(c.Sections)-1].MaxPoleRadius(), 1.0)
	}

	unstable := Coefficients{Kind: KindIIR, Sections: []biquad.Coefficients{
		{B0: 1, A1: -2.1, A2: 1.2},
	}}
	require.ErrorIs(t, checkStable(unstable), core.ErrNumericInstability)

	nonFinite := Coefficients{Kind: KindFIR, Taps: []float64{1, math.Inf(1)}}
	require.ErrorIs(t, checkStable(nonFinite), core.ErrNumericInstability)
}

func TestButterworthQ(t *testing.T) {
	assert.InDelta(t, 1/math.Sqrt2, butterworthQ(2, 0), 1e-15)
	assert.InDelta(t, 0.5411961001461969, butterworthQ(4, 1), 1e-12)
	assert.InDelta(t, 1.3065629648763766, butterworthQ(4, 0), 1e-12)
}

func TestGroupRoots_PairsRealsOutermost(t *testing.T) {
	g := groupRoots([]complex128{1, 1, -1, -1, complex(0.5, 0.5), complex(0.5, -0.5)})
	require.Len(t, g, 3)
	assert.Equal(t, []complex128{complex(0.5, 0.5), complex(0.5, -0.5)}, g[0])
	assert.Equal(t, []complex128{-1, 1}, g[1])
	assert.Equal(t, []complex128{-1, 1}, g[2])
}

func TestParse(t *testing.T) {
	for in, want := range map[string]Response{"lowpass": Lowpass, "HP": Highpass, " bandpass": Bandpass, "notch": Bandstop} {
		got, err := ParseResponse(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseResponse("allpass")
	require.ErrorIs(t, err, core.ErrInvalidSpecification)

	m, err := ParseMethod("sinc")
	require.NoError(t, err)
	assert.Equal(t, WindowedSinc, m)
	m, err = ParseMethod("")
	require.NoError(t, err)
	assert.Equal(t, Butterworth, m)
	_, err = ParseMethod("chebyshev")
	require.ErrorIs(t, err, core.ErrInvalidSpecification)

	assert.Equal(t, "bandstop", Bandstop.String())
	assert.Equal(t, "windowed-sinc", WindowedSinc.String())
	assert.Equal(t, "fir", KindFIR.String())
}
