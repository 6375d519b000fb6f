package design

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-sigproc/dsp/core"
	"github.com/cwbudde/algo-sigproc/dsp/window"
)

// designSinc builds a linear-phase windowed-sinc FIR with Order+1 taps.
// Lowpass is normalized to unity DC gain, bandpass to unity gain at the
// arithmetic band center. Highpass and bandstop are spectral inversions.
func designSinc(spec Spec) (Coefficients, error) {
	wt, err := spec.windowType()
	if err != nil {
		return Coefficients{}, err
	}
	win, err := window.Generate(wt, spec.Order+1)
	if err != nil {
		return Coefficients{}, fmt.Errorf("design: %w", err)
	}

	f1 := spec.Cutoff / spec.SampleRate
	var taps []float64
	switch spec.Response {
	case Lowpass, Highpass:
		taps = windowedSinc(f1, win)
		if err := scaleTo(taps, 0, spec.Response); err != nil {
			return Coefficients{}, err
		}
		if spec.Response == Highpass {
			invert(taps)
		}
	case Bandpass, Bandstop:
		f2 := spec.CutoffHigh / spec.SampleRate
		lo := windowedSinc(f1, win)
		taps = windowedSinc(f2, win)
		for i := range taps {
			taps[i] -= lo[i]
		}
		if err := scaleTo(taps, (f1+f2)/2, spec.Response); err != nil {
			return Coefficients{}, err
		}
		if spec.Response == Bandstop {
			invert(taps)
		}
	}
	return Coefficients{Kind: KindFIR, Taps: taps, SampleRate: spec.SampleRate}, nil
}

// windowedSinc returns the windowed ideal lowpass at normalized cutoff fc
// (cycles per sample), centered on the middle tap.
func windowedSinc(fc float64, win []float64) []float64 {
	m := float64(len(win)-1) / 2
	h := make([]float64, len(win))
	for n := range h {
		h[n] = 2 * fc * sinc(2*fc*(float64(n)-m)) * win[n]
	}
	return h
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(math.Pi*x) / (math.Pi * x)
}

// scaleTo scales taps to unit magnitude at normalized frequency f.
func scaleTo(taps []float64, f float64, r Response) error {
	g := cmplx.Abs(tapResponse(taps, f, 1))
	if g == 0 || !core.IsFinite(g) {
		return fmt.Errorf("design: %s taps have no gain at %.4g: %w", r, f, core.ErrNumericInstability)
	}
	for i := range taps {
		taps[i] /= g
	}
	return nil
}

// invert replaces h with delta[n-center] - h. len(h) must be odd.
func invert(h []float64) {
	for i := range h {
		h[i] = -h[i]
	}
	h[len(h)/2]++
}
