package spectrum

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-sigproc/dsp/buffer"
	"github.com/cwbudde/algo-sigproc/dsp/transform"
	"github.com/cwbudde/algo-sigproc/dsp/window"
)

// Spectrum is the one-sided spectrum of a windowed real buffer.
type Spectrum struct {
	bins       []complex128
	n          int
	sampleRate float64
	windowSum  float64
}

// Analyze windows b with a window of type t, transforms it with the
// default engine and keeps bins 0..N/2.
func Analyze(b *buffer.Buffer, t window.Type, opts ...window.Option) (*Spectrum, error) {
	w, err := window.New(t, b.Len(), opts...)
	if err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}
	windowed, err := w.ApplyBuffer(b)
	if err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}
	half, err := transform.ForwardRealHalf(windowed.Samples())
	if err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}
	return &Spectrum{
		bins:       half,
		n:          b.Len(),
		sampleRate: b.SampleRate(),
		windowSum:  floats.Sum(w.Values()),
	}, nil
}

// Bins returns a copy of the one-sided complex bins.
func (s *Spectrum) Bins() []complex128 {
	return append([]complex128(nil), s.bins...)
}

// Len returns the number of one-sided bins, N/2+1.
func (s *Spectrum) Len() int { return len(s.bins) }

// N returns the transform length.
func (s *Spectrum) N() int { return s.n }

// SampleRate returns the sample rate of the analyzed buffer.
func (s *Spectrum) SampleRate() float64 { return s.sampleRate }

// BinSpacing returns sampleRate/N.
func (s *Spectrum) BinSpacing() float64 { return s.sampleRate / float64(s.n) }

// Frequencies returns the center frequency of each bin.
func (s *Spectrum) Frequencies() []float64 {
	return BinFrequencies(len(s.bins), s.n, s.sampleRate)
}

// Amplitude returns the single-sided amplitude of each bin, corrected for
// the window's coherent gain. A sine of amplitude A centered on a bin reads
// A at that bin.
func (s *Spectrum) Amplitude() []float64 {
	amp := Magnitude(s.bins)
	floats.Scale(2/s.windowSum, amp)
	amp[0] /= 2
	if s.n%2 == 0 && len(amp) > 1 {
		amp[len(amp)-1] /= 2
	}
	return amp
}

// PowerDB returns the bin powers in dB, floored at -300 dB.
func (s *Spectrum) PowerDB() []float64 {
	return PowerDB(s.bins)
}

// Peak returns the interpolated frequency and the amplitude of the
// strongest bin.
func (s *Spectrum) Peak() (freqHz, amplitude float64) {
	amp := s.Amplitude()
	k, a, _ := PeakBin(amp)
	return InterpolatePeak(amp, k) * s.BinSpacing(), a
}
