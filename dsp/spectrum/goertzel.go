package spectrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sigproc/dsp/core"
)

// Goertzel evaluates a single DFT term by running a second-order
// resonator over the input. Power and Magnitude describe all samples
// processed since the last Reset.
//
// The target need not be an integer bin. Leakage behaves as for a
// rectangular window of the processed length.
type Goertzel struct {
	frequency  float64
	sampleRate float64
	coeff      float64
	s0, s1     float64
}

// NewGoertzel creates an analyzer for frequency in [0, sampleRate/2].
func NewGoertzel(frequency, sampleRate float64) (*Goertzel, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("spectrum: goertzel sample rate %v: %w", sampleRate, core.ErrInvalidSpecification)
	}
	if !(frequency >= 0 && frequency <= sampleRate/2) {
		return nil, fmt.Errorf("spectrum: goertzel frequency %v outside [0, %v]: %w",
			frequency, sampleRate/2, core.ErrInvalidSpecification)
	}
	return &Goertzel{
		frequency:  frequency,
		sampleRate: sampleRate,
		coeff:      2 * math.Cos(2*math.Pi*frequency/sampleRate),
	}, nil
}

// Reset clears the resonator state.
func (g *Goertzel) Reset() {
	g.s0, g.s1 = 0, 0
}

// ProcessBlock feeds a block of samples.
func (g *Goertzel) ProcessBlock(input []float64) {
	s0, s1, coeff := g.s0, g.s1, g.coeff
	for _, x := range input {
		s0, s1 = x+coeff*s0-s1, s0
	}
	g.s0, g.s1 = s0, s1
}

// Power returns |X|^2 for the processed samples.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Magnitude returns |X| for the processed samples.
func (g *Goertzel) Magnitude() float64 {
	return math.Sqrt(math.Max(g.Power(), 0))
}

// Frequency returns the target frequency.
func (g *Goertzel) Frequency() float64 { return g.frequency }
