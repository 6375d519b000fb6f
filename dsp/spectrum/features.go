package spectrum

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-sigproc/dsp/core"
)

// Centroid returns the magnitude-weighted mean frequency in Hz. A silent
// spectrum has centroid 0.
func (s *Spectrum) Centroid() float64 {
	mag := Magnitude(s.bins)
	total := floats.Sum(mag)
	if total == 0 {
		return 0
	}
	return floats.Dot(mag, s.Frequencies()) / total
}

// Flatness returns the ratio of the geometric to the arithmetic mean of
// the bin magnitudes, DC excluded. White noise approaches 1 and a pure
// tone approaches 0. Any zero bin gives 0.
func (s *Spectrum) Flatness() float64 {
	if len(s.bins) < 2 {
		return 0
	}
	mag := Magnitude(s.bins[1:])
	logSum := 0.0
	for _, m := range mag {
		if m == 0 {
			return 0
		}
		logSum += math.Log(m)
	}
	n := float64(len(mag))
	return math.Exp(logSum/n) / (floats.Sum(mag) / n)
}

// Rolloff returns the lowest bin frequency at which the cumulative power
// reaches fraction of the total, for fraction in (0, 1].
func (s *Spectrum) Rolloff(fraction float64) (float64, error) {
	if !(fraction > 0 && fraction <= 1) {
		return 0, fmt.Errorf("spectrum: rolloff fraction %g: %w", fraction, core.ErrInvalidSpecification)
	}
	p := Power(s.bins)
	total := floats.Sum(p)
	if total == 0 {
		return 0, nil
	}
	floats.CumSum(p, p)
	target := fraction * total
	for k, c := range p {
		if c >= target {
			return float64(k) * s.BinSpacing(), nil
		}
	}
	return float64(len(p)-1) * s.BinSpacing(), nil
}
