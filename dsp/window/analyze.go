package window

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sigproc/dsp/core"
	"github.com/cwbudde/algo-sigproc/dsp/transform"
)

// Analysis holds numerically computed spectral properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// Bandwidth3dB is the two-sided half-power main lobe width in bins.
	Bandwidth3dB float64
	// FirstMinimumBins is the first null of the main lobe, in bins from DC.
	FirstMinimumBins float64
	// HighestSidelobedB is the highest sidelobe level relative to DC in dB.
	HighestSidelobedB float64
	// ScallopLossdB is the response at half a bin offset relative to DC.
	ScallopLossdB float64
}

// analysisOversample is the number of spectrum points evaluated per bin.
const analysisOversample = 32

// Analyze computes spectral properties of coeffs from a zero-padded
// transform of the window.
func Analyze(coeffs []float64) (Analysis, error) {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}, fmt.Errorf("window: analyze empty window: %w", core.ErrInvalidLength)
	}

	sum, sumSq := 0.0, 0.0
	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}
	if sum == 0 {
		return Analysis{}, fmt.Errorf("window: zero coherent gain: %w", core.ErrInvalidSpecification)
	}

	padLen := core.NextPowerOfTwo(n * analysisOversample)
	padded := make([]float64, padLen)
	copy(padded, coeffs)
	half, err := transform.ForwardRealHalf(padded)
	if err != nil {
		return Analysis{}, err
	}

	power := make([]float64, len(half))
	for i, v := range half {
		power[i] = (real(v)*real(v) + imag(v)*imag(v)) / (sum * sum)
	}
	binsPerPoint := float64(n) / float64(padLen)

	a := Analysis{
		CoherentGain:  sum / float64(n),
		ENBW:          float64(n) * sumSq / (sum * sum),
		ScallopLossdB: core.LinearPowerToDB(powerAt(coeffs, 0.5/float64(n)) / (sum * sum)),
	}

	for j := 1; j < len(power); j++ {
		if power[j] < 0.5 {
			t := (power[j-1] - 0.5) / (power[j-1] - power[j])
			a.Bandwidth3dB = 2 * (float64(j-1) + t) * binsPerPoint
			break
		}
	}

	// The first null is the first local minimum after the response has
	// dropped well below the main lobe plateau.
	firstMin := len(power) - 1
	for j := 1; j < len(power)-1; j++ {
		if power[j] < 0.1 && power[j] <= power[j+1] {
			firstMin = j
			break
		}
	}
	a.FirstMinimumBins = float64(firstMin) * binsPerPoint

	peak := 0.0
	for _, p := range power[firstMin:] {
		peak = math.Max(peak, p)
	}
	a.HighestSidelobedB = core.LinearPowerToDB(peak)

	return a, nil
}

// powerAt evaluates |W(f)|² at normalized frequency f in cycles per sample.
func powerAt(coeffs []float64, f float64) float64 {
	re, im := 0.0, 0.0
	w := -2 * math.Pi * f
	for k, c := range coeffs {
		s, co := math.Sincos(w * float64(k))
		re += c * co
		im += c * s
	}
	return re*re + im*im
}
