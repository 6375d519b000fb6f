package design

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"github.com/cwbudde/algo-sigproc/dsp/core"
	"github.com/cwbudde/algo-sigproc/dsp/filter/biquad"
)

// rootTol is the imaginary magnitude below which a root counts as real.
const rootTol = 1e-9

func designButterworth(spec Spec) (Coefficients, error) {
	var sections []biquad.Coefficients
	switch spec.Response {
	case Lowpass:
		sections = butterworthCascade(spec.Cutoff, spec.Order, spec.SampleRate, lowpassRBJ, firstOrderLP)
	case Highpass:
		sections = butterworthCascade(spec.Cutoff, spec.Order, spec.SampleRate, highpassRBJ, firstOrderHP)
	case Bandpass, Bandstop:
		var err error
		sections, err = butterworthBand(spec)
		if err != nil {
			return Coefficients{}, err
		}
	}
	return Coefficients{Kind: KindIIR, Sections: sections, SampleRate: spec.SampleRate}, nil
}

// butterworthCascade builds order/2 biquads at the Butterworth section Qs,
// plus one first-order section when order is odd (B2=A2=0).
func butterworthCascade(
	freq float64, order int, sampleRate float64,
	second func(freq, q, sampleRate float64) biquad.Coefficients,
	first func(freq, sampleRate float64) biquad.Coefficients,
) []biquad.Coefficients {
	sections := make([]biquad.Coefficients, 0, (order+1)/2)
	for i := order/2 - 1; i >= 0; i-- {
		sections = append(sections, second(freq, butterworthQ(order, i), sampleRate))
	}
	if order%2 != 0 {
		sections = append(sections, first(freq, sampleRate))
	}
	return sections
}

// butterworthQ returns the Q of biquad index in an order-N cascade.
func butterworthQ(order, index int) float64 {
	s := math.Sin(math.Pi * float64(2*index+1) / (2 * float64(order)))
	if s == 0 {
		return 1 / math.Sqrt2
	}
	return 1 / (2 * s)
}

func lowpassRBJ(freq, q, sampleRate float64) biquad.Coefficients {
	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)
	return normalizeBiquad((1-cw)/2, 1-cw, (1-cw)/2, 1+alpha, -2*cw, 1-alpha)
}

func highpassRBJ(freq, q, sampleRate float64) biquad.Coefficients {
	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)
	return normalizeBiquad((1+cw)/2, -(1 + cw), (1+cw)/2, 1+alpha, -2*cw, 1-alpha)
}

func firstOrderLP(freq, sampleRate float64) biquad.Coefficients {
	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)
	return biquad.Coefficients{B0: k * norm, B1: k * norm, A1: (k - 1) * norm}
}

func firstOrderHP(freq, sampleRate float64) biquad.Coefficients {
	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)
	return biquad.Coefficients{B0: norm, B1: -norm, A1: (k - 1) * norm}
}

func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	return biquad.Coefficients{B0: b0 / a0, B1: b1 / a0, B2: b2 / a0, A1: a1 / a0, A2: a2 / a0}
}

// butterworthBand designs bandpass and bandstop filters. The analog
// prototype is moved to the band in zero-pole form on a frequency axis
// scaled so that 2*fs == 1, then mapped with the bilinear transform.
// The resulting digital order is 2*spec.Order.
func butterworthBand(spec Spec) ([]biquad.Coefficients, error) {
	w1 := math.Tan(math.Pi * spec.Cutoff / spec.SampleRate)
	w2 := math.Tan(math.Pi * spec.CutoffHigh / spec.SampleRate)
	w0 := math.Sqrt(w1 * w2)
	bw := w2 - w1

	proto := butterworthPoles(spec.Order)

	var zeros, poles []complex128
	switch spec.Response {
	case Bandpass:
		zeros, poles = lowpassToBandpass(proto, w0, bw)
	default:
		zeros, poles = lowpassToBandstop(proto, w0, bw)
	}

	zd, pd := bilinear(zeros, poles)
	sections := rootsToSections(zd, pd)

	// Unity magnitude at the band center for bandpass, at DC for bandstop.
	ref := 0.0
	if spec.Response == Bandpass {
		ref = math.Atan(w0) / math.Pi * spec.SampleRate
	}
	for i := range sections {
		g := cmplx.Abs(sections[i].Response(ref, spec.SampleRate))
		if g == 0 || !core.IsFinite(g) {
			return nil, fmt.Errorf("design: degenerate %s section %d: %w",
				spec.Response, i, core.ErrNumericInstability)
		}
		sections[i].B0 /= g
		sections[i].B1 /= g
		sections[i].B2 /= g
	}
	return sections, nil
}

// butterworthPoles returns the left-half-plane poles of the normalized
// order-n Butterworth prototype.
func butterworthPoles(n int) []complex128 {
	p := make([]complex128, n)
	for k := range p {
		theta := math.Pi * float64(2*k+n+1) / float64(2*n)
		p[k] = cmplx.Exp(complex(0, theta))
	}
	return p
}

func lowpassToBandpass(proto []complex128, w0, bw float64) (zeros, poles []complex128) {
	poles = make([]complex128, 0, 2*len(proto))
	for _, p := range proto {
		t := p * complex(bw/2, 0)
		d := cmplx.Sqrt(t*t - complex(w0*w0, 0))
		poles = append(poles, t+d, t-d)
	}
	zeros = make([]complex128, len(proto))
	return zeros, poles
}

func lowpassToBandstop(proto []complex128, w0, bw float64) (zeros, poles []complex128) {
	poles = make([]complex128, 0, 2*len(proto))
	zeros = make([]complex128, 0, 2*len(proto))
	for _, p := range proto {
		t := complex(bw/2, 0) / p
		d := cmplx.Sqrt(t*t - complex(w0*w0, 0))
		poles = append(poles, t+d, t-d)
		zeros = append(zeros, complex(0, w0), complex(0, -w0))
	}
	return zeros, poles
}

// bilinear maps analog roots through z = (1+s)/(1-s) and pads the zeros
// with z = -1 up to the pole count.
func bilinear(zeros, poles []complex128) (zd, pd []complex128) {
	zd = make([]complex128, 0, len(poles))
	for _, z := range zeros {
		zd = append(zd, (1+z)/(1-z))
	}
	for len(zd) < len(poles) {
		zd = append(zd, -1)
	}
	pd = make([]complex128, 0, len(poles))
	for _, p := range poles {
		pd = append(pd, (1+p)/(1-p))
	}
	return zd, pd
}

// rootsToSections groups roots into conjugate or real pairs and builds one
// biquad per pole pair with unit leading numerator coefficient.
func rootsToSections(zeros, poles []complex128) []biquad.Coefficients {
	pg := groupRoots(poles)
	zg := groupRoots(zeros)

	// Poles closest to the unit circle go last.
	sort.SliceStable(pg, func(i, j int) bool { return groupRadius(pg[i]) < groupRadius(pg[j]) })
	sort.SliceStable(zg, func(i, j int) bool { return groupRadius(zg[i]) < groupRadius(zg[j]) })

	out := make([]biquad.Coefficients, len(pg))
	for i, g := range pg {
		a1, a2 := quadFromRoots(g)
		b1, b2 := 0.0, 0.0
		if i < len(zg) {
			b1, b2 = quadFromRoots(zg[i])
		}
		out[i] = biquad.Coefficients{B0: 1, B1: b1, B2: b2, A1: a1, A2: a2}
	}
	return out
}

// groupRoots pairs each complex root with its conjugate and pairs real
// roots outermost-first (smallest with largest).
func groupRoots(roots []complex128) [][]complex128 {
	var (
		groups [][]complex128
		reals  []float64
		upper  []complex128
	)
	for _, r := range roots {
		switch {
		case math.Abs(imag(r)) <= rootTol:
			reals = append(reals, real(r))
		case imag(r) > 0:
			upper = append(upper, r)
		}
	}
	for _, r := range upper {
		groups = append(groups, []complex128{r, cmplx.Conj(r)})
	}

	sort.Float64s(reals)
	for i, j := 0, len(reals)-1; i <= j; i, j = i+1, j-1 {
		if i == j {
			groups = append(groups, []complex128{complex(reals[i], 0)})
			break
		}
		groups = append(groups, []complex128{complex(reals[i], 0), complex(reals[j], 0)})
	}
	return groups
}

func groupRadius(g []complex128) float64 {
	r := 0.0
	for _, v := range g {
		r = math.Max(r, cmplx.Abs(v))
	}
	return r
}

func quadFromRoots(group []complex128) (float64, float64) {
	switch len(group) {
	case 0:
		return 0, 0
	case 1:
		return -real(group[0]), 0
	default:
		r1, r2 := group[0], group[1]
		return -real(r1 + r2), real(r1 * r2)
	}
}
