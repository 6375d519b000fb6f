package window

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-sigproc/dsp/core"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris4Term
	TypeFlatTop
	TypeTriangle
	TypeWelch
	TypeKaiser
	TypeTukey
)

// Metadata holds spectral properties of a window type, evaluated for the
// symmetric form at large N. Parametric windows report zero ENBW and
// coherent gain; use Analyze on generated coefficients instead.
type Metadata struct {
	Name            string
	ENBW            float64
	HighestSidelobe float64
	CoherentGain    float64
}

// Cosine-sum coefficient tables: w(x) = Σ c[k]·cos(2πkx), x in [0, 1].
var (
	hannCoeffs            = []float64{0.5, -0.5}
	hammingCoeffs         = []float64{0.54, -0.46}
	blackmanCoeffs        = []float64{0.42, -0.5, 0.08}
	blackmanHarris4Coeffs = []float64{0.35875, -0.48829, 0.14128, -0.01168}
	flatTopCoeffs         = []float64{0.21557895, -0.41663158, 0.277263158, -0.083578947, 0.006947368}
)

var metadataByType = map[Type]Metadata{
	TypeRectangular:         {Name: "Rectangular", ENBW: 1, HighestSidelobe: -13.3, CoherentGain: 1},
	TypeHann:                {Name: "Hann", ENBW: 1.5, HighestSidelobe: -31.5, CoherentGain: 0.5},
	TypeHamming:             {Name: "Hamming", ENBW: 1.3628, HighestSidelobe: -42.7, CoherentGain: 0.54},
	TypeBlackman:            {Name: "Blackman", ENBW: 1.7268, HighestSidelobe: -58.1, CoherentGain: 0.42},
	TypeBlackmanHarris4Term: {Name: "Blackman-Harris", ENBW: 2.0044, HighestSidelobe: -92, CoherentGain: 0.35875},
	TypeFlatTop:             {Name: "Flat-Top", ENBW: 3.7702, HighestSidelobe: -93, CoherentGain: 0.2156},
	TypeTriangle:            {Name: "Triangle", ENBW: 1.3333, HighestSidelobe: -26.5, CoherentGain: 0.5},
	TypeWelch:               {Name: "Welch", ENBW: 1.2, HighestSidelobe: -21.3, CoherentGain: 2.0 / 3},
	TypeKaiser:              {Name: "Kaiser"},
	TypeTukey:               {Name: "Tukey"},
}

var typeAliases = map[string]Type{
	"rect":            TypeRectangular,
	"rectangular":     TypeRectangular,
	"boxcar":          TypeRectangular,
	"hann":            TypeHann,
	"hanning":         TypeHann,
	"hamming":         TypeHamming,
	"blackman":        TypeBlackman,
	"blackman-harris": TypeBlackmanHarris4Term,
	"blackmanharris":  TypeBlackmanHarris4Term,
	"flattop":         TypeFlatTop,
	"flat-top":        TypeFlatTop,
	"triangle":        TypeTriangle,
	"bartlett":        TypeTriangle,
	"welch":           TypeWelch,
	"kaiser":          TypeKaiser,
	"tukey":           TypeTukey,
}

// Default shape parameters when WithAlpha is not given.
const (
	defaultKaiserBeta = 8.6
	defaultTukeyAlpha = 0.5
	maxTukeyAlpha     = 1.0
	singleCoefficient = 1.0
)

func (t Type) String() string {
	if m, ok := metadataByType[t]; ok {
		return m.Name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Info returns static metadata for a window type.
func Info(t Type) Metadata {
	return metadataByType[t]
}

// ParseType maps a window name such as "hann" or "blackman-harris" to its Type.
func ParseType(name string) (Type, error) {
	if t, ok := typeAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("window: unknown type %q: %w", name, core.ErrInvalidSpecification)
}

// Option configures window generation.
type Option func(*config)

type config struct {
	alpha    float64
	alphaSet bool
	periodic bool
}

// WithAlpha sets the shape parameter of parametric windows: β for Kaiser,
// the tapered fraction for Tukey.
func WithAlpha(v float64) Option {
	return func(c *config) {
		c.alpha = v
		c.alphaSet = true
	}
}

// WithPeriodic selects the periodic form (denominator N) used for FFT
// framing instead of the symmetric form (denominator N-1).
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns window coefficients of the given length.
// A length of one yields [1.0] for every type.
func Generate(t Type, length int, opts ...Option) ([]float64, error) {
	if length < 1 {
		return nil, fmt.Errorf("window: length %d: %w", length, core.ErrInvalidLength)
	}
	if _, ok := metadataByType[t]; !ok {
		return nil, fmt.Errorf("window: unknown type %d: %w", int(t), core.ErrInvalidSpecification)
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	alpha, err := shapeParameter(t, cfg)
	if err != nil {
		return nil, err
	}

	out := make([]float64, length)
	if length == 1 {
		out[0] = singleCoefficient
		return out, nil
	}

	den := float64(length - 1)
	if cfg.periodic {
		den = float64(length)
	}
	for i := range out {
		out[i] = evalWindow(t, float64(i)/den, alpha)
	}
	return out, nil
}

// Apply generates a window matching len(samples) and returns the windowed
// samples as a new slice.
func Apply(t Type, samples []float64, opts ...Option) ([]float64, error) {
	c, err := New(t, len(samples), opts...)
	if err != nil {
		return nil, err
	}
	return c.Apply(samples)
}

func shapeParameter(t Type, cfg config) (float64, error) {
	switch t {
	case TypeKaiser:
		if !cfg.alphaSet {
			return defaultKaiserBeta, nil
		}
		if cfg.alpha < 0 || math.IsNaN(cfg.alpha) {
			return 0, fmt.Errorf("window: kaiser beta must be >= 0: %g: %w", cfg.alpha, core.ErrInvalidSpecification)
		}
	case TypeTukey:
		if !cfg.alphaSet {
			return defaultTukeyAlpha, nil
		}
		if !(cfg.alpha >= 0 && cfg.alpha <= maxTukeyAlpha) {
			return 0, fmt.Errorf("window: tukey alpha must be in [0,1]: %g: %w", cfg.alpha, core.ErrInvalidSpecification)
		}
	}
	return cfg.alpha, nil
}

func evalWindow(t Type, x, alpha float64) float64 {
	switch t {
	case TypeHann:
		return cosineSum(x, hannCoeffs)
	case TypeHamming:
		return cosineSum(x, hammingCoeffs)
	case TypeBlackman:
		return cosineSum(x, blackmanCoeffs)
	case TypeBlackmanHarris4Term:
		return cosineSum(x, blackmanHarris4Coeffs)
	case TypeFlatTop:
		return cosineSum(x, flatTopCoeffs)
	case TypeTriangle:
		return 1 - math.Abs(2*x-1)
	case TypeWelch:
		d := 2*x - 1
		return 1 - d*d
	case TypeKaiser:
		return kaiserAt(x, alpha)
	case TypeTukey:
		return tukeyAt(x, alpha)
	default:
		return 1
	}
}

func cosineSum(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}
	return sum
}

func kaiserAt(x, beta float64) float64 {
	if beta == 0 {
		return 1
	}
	r := 2*x - 1
	return besselI0(beta*math.Sqrt(math.Max(0, 1-r*r))) / besselI0(beta)
}

func tukeyAt(x, alpha float64) float64 {
	if alpha == 0 {
		return 1
	}
	if alpha >= 1 {
		return cosineSum(x, hannCoeffs)
	}

	a := alpha / 2
	switch {
	case x < a:
		return 0.5 * (1 + math.Cos(math.Pi*(2*x/alpha-1)))
	case x <= 1-a:
		return 1
	default:
		return 0.5 * (1 + math.Cos(math.Pi*(2*x/alpha-2/alpha+1)))
	}
}

// besselI0 evaluates the modified Bessel function of the first kind, order
// zero, by its power series. The series converges for all x; terms are
// summed until they stop contributing.
func besselI0(x float64) float64 {
	half := x / 2
	sum, term := 1.0, 1.0
	for k := 1; k < 500; k++ {
		f := half / float64(k)
		term *= f * f
		sum += term
		if term < sum*1e-17 {
			break
		}
	}
	return sum
}

// mulInto computes dst[i] = a[i]*b[i].
func mulInto(dst, a, b []float64) {
	vecmath.MulBlock(dst, a, b)
}
