package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-sigproc/dsp/buffer"
	"github.com/cwbudde/algo-sigproc/dsp/core"
)

// Generator creates signals at a configured sample rate. Noise is seeded,
// so equal seeds give equal output.
type Generator struct {
	cfg core.ProcessorConfig
}

// NewGenerator creates a generator. Sample rate and noise seed default to
// core.DefaultProcessorConfig.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{cfg: core.ApplyProcessorOptions(opts...)}
}

// SampleRate returns the generator sample rate.
func (g *Generator) SampleRate() float64 { return g.cfg.SampleRate }

// SetSeed sets the noise seed.
func (g *Generator) SetSeed(seed int64) { g.cfg.Seed = seed }

// Seed returns the noise seed.
func (g *Generator) Seed() int64 { return g.cfg.Seed }

// ToneOption adjusts a generated tone.
type ToneOption func(*tone)

type tone struct {
	phase  float64
	offset float64
}

// WithPhase sets the initial phase in radians.
func WithPhase(rad float64) ToneOption {
	return func(t *tone) { t.phase = rad }
}

// WithOffset adds a constant DC offset.
func WithOffset(dc float64) ToneOption {
	return func(t *tone) { t.offset = dc }
}

// Sine generates amplitude*sin(2*pi*f*n/fs + phase) + offset.
func (g *Generator) Sine(freqHz, amplitude float64, samples int, opts ...ToneOption) (*buffer.Buffer, error) {
	return g.tone(math.Sin, freqHz, amplitude, samples, opts)
}

// Cosine generates amplitude*cos(2*pi*f*n/fs + phase) + offset.
func (g *Generator) Cosine(freqHz, amplitude float64, samples int, opts ...ToneOption) (*buffer.Buffer, error) {
	return g.tone(math.Cos, freqHz, amplitude, samples, opts)
}

func (g *Generator) tone(fn func(float64) float64, freqHz, amplitude float64, samples int, opts []ToneOption) (*buffer.Buffer, error) {
	var t tone
	for _, o := range opts {
		o(&t)
	}
	b, err := buffer.New(samples, g.cfg.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("signal: %w", err)
	}
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	out := b.Samples()
	for i := range out {
		out[i] = amplitude*fn(step*float64(i)+t.phase) + t.offset
	}
	return b, nil
}

// Multisine sums equal-amplitude sines at the given frequencies, scaled so
// that the sum of amplitudes equals amplitude.
func (g *Generator) Multisine(freqsHz []float64, amplitude float64, samples int) (*buffer.Buffer, error) {
	if len(freqsHz) == 0 {
		return nil, fmt.Errorf("signal: multisine needs at least one frequency: %w", core.ErrInvalidSpecification)
	}
	b, err := buffer.New(samples, g.cfg.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("signal: %w", err)
	}
	a := amplitude / float64(len(freqsHz))
	out := b.Samples()
	for _, f := range freqsHz {
		step := 2 * math.Pi * f / g.cfg.SampleRate
		for i := range out {
			out[i] += a * math.Sin(step*float64(i))
		}
	}
	return b, nil
}

// LinearSweep generates a sine whose frequency rises linearly from
// startHz to endHz over the buffer.
func (g *Generator) LinearSweep(startHz, endHz, amplitude float64, samples int) (*buffer.Buffer, error) {
	nyq := g.cfg.SampleRate / 2
	if startHz < 0 || endHz < 0 || startHz > nyq || endHz > nyq {
		return nil, fmt.Errorf("signal: sweep %g..%g Hz outside [0, %g]: %w",
			startHz, endHz, nyq, core.ErrInvalidSpecification)
	}
	b, err := buffer.New(samples, g.cfg.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("signal: %w", err)
	}
	dur := float64(samples) / g.cfg.SampleRate
	k := (endHz - startHz) / dur
	out := b.Samples()
	for i := range out {
		t := float64(i) / g.cfg.SampleRate
		out[i] = amplitude * math.Sin(2*math.Pi*(startHz*t+0.5*k*t*t))
	}
	return b, nil
}

// WhiteNoise generates uniform noise in [-amplitude, amplitude).
func (g *Generator) WhiteNoise(amplitude float64, samples int) (*buffer.Buffer, error) {
	if amplitude < 0 {
		return nil, fmt.Errorf("signal: noise amplitude %g must be >= 0: %w", amplitude, core.ErrInvalidSpecification)
	}
	b, err := buffer.New(samples, g.cfg.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("signal: %w", err)
	}
	rng := rand.New(rand.NewSource(g.cfg.Seed))
	out := b.Samples()
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return b, nil
}

// Impulse generates a buffer that is zero except for amplitude at pos.
func (g *Generator) Impulse(amplitude float64, samples, pos int) (*buffer.Buffer, error) {
	if pos < 0 || pos >= samples {
		return nil, fmt.Errorf("signal: impulse position %d outside [0, %d): %w", pos, samples, core.ErrInvalidLength)
	}
	b, err := buffer.New(samples, g.cfg.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("signal: %w", err)
	}
	b.Samples()[pos] = amplitude
	return b, nil
}

// Normalize returns a copy of b scaled to the target peak amplitude. A
// silent buffer stays silent.
func Normalize(b *buffer.Buffer, targetPeak float64) (*buffer.Buffer, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("signal: normalize target peak %g must be >= 0: %w", targetPeak, core.ErrInvalidSpecification)
	}
	out := b.Copy()
	s := out.Samples()
	maxAbs := 0.0
	for _, v := range s {
		maxAbs = math.Max(maxAbs, math.Abs(v))
	}
	if maxAbs == 0 {
		return out, nil
	}
	scale := targetPeak / maxAbs
	for i := range s {
		s[i] *= scale
	}
	return out, nil
}
