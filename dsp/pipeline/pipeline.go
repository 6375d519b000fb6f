package pipeline

import (
	"go.uber.org/zap"

	"github.com/cwbudde/algo-sigproc/dsp/buffer"
	"github.com/cwbudde/algo-sigproc/dsp/filter"
	"github.com/cwbudde/algo-sigproc/dsp/transform"
	"github.com/cwbudde/algo-sigproc/dsp/window"
	"github.com/cwbudde/algo-sigproc/logging"
)

// Pipeline is an ordered list of stages.
type Pipeline struct {
	stages []Stage
}

// New returns a pipeline running stages in the given order.
func New(stages ...Stage) *Pipeline {
	return &Pipeline{stages: append([]Stage(nil), stages...)}
}

// Len returns the number of stages.
func (p *Pipeline) Len() int { return len(p.stages) }

// Stages returns the stages in order.
func (p *Pipeline) Stages() []Stage {
	return append([]Stage(nil), p.stages...)
}

// Process runs in through every stage. On failure it returns the failing
// stage's error unchanged and no result.
func (p *Pipeline) Process(in buffer.Signal) (buffer.Signal, error) {
	if in == nil {
		return nil, unsupported("pipeline", in)
	}
	cur := in
	for i, s := range p.stages {
		out, err := s.Process(cur)
		if err != nil {
			logging.Named("pipeline").Debug("stage failed",
				zap.Int("index", i),
				zap.String("stage", s.Name()),
				zap.Error(err),
			)
			return nil, err
		}
		cur = out
	}
	return cur, nil
}

// ProcessBuffer runs a real buffer through the pipeline and requires a
// real result.
func (p *Pipeline) ProcessBuffer(in *buffer.Buffer) (*buffer.Buffer, error) {
	out, err := p.Process(in)
	if err != nil {
		return nil, err
	}
	b, ok := out.(*buffer.Buffer)
	if !ok {
		return nil, unsupported("pipeline output", out)
	}
	return b, nil
}

// Clone returns a pipeline sharing reentrant stages and holding clones of
// stateful ones.
func (p *Pipeline) Clone() *Pipeline {
	out := &Pipeline{stages: make([]Stage, len(p.stages))}
	for i, s := range p.stages {
		if c, ok := s.(Cloner); ok {
			out.stages[i] = c.Clone()
		} else {
			out.stages[i] = s
		}
	}
	return out
}

// Reset clears the state of every filter stage.
func (p *Pipeline) Reset() {
	for _, s := range p.stages {
		if fs, ok := s.(*FilterStage); ok {
			fs.Reset()
		}
	}
}

// Builder assembles a pipeline fluently.
type Builder struct {
	stages []Stage
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder { return &Builder{} }

// Window appends a fixed-coefficient window stage.
func (b *Builder) Window(c *window.Coefficients) *Builder {
	return b.Stage(Window(c))
}

// WindowType appends a window stage sized to each input.
func (b *Builder) WindowType(t window.Type, opts ...window.Option) *Builder {
	return b.Stage(WindowType(t, opts...))
}

// Forward appends a forward-transform stage on the default engine.
func (b *Builder) Forward() *Builder {
	return b.Stage(Forward(nil))
}

// ForwardWith appends a forward-transform stage on e.
func (b *Builder) ForwardWith(e *transform.Engine) *Builder {
	return b.Stage(Forward(e))
}

// Inverse appends an inverse transform producing complex samples.
func (b *Builder) Inverse() *Builder {
	return b.Stage(Inverse(nil, false))
}

// InverseReal appends an inverse transform producing a real buffer.
func (b *Builder) InverseReal() *Builder {
	return b.Stage(Inverse(nil, true))
}

// Filter appends a streaming filter stage.
func (b *Builder) Filter(f *filter.Filter) *Builder {
	return b.Stage(Filter(f))
}

// FilterBatch appends a batch filter stage.
func (b *Builder) FilterBatch(f *filter.Filter) *Builder {
	return b.Stage(FilterBatch(f))
}

// Stage appends any stage.
func (b *Builder) Stage(s Stage) *Builder {
	b.stages = append(b.stages, s)
	return b
}

// Build returns the pipeline. The builder can keep appending afterwards
// without affecting it.
func (b *Builder) Build() *Pipeline {
	return New(b.stages...)
}
