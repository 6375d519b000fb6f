package pipeline

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-sigproc/dsp/buffer"
)

// Multi runs one clone of a pipeline per channel, channels in parallel.
// Each channel keeps its own clone across calls, so streaming filter
// stages stay continuous per channel. A Multi is not safe for concurrent
// Process calls.
type Multi struct {
	proto    *Pipeline
	channels []*Pipeline
	limit    int
}

// NewMulti returns a multichannel runner for p. Parallelism defaults to
// GOMAXPROCS.
func NewMulti(p *Pipeline) *Multi {
	return &Multi{proto: p, limit: runtime.GOMAXPROCS(0)}
}

// SetLimit bounds the number of channels processed at once. n < 1 means
// no bound.
func (m *Multi) SetLimit(n int) {
	m.limit = n
}

// Channel returns the pipeline clone serving channel i, creating clones
// up to i as needed.
func (m *Multi) Channel(i int) *Pipeline {
	for len(m.channels) <= i {
		m.channels = append(m.channels, m.proto.Clone())
	}
	return m.channels[i]
}

// Process runs every channel of in through its pipeline clone. Results are
// in channel order. The first channel error cancels the remaining work and
// is returned wrapped with the channel index.
func (m *Multi) Process(ctx context.Context, in *buffer.Multi) ([]buffer.Signal, error) {
	n := in.Channels()
	if n > 0 {
		m.Channel(n - 1)
	}

	g, ctx := errgroup.WithContext(ctx)
	if m.limit > 0 {
		g.SetLimit(m.limit)
	}

	out := make([]buffer.Signal, n)
	for i := range n {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := m.channels[i].Process(in.Channel(i))
			if err != nil {
				return fmt.Errorf("pipeline: channel %d: %w", i, err)
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ProcessReal is Process for pipelines whose output is a real buffer.
func (m *Multi) ProcessReal(ctx context.Context, in *buffer.Multi) (*buffer.Multi, error) {
	res, err := m.Process(ctx, in)
	if err != nil {
		return nil, err
	}
	chans := make([]*buffer.Buffer, len(res))
	for i, r := range res {
		b, ok := r.(*buffer.Buffer)
		if !ok {
			return nil, unsupported("multichannel output", r)
		}
		chans[i] = b
	}
	return buffer.NewMulti(chans...)
}

// Reset clears filter state on every channel clone.
func (m *Multi) Reset() {
	for _, p := range m.channels {
		p.Reset()
	}
}
