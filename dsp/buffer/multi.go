package buffer

import (
	"fmt"

	"github.com/cwbudde/algo-sigproc/dsp/core"
)

// Multi groups channels that share length and sample rate.
type Multi struct {
	channels []*Buffer
}

// NewMulti returns a Multi holding the given channels.
func NewMulti(channels ...*Buffer) (*Multi, error) {
	if len(channels) == 0 {
		return nil, fmt.Errorf("buffer: multi needs at least one channel: %w", core.ErrInvalidLength)
	}
	m := &Multi{channels: make([]*Buffer, 0, len(channels))}
	for _, ch := range channels {
		if err := m.Add(ch); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Deinterleave splits frame-interleaved samples into a Multi with the given
// channel count.
func Deinterleave(interleaved []float64, channels int, sampleRate float64) (*Multi, error) {
	if channels < 1 {
		return nil, fmt.Errorf("buffer: channel count %d: %w", channels, core.ErrInvalidLength)
	}
	if len(interleaved)%channels != 0 {
		return nil, fmt.Errorf("buffer: %d samples do not split into %d channels: %w",
			len(interleaved), channels, core.ErrDimensionMismatch)
	}

	frames := len(interleaved) / channels
	chs := make([]*Buffer, channels)
	for c := range chs {
		b, err := New(frames, sampleRate)
		if err != nil {
			return nil, err
		}
		for i := 0; i < frames; i++ {
			b.samples[i] = interleaved[i*channels+c]
		}
		chs[c] = b
	}
	return &Multi{channels: chs}, nil
}

// Add appends a channel. It must match the length and rate of the others.
func (m *Multi) Add(ch *Buffer) error {
	if ch == nil {
		return fmt.Errorf("buffer: nil channel: %w", core.ErrInvalidLength)
	}
	if len(m.channels) > 0 {
		first := m.channels[0]
		if ch.Len() != first.Len() {
			return fmt.Errorf("buffer: channel length %d != %d: %w",
				ch.Len(), first.Len(), core.ErrDimensionMismatch)
		}
		if ch.SampleRate() != first.SampleRate() {
			return fmt.Errorf("buffer: channel rate %g != %g: %w",
				ch.SampleRate(), first.SampleRate(), core.ErrInvalidSpecification)
		}
	}
	m.channels = append(m.channels, ch)
	return nil
}

// Channels returns the channel count.
func (m *Multi) Channels() int {
	return len(m.channels)
}

// Channel returns channel i.
func (m *Multi) Channel(i int) *Buffer {
	return m.channels[i]
}

// Len returns the per-channel sample count.
func (m *Multi) Len() int {
	return m.channels[0].Len()
}

// SampleRate returns the shared sample rate.
func (m *Multi) SampleRate() float64 {
	return m.channels[0].SampleRate()
}

// Interleaved returns the channels as frame-interleaved samples.
func (m *Multi) Interleaved() []float64 {
	n, c := m.Len(), len(m.channels)
	out := make([]float64, n*c)
	for ci, ch := range m.channels {
		for i, v := range ch.samples {
			out[i*c+ci] = v
		}
	}
	return out
}
