package buffer

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sigproc/dsp/core"
)

// Signal is implemented by every sample container that can flow through a
// processing pipeline.
type Signal interface {
	Len() int
	SampleRate() float64
}

// Buffer is a fixed-length sequence of real samples with a sample rate.
type Buffer struct {
	samples    []float64
	sampleRate float64
}

// New returns a zero-filled Buffer of the given length.
func New(length int, sampleRate float64) (*Buffer, error) {
	if err := validate(length, sampleRate); err != nil {
		return nil, err
	}
	return &Buffer{samples: make([]float64, length), sampleRate: sampleRate}, nil
}

// FromSlice wraps an existing slice without copying.
// Mutations to the slice are visible through the Buffer and vice versa.
func FromSlice(s []float64, sampleRate float64) (*Buffer, error) {
	if err := validate(len(s), sampleRate); err != nil {
		return nil, err
	}
	return &Buffer{samples: s, sampleRate: sampleRate}, nil
}

// Samples returns the underlying slice.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// At returns sample i.
func (b *Buffer) At(i int) float64 {
	return b.samples[i]
}

// Len returns the number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// SampleRate returns the sample rate in Hz.
func (b *Buffer) SampleRate() float64 {
	return b.sampleRate
}

// Duration returns the buffer length in seconds.
func (b *Buffer) Duration() float64 {
	return float64(len(b.samples)) / b.sampleRate
}

// Zero sets all samples to 0.
func (b *Buffer) Zero() {
	core.Zero(b.samples)
}

// Copy returns a deep copy of the buffer.
func (b *Buffer) Copy() *Buffer {
	s := make([]float64, len(b.samples))
	copy(s, b.samples)
	return &Buffer{samples: s, sampleRate: b.sampleRate}
}

// Concat joins buffers end to end. All buffers must share a sample rate.
func Concat(bufs ...*Buffer) (*Buffer, error) {
	if len(bufs) == 0 {
		return nil, fmt.Errorf("buffer: concat of nothing: %w", core.ErrInvalidLength)
	}

	rate := bufs[0].sampleRate
	total := 0
	for i, b := range bufs {
		if b.sampleRate != rate {
			return nil, fmt.Errorf("buffer: concat part %d rate %g != %g: %w",
				i, b.sampleRate, rate, core.ErrInvalidSpecification)
		}
		total += b.Len()
	}

	out := make([]float64, 0, total)
	for _, b := range bufs {
		out = append(out, b.samples...)
	}
	return &Buffer{samples: out, sampleRate: rate}, nil
}

func validate(length int, sampleRate float64) error {
	if length < 1 {
		return fmt.Errorf("buffer: length %d: %w", length, core.ErrInvalidLength)
	}
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("buffer: sample rate %g: %w", sampleRate, core.ErrInvalidSpecification)
	}
	return nil
}
