package buffer

import (
	"sync"

	"github.com/cwbudde/algo-sigproc/dsp/core"
)

// Sample is the element type a Pool can hand out.
type Sample = core.Sample

// Pool provides sync.Pool-based scratch slice reuse to reduce GC pressure
// in transform and analysis hot paths.
type Pool[T Sample] struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool[T Sample]() *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return new([]T)
			},
		},
	}
}

// Get returns a zeroed slice with the requested length.
// Callers must return it via Put when done.
func (p *Pool[T]) Get(length int) []T {
	if length < 0 {
		length = 0
	}
	s := core.EnsureLen(*p.pool.Get().(*[]T), length)
	core.Zero(s)
	return s
}

// Put returns a slice to the pool for reuse.
// The caller must not use the slice after calling Put.
func (p *Pool[T]) Put(s []T) {
	if s == nil {
		return
	}
	s = s[:0]
	p.pool.Put(&s)
}
