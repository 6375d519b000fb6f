package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsureLen(t *testing.T) {
	buf := make([]float64, 4, 8)
	out := EnsureLen(buf, 6)
	assert.Len(t, out, 6)
	assert.Equal(t, cap(buf), cap(out))

	c := EnsureLen(make([]complex128, 2), 5)
	assert.Len(t, c, 5)
	assert.Empty(t, EnsureLen(c, 0))
}

func TestZero(t *testing.T) {
	buf := []complex128{1, 2i, 3}
	Zero(buf)
	assert.Equal(t, []complex128{0, 0, 0}, buf)
}
