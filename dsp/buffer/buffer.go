package buffer

import "github.com/cwbudde/algo-wavelet/dsp/core"

// Buffer wraps a float64 slice that can be resized without reallocating
// while its capacity suffices.
type Buffer struct {
	values []float64
}

// New returns a zero-filled Buffer of the given length.
func New(length int) *Buffer {
	return &Buffer{values: make([]float64, max(length, 0))}
}

// Values returns the underlying slice.
func (b *Buffer) Values() []float64 {
	return b.values
}

// Len returns the current number of values.
func (b *Buffer) Len() int {
	return len(b.values)
}

// Cap returns the capacity of the backing slice.
func (b *Buffer) Cap() int {
	return cap(b.values)
}

// Resize sets the length to n, reusing existing capacity when possible.
// Values beyond the previous length are zeroed.
func (b *Buffer) Resize(n int) {
	n = max(n, 0)
	oldLen := len(b.values)

	if n <= cap(b.values) {
		b.values = b.values[:n]
	} else {
		grown := make([]float64, n)
		copy(grown, b.values)
		b.values = grown
	}

	if n > oldLen {
		core.Zero(b.values[oldLen:])
	}
}

// Zero sets all values to 0.
func (b *Buffer) Zero() {
	core.Zero(b.values)
}

// Split returns the first n values and the remainder as two slices sharing
// the buffer's memory. n is clamped to [0, Len()].
func (b *Buffer) Split(n int) (head, tail []float64) {
	n = min(max(n, 0), len(b.values))
	return b.values[:n:n], b.values[n:]
}
