package matrix

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-wavelet/dsp/core"
)

var (
	// ErrShapeMismatch aliases core.ErrShapeMismatch so callers can match
	// matrix errors without importing core.
	ErrShapeMismatch = core.ErrShapeMismatch

	// ErrInvalidDimensions aliases core.ErrInvalidDimensions.
	ErrInvalidDimensions = core.ErrInvalidDimensions
)

// Dense is a rows×cols matrix stored row-major in a single slice.
type Dense struct {
	rows, cols int
	data       []float64
}

// New returns a zero-filled rows×cols matrix.
func New(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("matrix: new %dx%d: %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows copies a rectangular [][]float64 into a new matrix.
func FromRows(rows [][]float64) (*Dense, error) {
	r, c, err := core.GridShape(rows)
	if err != nil {
		return nil, fmt.Errorf("matrix: from rows: %w", err)
	}

	m, err := New(r, c)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.cols }

// At returns the element at (i, j).
func (m *Dense) At(i, j int) float64 {
	m.checkIndex(i, j)
	return m.data[i*m.cols+j]
}

// Set assigns v to the element at (i, j).
func (m *Dense) Set(i, j int, v float64) {
	m.checkIndex(i, j)
	m.data[i*m.cols+j] = v
}

// Row returns row i as a slice aliasing the matrix storage.
func (m *Dense) Row(i int) []float64 {
	m.checkIndex(i, 0)
	return m.data[i*m.cols : (i+1)*m.cols : (i+1)*m.cols]
}

// ToRows copies the matrix into a freshly allocated [][]float64.
func (m *Dense) ToRows() [][]float64 {
	out := core.NewGrid(m.rows, m.cols)
	for i := range out {
		copy(out[i], m.Row(i))
	}
	return out
}

// Clone returns a deep copy of m.
func (m *Dense) Clone() *Dense {
	return &Dense{rows: m.rows, cols: m.cols, data: append([]float64(nil), m.data...)}
}

// T returns the transpose of m as a new matrix.
func (m *Dense) T() *Dense {
	return Transpose(m)
}

// FrobeniusSquared returns Σ m[i,j]².
func (m *Dense) FrobeniusSquared() float64 {
	sq := make([]float64, len(m.data))
	vecmath.MulBlock(sq, m.data, m.data)

	var sum float64
	for _, v := range sq {
		sum += v
	}
	return sum
}

func (m *Dense) checkIndex(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d, %d) out of range for %dx%d", i, j, m.rows, m.cols))
	}
}

// Mul returns a×b. It requires a.Cols() == b.Rows().
//
// The product is accumulated row by row: for every a[i,k] the scaled row
// b[k,:] is added into the result row, which keeps all inner loops on
// contiguous memory.
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("matrix: mul with nil operand: %w", ErrShapeMismatch)
	}

	if a.cols != b.rows {
		return nil, fmt.Errorf("matrix: mul %dx%d by %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrShapeMismatch)
	}

	res := &Dense{rows: a.rows, cols: b.cols, data: make([]float64, a.rows*b.cols)}
	tmp := make([]float64, b.cols)

	for i := range a.rows {
		dst := res.Row(i)
		for k, av := range a.Row(i) {
			vecmath.ScaleBlock(tmp, b.Row(k), av)
			vecmath.AddBlockInPlace(dst, tmp)
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a new matrix.
func Transpose(m *Dense) *Dense {
	res := &Dense{rows: m.cols, cols: m.rows, data: make([]float64, len(m.data))}
	for i := range m.rows {
		base := i * m.cols
		for j := range m.cols {
			res.data[j*m.rows+i] = m.data[base+j]
		}
	}
	return res
}
