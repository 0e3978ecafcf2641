package dct

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-wavelet/dsp/core"
	"github.com/cwbudde/algo-wavelet/dsp/matrix"
)

// Basis is an immutable rows×cols DCT-II basis.
type Basis struct {
	m  *matrix.Dense
	mt *matrix.Dense
}

// NewBasis builds the rows×cols DCT-II basis. Row 0 is the DC vector scaled
// by 1/√cols; the remaining rows are scaled by √(2/cols). For rows == cols
// the basis is orthonormal.
func NewBasis(rows, cols int) (*Basis, error) {
	m, err := matrix.New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("dct: basis: %w", err)
	}

	n := float64(cols)
	for i := range rows {
		w := weight(i, cols)
		row := m.Row(i)
		for j := range row {
			row[j] = w * math.Cos(math.Pi/n*float64(i)*(float64(j)+0.5))
		}
	}

	return &Basis{m: m, mt: m.T()}, nil
}

// Rows returns the number of basis vectors.
func (b *Basis) Rows() int { return b.m.Rows() }

// Cols returns the length of each basis vector.
func (b *Basis) Cols() int { return b.m.Cols() }

// At returns M[i,j].
func (b *Basis) At(i, j int) float64 { return b.m.At(i, j) }

// Matrix returns a copy of the basis matrix.
func (b *Basis) Matrix() *matrix.Dense { return b.m.Clone() }

// Transpose returns a copy of Mᵀ.
func (b *Basis) Transpose() *matrix.Dense { return b.mt.Clone() }

// weight returns w(i) for an n-point transform.
func weight(i, n int) float64 {
	if i == 0 {
		return 1 / math.Sqrt(float64(n))
	}
	return math.Sqrt(2 / float64(n))
}

func validateBasis(b *Basis) error {
	if b == nil || b.m == nil {
		return fmt.Errorf("dct: nil basis: %w", core.ErrInvalidDimensions)
	}
	return nil
}
