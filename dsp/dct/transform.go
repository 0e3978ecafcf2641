package dct

import (
	"fmt"

	"github.com/cwbudde/algo-wavelet/dsp/core"
	"github.com/cwbudde/algo-wavelet/dsp/matrix"
)

// Forward returns M × input. The input must be rectangular with exactly
// b.Cols() rows; the output has b.Rows() rows and the input's column count.
// The input is not modified.
func Forward(b *Basis, input [][]float64) ([][]float64, error) {
	if err := validateBasis(b); err != nil {
		return nil, err
	}

	return apply(b.m, input, "forward")
}

// Inverse returns Mᵀ × input, undoing [Forward] for a square basis.
func Inverse(b *Basis, input [][]float64) ([][]float64, error) {
	if err := validateBasis(b); err != nil {
		return nil, err
	}

	return apply(b.mt, input, "inverse")
}

func apply(m *matrix.Dense, input [][]float64, op string) ([][]float64, error) {
	if len(input) != m.Cols() {
		return nil, fmt.Errorf("dct: %s: input has %d rows, basis needs %d: %w",
			op, len(input), m.Cols(), core.ErrShapeMismatch)
	}

	x, err := matrix.FromRows(input)
	if err != nil {
		return nil, fmt.Errorf("dct: %s: %w", op, err)
	}

	y, err := matrix.Mul(m, x)
	if err != nil {
		return nil, fmt.Errorf("dct: %s: %w", op, err)
	}

	return y.ToRows(), nil
}

// Forward2D applies the separable 2D DCT-II: M_h · X · M_wᵀ, where M_h and
// M_w are the square bases for the grid height and width. Power-of-two axes
// run through an FFT [Plan]; other axes multiply by the basis matrix.
func Forward2D(input [][]float64) ([][]float64, error) {
	return separable(input, false)
}

// Inverse2D undoes [Forward2D]: M_hᵀ · Y · M_w.
func Inverse2D(input [][]float64) ([][]float64, error) {
	return separable(input, true)
}

func separable(input [][]float64, inverse bool) ([][]float64, error) {
	h, w, err := core.GridShape(input)
	if err != nil {
		return nil, fmt.Errorf("dct: 2d: %w", err)
	}
	if h == 0 || w == 0 {
		return nil, fmt.Errorf("dct: 2d: empty grid: %w", core.ErrInvalidDimensions)
	}

	out := core.NewGrid(h, w)
	if err := core.CopyGrid(out, input); err != nil {
		return nil, fmt.Errorf("dct: 2d: %w", err)
	}

	rows, err := NewPlan(w)
	if err != nil {
		return nil, err
	}
	if err := transformRows(out, rows, inverse); err != nil {
		return nil, fmt.Errorf("dct: 2d rows: %w", err)
	}

	cols, err := NewPlan(h)
	if err != nil {
		return nil, err
	}
	if err := transformCols(out, cols, inverse); err != nil {
		return nil, fmt.Errorf("dct: 2d columns: %w", err)
	}

	return out, nil
}

// transformRows replaces every row r of grid by its 1D transform, computed
// in place by the FFT plan or as r · Mᵀ (forward) and r · M (inverse).
func transformRows(grid [][]float64, p *Plan, inverse bool) error {
	if p.UsesFFT() {
		for _, row := range grid {
			if err := p.run(row, row, inverse); err != nil {
				return err
			}
		}
		return nil
	}

	right := p.basis.mt
	if inverse {
		right = p.basis.m
	}
	return mulGrid(grid, right, false)
}

// transformCols replaces every column c of grid by its 1D transform: a
// gathered column through the FFT plan, or M · X (forward) and Mᵀ · X
// (inverse).
func transformCols(grid [][]float64, p *Plan, inverse bool) error {
	if p.UsesFFT() {
		col := make([]float64, len(grid))
		for x := range grid[0] {
			for y := range grid {
				col[y] = grid[y][x]
			}
			if err := p.run(col, col, inverse); err != nil {
				return err
			}
			for y := range grid {
				grid[y][x] = col[y]
			}
		}
		return nil
	}

	left := p.basis.m
	if inverse {
		left = p.basis.mt
	}
	return mulGrid(grid, left, true)
}

// mulGrid multiplies grid as a matrix on the left (m · grid) or right
// (grid · m) and writes the product back into grid.
func mulGrid(grid [][]float64, m *matrix.Dense, left bool) error {
	x, err := matrix.FromRows(grid)
	if err != nil {
		return err
	}

	var y *matrix.Dense
	if left {
		y, err = matrix.Mul(m, x)
	} else {
		y, err = matrix.Mul(x, m)
	}
	if err != nil {
		return err
	}

	return core.CopyGrid(grid, y.ToRows())
}
