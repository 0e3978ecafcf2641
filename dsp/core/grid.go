package core

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// NewGrid allocates a zeroed rows×cols grid backed by one contiguous slice.
func NewGrid(rows, cols int) [][]float64 {
	if rows <= 0 || cols <= 0 {
		return nil
	}

	backing := make([]float64, rows*cols)
	grid := make([][]float64, rows)
	for i := range grid {
		grid[i] = backing[i*cols : (i+1)*cols : (i+1)*cols]
	}

	return grid
}

// CloneGrid returns a deep copy of grid.
func CloneGrid(grid [][]float64) [][]float64 {
	if grid == nil {
		return nil
	}

	out := make([][]float64, len(grid))
	for i, row := range grid {
		out[i] = append([]float64(nil), row...)
	}

	return out
}

// CopyGrid copies src into dst. Both grids must have the same shape.
func CopyGrid(dst, src [][]float64) error {
	if len(dst) != len(src) {
		return fmt.Errorf("copy grid: %d rows into %d: %w", len(src), len(dst), ErrShapeMismatch)
	}

	for i := range src {
		if len(dst[i]) != len(src[i]) {
			return fmt.Errorf("copy grid: row %d has %d values, want %d: %w",
				i, len(src[i]), len(dst[i]), ErrShapeMismatch)
		}
		copy(dst[i], src[i])
	}

	return nil
}

// GridShape returns the shape of a rectangular grid. A ragged grid fails with
// ErrShapeMismatch. An empty grid has shape (0, 0).
func GridShape(grid [][]float64) (rows, cols int, err error) {
	rows = len(grid)
	if rows == 0 {
		return 0, 0, nil
	}

	cols = len(grid[0])
	for i, row := range grid {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), cols, ErrShapeMismatch)
		}
	}

	return rows, cols, nil
}

// ValidateGrid checks that grid has exactly height rows of width values.
func ValidateGrid(grid [][]float64, height, width int) error {
	if height < 0 || width < 0 {
		return fmt.Errorf("negative extent %dx%d: %w", height, width, ErrInvalidDimensions)
	}

	if len(grid) != height {
		return fmt.Errorf("grid has %d rows, declared %d: %w", len(grid), height, ErrShapeMismatch)
	}

	for i, row := range grid {
		if len(row) != width {
			return fmt.Errorf("row %d has %d values, declared %d: %w", i, len(row), width, ErrShapeMismatch)
		}
	}

	return nil
}

// ValidateVolume checks that volume is shaped [l][w][h].
func ValidateVolume(volume [][][]float64, l, w, h int) error {
	if len(volume) != l {
		return fmt.Errorf("volume has %d layers, declared %d: %w", len(volume), l, ErrShapeMismatch)
	}

	for i, layer := range volume {
		if err := ValidateGrid(layer, w, h); err != nil {
			return fmt.Errorf("layer %d: %w", i, err)
		}
	}

	return nil
}

// Energy returns Σ v² over all values of grid.
func Energy(grid [][]float64) float64 {
	var (
		scratch []float64
		total   float64
	)

	for _, row := range grid {
		scratch = EnsureLen(scratch, len(row))
		vecmath.MulBlock(scratch, row, row)
		for _, sq := range scratch {
			total += sq
		}
	}

	return total
}
