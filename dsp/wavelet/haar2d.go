package wavelet

import (
	"fmt"

	"github.com/cwbudde/algo-wavelet/dsp/core"
)

// ForwardLevel2D applies one forward level over extent e of data: every
// active row's first e.Width values (when e.Width > 1), then every active
// column's first e.Height values (when e.Height > 1).
func ForwardLevel2D(data [][]float64, e Extent, opts ...core.TransformOption) error {
	if err := checkExtent(data, e); err != nil {
		return fmt.Errorf("wavelet: forward level: %w", err)
	}

	newTransformer(opts).forwardLevel(data, e)
	return nil
}

// InverseLevel2D undoes [ForwardLevel2D] for the same extent: columns first,
// then rows.
func InverseLevel2D(data [][]float64, e Extent, opts ...core.TransformOption) error {
	if err := checkExtent(data, e); err != nil {
		return fmt.Errorf("wavelet: inverse level: %w", err)
	}

	newTransformer(opts).inverseLevel(data, e)
	return nil
}

// Forward2D decomposes the height×width grid in place until both active
// extents reach 1. It returns the number of levels applied.
func Forward2D(data [][]float64, height, width int, opts ...core.TransformOption) (int, error) {
	if err := core.ValidateGrid(data, height, width); err != nil {
		return 0, fmt.Errorf("wavelet: forward 2d: %w", err)
	}

	t := newTransformer(opts)
	levels := Pyramid(width, height, -1)
	for _, e := range levels {
		t.forwardLevel(data, e)
	}
	return len(levels), nil
}

// Inverse2D reconstructs a grid decomposed by [Forward2D] in place.
func Inverse2D(data [][]float64, height, width int, opts ...core.TransformOption) (int, error) {
	if err := core.ValidateGrid(data, height, width); err != nil {
		return 0, fmt.Errorf("wavelet: inverse 2d: %w", err)
	}

	t := newTransformer(opts)
	levels := Pyramid(width, height, -1)
	for i := len(levels) - 1; i >= 0; i-- {
		t.inverseLevel(data, levels[i])
	}
	return len(levels), nil
}

func checkExtent(data [][]float64, e Extent) error {
	if e.Width < 1 || e.Height < 1 {
		return fmt.Errorf("extent %dx%d: %w", e.Width, e.Height, core.ErrInvalidDimensions)
	}
	if e.Height > len(data) {
		return fmt.Errorf("extent height %d exceeds %d rows: %w", e.Height, len(data), core.ErrShapeMismatch)
	}
	for y := range e.Height {
		if len(data[y]) < e.Width {
			return fmt.Errorf("row %d has %d values, extent needs %d: %w", y, len(data[y]), e.Width, core.ErrShapeMismatch)
		}
	}
	return nil
}
