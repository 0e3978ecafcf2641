package codec

import (
	"fmt"

	"github.com/cwbudde/algo-wavelet/dsp/core"
	"github.com/cwbudde/algo-wavelet/dsp/quantize"
	"github.com/cwbudde/algo-wavelet/dsp/wavelet"
)

// Layout records the extents a [Compress] call decomposed, so [Decompress]
// can replay them in reverse.
type Layout struct {
	Height int
	Width  int

	// Levels holds the extent of every applied forward level, finest first.
	Levels []wavelet.Extent
}

// Applied returns the number of forward levels that were performed.
func (l *Layout) Applied() int { return len(l.Levels) }

// Report summarizes one compression.
type Report struct {
	RequestedLevels int
	AppliedLevels   int
	Threshold       int

	// Extent is the approximation extent reached after the forward pass.
	Extent wavelet.Extent

	Coefficients int
	Zeroed       int // non-zero coefficients removed by quantization
	Zeros        int // zero coefficients after quantization

	// Energy before and after quantization, in the transform domain.
	CoefficientEnergy float64
	RetainedEnergy    float64
}

// Sparsity returns the fraction of coefficients that are zero.
func (r Report) Sparsity() float64 {
	if r.Coefficients == 0 {
		return 0
	}
	return float64(r.Zeros) / float64(r.Coefficients)
}

// EnergyRetention returns RetainedEnergy / CoefficientEnergy, or 1 for an
// all-zero grid.
func (r Report) EnergyRetention() float64 {
	if r.CoefficientEnergy == 0 {
		return 1
	}
	return r.RetainedEnergy / r.CoefficientEnergy
}

// Compress runs up to level forward Haar levels over data in place and then
// quantizes every coefficient with threshold. Levels stop early once either
// active extent reaches 1. A negative level is treated as 0.
func Compress(data [][]float64, level, threshold int, opts ...core.TransformOption) (*Layout, Report, error) {
	h, w, err := core.GridShape(data)
	if err != nil {
		return nil, Report{}, fmt.Errorf("codec: compress: %w", err)
	}

	level = max(level, 0)
	layout := &Layout{Height: h, Width: w}
	ext := wavelet.Extent{Width: w, Height: h}

	for remaining := level; remaining > 0 && ext.Width > 1 && ext.Height > 1; remaining-- {
		if err := wavelet.ForwardLevel2D(data, ext, opts...); err != nil {
			return nil, Report{}, fmt.Errorf("codec: compress: %w", err)
		}
		layout.Levels = append(layout.Levels, ext)
		ext = ext.Next()
	}

	rep := Report{
		RequestedLevels:   level,
		AppliedLevels:     layout.Applied(),
		Threshold:         threshold,
		Extent:            ext,
		Coefficients:      h * w,
		CoefficientEnergy: core.Energy(data),
	}

	rep.Zeroed, err = quantize.Quantize2D(data, h, w, threshold)
	if err != nil {
		return nil, Report{}, fmt.Errorf("codec: compress: %w", err)
	}
	rep.Zeros = quantize.CountZeros(data)
	rep.RetainedEnergy = core.Energy(data)

	return layout, rep, nil
}

// Decompress reconstructs data in place from coefficients produced by
// [Compress], applying exactly layout.Applied() inverse levels.
func Decompress(data [][]float64, layout *Layout, opts ...core.TransformOption) error {
	if layout == nil {
		return fmt.Errorf("codec: decompress: nil layout: %w", core.ErrShapeMismatch)
	}

	if err := core.ValidateGrid(data, layout.Height, layout.Width); err != nil {
		return fmt.Errorf("codec: decompress: %w", err)
	}

	for i := len(layout.Levels) - 1; i >= 0; i-- {
		if err := wavelet.InverseLevel2D(data, layout.Levels[i], opts...); err != nil {
			return fmt.Errorf("codec: decompress: %w", err)
		}
	}

	return nil
}

// CompressDecompress2D compresses data with [Compress] and immediately
// reconstructs it with [Decompress]. data holds the lossy reconstruction
// afterwards. With threshold 0 the output equals the input up to rounding.
func CompressDecompress2D(data [][]float64, level, threshold int, opts ...core.TransformOption) (Report, error) {
	layout, rep, err := Compress(data, level, threshold, opts...)
	if err != nil {
		return Report{}, err
	}

	if err := Decompress(data, layout, opts...); err != nil {
		return Report{}, err
	}

	return rep, nil
}
