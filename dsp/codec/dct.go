package codec

import (
	"fmt"

	"github.com/cwbudde/algo-wavelet/dsp/core"
	"github.com/cwbudde/algo-wavelet/dsp/dct"
	"github.com/cwbudde/algo-wavelet/dsp/quantize"
	"github.com/cwbudde/algo-wavelet/dsp/wavelet"
)

// CompressDecompressDCT2D runs the round trip through the separable DCT-II:
// forward transform, quantization, inverse transform. The reconstruction is
// copied back into data. Level fields of the report are zero.
func CompressDecompressDCT2D(data [][]float64, threshold int) (Report, error) {
	h, w, err := core.GridShape(data)
	if err != nil {
		return Report{}, fmt.Errorf("codec: dct: %w", err)
	}

	rep := Report{Threshold: threshold, Extent: wavelet.Extent{Width: w, Height: h}, Coefficients: h * w}
	if h == 0 || w == 0 {
		return rep, nil
	}

	coeffs, err := dct.Forward2D(data)
	if err != nil {
		return Report{}, fmt.Errorf("codec: dct: %w", err)
	}

	rep.CoefficientEnergy = core.Energy(coeffs)
	rep.Zeroed, err = quantize.Quantize2D(coeffs, h, w, threshold)
	if err != nil {
		return Report{}, fmt.Errorf("codec: dct: %w", err)
	}
	rep.Zeros = quantize.CountZeros(coeffs)
	rep.RetainedEnergy = core.Energy(coeffs)

	back, err := dct.Inverse2D(coeffs)
	if err != nil {
		return Report{}, fmt.Errorf("codec: dct: %w", err)
	}

	if err := core.CopyGrid(data, back); err != nil {
		return Report{}, fmt.Errorf("codec: dct: %w", err)
	}

	return rep, nil
}
