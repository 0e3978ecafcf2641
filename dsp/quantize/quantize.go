// Package quantize implements hard-threshold quantization of coefficient
// arrays: every value whose magnitude is at or below the threshold becomes
// exactly zero. It is the only lossy step of the codec.
package quantize

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-wavelet/dsp/core"
)

// Quantize zeroes every value with |v| ≤ threshold in place and returns how
// many non-zero values were zeroed. Negative thresholds clamp to 0, so only
// exact zeros match.
func Quantize(values []float64, threshold float64) int {
	threshold = math.Max(threshold, 0)

	zeroed := 0
	for i, v := range values {
		if v != 0 && math.Abs(v) <= threshold {
			values[i] = 0
			zeroed++
		}
	}
	return zeroed
}

// Quantize2D applies [Quantize] to a height×width grid with an integer
// threshold.
func Quantize2D(data [][]float64, height, width, threshold int) (int, error) {
	if err := core.ValidateGrid(data, height, width); err != nil {
		return 0, fmt.Errorf("quantize: 2d: %w", err)
	}

	t := core.Threshold(threshold)
	zeroed := 0
	for _, row := range data {
		zeroed += Quantize(row, t)
	}
	return zeroed, nil
}

// Quantize3D applies [Quantize] to an l×w×h volume with an integer threshold.
func Quantize3D(data [][][]float64, l, w, h, threshold int) (int, error) {
	if err := core.ValidateVolume(data, l, w, h); err != nil {
		return 0, fmt.Errorf("quantize: 3d: %w", err)
	}

	t := core.Threshold(threshold)
	zeroed := 0
	for _, layer := range data {
		for _, row := range layer {
			zeroed += Quantize(row, t)
		}
	}
	return zeroed, nil
}

// CountZeros returns the number of exact zeros in data.
func CountZeros(data [][]float64) int {
	n := 0
	for _, row := range data {
		for _, v := range row {
			if v == 0 {
				n++
			}
		}
	}
	return n
}
