// Package fidelity measures how closely a reconstructed grid matches its
// original.
package fidelity

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-wavelet/dsp/core"
)

// Stats holds reconstruction-quality statistics for one grid pair.
//
//nolint:revive
type Stats struct {
	Count       int
	MSE         float64
	RMSE        float64
	MaxAbsError float64
	MaxRow      int
	MaxCol      int
	Peak        float64 // max |original|
	PSNR_dB     float64 // 20·log10(Peak / RMSE); +Inf for an exact match
	SNR_dB      float64 // 10·log10(original energy / error energy)
	EnergyRatio float64 // reconstructed energy / original energy
}

// powerTodB converts a power ratio to decibels. Returns +Inf when den is zero
// and -Inf when num is zero.
func powerTodB(num, den float64) float64 {
	if den == 0 {
		return math.Inf(1)
	}
	if num == 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(num/den)
}

// Calculate compares reconstructed against original in a single pass. Both
// grids must share the same rectangular shape.
func Calculate(original, reconstructed [][]float64) (Stats, error) {
	rows, cols, err := core.GridShape(original)
	if err != nil {
		return Stats{}, fmt.Errorf("fidelity: original: %w", err)
	}
	if err := core.ValidateGrid(reconstructed, rows, cols); err != nil {
		return Stats{}, fmt.Errorf("fidelity: reconstructed: %w", err)
	}

	n := rows * cols
	if n == 0 {
		return Stats{PSNR_dB: math.Inf(1), SNR_dB: math.Inf(1), EnergyRatio: 1}, nil
	}

	var (
		s       = Stats{Count: n}
		errSq   float64
		origSq  float64
		reconSq float64
	)

	for i := range original {
		for j, x := range original[i] {
			y := reconstructed[i][j]
			d := math.Abs(x - y)

			errSq += d * d
			origSq += x * x
			reconSq += y * y

			if d > s.MaxAbsError {
				s.MaxAbsError = d
				s.MaxRow, s.MaxCol = i, j
			}
			s.Peak = math.Max(s.Peak, math.Abs(x))
		}
	}

	s.MSE = errSq / float64(n)
	s.RMSE = math.Sqrt(s.MSE)
	s.PSNR_dB = powerTodB(s.Peak*s.Peak, s.MSE)
	s.SNR_dB = powerTodB(origSq, errSq)

	if origSq == 0 {
		s.EnergyRatio = 1
		if reconSq != 0 {
			s.EnergyRatio = math.Inf(1)
		}
	} else {
		s.EnergyRatio = reconSq / origSq
	}

	return s, nil
}

// RMSE returns the root-mean-square error between two equally shaped grids.
func RMSE(original, reconstructed [][]float64) (float64, error) {
	s, err := Calculate(original, reconstructed)
	if err != nil {
		return 0, err
	}
	return s.RMSE, nil
}

// Sparsity returns the fraction of exactly zero values in grid.
func Sparsity(grid [][]float64) float64 {
	var n, zeros int
	for _, row := range grid {
		n += len(row)
		for _, v := range row {
			if v == 0 {
				zeros++
			}
		}
	}

	if n == 0 {
		return 0
	}
	return float64(zeros) / float64(n)
}
