package fidelity

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-wavelet/dsp/core"
)

const tolerance = 1e-10

func almostEqual(a, b, tol float64) bool {
	if math.IsInf(a, 1) && math.IsInf(b, 1) {
		return true
	}
	if math.IsInf(a, -1) && math.IsInf(b, -1) {
		return true
	}
	return math.Abs(a-b) <= tol
}

func TestCalculateExactMatch(t *testing.T) {
	x := [][]float64{{1, -2}, {3, 4}}
	s, err := Calculate(x, core.CloneGrid(x))
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	if s.Count != 4 || s.MSE != 0 || s.MaxAbsError != 0 {
		t.Fatalf("stats = %+v, want zero error", s)
	}
	if !math.IsInf(s.PSNR_dB, 1) || !math.IsInf(s.SNR_dB, 1) {
		t.Fatalf("PSNR/SNR = %v/%v, want +Inf", s.PSNR_dB, s.SNR_dB)
	}
	if s.EnergyRatio != 1 || s.Peak != 4 {
		t.Fatalf("energy ratio = %v, peak = %v", s.EnergyRatio, s.Peak)
	}
}

func TestCalculateKnownError(t *testing.T) {
	original := [][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}
	reconstructed := [][]float64{
		{1.5, 1.5, 3.5, 3.5},
		{5.5, 5.5, 7.5, 7.5},
		{9.5, 9.5, 11.5, 11.5},
		{13.5, 13.5, 15.5, 15.5},
	}

	s, err := Calculate(original, reconstructed)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"MSE", s.MSE, 0.25},
		{"RMSE", s.RMSE, 0.5},
		{"MaxAbsError", s.MaxAbsError, 0.5},
		{"Peak", s.Peak, 16},
		{"PSNR_dB", s.PSNR_dB, 20 * math.Log10(16/0.5)},
		{"SNR_dB", s.SNR_dB, 10 * math.Log10(1496/4.0)},
		{"EnergyRatio", s.EnergyRatio, 1492.0 / 1496.0},
	}

	for _, tt := range tests {
		if !almostEqual(tt.got, tt.want, tolerance) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	if s.MaxRow != 0 || s.MaxCol != 0 {
		t.Errorf("max position = (%d,%d), want first occurrence (0,0)", s.MaxRow, s.MaxCol)
	}
}

func TestCalculateEmptyAndZero(t *testing.T) {
	s, err := Calculate(nil, nil)
	if err != nil {
		t.Fatalf("Calculate(nil) error = %v", err)
	}
	if s.Count != 0 || s.EnergyRatio != 1 {
		t.Fatalf("empty stats = %+v", s)
	}

	s, err = Calculate([][]float64{{0, 0}}, [][]float64{{0, 1}})
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if !math.IsInf(s.EnergyRatio, 1) || !math.IsInf(s.SNR_dB, -1) {
		t.Fatalf("zero original stats = %+v", s)
	}
}

func TestCalculateShapeMismatch(t *testing.T) {
	if _, err := Calculate([][]float64{{1, 2}}, [][]float64{{1}}); !errors.Is(err, core.ErrShapeMismatch) {
		t.Fatalf("err = %v, want ErrShapeMismatch", err)
	}
	if _, err := Calculate([][]float64{{1, 2}, {3}}, nil); !errors.Is(err, core.ErrShapeMismatch) {
		t.Fatalf("err = %v, want ErrShapeMismatch", err)
	}
	if _, err := RMSE([][]float64{{1}}, [][]float64{{1}, {2}}); err == nil {
		t.Fatal("RMSE: expected error")
	}
}

func TestSparsity(t *testing.T) {
	if got := Sparsity([][]float64{{0, 1}, {0, 0}}); got != 0.75 {
		t.Fatalf("Sparsity = %v, want 0.75", got)
	}
	if got := Sparsity(nil); got != 0 {
		t.Fatalf("Sparsity(nil) = %v, want 0", got)
	}
}
