package testutil

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-wavelet/dsp/signal"
)

// NoiseGrid returns a rows×cols grid of uniform noise in [-amplitude, amplitude]
// from a generator seeded with seed.
func NoiseGrid(tb testing.TB, seed int64, amplitude float64, rows, cols int) [][]float64 {
	tb.Helper()
	g, err := signal.NewGenerator(signal.WithSeed(seed)).Noise(amplitude, rows, cols)
	if err != nil {
		tb.Fatalf("noise grid: %v", err)
	}
	return g
}

// SpectrogramGrid returns the generator's spectrogram-like rows×cols grid.
func SpectrogramGrid(tb testing.TB, rows, cols int) [][]float64 {
	tb.Helper()
	g, err := signal.NewGenerator().Spectrogram(rows, cols)
	if err != nil {
		tb.Fatalf("spectrogram grid: %v", err)
	}
	return g
}

// SequenceGrid returns a rows×cols grid holding 1, 2, 3, ... in row-major order.
func SequenceGrid(rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
		for j := range out[i] {
			out[i][j] = float64(i*cols + j + 1)
		}
	}
	return out
}

// GridEnergy returns Σ v² over grid.
func GridEnergy(grid [][]float64) float64 {
	var sum float64
	for _, row := range grid {
		for _, v := range row {
			sum += v * v
		}
	}
	return sum
}

// SizeName formats n for benchmark sub-test names.
func SizeName(n int) string {
	return "n=" + strconv.Itoa(n)
}
