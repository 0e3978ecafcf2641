package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-wavelet/dsp/core"
)

// Generator creates deterministic test grids.
type Generator struct {
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed for noise grids.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured grid generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Seed returns the current noise seed.
func (g *Generator) Seed() int64 { return g.seed }

// SetSeed replaces the noise seed.
func (g *Generator) SetSeed(seed int64) { g.seed = seed }

func checkShape(kind string, rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%s shape must be positive: %dx%d: %w", kind, rows, cols, core.ErrInvalidDimensions)
	}
	return nil
}

// Spectrogram returns a rows×cols magnitude grid resembling a short-time
// spectrum: rows are frequency bins, columns are frames. Two partials drift
// slowly over a decaying noise floor, so most detail coefficients are small.
func (g *Generator) Spectrogram(rows, cols int) ([][]float64, error) {
	if err := checkShape("spectrogram", rows, cols); err != nil {
		return nil, err
	}

	out := core.NewGrid(rows, cols)
	for i, row := range out {
		f := float64(i) / float64(rows)
		for j := range row {
			t := float64(j) / float64(cols)
			v := 10 * math.Exp(-3*f)
			v += 40 * math.Exp(-sq((f-0.2-0.1*t)*12))
			v += 25 * math.Exp(-sq((f-0.55+0.05*math.Sin(6*t))*16))
			row[j] = v
		}
	}
	return out, nil
}

// Noise returns a rows×cols grid of deterministic uniform noise in
// [-amplitude, amplitude].
func (g *Generator) Noise(amplitude float64, rows, cols int) ([][]float64, error) {
	if err := checkShape("noise", rows, cols); err != nil {
		return nil, err
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}

	out := core.NewGrid(rows, cols)
	rng := rand.New(rand.NewSource(g.seed))
	for _, row := range out {
		for j := range row {
			row[j] = (rng.Float64()*2 - 1) * amplitude
		}
	}
	return out, nil
}

// Ramp returns a grid rising linearly from 0 at the top-left corner to
// amplitude at the bottom-right corner.
func (g *Generator) Ramp(amplitude float64, rows, cols int) ([][]float64, error) {
	if err := checkShape("ramp", rows, cols); err != nil {
		return nil, err
	}

	out := core.NewGrid(rows, cols)
	span := float64(rows + cols - 2)
	if span == 0 {
		return out, nil
	}
	for i, row := range out {
		for j := range row {
			row[j] = amplitude * float64(i+j) / span
		}
	}
	return out, nil
}

// Checkerboard returns alternating ±amplitude squares of cell×cell values.
func (g *Generator) Checkerboard(amplitude float64, cell, rows, cols int) ([][]float64, error) {
	if err := checkShape("checkerboard", rows, cols); err != nil {
		return nil, err
	}
	if cell <= 0 {
		return nil, fmt.Errorf("checkerboard cell must be > 0: %d", cell)
	}

	out := core.NewGrid(rows, cols)
	for i, row := range out {
		for j := range row {
			if (i/cell+j/cell)%2 == 0 {
				row[j] = amplitude
			} else {
				row[j] = -amplitude
			}
		}
	}
	return out, nil
}

// Normalize scales grid to the target peak amplitude and returns a new grid.
func Normalize(grid [][]float64, targetPeak float64) ([][]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}

	rows, cols, err := core.GridShape(grid)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("normalize input must not be empty: %w", core.ErrInvalidDimensions)
	}

	maxAbs := 0.0
	for _, row := range grid {
		for _, v := range row {
			maxAbs = math.Max(maxAbs, math.Abs(v))
		}
	}

	out := core.NewGrid(rows, cols)
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, row := range grid {
		for j, v := range row {
			out[i][j] = v * scale
		}
	}
	return out, nil
}

func sq(x float64) float64 { return x * x }
