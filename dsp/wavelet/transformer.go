package wavelet

import (
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-wavelet/dsp/core"
	"github.com/cwbudde/algo-wavelet/internal/cpu"
)

// transformer carries the per-call configuration and kernel choice.
type transformer struct {
	cfg    core.TransformConfig
	vector bool
}

func newTransformer(opts []core.TransformOption) transformer {
	return transformer{
		cfg:    core.ApplyTransformOptions(opts...),
		vector: cpu.VectorKernels(),
	}
}

func (t transformer) useVector(n int) bool {
	return t.vector && n >= t.cfg.MinVectorSpan
}

// forward runs one forward step over x. scratch needs 2·len(x) values.
func (t transformer) forward(x, scratch []float64) {
	if len(x) < 2 {
		return
	}
	if t.useVector(len(x)) {
		forwardVector(x, scratch)
		return
	}
	forwardScalar(x, scratch)
}

// inverse runs one inverse step over x. scratch needs 2·len(x) values.
func (t transformer) inverse(x, scratch []float64) {
	if len(x) < 2 {
		return
	}
	if t.useVector(len(x)) {
		inverseVector(x, scratch)
		return
	}
	inverseScalar(x, scratch)
}

// forEach splits [0, n) into contiguous chunks and runs fn on each, fanning
// out over cfg.Workers goroutines. It returns after every chunk is done.
func (t transformer) forEach(n int, fn func(lo, hi int)) {
	workers := min(t.cfg.Workers, n)
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}

// rows applies step to the first e.Width values of rows [0, e.Height).
func (t transformer) rows(data [][]float64, e Extent, step func(x, scratch []float64)) {
	if e.Width < 2 {
		return
	}

	t.forEach(e.Height, func(lo, hi int) {
		buf := scratchPool.Get(2 * e.Width)
		defer scratchPool.Put(buf)

		for y := lo; y < hi; y++ {
			step(data[y][:e.Width], buf.Values())
		}
	})
}

// cols applies step to the first e.Height values of columns [0, e.Width).
func (t transformer) cols(data [][]float64, e Extent, step func(x, scratch []float64)) {
	if e.Height < 2 {
		return
	}

	t.forEach(e.Width, func(lo, hi int) {
		buf := scratchPool.Get(3 * e.Height)
		defer scratchPool.Put(buf)

		col, work := buf.Split(e.Height)
		for x := lo; x < hi; x++ {
			for y := range e.Height {
				col[y] = data[y][x]
			}
			step(col, work)
			for y := range e.Height {
				data[y][x] = col[y]
			}
		}
	})
}

func (t transformer) forwardLevel(data [][]float64, e Extent) {
	t.rows(data, e, t.forward)
	t.cols(data, e, t.forward)
}

func (t transformer) inverseLevel(data [][]float64, e Extent) {
	t.cols(data, e, t.inverse)
	t.rows(data, e, t.inverse)
}
