package wavelet

import (
	"testing"

	"github.com/cwbudde/algo-wavelet/dsp/core"
	"github.com/cwbudde/algo-wavelet/internal/testutil"
)

func BenchmarkForward2D(b *testing.B) {
	for _, n := range []int{64, 256} {
		x := testutil.SpectrogramGrid(b, n, n)

		b.Run("serial/"+testutil.SizeName(n), func(b *testing.B) {
			data := core.CloneGrid(x)
			b.ReportAllocs()
			for b.Loop() {
				_, _ = Forward2D(data, n, n)
				_, _ = Inverse2D(data, n, n)
			}
		})

		b.Run("workers4/"+testutil.SizeName(n), func(b *testing.B) {
			data := core.CloneGrid(x)
			b.ReportAllocs()
			for b.Loop() {
				_, _ = Forward2D(data, n, n, core.WithWorkers(4))
				_, _ = Inverse2D(data, n, n, core.WithWorkers(4))
			}
		})
	}
}

func BenchmarkForwardStep(b *testing.B) {
	x := testutil.NoiseGrid(b, 1, 1, 1, 4096)[0]
	scratch := make([]float64, 2*len(x))

	b.Run("scalar", func(b *testing.B) {
		for b.Loop() {
			forwardScalar(x, scratch)
		}
	})

	b.Run("vector", func(b *testing.B) {
		for b.Loop() {
			forwardVector(x, scratch)
		}
	})
}
