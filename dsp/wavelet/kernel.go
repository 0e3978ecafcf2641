package wavelet

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wavelet/dsp/buffer"
)

const invSqrt2 = 1 / math.Sqrt2

// scratchPool backs the working memory of every step and row/column pass.
var scratchPool = buffer.NewPool()

// forwardScalar runs one forward step over x. scratch needs len(x) values.
func forwardScalar(x, scratch []float64) {
	m := len(x) / 2
	s := scratch[:2*m]
	copy(s, x[:2*m])
	for k := range m {
		a, b := s[2*k], s[2*k+1]
		x[k] = (a + b) / math.Sqrt2
		x[k+m] = (a - b) / math.Sqrt2
	}
}

// inverseScalar undoes forwardScalar. scratch needs len(x) values.
func inverseScalar(x, scratch []float64) {
	m := len(x) / 2
	s := scratch[:2*m]
	copy(s, x[:2*m])
	for k := range m {
		a, d := s[k], s[m+k]
		x[2*k] = (a + d) / math.Sqrt2
		x[2*k+1] = (a - d) / math.Sqrt2
	}
}

// forwardVector is forwardScalar expressed as block operations on the
// deinterleaved halves. scratch needs len(x) values.
func forwardVector(x, scratch []float64) {
	m := len(x) / 2
	even, odd := scratch[:m], scratch[m:2*m]
	for k := range m {
		even[k] = x[2*k]
		odd[k] = x[2*k+1]
	}

	lo := x[:m]
	copy(lo, even)
	vecmath.AddBlockInPlace(lo, odd)
	vecmath.ScaleBlock(lo, lo, invSqrt2)

	hi := x[m : 2*m]
	vecmath.ScaleBlock(hi, odd, -1)
	vecmath.AddBlockInPlace(hi, even)
	vecmath.ScaleBlock(hi, hi, invSqrt2)
}

// inverseVector undoes forwardVector. scratch needs 2·len(x) values.
func inverseVector(x, scratch []float64) {
	m := len(x) / 2
	a, d := scratch[:m], scratch[m:2*m]
	sum, diff := scratch[2*m:3*m], scratch[3*m:4*m]
	copy(a, x[:m])
	copy(d, x[m:2*m])

	copy(sum, a)
	vecmath.AddBlockInPlace(sum, d)
	vecmath.ScaleBlock(sum, sum, invSqrt2)

	vecmath.ScaleBlock(diff, d, -1)
	vecmath.AddBlockInPlace(diff, a)
	vecmath.ScaleBlock(diff, diff, invSqrt2)

	for k := range m {
		x[2*k] = sum[k]
		x[2*k+1] = diff[k]
	}
}
