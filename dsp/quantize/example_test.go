package quantize_test

import (
	"fmt"

	"github.com/cwbudde/algo-wavelet/dsp/quantize"
)

func ExampleQuantize2D() {
	coeffs := [][]float64{{12, -0.5}, {3, 1}}

	zeroed, err := quantize.Quantize2D(coeffs, 2, 2, 1)
	if err != nil {
		panic(err)
	}

	fmt.Println(zeroed, coeffs)

	// Output:
	// 2 [[12 0] [3 0]]
}
