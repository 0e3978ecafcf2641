package matrix_test

import (
	"fmt"

	"github.com/cwbudde/algo-wavelet/dsp/matrix"
)

func ExampleMul() {
	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.FromRows([][]float64{{0, 1}, {1, 0}})

	p, err := matrix.Mul(a, b)
	if err != nil {
		panic(err)
	}

	fmt.Println(p.ToRows())

	// Output:
	// [[2 1] [4 3]]
}
