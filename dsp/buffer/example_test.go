package buffer_test

import (
	"fmt"

	"github.com/cwbudde/algo-wavelet/dsp/buffer"
)

func ExamplePool() {
	p := buffer.NewPool()

	b := p.Get(5)
	col, scratch := b.Split(2)
	copy(col, []float64{1, 2})
	scratch[0] = 3

	fmt.Println(b.Values())
	p.Put(b)

	// Output:
	// [1 2 3 0 0]
}
