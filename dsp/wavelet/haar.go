package wavelet

// ForwardStep applies one forward Haar step to x in place.
func ForwardStep(x []float64) {
	t := newTransformer(nil)
	buf := scratchPool.Get(2 * len(x))
	defer scratchPool.Put(buf)

	t.forward(x, buf.Values())
}

// InverseStep applies one inverse Haar step to x in place, undoing
// [ForwardStep].
func InverseStep(x []float64) {
	t := newTransformer(nil)
	buf := scratchPool.Get(2 * len(x))
	defer scratchPool.Put(buf)

	t.inverse(x, buf.Values())
}

// Forward1D applies the full dyadic decomposition to x in place: a forward
// step over the whole span, then over the approximation prefix, halving the
// active length until it is at most 1. It returns the number of levels.
func Forward1D(x []float64) int {
	t := newTransformer(nil)
	buf := scratchPool.Get(2 * len(x))
	defer scratchPool.Put(buf)

	lengths := spans(len(x))
	for _, n := range lengths {
		t.forward(x[:n], buf.Values())
	}
	return len(lengths)
}

// Inverse1D undoes [Forward1D], replaying the same active lengths from the
// coarsest to the finest.
func Inverse1D(x []float64) int {
	t := newTransformer(nil)
	buf := scratchPool.Get(2 * len(x))
	defer scratchPool.Put(buf)

	lengths := spans(len(x))
	for i := len(lengths) - 1; i >= 0; i-- {
		t.inverse(x[:lengths[i]], buf.Values())
	}
	return len(lengths)
}
