// Package wavelet implements the orthonormal Haar wavelet on 1D spans and
// as a separable multi-level pyramid on 2D grids.
//
// # 1D step
//
// One forward step over a span of length n writes the normalized pairwise
// sums to the first n/2 positions and the differences to the next n/2:
//
//	out[k]       = (x[2k] + x[2k+1]) / √2
//	out[k + n/2] = (x[2k] − x[2k+1]) / √2
//
// [InverseStep] is the exact algebraic inverse. For odd n the trailing sample
// is left in place by both directions.
//
// # 2D pyramid
//
// Each level transforms the rows of the active extent, then its columns, and
// halves the extent (integer division, floored at 1). The inverse replays
// the forward extents in reverse and processes columns before rows, so odd
// and non-power-of-two shapes round-trip exactly.
//
// All transforms work in place on caller-owned [][]float64 grids. Rows and
// columns of one level are independent; [core.WithWorkers] fans them out
// over goroutines.
package wavelet
