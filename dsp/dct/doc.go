// Package dct implements the orthonormal type-II discrete cosine transform
// as a matrix multiplication.
//
// The basis for an N-point transform is
//
//	M[i,j] = w(i) · cos(π/N · i · (j + 0.5))
//	w(0) = 1/√N, w(i>0) = √(2/N)
//
// Because M is orthonormal its transpose is its inverse, so [Inverse]
// multiplies by Mᵀ. [Forward2D] and [Inverse2D] apply the transform
// separably along both axes of a grid, and [Plan] computes the same 1D
// coefficients through an FFT for power-of-two lengths.
package dct
