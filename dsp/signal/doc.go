// Package signal generates deterministic 2D test grids for exercising the
// wavelet and DCT codecs.
package signal
