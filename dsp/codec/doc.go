// Package codec drives the lossy compress/decompress round trip.
//
// [CompressDecompress2D] decomposes a grid with the 2D Haar pyramid for up to
// the requested number of levels, quantizes the coefficients once with a
// hard threshold, and reconstructs the grid in place with exactly as many
// inverse levels as forward levels were applied. A level stops early once
// either active extent reaches 1; the inverse mirrors that reduced count.
//
// [Compress] and [Decompress] expose the two halves separately, linked by a
// [Layout]. [CompressDecompressDCT2D] runs the same round trip through the
// separable DCT-II instead of the wavelet, and [CompressDecompress3D] applies
// the 2D round trip to every layer of a volume.
package codec
