// Package buffer provides reusable float64 scratch buffers and a pool for
// the per-call working memory of the grid transforms. Transform functions
// take raw []float64 slices; Buffer only manages allocation and reuse.
package buffer
