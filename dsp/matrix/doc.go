// Package matrix provides a small dense row-major float64 matrix used by the
// orthogonal transforms.
//
// A Dense has a fixed shape chosen at construction. Multiplication and
// transposition allocate a new result and never mutate their operands.
// Shape errors are reported with ErrShapeMismatch; index errors panic, in the
// same way slice indexing does.
package matrix
