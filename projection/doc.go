// Package projection implements Gaussian random projections for
// dimensionality reduction in approximate similarity search. Build
// generates a projection matrix whose entries are independent standard
// normal draws; the basis can optionally be orthonormalized in place with
// the modified Gram-Schmidt procedure. Apply maps a source vector to its
// image in the target space with one dot product per target dimension.
//
// A built matrix is immutable, so any number of Apply calls may share it
// without locking. Dimension mismatches between a matrix and the vectors
// it is applied to are caller bugs and are reported through the fatal
// diagnostic path rather than error values.
package projection
