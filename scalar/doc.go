// Package scalar provides the dot-product and norm kernels consumed by the
// projection package. The kernels are pluggable so the orthonormalization
// and projection code stays independent of how the reduction is
// accelerated: the float32 kernel leans on the vectorized routines of
// github.com/viant/vec, the float64 kernel on gonum, and a portable
// pure-Go kernel covers named float types.
package scalar
