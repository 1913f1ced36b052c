package projection

import "github.com/viant/randproj/scalar"

// Matrix is a random projection operator from an nSrcDim-dimensional
// source space to an nDstDim-dimensional target space. It holds one basis
// row per target dimension; every row has the source dimensionality.
//
// A Matrix is created by Build and never mutated afterwards. It is owned
// by the index structure that requested it and may be shared by any number
// of concurrent Apply calls.
type Matrix[T scalar.Real] struct {
	rows   [][]T
	srcDim int
	dstDim int
	kernel scalar.Kernel[T]
}

// SrcDim returns the dimensionality of vectors the matrix projects.
func (m *Matrix[T]) SrcDim() int {
	return m.srcDim
}

// DstDim returns the dimensionality of the projected image.
func (m *Matrix[T]) DstDim() int {
	return m.dstDim
}

// Row returns the i-th basis row. The slice aliases the matrix storage and
// must not be modified.
func (m *Matrix[T]) Row(i int) []T {
	return m.rows[i]
}
