package projection

import "fmt"

// Apply projects src through the matrix and stores the image in dst:
// dst[i] is the dot product of basis row i with src. The call is a pure
// function of its inputs and performs no synchronization.
//
// The matrix must be non-empty, dst must have exactly DstDim elements and
// src exactly SrcDim elements. A mismatch means the matrix was built for
// different dimensions than it is now being applied to, which is a bug in
// the caller; it is reported through Fatal, not returned as an error.
func (m *Matrix[T]) Apply(src, dst []T) {
	if m == nil || len(m.rows) == 0 {
		Fatal("projection: apply on an empty projection matrix")
	}
	if len(m.rows) != len(dst) {
		Fatal(fmt.Sprintf("projection: matrix has %d rows, target vector has %d elements", len(m.rows), len(dst)))
	}
	for i, row := range m.rows {
		if len(row) != len(src) {
			Fatal(fmt.Sprintf("projection: row %d has %d columns, source vector has %d elements", i, len(row), len(src)))
		}
		dst[i] = m.kernel.Dot(row, src)
	}
}

// Project applies the matrix to src and returns a newly allocated image
// vector of DstDim elements.
func (m *Matrix[T]) Project(src []T) []T {
	dst := make([]T, m.dstDim)
	m.Apply(src, dst)
	return dst
}
