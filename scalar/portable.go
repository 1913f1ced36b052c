package scalar

import "math"

// Portable is a pure-Go kernel for any Real type. It accumulates in
// float64 regardless of T.
type Portable[T Real] struct{}

// Dot returns the scalar product of a and b.
func (Portable[T]) Dot(a, b []T) T {
	var s float64
	for i := range a {
		s += float64(a[i]) * float64(b[i])
	}
	return T(s)
}

// Norm returns the Euclidean norm of v.
func (Portable[T]) Norm(v []T) T {
	var s float64
	for _, x := range v {
		s += float64(x) * float64(x)
	}
	return T(math.Sqrt(s))
}
