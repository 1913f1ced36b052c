package scalar

import "github.com/viant/vec/search"

// Float32Kernel reduces float32 vectors. Norm delegates to the vectorized
// magnitude from github.com/viant/vec; Dot accumulates in float64 to limit
// cancellation error on long vectors before narrowing the result.
type Float32Kernel struct{}

// Dot returns the scalar product of a and b.
func (Float32Kernel) Dot(a, b []float32) float32 {
	var s float64
	for i := range a {
		s += float64(a[i]) * float64(b[i])
	}
	return float32(s)
}

// Norm returns the Euclidean norm of v.
func (Float32Kernel) Norm(v []float32) float32 {
	return search.Float32s(v).Magnitude()
}
