package scalar

import "gonum.org/v1/gonum/floats"

// Float64Kernel reduces float64 vectors via gonum's assembly-backed
// routines.
type Float64Kernel struct{}

// Dot returns the scalar product of a and b.
func (Float64Kernel) Dot(a, b []float64) float64 {
	return floats.Dot(a, b)
}

// Norm returns the Euclidean norm of v.
func (Float64Kernel) Norm(v []float64) float64 {
	return floats.Norm(v, 2)
}
