package scalar

// Real enumerates the element types a projection matrix can hold.
type Real interface {
	~float32 | ~float64
}

// Kernel computes single-pass reductions over equal-length vectors. Both
// operations are O(n) and allocation free. Callers guarantee that a and b
// have the same length; kernels do not re-validate.
type Kernel[T Real] interface {
	// Dot returns the scalar product of a and b.
	Dot(a, b []T) T

	// Norm returns the Euclidean norm of v, i.e. the square root of the
	// self dot product.
	Norm(v []T) T
}

// Default returns the kernel best suited to T: the SIMD-backed kernel for
// float32, the gonum-backed kernel for float64, and the portable kernel
// for named float types.
func Default[T Real]() Kernel[T] {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(Float32Kernel{}).(Kernel[T])
	case float64:
		return any(Float64Kernel{}).(Kernel[T])
	default:
		return Portable[T]{}
	}
}
