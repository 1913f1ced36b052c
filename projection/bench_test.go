package projection

import "testing"

func BenchmarkApply_Float32(b *testing.B) {
	const srcDim, dstDim = 512, 64

	rng := seeded(1, 1)
	m := Build[float32](srcDim, dstDim, true, WithSource[float32](rng))
	src := make([]float32, srcDim)
	for i := range src {
		src[i] = float32(rng.NormFloat64())
	}
	dst := make([]float32, dstDim)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Apply(src, dst)
	}
}

func BenchmarkBuild_Float32(b *testing.B) {
	const srcDim, dstDim = 512, 64

	rng := seeded(2, 2)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Build[float32](srcDim, dstDim, true, WithSource[float32](rng))
	}
}
