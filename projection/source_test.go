package projection

import "testing"

func TestBuild_SeededSourceReproducible(t *testing.T) {
	const srcDim, dstDim = 12, 6

	a := Build[float32](srcDim, dstDim, true, WithSource[float32](seeded(7, 11)))
	b := Build[float32](srcDim, dstDim, true, WithSource[float32](seeded(7, 11)))
	for i := 0; i < dstDim; i++ {
		for j := 0; j < srcDim; j++ {
			if a.Row(i)[j] != b.Row(i)[j] {
				t.Fatalf("entry (%d, %d) differs: %v vs %v", i, j, a.Row(i)[j], b.Row(i)[j])
			}
		}
	}
}

func TestSharedSource_Advances(t *testing.T) {
	var src sharedSource
	a, b := src.NormFloat64(), src.NormFloat64()
	if a == b {
		t.Fatalf("two consecutive draws returned the same value %v", a)
	}
}
