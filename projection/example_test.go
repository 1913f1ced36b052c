package projection_test

import (
	"fmt"
	"math/rand/v2"

	"github.com/viant/randproj/projection"
)

// ExampleBuild reduces 64-dimensional vectors to an 8-dimensional target
// space over an orthonormal random basis, using a seeded source so the
// matrix is reproducible.
func ExampleBuild() {
	src := rand.New(rand.NewPCG(42, 0))
	m := projection.Build[float32](64, 8, true, projection.WithSource[float32](src))

	image := m.Project(make([]float32, 64))
	fmt.Println(m.DstDim(), len(image))
	// Output: 8 8
}
