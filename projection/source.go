package projection

import "math/rand/v2"

// Source yields samples from a standard normal distribution (mean 0,
// variance 1). *rand.Rand from math/rand/v2 satisfies it, so a seeded
// generator can be injected for reproducible matrices.
type Source interface {
	NormFloat64() float64
}

// sharedSource draws from the process-wide math/rand/v2 stream. The
// runtime seeds that stream from OS entropy on first use, so matrices
// built without an explicit Source are never reproducible: successive
// Build calls consume disjoint sections of one shared stream. Draws are
// safe under concurrency, but concurrent Build calls interleave them;
// construction is rare relative to Apply, so draws are not serialized per
// call.
type sharedSource struct{}

func (sharedSource) NormFloat64() float64 {
	return rand.NormFloat64()
}
