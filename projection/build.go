package projection

import "github.com/viant/randproj/scalar"

// Option customizes matrix construction.
type Option[T scalar.Real] func(*settings[T])

type settings[T scalar.Real] struct {
	source Source
	kernel scalar.Kernel[T]
}

// WithSource supplies the normal source used to draw matrix entries.
// Inject a seeded source for reproducible matrices; by default entries
// come from the shared process-wide stream.
func WithSource[T scalar.Real](src Source) Option[T] {
	return func(s *settings[T]) {
		s.source = src
	}
}

// WithKernel overrides the dot-product kernel used during
// orthonormalization and by Apply.
func WithKernel[T scalar.Real](k scalar.Kernel[T]) Option[T] {
	return func(s *settings[T]) {
		s.kernel = k
	}
}

// Build generates an nDstDim x nSrcDim projection matrix whose entries are
// independent draws from a standard normal source. Both dimensions must be
// positive; Build does not validate them beyond what allocation enforces.
//
// When orthogonalize is true the rows are orthonormalized in place with
// the modified Gram-Schmidt procedure, so the matrix projects onto an
// orthonormal basis of an nDstDim-dimensional subspace of the source
// space. When orthogonalize is false the rows are left as raw Gaussian
// samples, neither normalized nor mutually orthogonal, which already
// yields a Johnson-Lindenstrauss style distance-preserving embedding.
//
// If nDstDim exceeds nSrcDim the rows cannot be linearly independent;
// orthonormalization still runs and rows beyond the source dimensionality
// degenerate into normalized numerical noise. The configuration is not
// rejected.
func Build[T scalar.Real](nSrcDim, nDstDim int, orthogonalize bool, opts ...Option[T]) *Matrix[T] {
	cfg := settings[T]{source: sharedSource{}, kernel: scalar.Default[T]()}
	for _, opt := range opts {
		opt(&cfg)
	}

	rows := make([][]T, nDstDim)
	for i := range rows {
		row := make([]T, nSrcDim)
		for j := range row {
			row[j] = T(cfg.source.NormFloat64())
		}
		rows[i] = row
	}
	if orthogonalize {
		orthonormalize(rows, cfg.kernel)
	}
	return &Matrix[T]{rows: rows, srcDim: nSrcDim, dstDim: nDstDim, kernel: cfg.kernel}
}

// orthonormalize runs the modified Gram-Schmidt procedure over rows: row i
// is scaled to unit length, then immediately deflated out of every later
// row. Invariant: when row k is deflated against row i, row i is already
// unit length, so the subtraction needs no division by its norm. Deflating
// against finalized rows keeps the accumulated cancellation error smaller
// than projecting against raw vectors.
func orthonormalize[T scalar.Real](rows [][]T, kernel scalar.Kernel[T]) {
	for i := range rows {
		norm := kernel.Norm(rows[i])
		for n := range rows[i] {
			rows[i][n] /= norm
		}
		for k := i + 1; k < len(rows); k++ {
			coeff := kernel.Dot(rows[i], rows[k])
			for n := range rows[k] {
				rows[k][n] -= coeff * rows[i][n]
			}
		}
	}
}
