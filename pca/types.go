// Package pca: options and result types.

package pca

import "gonum.org/v1/gonum/mat"

// Default numerical policy. The upstream analyses rely on library defaults
// here; these values are chosen explicitly so the contract is documented
// and stable.
const (
	// DefaultMaxIter caps the number of power iterations so the fitter
	// terminates even on pathological inputs.
	DefaultMaxIter = 1000

	// DefaultTol stops iterating once the top singular-value estimates
	// change by less than this fraction of the largest singular value.
	DefaultTol = 1e-5

	// DefaultDegeneracyRatio flags rank deficiency: the rank-th singular
	// value must exceed this fraction of the largest one.
	DefaultDegeneracyRatio = 1e-10

	// DefaultOversample is the number of extra probe directions carried
	// through the iteration to stabilise the leading subspace estimate.
	DefaultOversample = 10
)

// Options configures Fit.
//
//   - Rank            — P, the number of basis vectors to return (required).
//   - Seed            — seed for the Gaussian probe matrix; fixed seed +
//     fixed input ⇒ identical basis (sign included).
//   - MaxIter         — hard cap on power iterations (≥ 1).
//   - Tol             — relative singular-value convergence tolerance (> 0).
//   - DegeneracyRatio — relative threshold below which the input counts as
//     rank-deficient (> 0).
//   - Oversample      — extra probe columns beyond Rank (≥ 0); clamped so
//     the probe never exceeds min(F, n).
type Options struct {
	Rank            int
	Seed            int64
	MaxIter         int
	Tol             float64
	DegeneracyRatio float64
	Oversample      int
}

// DefaultOptions returns the documented defaults for the given rank,
// with Seed = 0.
func DefaultOptions(rank int) Options {
	return Options{
		Rank:            rank,
		Seed:            0,
		MaxIter:         DefaultMaxIter,
		Tol:             DefaultTol,
		DegeneracyRatio: DefaultDegeneracyRatio,
		Oversample:      DefaultOversample,
	}
}

// Basis is the fitted F×P orthonormal rotation together with the singular
// values of the centered reference data along each basis direction,
// descending. Immutable once returned by Fit.
type Basis struct {
	// Vectors holds the basis column vectors: F×P, unit-norm, mutually
	// orthogonal, ordered by descending explained variance. Column sign
	// is arbitrary.
	Vectors *mat.Dense

	// SingularValues has length P, descending, matching Vectors' columns.
	SingularValues []float64
}

// Rank returns P, the number of basis vectors.
func (b *Basis) Rank() int {
	if b == nil || b.Vectors == nil {
		return 0
	}
	_, p := b.Vectors.Dims()

	return p
}

// Features returns F, the dimensionality the basis was fit in.
func (b *Basis) Features() int {
	if b == nil || b.Vectors == nil {
		return 0
	}
	f, _ := b.Vectors.Dims()

	return f
}
