// Package pca: sentinel error set, matched via errors.Is.

package pca

import "errors"

var (
	// ErrRank indicates an infeasible target rank: rank < 1, or
	// rank > min(features, cells) − 1 for the given sub-matrix.
	ErrRank = errors.New("pca: infeasible target rank")

	// ErrDegenerateInput indicates the centered data is numerically
	// rank-deficient at the requested rank: the rank-th singular value is
	// below DegeneracyRatio × the largest one. The caller must decide —
	// no automatic downgrade to a smaller rank is performed.
	ErrDegenerateInput = errors.New("pca: input is numerically rank-deficient")

	// ErrBadOptions indicates non-positive iteration/tolerance settings.
	ErrBadOptions = errors.New("pca: invalid options")

	// ErrNilInput indicates a nil input matrix.
	ErrNilInput = errors.New("pca: nil input matrix")

	// ErrDimensionMismatch indicates data whose feature count differs from
	// the basis it is being projected through.
	ErrDimensionMismatch = errors.New("pca: dimension mismatch")
)
