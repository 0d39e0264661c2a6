// Package prep: sentinel error set, matched via errors.Is.

package prep

import "errors"

var (
	// ErrNoData indicates a nil matrix or one with no rows or columns.
	ErrNoData = errors.New("prep: no data")

	// ErrBadFactorCount indicates a factor vector whose length differs
	// from the matrix column count.
	ErrBadFactorCount = errors.New("prep: factor count does not match cell count")

	// ErrBadFeatureCount indicates a requested feature count outside
	// [1, rows].
	ErrBadFeatureCount = errors.New("prep: requested feature count out of range")
)
