// Package integrate: options and result types.

package integrate

import (
	"github.com/katalvlaran/cellspace/pca"
	"gonum.org/v1/gonum/mat"
)

// Options configures Run.
//
//   - Reference — the condition whose subspace is fit; always caller-chosen
//     (reference selection is a modelling decision, never inferred).
//   - Fit       — numerical policy for the basis fit, including Rank and
//     Seed; see pca.Options.
type Options struct {
	Reference string
	Fit       pca.Options
}

// DefaultOptions returns Options with the documented pca defaults for the
// given rank and the supplied reference condition.
func DefaultOptions(reference string, rank int) Options {
	return Options{Reference: reference, Fit: pca.DefaultOptions(rank)}
}

// Result is the pipeline's output bundle. All fields are immutable once
// returned.
type Result struct {
	// Embedding is P×N; column i corresponds to column i of the input
	// expression matrix, whatever condition that cell belongs to.
	Embedding *mat.Dense

	// Centers maps each condition to the per-feature mean that was
	// subtracted from it. Retained so downstream consumers can invert
	// centering (approximate reconstruction in feature space).
	Centers map[string][]float64

	// Basis is the reference condition's fitted rotation, retained for
	// the same invertibility reason.
	Basis *pca.Basis

	// Reference echoes the condition the basis was fit on.
	Reference string
}
