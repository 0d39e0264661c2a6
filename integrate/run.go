package integrate

import (
	"fmt"

	"github.com/katalvlaran/cellspace/expr"
	"github.com/katalvlaran/cellspace/pca"
	"gonum.org/v1/gonum/mat"
)

// Run executes the whole integration pipeline on the F×N expression matrix
// x with one condition label per column:
//
//	partition → center (per condition) → fit (reference only) → project (all)
//
// The pipeline is one pass, stateless, and all-or-nothing: the first stage
// error aborts the run and no partial embedding is ever returned. Stage
// sentinels propagate unchanged (expr.ErrInvalidInput, expr.ErrEmptyPartition,
// expr.ErrUnknownCondition, pca.ErrRank, pca.ErrDegenerateInput,
// ErrPartitionMismatch), so callers match them with errors.Is.
func Run(x *mat.Dense, labels []string, opts Options) (*Result, error) {
	// Stage 1: partition by condition.
	parts, err := expr.Partition(x, labels)
	if err != nil {
		return nil, fmt.Errorf("integrate: %w", err)
	}
	if _, err = expr.Find(parts, opts.Reference); err != nil {
		return nil, fmt.Errorf("integrate: reference: %w", err)
	}

	// Stage 2: center every condition on its own mean.
	centered, err := expr.CenterAll(parts)
	if err != nil {
		return nil, fmt.Errorf("integrate: %w", err)
	}

	// Stage 3: fit the basis on the reference condition only.
	var ref expr.Centered
	for _, c := range centered {
		if c.Condition == opts.Reference {
			ref = c
			break
		}
	}
	basis, err := pca.Fit(ref.Data, opts.Fit)
	if err != nil {
		return nil, fmt.Errorf("integrate: fit %q: %w", opts.Reference, err)
	}

	// Stage 4: cross-project everything through the one shared basis.
	_, n := x.Dims()
	emb, err := Project(basis, centered, n)
	if err != nil {
		return nil, fmt.Errorf("integrate: %w", err)
	}

	centers := make(map[string][]float64, len(centered))
	for _, c := range centered {
		centers[c.Condition] = c.Center
	}

	return &Result{Embedding: emb, Centers: centers, Basis: basis, Reference: opts.Reference}, nil
}
