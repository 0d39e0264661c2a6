package integrate

import (
	"fmt"

	"github.com/katalvlaran/cellspace/expr"
	"github.com/katalvlaran/cellspace/pca"
	"gonum.org/v1/gonum/mat"
)

// Project pushes every condition's centered sub-matrix through the shared
// basis and scatter-writes the resulting P×n_c blocks into a single P×N
// embedding, at each cell's original column index.
//
// totalCols is N, the full expression matrix's column count; it is the
// cross-check target: the partitions' column indices must cover
// [0, totalCols) exactly once. Any duplicate, out-of-range, or missing
// index fails with ErrPartitionMismatch and no embedding is returned.
//
// Complexity: O(P·F·N) time, O(P·N) output memory.
func Project(basis *pca.Basis, parts []expr.Centered, totalCols int) (*mat.Dense, error) {
	// Stage 1: column accounting — the partitioner's invariant, re-verified
	// at the last write site.
	cells := 0
	for _, c := range parts {
		cells += len(c.Cols)
	}
	if cells != totalCols {
		return nil, fmt.Errorf("Project: %d partitioned columns for %d total: %w", cells, totalCols, ErrPartitionMismatch)
	}
	written := make([]bool, totalCols)

	// Stage 2: project each block and scatter-write it home.
	p := basis.Rank()
	out := mat.NewDense(p, totalCols, nil)
	col := make([]float64, p)
	for _, c := range parts {
		block, err := pca.Transform(basis, c.Data) // P×n_c
		if err != nil {
			return nil, fmt.Errorf("Project: condition %q: %w", c.Condition, err)
		}
		for j, orig := range c.Cols {
			if orig < 0 || orig >= totalCols {
				return nil, fmt.Errorf("Project: condition %q column index %d out of [0,%d): %w",
					c.Condition, orig, totalCols, ErrPartitionMismatch)
			}
			if written[orig] {
				return nil, fmt.Errorf("Project: column %d written twice: %w", orig, ErrPartitionMismatch)
			}
			written[orig] = true
			mat.Col(col, j, block)
			out.SetCol(orig, col)
		}
	}

	// Stage 3: every column must be written. Counts matched and no column
	// was written twice, so coverage is already total; keep the explicit
	// scan anyway — it is the contract, not an optimisation target.
	for i, w := range written {
		if !w {
			return nil, fmt.Errorf("Project: column %d never written: %w", i, ErrPartitionMismatch)
		}
	}

	return out, nil
}
