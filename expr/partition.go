package expr

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Partition splits the F×N expression matrix x into one SubMatrix per
// distinct condition label.
//
// Contract:
//   - labels must have exactly one entry per column of x; entry i labels
//     column i. An empty-string label is unmapped and rejected.
//   - Within each SubMatrix the original column order is preserved (stable
//     partition), and Cols records the original indices.
//   - Conditions are emitted in order of first appearance in labels, so the
//     result is fully deterministic.
//
// Errors: ErrInvalidInput on a nil/empty matrix, a length mismatch, or an
// unmapped label. The input is never mutated.
//
// Complexity: O(F·N) time, O(F·N) memory for the copied columns.
func Partition(x *mat.Dense, labels []string) ([]SubMatrix, error) {
	// Stage 1: validate shape.
	if x == nil {
		return nil, fmt.Errorf("Partition: nil matrix: %w", ErrInvalidInput)
	}
	f, n := x.Dims()
	if n == 0 {
		return nil, fmt.Errorf("Partition: matrix has no columns: %w", ErrInvalidInput)
	}
	if len(labels) != n {
		return nil, fmt.Errorf("Partition: %d labels for %d columns: %w", len(labels), n, ErrInvalidInput)
	}

	// Stage 2: group original column indices per condition, first-appearance order.
	order := make([]string, 0, 2)
	byCond := make(map[string][]int, 2)
	for i, lab := range labels {
		if lab == "" {
			return nil, fmt.Errorf("Partition: column %d has no condition label: %w", i, ErrInvalidInput)
		}
		if _, seen := byCond[lab]; !seen {
			order = append(order, lab)
		}
		byCond[lab] = append(byCond[lab], i)
	}

	// Stage 3: copy columns into per-condition dense blocks.
	parts := make([]SubMatrix, 0, len(order))
	col := make([]float64, f)
	for _, cond := range order {
		idx := byCond[cond]
		sub := mat.NewDense(f, len(idx), nil)
		for j, orig := range idx {
			mat.Col(col, orig, x)
			sub.SetCol(j, col)
		}
		parts = append(parts, SubMatrix{Condition: cond, Data: sub, Cols: idx})
	}

	return parts, nil
}

// Find returns the partition whose condition equals cond.
// Errors: ErrUnknownCondition when no partition carries that label.
func Find(parts []SubMatrix, cond string) (SubMatrix, error) {
	for _, p := range parts {
		if p.Condition == cond {
			return p, nil
		}
	}

	return SubMatrix{}, fmt.Errorf("Find: condition %q: %w", cond, ErrUnknownCondition)
}
