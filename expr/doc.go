// Package expr holds the expression-matrix value types and the first two
// stages of the integration pipeline: partitioning cells by experimental
// condition and per-feature mean centering.
//
// 🚀 What lives here?
//
//	A single-cell expression matrix is stored feature-major: rows are
//	features (genes), columns are cells.  Each cell carries exactly one
//	condition label (batch, treatment, ...).  This package:
//	  • Partition — splits the matrix into per-condition sub-matrices,
//	    preserving original column order and remembering each column's
//	    index in the full matrix
//	  • Center   — computes the per-feature mean of a sub-matrix and
//	    subtracts it, returning both the centered data and the mean
//	    (the mean is needed again downstream to invert centering)
//
// ✨ Guarantees:
//   - Deterministic: conditions are emitted in first-appearance order;
//     re-running with identical inputs yields identical partitions
//   - Non-destructive: the input matrix is read-only; every stage
//     allocates fresh output
//   - Fail-fast: shape violations surface as sentinel errors
//     (ErrInvalidInput, ErrEmptyPartition, ErrUnknownCondition)
//     matched via errors.Is — no panics on user input
//
// ⚙️ Usage:
//
//	parts, err := expr.Partition(x, labels)      // x is F×N
//	centered, err := expr.Center(parts[0])       // F×n, mean removed
//
// Complexity: Partition O(F·N), Center O(F·n). Memory: one copy of the
// partitioned data; the originals are never mutated.
package expr
