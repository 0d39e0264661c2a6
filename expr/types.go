// Package expr: value types shared by the pipeline stages.

package expr

import "gonum.org/v1/gonum/mat"

// SubMatrix is one condition's slice of the expression matrix.
//
// Data is F×n (features × cells of this condition). Cols records, for each
// of Data's n columns, the column index it occupied in the full matrix, in
// ascending order (the partition is stable, never resorted). Both fields are
// treated as immutable once produced.
type SubMatrix struct {
	// Condition is the label shared by every column of Data.
	Condition string

	// Data holds the condition's columns, feature-major.
	Data *mat.Dense

	// Cols maps local column j to its original column index Cols[j].
	Cols []int
}

// Cells returns the number of cells (columns) in the sub-matrix.
func (s SubMatrix) Cells() int {
	if s.Data == nil {
		return 0
	}
	_, n := s.Data.Dims()

	return n
}

// Centered is a SubMatrix after mean removal, together with the removed
// per-feature mean. Center has length F and is required downstream both to
// invert centering and to compare condition centroids; keep it alongside
// the data rather than recomputing.
type Centered struct {
	// Condition is the label shared by every column of Data.
	Condition string

	// Data is the centered F×n sub-matrix: row means are ~0.
	Data *mat.Dense

	// Cols maps local column j to its original column index, as in SubMatrix.
	Cols []int

	// Center is the per-feature arithmetic mean that was subtracted.
	Center []float64
}
