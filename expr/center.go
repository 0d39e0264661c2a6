package expr

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Center removes the per-feature mean from one condition's sub-matrix.
//
// The mean is the row-wise arithmetic mean across the sub-matrix's columns.
// The returned Centered keeps the mean vector: downstream consumers need it
// to invert centering (predicted-expression reconstruction) and to compare
// raw condition centroids, so it must not be discarded here.
//
// Errors: ErrEmptyPartition when the sub-matrix has zero cells (the mean
// would be NaN). A nil Data counts as zero cells: that is what a declared
// condition with no matching columns looks like.
//
// Complexity: O(F·n) time, O(F·n) memory for the centered copy.
func Center(s SubMatrix) (Centered, error) {
	// Stage 1: validate.
	if s.Cells() == 0 {
		return Centered{}, fmt.Errorf("Center: condition %q has no cells: %w", s.Condition, ErrEmptyPartition)
	}
	f, n := s.Data.Dims()

	// Stage 2: per-feature means.
	mean := make([]float64, f)
	row := make([]float64, n)
	for i := 0; i < f; i++ {
		mat.Row(row, i, s.Data)
		mean[i] = stat.Mean(row, nil)
	}

	// Stage 3: subtract, broadcasting the mean across columns.
	out := mat.NewDense(f, n, nil)
	for i := 0; i < f; i++ {
		m := mean[i]
		for j := 0; j < n; j++ {
			out.Set(i, j, s.Data.At(i, j)-m)
		}
	}

	return Centered{Condition: s.Condition, Data: out, Cols: s.Cols, Center: mean}, nil
}

// CenterAll centers every partition in order. It fails on the first
// violating partition and returns no partial result.
func CenterAll(parts []SubMatrix) ([]Centered, error) {
	out := make([]Centered, 0, len(parts))
	for _, p := range parts {
		c, err := Center(p)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, nil
}
