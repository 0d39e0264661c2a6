package prep

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// LibrarySizeFactors returns one scaling factor per cell: the cell's total
// count divided by the median total across cells, so dividing a column by
// its factor brings every cell to the median library size.
//
// A cell with a zero total gets factor 1 — there is nothing to rescale and
// a zero divisor would poison the column; the caller may still want to
// filter such cells beforehand.
//
// Errors: ErrNoData on a nil or empty matrix.
func LibrarySizeFactors(x *mat.Dense) ([]float64, error) {
	if x == nil {
		return nil, fmt.Errorf("LibrarySizeFactors: %w", ErrNoData)
	}
	f, n := x.Dims()
	if f == 0 || n == 0 {
		return nil, fmt.Errorf("LibrarySizeFactors: %d×%d matrix: %w", f, n, ErrNoData)
	}

	totals := make([]float64, n)
	for j := 0; j < n; j++ {
		var sum float64
		for i := 0; i < f; i++ {
			sum += x.At(i, j)
		}
		totals[j] = sum
	}

	med := median(totals)
	if med == 0 {
		// All-zero matrix: every factor is the neutral 1.
		med = 1
	}

	factors := make([]float64, n)
	for j, t := range totals {
		if t == 0 {
			factors[j] = 1
			continue
		}
		factors[j] = t / med
	}

	return factors, nil
}

// LogNormalize divides each cell's column by its factor and applies
// log1p, returning a fresh matrix. Entries are assumed non-negative
// (counts), so the result is finite and non-negative.
//
// Errors: ErrNoData, ErrBadFactorCount.
func LogNormalize(x *mat.Dense, factors []float64) (*mat.Dense, error) {
	if x == nil {
		return nil, fmt.Errorf("LogNormalize: %w", ErrNoData)
	}
	f, n := x.Dims()
	if f == 0 || n == 0 {
		return nil, fmt.Errorf("LogNormalize: %d×%d matrix: %w", f, n, ErrNoData)
	}
	if len(factors) != n {
		return nil, fmt.Errorf("LogNormalize: %d factors for %d cells: %w", len(factors), n, ErrBadFactorCount)
	}

	out := mat.NewDense(f, n, nil)
	for j := 0; j < n; j++ {
		inv := 1 / factors[j]
		for i := 0; i < f; i++ {
			out.Set(i, j, math.Log1p(x.At(i, j)*inv))
		}
	}

	return out, nil
}

// TopVariableFeatures keeps the k rows with the highest variance across
// cells, preserving their original row order, and returns the reduced
// matrix together with the kept rows' original indices (ascending).
//
// Errors: ErrNoData, ErrBadFeatureCount when k ∉ [1, rows].
func TopVariableFeatures(x *mat.Dense, k int) (*mat.Dense, []int, error) {
	if x == nil {
		return nil, nil, fmt.Errorf("TopVariableFeatures: %w", ErrNoData)
	}
	f, n := x.Dims()
	if f == 0 || n == 0 {
		return nil, nil, fmt.Errorf("TopVariableFeatures: %d×%d matrix: %w", f, n, ErrNoData)
	}
	if k < 1 || k > f {
		return nil, nil, fmt.Errorf("TopVariableFeatures: k=%d for %d features: %w", k, f, ErrBadFeatureCount)
	}

	// Variance per feature.
	vars := make([]float64, f)
	row := make([]float64, n)
	for i := 0; i < f; i++ {
		mat.Row(row, i, x)
		vars[i] = stat.Variance(row, nil)
	}

	// Rank rows by variance, ties broken by index for determinism.
	idx := make([]int, f)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return vars[idx[a]] > vars[idx[b]] })
	keep := append([]int(nil), idx[:k]...)
	sort.Ints(keep)

	out := mat.NewDense(k, n, nil)
	for i, orig := range keep {
		mat.Row(row, orig, x)
		out.SetRow(i, row)
	}

	return out, keep, nil
}

// median returns the 0.5 quantile of v by the R-7 method, without
// mutating v.
func median(v []float64) float64 {
	s := append([]float64(nil), v...)
	sort.Float64s(s)
	h := float64(len(s)-1) * 0.5
	i := int(h)
	if i == len(s)-1 {
		return s[i]
	}

	return s[i] + (h-math.Floor(h))*(s[i+1]-s[i])
}
