package mixing

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cellspace/expr"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Centroids returns each condition's per-row mean of x (D×N), keyed by
// condition. Validation and grouping reuse the pipeline's partitioner, so
// expr sentinels (ErrInvalidInput, ErrEmptyPartition) propagate unchanged.
func Centroids(x *mat.Dense, labels []string) (map[string][]float64, error) {
	parts, err := expr.Partition(x, labels)
	if err != nil {
		return nil, fmt.Errorf("Centroids: %w", err)
	}
	out := make(map[string][]float64, len(parts))
	for _, p := range parts {
		c, err := expr.Center(p)
		if err != nil {
			return nil, fmt.Errorf("Centroids: %w", err)
		}
		out[p.Condition] = c.Center
	}

	return out, nil
}

// CentroidDistance returns the Euclidean distance between the centroids of
// conditions a and b in x's space.
// Errors: expr.ErrUnknownCondition when a or b does not occur in labels,
// plus anything Centroids reports.
func CentroidDistance(x *mat.Dense, labels []string, a, b string) (float64, error) {
	cents, err := Centroids(x, labels)
	if err != nil {
		return 0, err
	}
	ca, ok := cents[a]
	if !ok {
		return 0, fmt.Errorf("CentroidDistance: %q: %w", a, expr.ErrUnknownCondition)
	}
	cb, ok := cents[b]
	if !ok {
		return 0, fmt.Errorf("CentroidDistance: %q: %w", b, expr.ErrUnknownCondition)
	}

	return floats.Distance(ca, cb, 2), nil
}

// Report compares between-condition separation before and after
// integration for one condition pair.
type Report struct {
	// Before is the centroid distance in the input space.
	Before float64
	// After is the centroid distance in the embedding.
	After float64
	// Ratio is After/Before; < 1 means integration reduced separation.
	// NaN when Before is zero.
	Ratio float64
}

// Compare computes a Report for conditions a and b, measuring before in
// the raw (or centered) space x and after in the embedding emb. Both
// matrices must share x's column ordering, which the integration pipeline
// guarantees.
func Compare(x, emb *mat.Dense, labels []string, a, b string) (Report, error) {
	before, err := CentroidDistance(x, labels, a, b)
	if err != nil {
		return Report{}, err
	}
	after, err := CentroidDistance(emb, labels, a, b)
	if err != nil {
		return Report{}, err
	}
	ratio := math.NaN()
	if before != 0 {
		ratio = after / before
	}

	return Report{Before: before, After: after, Ratio: ratio}, nil
}
