package synth

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// ErrBadSpec indicates an unusable dataset specification: no features, no
// conditions, a condition with no cells, or an offset/scale vector of the
// wrong length.
var ErrBadSpec = errors.New("synth: bad dataset spec")

// Condition describes one synthetic condition: how many cells it has and
// how its cloud is shifted relative to the shared origin.
type Condition struct {
	// Name is the condition label emitted for each of its cells.
	Name string

	// Cells is the number of columns generated for this condition.
	Cells int

	// Offset is added to every cell, one entry per feature. Nil means no
	// shift.
	Offset []float64
}

// Spec describes a whole dataset.
//
// Scales sets the per-feature standard deviation shared by all conditions
// (an axis-aligned ellipsoid); nil means unit spread on every feature.
// Columns are laid out condition by condition in Conditions order, cells
// in generation order, so the layout is fully deterministic.
type Spec struct {
	Features   int
	Conditions []Condition
	Scales     []float64
}

// Dataset generates the expression matrix (features × total cells) and the
// matching condition label vector from spec, using the given seed.
//
// Errors: ErrBadSpec on an empty or inconsistent spec.
func Dataset(spec Spec, seed int64) (*mat.Dense, []string, error) {
	// Validate the spec before allocating anything.
	if spec.Features < 1 || len(spec.Conditions) == 0 {
		return nil, nil, fmt.Errorf("Dataset: %d features, %d conditions: %w", spec.Features, len(spec.Conditions), ErrBadSpec)
	}
	if spec.Scales != nil && len(spec.Scales) != spec.Features {
		return nil, nil, fmt.Errorf("Dataset: %d scales for %d features: %w", len(spec.Scales), spec.Features, ErrBadSpec)
	}
	total := 0
	for _, c := range spec.Conditions {
		if c.Name == "" || c.Cells < 1 {
			return nil, nil, fmt.Errorf("Dataset: condition %q with %d cells: %w", c.Name, c.Cells, ErrBadSpec)
		}
		if c.Offset != nil && len(c.Offset) != spec.Features {
			return nil, nil, fmt.Errorf("Dataset: condition %q offset length %d: %w", c.Name, len(c.Offset), ErrBadSpec)
		}
		total += c.Cells
	}

	rng := rand.New(rand.NewSource(seed))
	x := mat.NewDense(spec.Features, total, nil)
	labels := make([]string, total)

	col := 0
	for _, c := range spec.Conditions {
		for j := 0; j < c.Cells; j++ {
			for i := 0; i < spec.Features; i++ {
				v := rng.NormFloat64()
				if spec.Scales != nil {
					v *= spec.Scales[i]
				}
				if c.Offset != nil {
					v += c.Offset[i]
				}
				x.Set(i, col, v)
			}
			labels[col] = c.Name
			col++
		}
	}

	return x, labels, nil
}

// OffsetOnFeatures builds a length-f offset vector with value v on the
// listed features and zero elsewhere. Convenience for the common
// "condition shifts a handful of genes" scenario.
func OffsetOnFeatures(f int, features []int, v float64) []float64 {
	off := make([]float64, f)
	for _, i := range features {
		if i >= 0 && i < f {
			off[i] = v
		}
	}

	return off
}
