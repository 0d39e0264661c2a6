// Package expr: sentinel error set.
// All operations in this package return these sentinels and tests check them
// via errors.Is. Wrap with fmt.Errorf("ctx: %w", ErrX) when call-site context
// is essential; callers still match with errors.Is.

package expr

import "errors"

var (
	// ErrInvalidInput indicates a shape violation: a nil matrix, a label
	// vector whose length differs from the matrix column count, or an
	// unmapped (empty) label.
	ErrInvalidInput = errors.New("expr: invalid input")

	// ErrEmptyPartition indicates a condition with zero cells. Centering an
	// empty sub-matrix would yield NaN means, so it is rejected up front.
	ErrEmptyPartition = errors.New("expr: empty partition")

	// ErrUnknownCondition indicates a condition identifier that does not
	// occur in the label vector (e.g. a reference condition typo).
	ErrUnknownCondition = errors.New("expr: unknown condition")
)
