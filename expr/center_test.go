package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cellspace/expr"
	"github.com/katalvlaran/cellspace/synth"
)

// TestCenter_RowMeansVanish verifies the row-wise mean of the centered
// sub-matrix is the zero vector within 1e-9.
func TestCenter_RowMeansVanish(t *testing.T) {
	x, labels, err := synth.Dataset(synth.Spec{
		Features: 20,
		Conditions: []synth.Condition{
			{Name: "ctrl", Cells: 37},
			{Name: "stim", Cells: 13, Offset: synth.OffsetOnFeatures(20, []int{0, 1}, 3)},
		},
	}, 7)
	require.NoError(t, err)

	parts, err := expr.Partition(x, labels)
	require.NoError(t, err)

	for _, p := range parts {
		c, err := expr.Center(p)
		require.NoError(t, err)

		f, n := c.Data.Dims()
		for i := 0; i < f; i++ {
			var sum float64
			for j := 0; j < n; j++ {
				sum += c.Data.At(i, j)
			}
			assert.InDelta(t, 0, sum/float64(n), 1e-9, "condition %q feature %d", p.Condition, i)
		}
	}
}

// TestCenter_MeanInvertsCentering verifies adding the center vector back
// reproduces the original sub-matrix exactly (the invertibility contract).
func TestCenter_MeanInvertsCentering(t *testing.T) {
	x, labels, err := synth.Dataset(synth.Spec{
		Features:   5,
		Conditions: []synth.Condition{{Name: "a", Cells: 9}},
	}, 3)
	require.NoError(t, err)

	parts, err := expr.Partition(x, labels)
	require.NoError(t, err)
	c, err := expr.Center(parts[0])
	require.NoError(t, err)

	restored := mat.NewDense(5, 9, nil)
	for i := 0; i < 5; i++ {
		for j := 0; j < 9; j++ {
			restored.Set(i, j, c.Data.At(i, j)+c.Center[i])
		}
	}
	assert.True(t, mat.EqualApprox(parts[0].Data, restored, 1e-12))
}

// TestCenter_EmptyPartition verifies a condition with zero cells is
// rejected with ErrEmptyPartition rather than producing NaN means.
func TestCenter_EmptyPartition(t *testing.T) {
	_, err := expr.Center(expr.SubMatrix{Condition: "ghost"})
	assert.ErrorIs(t, err, expr.ErrEmptyPartition)
}

// TestCenterAll_FailsFast verifies CenterAll aborts on the first violating
// partition and returns nothing.
func TestCenterAll_FailsFast(t *testing.T) {
	x, labels, err := synth.Dataset(synth.Spec{
		Features:   4,
		Conditions: []synth.Condition{{Name: "ok", Cells: 3}},
	}, 1)
	require.NoError(t, err)
	parts, err := expr.Partition(x, labels)
	require.NoError(t, err)

	parts = append(parts, expr.SubMatrix{Condition: "ghost"})
	got, err := expr.CenterAll(parts)
	assert.ErrorIs(t, err, expr.ErrEmptyPartition)
	assert.Nil(t, got, "no partial result on failure")
}
