package integrate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellspace/expr"
	"github.com/katalvlaran/cellspace/integrate"
	"github.com/katalvlaran/cellspace/pca"
	"github.com/katalvlaran/cellspace/synth"
)

// fixtures builds a small two-condition dataset, centers it, and fits a
// basis on the first condition.
func fixtures(t *testing.T) (*pca.Basis, []expr.Centered, int) {
	t.Helper()

	x, labels, err := synth.Dataset(synth.Spec{
		Features: 8,
		Conditions: []synth.Condition{
			{Name: "a", Cells: 12},
			{Name: "b", Cells: 9, Offset: synth.OffsetOnFeatures(8, []int{0}, 2)},
		},
	}, 21)
	require.NoError(t, err)

	parts, err := expr.Partition(x, labels)
	require.NoError(t, err)
	centered, err := expr.CenterAll(parts)
	require.NoError(t, err)

	opts := pca.DefaultOptions(3)
	opts.Seed = 9
	basis, err := pca.Fit(centered[0].Data, opts)
	require.NoError(t, err)

	_, n := x.Dims()

	return basis, centered, n
}

// TestProject_BlocksLandAtOriginalColumns verifies each condition's block
// appears exactly at its cells' original column indices.
func TestProject_BlocksLandAtOriginalColumns(t *testing.T) {
	basis, centered, n := fixtures(t)

	emb, err := integrate.Project(basis, centered, n)
	require.NoError(t, err)

	p, cols := emb.Dims()
	assert.Equal(t, 3, p)
	assert.Equal(t, n, cols)

	for _, c := range centered {
		block, err := pca.Transform(basis, c.Data)
		require.NoError(t, err)
		for j, orig := range c.Cols {
			for i := 0; i < p; i++ {
				assert.Equal(t, block.At(i, j), emb.At(i, orig),
					"condition %q local col %d → original col %d", c.Condition, j, orig)
			}
		}
	}
}

// TestProject_CountMismatch verifies a partition count that does not sum
// to the total fails with ErrPartitionMismatch.
func TestProject_CountMismatch(t *testing.T) {
	basis, centered, n := fixtures(t)

	_, err := integrate.Project(basis, centered, n+1)
	assert.ErrorIs(t, err, integrate.ErrPartitionMismatch)
}

// TestProject_DuplicateColumn verifies a doubly-claimed column index fails.
func TestProject_DuplicateColumn(t *testing.T) {
	basis, centered, n := fixtures(t)

	centered[1].Cols[0] = centered[0].Cols[0] // claim an "a" column for "b"
	_, err := integrate.Project(basis, centered, n)
	assert.ErrorIs(t, err, integrate.ErrPartitionMismatch)
}

// TestProject_OutOfRangeColumn verifies an index beyond N fails.
func TestProject_OutOfRangeColumn(t *testing.T) {
	basis, centered, n := fixtures(t)

	centered[1].Cols[0] = n + 5
	_, err := integrate.Project(basis, centered, n)
	assert.ErrorIs(t, err, integrate.ErrPartitionMismatch)
}
