package render_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cellspace/expr"
	"github.com/katalvlaran/cellspace/render"
)

// smallEmbedding is a 3×4 embedding with two conditions.
func smallEmbedding() (*mat.Dense, []string) {
	emb := mat.NewDense(3, 4, []float64{
		0, 1, 2, 3,
		1, 0, -1, -2,
		0.5, 0.5, 0.5, 0.5,
	})

	return emb, []string{"ctrl", "stim", "ctrl", "stim"}
}

// TestEmbeddingScatter_BuildsOneSeriesPerCondition verifies the happy
// path yields a plot with both conditions in the legend.
func TestEmbeddingScatter_BuildsOneSeriesPerCondition(t *testing.T) {
	emb, labels := smallEmbedding()

	pl, err := render.EmbeddingScatter(emb, labels, 0, 1, "test")
	require.NoError(t, err)
	require.NotNil(t, pl)
	assert.Equal(t, "test", pl.Title.Text)
	assert.Equal(t, "component 1", pl.X.Label.Text)
	assert.Equal(t, "component 2", pl.Y.Label.Text)
}

// TestEmbeddingScatter_BadComponent verifies component indices outside
// the embedding's row range are rejected.
func TestEmbeddingScatter_BadComponent(t *testing.T) {
	emb, labels := smallEmbedding()

	_, err := render.EmbeddingScatter(emb, labels, 0, 3, "test")
	assert.ErrorIs(t, err, render.ErrBadComponent, "dimY beyond rank")

	_, err = render.EmbeddingScatter(emb, labels, -1, 1, "test")
	assert.ErrorIs(t, err, render.ErrBadComponent, "negative dimX")
}

// TestEmbeddingScatter_LabelMismatch verifies label validation reuses the
// pipeline's partitioner sentinels.
func TestEmbeddingScatter_LabelMismatch(t *testing.T) {
	emb, labels := smallEmbedding()

	_, err := render.EmbeddingScatter(emb, labels[:2], 0, 1, "test")
	assert.ErrorIs(t, err, expr.ErrInvalidInput)
}

// TestSavePNG writes an actual image file.
func TestSavePNG(t *testing.T) {
	emb, labels := smallEmbedding()
	pl, err := render.EmbeddingScatter(emb, labels, 0, 1, "test")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "scatter.png")
	require.NoError(t, render.SavePNG(pl, path))
	assert.FileExists(t, path)
}
