package render

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cellspace/expr"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ErrBadComponent indicates a requested component index outside the
// embedding's row range.
var ErrBadComponent = errors.New("render: component index out of range")

// EmbeddingScatter builds a scatter plot of embedding rows dimX and dimY
// (components, zero-based), one series per condition in first-appearance
// order. emb is P×N with one label per column.
//
// Errors: ErrBadComponent, plus expr sentinels from the label validation.
func EmbeddingScatter(emb *mat.Dense, labels []string, dimX, dimY int, title string) (*plot.Plot, error) {
	parts, err := expr.Partition(emb, labels)
	if err != nil {
		return nil, fmt.Errorf("EmbeddingScatter: %w", err)
	}
	p, _ := emb.Dims()
	if dimX < 0 || dimX >= p || dimY < 0 || dimY >= p {
		return nil, fmt.Errorf("EmbeddingScatter: components (%d,%d) for rank %d: %w", dimX, dimY, p, ErrBadComponent)
	}

	pl := plot.New()
	pl.Title.Text = title
	pl.X.Label.Text = fmt.Sprintf("component %d", dimX+1)
	pl.Y.Label.Text = fmt.Sprintf("component %d", dimY+1)

	for i, part := range parts {
		n := part.Cells()
		pts := make(plotter.XYs, n)
		for j := 0; j < n; j++ {
			pts[j].X = part.Data.At(dimX, j)
			pts[j].Y = part.Data.At(dimY, j)
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("EmbeddingScatter: condition %q: %w", part.Condition, err)
		}
		sc.GlyphStyle.Color = plotutil.Color(i)
		sc.GlyphStyle.Radius = vg.Points(1.5)
		pl.Add(sc)
		pl.Legend.Add(part.Condition, sc)
	}
	pl.Legend.Top = true

	return pl, nil
}

// SavePNG writes the plot to path at a fixed 6×5 inch canvas.
func SavePNG(p *plot.Plot, path string) error {
	if err := p.Save(6*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("SavePNG: %w", err)
	}

	return nil
}
