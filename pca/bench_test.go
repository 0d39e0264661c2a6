package pca_test

import (
	"fmt"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cellspace/pca"
	"github.com/katalvlaran/cellspace/synth"
)

// benchMatrix builds an F×n cloud with a decaying spectrum so the fit
// converges the way realistic expression data does.
func benchMatrix(f, n int) *mat.Dense {
	scales := make([]float64, f)
	for i := range scales {
		scales[i] = 1.0 / float64(i+1)
	}
	x, _, err := synth.Dataset(synth.Spec{
		Features:   f,
		Conditions: []synth.Condition{{Name: "ref", Cells: n}},
		Scales:     scales,
	}, 1)
	if err != nil {
		panic(err)
	}

	return x
}

func BenchmarkFit(b *testing.B) {
	for _, size := range []struct{ f, n, rank int }{
		{100, 500, 10},
		{500, 2000, 20},
	} {
		x := benchMatrix(size.f, size.n)
		opts := pca.DefaultOptions(size.rank)
		opts.Seed = 1
		b.Run(fmt.Sprintf("f=%d,n=%d,p=%d", size.f, size.n, size.rank), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := pca.Fit(x, opts); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
