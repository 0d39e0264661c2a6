package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// readMatrixCSV loads a features×cells matrix from a headerless CSV file:
// one row per feature, one column per cell.
func readMatrixCSV(path string) (*mat.Dense, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matrix %s: %w", path, err)
	}
	defer fh.Close()

	rows, err := csv.NewReader(fh).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("matrix %s: %w", path, err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("matrix %s: empty file", path)
	}

	f, n := len(rows), len(rows[0])
	x := mat.NewDense(f, n, nil)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("matrix %s: row %d has %d columns, want %d", path, i, len(row), n)
		}
		for j, cell := range row {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("matrix %s: row %d col %d: %w", path, i, j, err)
			}
			x.Set(i, j, v)
		}
	}

	return x, nil
}

// readLabels loads condition labels: one label per line, order matching
// the matrix columns.
func readLabels(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("labels %s: %w", path, err)
	}
	var labels []string
	for _, line := range strings.Split(strings.TrimRight(string(raw), "\n"), "\n") {
		labels = append(labels, strings.TrimSpace(line))
	}

	return labels, nil
}

// writeMatrixCSV writes m row by row as CSV.
func writeMatrixCSV(m *mat.Dense, path string) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	defer fh.Close()

	w := csv.NewWriter(fh)
	r, c := m.Dims()
	rec := make([]string, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			rec[j] = strconv.FormatFloat(m.At(i, j), 'g', -1, 64)
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()

	return w.Error()
}
