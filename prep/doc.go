// Package prep prepares raw count matrices for integration: library-size
// normalisation, log transformation, and highly-variable-feature selection.
//
// The integration core assumes its input is already normalised and reduced
// to a highly-variable feature set; this package is that upstream step.
// Matrices are feature-major (rows = features, columns = cells), matching
// the rest of the module.
//
// Typical chain:
//
//	factors, _ := prep.LibrarySizeFactors(counts)
//	logx, _ := prep.LogNormalize(counts, factors)
//	hvg, idx, _ := prep.TopVariableFeatures(logx, 500)
//
// Each function is pure and deterministic; inputs are never mutated.
package prep
