// Package cellspace integrates multi-condition single-cell expression data
// through a shared reference subspace.
//
// 🚀 What is cellspace?
//
//	A deterministic, pure-Go pipeline for the "manual projection" flavour
//	of data integration: instead of delegating to a black-box harmoniser,
//	it makes every step explicit:
//	  • expr      — expression-matrix types, partition by condition, centering
//	  • pca       — seeded randomized truncated PCA (basis fitting)
//	  • integrate — cross-condition projection into one shared embedding
//	  • prep      — library-size normalisation & variable-feature selection
//	  • mixing    — centroid-based before/after mixing reports
//	  • synth     — seeded synthetic datasets for tests and demos
//	  • render    — 2D component scatters of the result
//
// ✨ Why choose cellspace?
//
//   - Deterministic — every random choice hangs off an explicit seed
//   - Fail-fast — shape, rank, and degeneracy violations surface as
//     sentinel errors matched with errors.Is; no silent downgrades
//   - Honest — the cross-condition projection is documented as a
//     directional approximation, not hidden behind a mixing score
//
// Quick sketch:
//
//	x, labels := loadMatrix()                       // F×N, one label per cell
//	opts := integrate.DefaultOptions("ctrl", 10)    // reference + rank
//	res, err := integrate.Run(x, labels, opts)      // res.Embedding is 10×N
//
// The heavy numerical kernels (QR, SVD, matrix products) come from
// gonum.org/v1/gonum/mat; this module owns the pipeline semantics around
// them.
//
//	go get github.com/katalvlaran/cellspace
package cellspace
