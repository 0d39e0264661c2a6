// Package pca fits a low-rank orthonormal basis (truncated PCA) to a
// centered expression sub-matrix via seeded randomized subspace iteration.
//
// 🚀 Why iterative?
//
//	The input is F×n with F ≈ hundreds of highly-variable features and
//	n ≈ thousands of cells, but only the top P ≈ 10–50 variance
//	directions are wanted.  A full dense factorization computes min(F,n)
//	components and throws most of them away; a randomized range finder
//	with power iterations (Halko/Martinsson/Tropp style) touches the data
//	O(iterations) times and converges on exactly the leading subspace.
//	The building blocks — QR re-orthonormalisation and the small
//	projected SVD — are delegated to gonum; this package only supplies
//	the iteration around them.
//
// ✨ Determinism:
//   - The random probe matrix is drawn from an explicitly seeded source
//     (Options.Seed); identical inputs + seed ⇒ identical basis
//   - Basis columns are unique up to sign: a valid basis may carry either
//     sign per column. Downstream consumers must treat sign as arbitrary
//
// ⚙️ Usage:
//
//	opts := pca.DefaultOptions(10)  // rank 10
//	opts.Seed = 42
//	basis, err := pca.Fit(centered, opts)
//
// Errors: ErrRank when the requested rank is infeasible for the input
// shape, ErrDegenerateInput when the data's numerical rank is below the
// requested rank (detected via a singular-value ratio threshold). A
// degenerate input is never silently downgraded to a smaller rank — the
// caller must re-request explicitly.
//
// Complexity: O(maxIter · F·n·k) time with k = rank + oversample,
// O(F·k + n·k) working memory.
package pca
