package pca

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Fit computes the rank-P truncated PCA basis of the centered F×n matrix x.
//
// Algorithm (randomized subspace iteration):
//  1. Draw a seeded Gaussian probe Ω (n×k, k = Rank+Oversample clamped to
//     min(F, n)) and form Y = X·Ω.
//  2. Orthonormalise Y via QR to get Q (F×k).
//  3. Power-iterate Q ← orth(X·(Xᵀ·Q)) until the top-P singular-value
//     estimates of Qᵀ·X move by less than Tol·σ₁, or MaxIter is reached.
//  4. SVD the small projected matrix B = Qᵀ·X (k×n) and rotate: the basis
//     is the first P columns of Q·U_B, with B's singular values.
//
// The QR and SVD kernels are gonum's; only the iteration is local. x must
// already be centered — Fit performs no mean removal.
//
// Errors: ErrNilInput, ErrBadOptions, ErrRank when Rank ∉ [1, min(F,n)−1],
// ErrDegenerateInput when σ_P < DegeneracyRatio·σ₁ (no silent downgrade).
func Fit(x *mat.Dense, opts Options) (*Basis, error) {
	// Stage 1: validate input and options.
	if x == nil {
		return nil, fmt.Errorf("Fit: %w", ErrNilInput)
	}
	f, n := x.Dims()
	if opts.MaxIter < 1 || opts.Tol <= 0 || opts.DegeneracyRatio <= 0 || opts.Oversample < 0 {
		return nil, fmt.Errorf("Fit: maxIter=%d tol=%g degeneracy=%g oversample=%d: %w",
			opts.MaxIter, opts.Tol, opts.DegeneracyRatio, opts.Oversample, ErrBadOptions)
	}
	p := opts.Rank
	if lim := minInt(f, n) - 1; p < 1 || p > lim {
		return nil, fmt.Errorf("Fit: rank %d not in [1, %d] for %d×%d input: %w", p, lim, f, n, ErrRank)
	}
	k := minInt(p+opts.Oversample, minInt(f, n))

	// Stage 2: seeded Gaussian probe and initial range estimate.
	rng := rand.New(rand.NewSource(opts.Seed))
	omega := mat.NewDense(n, k, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			omega.Set(i, j, rng.NormFloat64())
		}
	}
	y := &mat.Dense{}
	y.Mul(x, omega) // F×k
	q, err := orthonormalize(y)
	if err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}

	// Stage 3: power iteration with per-step re-orthonormalisation.
	var (
		svd  mat.SVD
		b    mat.Dense // k×n projected matrix
		z    mat.Dense // n×k scratch
		prev []float64
	)
	for iter := 0; iter < opts.MaxIter; iter++ {
		z.Mul(x.T(), q) // n×k
		y.Mul(x, &z)    // F×k
		if q, err = orthonormalize(y); err != nil {
			return nil, fmt.Errorf("Fit: %w", err)
		}

		// Singular-value estimates of the current subspace.
		b.Mul(q.T(), x)
		if ok := svd.Factorize(&b, mat.SVDNone); !ok {
			return nil, fmt.Errorf("Fit: projected SVD failed: %w", ErrDegenerateInput)
		}
		vals := svd.Values(nil)
		if converged(prev, vals, p, opts.Tol) {
			break
		}
		prev = vals
	}

	// Stage 4: final small SVD and rotation back to feature space.
	b.Mul(q.T(), x)
	if ok := svd.Factorize(&b, mat.SVDThin); !ok {
		return nil, fmt.Errorf("Fit: projected SVD failed: %w", ErrDegenerateInput)
	}
	vals := svd.Values(nil)
	if vals[0] == 0 || vals[p-1] < opts.DegeneracyRatio*vals[0] {
		return nil, fmt.Errorf("Fit: σ_%d/σ_1 below %g: %w", p, opts.DegeneracyRatio, ErrDegenerateInput)
	}
	var ub mat.Dense // k×k left vectors of B
	svd.UTo(&ub)
	var full mat.Dense // F×k
	full.Mul(q, &ub)

	vectors := mat.NewDense(f, p, nil)
	vectors.Copy(full.Slice(0, f, 0, p))

	return &Basis{Vectors: vectors, SingularValues: append([]float64(nil), vals[:p]...)}, nil
}

// Transform projects already-centered data (F×n) into the basis,
// returning P×n coordinates: Vectorsᵀ × data.
// Errors: ErrNilInput, ErrDimensionMismatch on a feature-count mismatch.
func Transform(b *Basis, centered *mat.Dense) (*mat.Dense, error) {
	if b == nil || b.Vectors == nil || centered == nil {
		return nil, fmt.Errorf("Transform: %w", ErrNilInput)
	}
	f, n := centered.Dims()
	if f != b.Features() {
		return nil, fmt.Errorf("Transform: basis has %d features, data has %d: %w", b.Features(), f, ErrDimensionMismatch)
	}
	out := mat.NewDense(b.Rank(), n, nil)
	out.Mul(b.Vectors.T(), centered)

	return out, nil
}

// orthonormalize returns the thin Q factor (m×k) of a's QR decomposition.
func orthonormalize(a *mat.Dense) (*mat.Dense, error) {
	m, k := a.Dims()
	if m < k {
		return nil, fmt.Errorf("orthonormalize: %d×%d is wide: %w", m, k, ErrDimensionMismatch)
	}
	var qr mat.QR
	qr.Factorize(a)
	var q mat.Dense
	qr.QTo(&q) // m×m
	thin := mat.NewDense(m, k, nil)
	thin.Copy(q.Slice(0, m, 0, k))

	return thin, nil
}

// converged reports whether the top-p singular-value estimates moved by
// less than tol relative to the largest value.
func converged(prev, cur []float64, p int, tol float64) bool {
	if prev == nil || len(cur) < p || len(prev) < p {
		return false
	}
	if cur[0] == 0 {
		return true // nothing left to resolve; degeneracy is reported later
	}
	for i := 0; i < p; i++ {
		if math.Abs(cur[i]-prev[i]) > tol*cur[0] {
			return false
		}
	}

	return true
}

// minInt returns the smaller of two ints.
func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
