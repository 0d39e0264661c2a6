// Package synth generates deterministic synthetic expression datasets for
// examples, benchmarks, and tests: per-condition Gaussian point clouds
// with configurable per-feature spread (axis-aligned ellipsoids) and
// per-feature offsets (condition-driven shifts).
//
// Everything is seeded; the same Spec and seed always produce the same
// matrix, column for column.
package synth
