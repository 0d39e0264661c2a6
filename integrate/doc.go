// Package integrate assembles the full reference-subspace integration
// pipeline: partition by condition, center per condition, fit a PCA basis
// on one designated reference condition, and project every condition
// through that one shared basis into a single low-dimensional embedding.
//
// 🚀 The idea
//
//	Conditions (control vs. stimulated, batch 1 vs. batch 2, ...) shift
//	expression point clouds systematically. Centering each condition on
//	its own mean removes the between-condition offset; expressing every
//	centered cloud in the reference condition's principal directions
//	puts all cells into one comparable coordinate system.
//
// ⚖️ Asymmetry, by contract
//
//	Projection is orthogonal only for the reference condition — its own
//	cells land exactly on their PCA coordinates. Every other condition
//	is cross-projected onto a basis fit from foreign data, which is an
//	approximation, and a directional one: integrating with condition A
//	as reference does not in general yield the same embedding as
//	integrating with B as reference. This asymmetry is a documented
//	property of the method, not a defect.
//
// ⚙️ Usage:
//
//	opts := integrate.DefaultOptions("ctrl", 10)
//	res, err := integrate.Run(x, labels, opts)  // x is F×N
//	// res.Embedding is P×N, column i ↔ x's column i
//
// Guarantees:
//   - Output column i always corresponds to input column i, regardless of
//     condition (scatter-write by original index, not concatenation)
//   - Every column is written exactly once; accounting violations fail
//     with ErrPartitionMismatch
//   - Any stage failure aborts the run; no partial embedding is returned
//
// Complexity: O(F·N) partition/center + O(maxIter·F·n_ref·k) fit +
// O(P·F·N) projection.
package integrate
