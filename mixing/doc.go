// Package mixing quantifies how well conditions overlap in a given space.
//
// The metric here is deliberately simple: per-condition centroids and the
// Euclidean distance between them. Computed once in the raw centered
// feature space and once in the integrated embedding, the before/after
// ratio says whether integration actually pulled the conditions together.
// Neighborhood-graph mixing scores (kBET, LISI, ...) stay with external
// evaluators; this package only covers the centroid view the integration
// tutorials report inline.
//
// Works on any D×N matrix with one label per column — raw expression,
// centered data, or a P×N embedding.
package mixing
