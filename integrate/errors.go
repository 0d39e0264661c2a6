// Package integrate: sentinel error set, matched via errors.Is.
// Stage errors from expr and pca propagate through Run unchanged, so
// callers can match expr.ErrEmptyPartition, pca.ErrRank, etc. directly.

package integrate

import "errors"

// ErrPartitionMismatch indicates broken column accounting in the projector:
// the per-condition column indices do not cover every output column exactly
// once (duplicate, out-of-range, or missing index, or counts not summing to
// the total). This re-verifies the partitioner's invariant at the last
// write site.
var ErrPartitionMismatch = errors.New("integrate: partition does not cover all columns exactly once")
