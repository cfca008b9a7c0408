// Package segment merges adjacent subtitle entries into topic-length
// segments and computes aggregate statistics over the result.
//
// Grouping is a single greedy left-to-right pass: an open segment keeps
// absorbing the next entry while the gap to it stays within MaxGap and the
// segment's own duration is still below MinDuration. Once a segment reaches
// the minimum duration it stops growing even across tiny gaps; this cutoff
// is intentional and locked in by tests. Entry order is never changed.
package segment
