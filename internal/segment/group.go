package segment

import (
	"gavel/internal/transcript"
)

// Default grouping thresholds.
const (
	DefaultMaxGap      = 2.0
	DefaultMinDuration = 30.0
)

// Options tunes the greedy merge.
type Options struct {
	// MaxGap is the largest silence, in seconds, the open segment may bridge.
	// A gap of exactly MaxGap still merges; negative gaps (overlapping cues)
	// always merge.
	MaxGap float64
	// MinDuration is the segment length, in seconds, at which the open
	// segment stops absorbing further entries.
	MinDuration float64
}

// DefaultOptions returns the standard thresholds.
func DefaultOptions() Options {
	return Options{MaxGap: DefaultMaxGap, MinDuration: DefaultMinDuration}
}

// Group merges consecutive entries into segments. The accumulator holds one
// open segment at a time; an entry either extends it or closes it and opens
// the next. Input order is preserved and the input slice is not modified.
func Group(entries []transcript.Entry, opts Options) []transcript.Entry {
	if len(entries) == 0 {
		return nil
	}

	segments := make([]transcript.Entry, 0, len(entries))
	open := entries[0]
	for _, entry := range entries[1:] {
		gap := entry.StartSec - open.EndSec
		duration := open.EndSec - open.StartSec
		if gap <= opts.MaxGap && duration < opts.MinDuration {
			open.EndTime = entry.EndTime
			open.EndSec = entry.EndSec
			open.Text += "\n" + entry.Text
			continue
		}
		segments = append(segments, open)
		open = entry
	}
	return append(segments, open)
}
