package segment

import (
	"gavel/internal/transcript"
)

// Stats aggregates a parse-and-group run for reporting.
type Stats struct {
	TotalEntries   int     `json:"total_entries"`
	GroupedEntries int     `json:"grouped_entries"`
	TotalDuration  float64 `json:"total_duration"`
}

// Summarize computes stats over the original entries and the grouped result.
// TotalDuration spans the original sequence, first start to last end, and is
// zero for an empty sequence. When grouping was skipped the two arguments
// are the same sequence.
func Summarize(original, result []transcript.Entry) Stats {
	stats := Stats{
		TotalEntries:   len(original),
		GroupedEntries: len(result),
	}
	if len(original) > 0 {
		stats.TotalDuration = original[len(original)-1].EndSec - original[0].StartSec
	}
	return stats
}
