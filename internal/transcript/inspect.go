package transcript

import (
	"fmt"
	"math"
)

// Inspection summarizes the structure of a transcript for diagnostics.
type Inspection struct {
	Blocks   int      `json:"blocks"`
	Entries  int      `json:"entries"`
	Skipped  int      `json:"skipped"`
	FirstSec float64  `json:"first_sec"`
	LastSec  float64  `json:"last_sec"`
	Issues   []string `json:"issues,omitempty"`
}

// Inspect parses the transcript and reports block counts, time bounds, and
// any format issues found. An empty issue list means the transcript is
// usable as-is.
func Inspect(text string) Inspection {
	report := ParseReport(text)
	inspection := Inspection{
		Blocks:  len(report.Entries) + len(report.Skips),
		Entries: len(report.Entries),
		Skipped: len(report.Skips),
	}

	if inspection.Blocks == 0 {
		inspection.Issues = append(inspection.Issues, "empty_transcript")
		return inspection
	}
	if inspection.Entries == 0 {
		inspection.Issues = append(inspection.Issues, "no_valid_entries")
		return inspection
	}

	first := math.Inf(1)
	var last float64
	outOfOrder := 0
	prevStart := math.Inf(-1)
	for _, entry := range report.Entries {
		if entry.StartSec < first {
			first = entry.StartSec
		}
		if entry.EndSec > last {
			last = entry.EndSec
		}
		if entry.StartSec < prevStart {
			outOfOrder++
		}
		prevStart = entry.StartSec
	}
	inspection.FirstSec = first
	inspection.LastSec = last

	if first == 0 && last == 0 {
		inspection.Issues = append(inspection.Issues, "no_valid_timestamps")
	}
	if inspection.Skipped > 0 {
		inspection.Issues = append(inspection.Issues, fmt.Sprintf("skipped_blocks: %d", inspection.Skipped))
	}
	if outOfOrder > 0 {
		inspection.Issues = append(inspection.Issues, fmt.Sprintf("out_of_order_cues: %d", outOfOrder))
	}
	return inspection
}
