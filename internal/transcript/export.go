package transcript

import (
	"fmt"
	"strings"

	"gavel/internal/timecode"
)

// FormatSRT serializes entries back to SRT text, re-indexing cues from 1 and
// emitting canonical comma-millisecond timestamps derived from the numeric
// offsets.
func FormatSRT(entries []Entry) string {
	var sb strings.Builder
	for i, entry := range entries {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%d\n", i+1)
		fmt.Fprintf(&sb, "%s --> %s\n", timecode.Format(entry.StartSec), timecode.Format(entry.EndSec))
		sb.WriteString(entry.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}
