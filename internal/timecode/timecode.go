package timecode

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// timestampPattern matches the fixed-width SRT timestamp form HH:MM:SS,mmm.
// SRT proper uses a comma before the milliseconds; a period is accepted
// because real-world files mix the two.
var timestampPattern = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})[,.](\d{3})$`)

// Parse converts an SRT timestamp into a second offset. Strings that do not
// contain a well-formed timestamp return 0 so that one malformed cue never
// aborts parsing of the surrounding transcript.
func Parse(value string) float64 {
	match := timestampPattern.FindStringSubmatch(strings.TrimSpace(value))
	if match == nil {
		return 0
	}
	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])
	seconds, _ := strconv.Atoi(match[3])
	millis, _ := strconv.Atoi(match[4])
	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000
}

// Format renders a second offset in the canonical HH:MM:SS,mmm form.
// Negative offsets clamp to zero.
func Format(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	totalMillis := int64(math.Round(seconds * 1000))
	hours := totalMillis / 3_600_000
	totalMillis -= hours * 3_600_000
	minutes := totalMillis / 60_000
	totalMillis -= minutes * 60_000
	secs := totalMillis / 1000
	millis := totalMillis - secs*1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}
