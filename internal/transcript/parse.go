package transcript

import (
	"regexp"
	"strconv"
	"strings"

	"gavel/internal/timecode"
)

// timeLinePattern matches the cue time line, e.g.
// "00:01:02,500 --> 00:01:04,000", tolerating surrounding whitespace and
// period millisecond separators.
var timeLinePattern = regexp.MustCompile(`^\s*(\d{2}:\d{2}:\d{2}[,.]\d{3})\s*-->\s*(\d{2}:\d{2}:\d{2}[,.]\d{3})\s*$`)

// SkipReason identifies why a block was excluded during parsing.
type SkipReason string

const (
	// SkipTooShort marks blocks with fewer than two non-blank lines.
	SkipTooShort SkipReason = "too_few_lines"
	// SkipBadIndex marks blocks whose first line is not an integer.
	SkipBadIndex SkipReason = "invalid_index"
	// SkipBadTimeLine marks blocks whose second line is not a cue time line.
	SkipBadTimeLine SkipReason = "invalid_time_line"
)

// Skip records one discarded block and the reason it was discarded.
type Skip struct {
	Block  int        `json:"block"`
	Reason SkipReason `json:"reason"`
}

// Report carries the parsed entries alongside per-block skip diagnostics.
type Report struct {
	Entries []Entry `json:"entries"`
	Skips   []Skip  `json:"skips,omitempty"`
}

// Parse converts raw SRT text into ordered entries, silently dropping
// malformed blocks. Use ParseReport when skip diagnostics are needed.
func Parse(text string) []Entry {
	return ParseReport(text).Entries
}

// ParseReport converts raw SRT text into ordered entries and records a skip
// reason for every block that could not be parsed. Entries keep source
// order; no reordering by time is performed even when the source timestamps
// are out of order.
func ParseReport(text string) Report {
	var report Report
	for i, block := range splitBlocks(text) {
		entry, reason := parseBlock(block)
		if reason != "" {
			report.Skips = append(report.Skips, Skip{Block: i, Reason: reason})
			continue
		}
		report.Entries = append(report.Entries, entry)
	}
	return report
}

// splitBlocks normalizes line endings and splits the transcript into runs of
// non-blank lines. A line containing only whitespace separates blocks.
func splitBlocks(text string) [][]string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	var blocks [][]string
	var current []string
	for _, line := range strings.Split(normalized, "\n") {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

func parseBlock(lines []string) (Entry, SkipReason) {
	if len(lines) < 2 {
		return Entry{}, SkipTooShort
	}

	index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return Entry{}, SkipBadIndex
	}

	match := timeLinePattern.FindStringSubmatch(lines[1])
	if match == nil {
		return Entry{}, SkipBadTimeLine
	}
	start, end := match[1], match[2]

	return Entry{
		Index:     index,
		StartTime: start,
		EndTime:   end,
		StartSec:  timecode.Parse(start),
		EndSec:    timecode.Parse(end),
		Text:      strings.Join(lines[2:], "\n"),
	}, ""
}
