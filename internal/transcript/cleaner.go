package transcript

import (
	"regexp"
	"strings"
)

// adPatterns match cue payloads that are subtitle-provider advertisements
// rather than spoken content. Matching is case-insensitive over the joined
// text lines of a block.
var adPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)opensubtitles`),
	regexp.MustCompile(`(?i)subtitles? by`),
	regexp.MustCompile(`(?i)synced? and corrected`),
	regexp.MustCompile(`(?i)transcribed by`),
	regexp.MustCompile(`(?i)http(s)?://`),
	regexp.MustCompile(`(?i)\bwww\.`),
}

// CleanStats reports the effect of a cleanup pass.
type CleanStats struct {
	RemovedCues int `json:"removed_cues"`
}

// Clean removes advertisement cues and trailing per-line whitespace from raw
// SRT text before parsing. Block structure is otherwise preserved, so the
// output parses to the same entries minus the removed cues.
func Clean(raw string) (string, CleanStats) {
	var stats CleanStats
	blocks := splitBlocks(raw)
	kept := make([]string, 0, len(blocks))
	for _, lines := range blocks {
		if blockIsAdvertisement(lines) {
			stats.RemovedCues++
			continue
		}
		trimmed := make([]string, len(lines))
		for i, line := range lines {
			trimmed[i] = strings.TrimRight(line, " \t")
		}
		kept = append(kept, strings.Join(trimmed, "\n"))
	}
	if len(kept) == 0 {
		return "", stats
	}
	return strings.Join(kept, "\n\n") + "\n", stats
}

func blockIsAdvertisement(lines []string) bool {
	text := cueTextLines(lines)
	if len(text) == 0 {
		return false
	}
	payload := strings.TrimSpace(strings.ToLower(strings.Join(text, " ")))
	if payload == "" {
		return false
	}
	for _, pattern := range adPatterns {
		if pattern.MatchString(payload) {
			return true
		}
	}
	return false
}

// cueTextLines returns the content lines of a block, skipping the index and
// time lines when present.
func cueTextLines(lines []string) []string {
	start := 0
	if start < len(lines) && isNumeric(lines[start]) {
		start++
	}
	if start < len(lines) && strings.Contains(lines[start], "-->") {
		start++
	}
	if start >= len(lines) {
		return nil
	}
	text := make([]string, 0, len(lines)-start)
	for _, line := range lines[start:] {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			text = append(text, trimmed)
		}
	}
	return text
}

func isNumeric(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
