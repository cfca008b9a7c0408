package segment

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"gavel/internal/transcript"
)

var titleCaser = cases.Title(language.Und)

// Title derives a short display title for a segment from its first text
// line: punctuation collapses to spaces, the result is title-cased, and long
// lines are cut at a word boundary.
func Title(entry transcript.Entry, maxLen int) string {
	line := entry.Text
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}

	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range line {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r) || r == '\'':
			cleaned.WriteRune(r)
			prevSpace = false
		default:
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}

	title := strings.TrimSpace(cleaned.String())
	if title == "" {
		return "(no speech)"
	}
	title = titleCaser.String(title)

	if maxLen > 0 && len(title) > maxLen {
		cut := strings.LastIndexByte(title[:maxLen], ' ')
		if cut <= 0 {
			cut = maxLen
		}
		title = strings.TrimSpace(title[:cut]) + "…"
	}
	return title
}
