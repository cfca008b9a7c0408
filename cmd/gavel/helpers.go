package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"gavel/internal/timecode"
	"gavel/internal/transcript"
)

// formatClock renders a second offset as HH:MM:SS,mmm for table output.
func formatClock(seconds float64) string {
	return timecode.Format(seconds)
}

// formatSeconds renders a span as a compact human-readable duration.
func formatSeconds(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	if total < 60 {
		return fmt.Sprintf("%.1fs", seconds)
	}
	minutes := total / 60
	secs := total % 60
	if minutes < 60 {
		return fmt.Sprintf("%dm%02ds", minutes, secs)
	}
	hours := minutes / 60
	minutes = minutes % 60
	return fmt.Sprintf("%dh%02dm%02ds", hours, minutes, secs)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

// stdoutIsTerminal reports whether stdout is attached to a TTY; batch
// summaries stay terse when output is piped.
func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func writeSRTFile(path string, entries []transcript.Entry) error {
	if err := os.WriteFile(path, []byte(transcript.FormatSRT(entries)), 0o644); err != nil {
		return fmt.Errorf("write srt: %w", err)
	}
	return nil
}
