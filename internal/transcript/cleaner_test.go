package transcript

import (
	"strings"
	"testing"
)

func TestCleanRemovesAdvertisements(t *testing.T) {
	raw := `1
00:00:00,000 --> 00:00:02,000
Subtitles by SomeGroup

2
00:00:02,500 --> 00:00:05,000
Actual dialogue
`
	cleaned, stats := Clean(raw)
	if stats.RemovedCues != 1 {
		t.Fatalf("removed cues = %d, want 1", stats.RemovedCues)
	}
	if strings.Contains(cleaned, "SomeGroup") {
		t.Errorf("advertisement survived cleanup: %q", cleaned)
	}

	entries := Parse(cleaned)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry after cleanup, got %d", len(entries))
	}
	if entries[0].Text != "Actual dialogue" {
		t.Errorf("entry text = %q", entries[0].Text)
	}
}

func TestCleanTrimsTrailingWhitespace(t *testing.T) {
	raw := "1\n00:00:00,000 --> 00:00:02,000\nHello   \n"
	cleaned, stats := Clean(raw)
	if stats.RemovedCues != 0 {
		t.Fatalf("removed cues = %d, want 0", stats.RemovedCues)
	}
	if strings.Contains(cleaned, "Hello   ") {
		t.Errorf("trailing whitespace survived: %q", cleaned)
	}
	entries := Parse(cleaned)
	if len(entries) != 1 || entries[0].Text != "Hello" {
		t.Fatalf("cleaned output did not reparse: %+v", entries)
	}
}

func TestCleanKeepsOrdinaryCues(t *testing.T) {
	cleaned, stats := Clean(sampleTranscript)
	if stats.RemovedCues != 0 {
		t.Fatalf("removed cues = %d, want 0", stats.RemovedCues)
	}
	entries := Parse(cleaned)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}

func TestCleanEmptyInput(t *testing.T) {
	cleaned, stats := Clean("")
	if cleaned != "" || stats.RemovedCues != 0 {
		t.Errorf("Clean(\"\") = %q, %+v", cleaned, stats)
	}
}
