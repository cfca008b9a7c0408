package main

import (
	"encoding/json"
	"strings"
	"testing"

	"gavel/internal/pipeline"
)

func TestSegmentCommandJSON(t *testing.T) {
	path := writeTranscript(t, t.TempDir(), "meeting.srt", testTranscript)

	out, _, err := runCLI(t, []string{"segment", path, "--json", "--max-gap", "1.0", "--min-duration", "100.0"}, "")
	if err != nil {
		t.Fatalf("segment: %v", err)
	}

	var result pipeline.Result
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, out)
	}
	if result.Stats.TotalEntries != 2 || result.Stats.GroupedEntries != 1 {
		t.Errorf("stats = %+v, want 2 entries merged into 1 segment", result.Stats)
	}
	if len(result.Entries) != 1 || result.Entries[0].Text != "Hello\nWorld" {
		t.Errorf("entries = %+v", result.Entries)
	}
}

func TestSegmentCommandTable(t *testing.T) {
	path := writeTranscript(t, t.TempDir(), "meeting.srt", testTranscript)

	out, _, err := runCLI(t, []string{"segment", path, "--max-gap", "0.1"}, "")
	if err != nil {
		t.Fatalf("segment: %v", err)
	}
	requireContains(t, out, "2 entries -> 2 segments")
	requireContains(t, out, "Hello")
	requireContains(t, out, "00:00:02,500")
}

func TestSegmentCommandNoGroup(t *testing.T) {
	path := writeTranscript(t, t.TempDir(), "meeting.srt", testTranscript)

	out, _, err := runCLI(t, []string{"segment", path, "--group=false", "--json"}, "")
	if err != nil {
		t.Fatalf("segment: %v", err)
	}
	var result pipeline.Result
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(result.Entries) != 2 {
		t.Errorf("expected raw entries, got %d", len(result.Entries))
	}
}

func TestSegmentCommandEmptyTranscript(t *testing.T) {
	path := writeTranscript(t, t.TempDir(), "empty.srt", "nothing valid here\n")

	_, _, err := runCLI(t, []string{"segment", path}, "")
	if err == nil || !strings.Contains(err.Error(), "no valid entries found") {
		t.Fatalf("expected no-entries error, got %v", err)
	}
}

func TestSegmentCommandOutputSRT(t *testing.T) {
	dir := t.TempDir()
	path := writeTranscript(t, dir, "meeting.srt", testTranscript)
	target := dir + "/grouped.srt"

	_, _, err := runCLI(t, []string{"segment", path, "--max-gap", "1.0", "--min-duration", "100.0", "--output", target}, "")
	if err != nil {
		t.Fatalf("segment: %v", err)
	}

	data, err := readFileString(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	requireContains(t, data, "00:00:00,000 --> 00:00:05,000")
	requireContains(t, data, "Hello\nWorld")
}

func TestSegmentCommandUsesConfigThresholds(t *testing.T) {
	dir := t.TempDir()
	path := writeTranscript(t, dir, "meeting.srt", testTranscript)
	cfgPath := writeTranscript(t, dir, "config.toml", "[segmenter]\nmax_gap_seconds = 0.1\n")

	out, _, err := runCLI(t, []string{"segment", path, "--json"}, cfgPath)
	if err != nil {
		t.Fatalf("segment: %v", err)
	}
	var result pipeline.Result
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if result.Stats.GroupedEntries != 2 {
		t.Errorf("config max_gap ignored: %+v", result.Stats)
	}
}
