package main

import (
	"encoding/json"
	"testing"

	"gavel/internal/transcript"
)

func TestInspectCommand(t *testing.T) {
	path := writeTranscript(t, t.TempDir(), "meeting.srt", testTranscript)

	out, _, err := runCLI(t, []string{"inspect", path}, "")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	requireContains(t, out, "Valid entries")
	requireContains(t, out, "00:00:05,000")
}

func TestInspectCommandJSON(t *testing.T) {
	path := writeTranscript(t, t.TempDir(), "meeting.srt", testTranscript+"\ngarbage block\n")

	out, _, err := runCLI(t, []string{"inspect", path, "--json"}, "")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}

	var inspection transcript.Inspection
	if err := json.Unmarshal([]byte(out), &inspection); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, out)
	}
	if inspection.Entries != 2 || inspection.Skipped != 1 {
		t.Errorf("inspection = %+v", inspection)
	}
}
