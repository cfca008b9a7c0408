package transcript

import (
	"math"
	"testing"
)

func TestInspect(t *testing.T) {
	inspection := Inspect(sampleTranscript)
	if inspection.Blocks != 2 || inspection.Entries != 2 || inspection.Skipped != 0 {
		t.Fatalf("inspection counts = %+v", inspection)
	}
	if math.Abs(inspection.FirstSec-0) > 0.0001 || math.Abs(inspection.LastSec-5.0) > 0.0001 {
		t.Errorf("bounds = %f..%f, want 0..5", inspection.FirstSec, inspection.LastSec)
	}
	if len(inspection.Issues) != 0 {
		t.Errorf("unexpected issues: %v", inspection.Issues)
	}
}

func TestInspectEmpty(t *testing.T) {
	inspection := Inspect("")
	if len(inspection.Issues) != 1 || inspection.Issues[0] != "empty_transcript" {
		t.Errorf("issues = %v, want [empty_transcript]", inspection.Issues)
	}
}

func TestInspectNoValidEntries(t *testing.T) {
	inspection := Inspect("garbage\n\nmore garbage here\nstill not a cue\n")
	found := false
	for _, issue := range inspection.Issues {
		if issue == "no_valid_entries" {
			found = true
		}
	}
	if !found {
		t.Errorf("issues = %v, want no_valid_entries", inspection.Issues)
	}
}

func TestInspectOutOfOrder(t *testing.T) {
	text := `1
00:01:00,000 --> 00:01:02,000
Later

2
00:00:00,000 --> 00:00:02,000
Earlier
`
	inspection := Inspect(text)
	if len(inspection.Issues) != 1 || inspection.Issues[0] != "out_of_order_cues: 1" {
		t.Errorf("issues = %v, want [out_of_order_cues: 1]", inspection.Issues)
	}
}

func TestFormatSRTRoundTrip(t *testing.T) {
	entries := Parse(sampleTranscript)
	out := FormatSRT(entries)
	reparsed := Parse(out)
	if len(reparsed) != len(entries) {
		t.Fatalf("round trip changed entry count: %d != %d", len(reparsed), len(entries))
	}
	for i := range entries {
		if reparsed[i].Text != entries[i].Text {
			t.Errorf("entry %d text = %q, want %q", i, reparsed[i].Text, entries[i].Text)
		}
		if math.Abs(reparsed[i].StartSec-entries[i].StartSec) > 0.0001 {
			t.Errorf("entry %d start = %f, want %f", i, reparsed[i].StartSec, entries[i].StartSec)
		}
		if reparsed[i].Index != i+1 {
			t.Errorf("entry %d reindexed to %d, want %d", i, reparsed[i].Index, i+1)
		}
	}
}
