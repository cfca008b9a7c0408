package timecode

import (
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"00:00:05,500", 5.5},
		{"01:00:00,000", 3600.0},
		{"00:01:00,000", 60.0},
		{"00:00:00,001", 0.001},
		{"01:02:03,450", 3723.45},
		{"00:00:05.500", 5.5},
		{"  00:00:05,500  ", 5.5},
		{"not a time", 0},
		{"", 0},
		{"0:00:05,500", 0},
		{"00:00:05,50", 0},
		{"00:00:05", 0},
		{"123:00:00,000", 0},
	}

	for _, tt := range tests {
		got := Parse(tt.input)
		if math.Abs(got-tt.expected) > 0.0001 {
			t.Errorf("Parse(%q) = %f, want %f", tt.input, got, tt.expected)
		}
	}
}

func TestParseMonotonic(t *testing.T) {
	base := Parse("01:10:20,300")

	increments := []struct {
		name  string
		value string
	}{
		{"hours", "02:10:20,300"},
		{"minutes", "01:11:20,300"},
		{"seconds", "01:10:21,300"},
		{"millis", "01:10:20,301"},
	}
	for _, tt := range increments {
		if got := Parse(tt.value); got <= base {
			t.Errorf("increasing %s: Parse(%q) = %f, want > %f", tt.name, tt.value, got, base)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		seconds  float64
		expected string
	}{
		{0, "00:00:00,000"},
		{5.5, "00:00:05,500"},
		{3600, "01:00:00,000"},
		{3723.45, "01:02:03,450"},
		{-1, "00:00:00,000"},
	}

	for _, tt := range tests {
		if got := Format(tt.seconds); got != tt.expected {
			t.Errorf("Format(%f) = %q, want %q", tt.seconds, got, tt.expected)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, value := range []string{"00:00:05,500", "01:02:03,450", "10:59:59,999"} {
		if got := Format(Parse(value)); got != value {
			t.Errorf("Format(Parse(%q)) = %q", value, got)
		}
	}
}
