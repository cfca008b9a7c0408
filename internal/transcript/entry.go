package transcript

// Entry represents a single subtitle cue with timing and text. The textual
// timestamps are preserved verbatim for display; StartSec and EndSec carry
// the derived offsets used for gap and duration arithmetic.
type Entry struct {
	Index     int     `json:"index"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	StartSec  float64 `json:"start_sec"`
	EndSec    float64 `json:"end_sec"`
	Text      string  `json:"text"`
}

// Duration returns the entry's own span in seconds.
func (e Entry) Duration() float64 {
	return e.EndSec - e.StartSec
}
