// Package pipeline runs the full transcript transformation: raw SRT text is
// parsed into timed entries, optionally cleaned and grouped into segments,
// and summarized with aggregate stats. Each run is tagged with a correlation
// ID for logging. The pipeline holds no state between runs, so one Segmenter
// may serve concurrent calls.
package pipeline
