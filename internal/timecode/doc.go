// Package timecode converts between SRT-style timestamps and second offsets.
//
// Parsing is deliberately lenient: a string that does not look like an SRT
// timestamp yields a zero offset rather than an error, so malformed cues
// degrade instead of aborting a whole transcript. Formatting always emits
// the canonical comma-millisecond form used when writing subtitles back out.
package timecode
