// Package transcript parses SRT subtitle text into ordered timed entries.
//
// Parsing follows a lenient skip-or-zero policy: blocks missing an index,
// time line, or enough lines are skipped with a recorded reason instead of
// failing the whole transcript, and entries are emitted in source order with
// no reordering by time. The package also provides optional cleanup of
// advertisement cues, inspection helpers for format diagnostics, and
// re-serialization of entries back to SRT.
package transcript
