// Package logging assembles the structured slog loggers used across gavel.
//
// It owns the console and JSON handlers, level parsing, and the context
// helpers that tag log lines with a per-run correlation ID. Prefer these
// constructors over hand-rolled slog setup so every component emits records
// with the same shape and routing.
package logging
