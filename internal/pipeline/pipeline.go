package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"gavel/internal/config"
	"gavel/internal/logging"
	"gavel/internal/segment"
	"gavel/internal/transcript"
)

// ErrNoEntries reports that a transcript contained no parseable cue blocks.
var ErrNoEntries = errors.New("no valid entries found")

// Options controls one pipeline run.
type Options struct {
	// Group enables merging entries into segments. When false the parsed
	// entries pass through unchanged.
	Group       bool
	MaxGap      float64
	MinDuration float64
	// Clean strips advertisement cues before parsing.
	Clean bool
}

// DefaultOptions returns the standard pipeline settings.
func DefaultOptions() Options {
	return Options{
		Group:       true,
		MaxGap:      segment.DefaultMaxGap,
		MinDuration: segment.DefaultMinDuration,
	}
}

// OptionsFromConfig builds pipeline options from the segmenter config.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return DefaultOptions()
	}
	return Options{
		Group:       cfg.Segmenter.Group,
		MaxGap:      cfg.Segmenter.MaxGapSeconds,
		MinDuration: cfg.Segmenter.MinDurationSeconds,
		Clean:       cfg.Segmenter.Clean,
	}
}

// Result is the caller-facing output of one run.
type Result struct {
	Stats   segment.Stats      `json:"stats"`
	Entries []transcript.Entry `json:"entries"`
	Skips   []transcript.Skip  `json:"skips,omitempty"`
	// RemovedCues counts advertisement cues stripped by cleanup.
	RemovedCues int `json:"removed_cues,omitempty"`
}

// Segmenter runs the parse-and-group pipeline.
type Segmenter struct {
	logger *slog.Logger
}

// New constructs a Segmenter. A nil logger disables logging.
func New(logger *slog.Logger) *Segmenter {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Segmenter{logger: logger.With(slog.String(logging.FieldComponent, "pipeline"))}
}

// Process transforms raw SRT text into the result record. It returns
// ErrNoEntries when no block of the transcript parses; every other kind of
// malformed input degrades per the lenient-parse policy instead of failing.
func (s *Segmenter) Process(ctx context.Context, text string, opts Options) (Result, error) {
	ctx = logging.WithRunID(ctx)
	log := logging.WithContext(ctx, s.logger)

	var result Result
	if opts.Clean {
		cleaned, stats := transcript.Clean(text)
		text = cleaned
		result.RemovedCues = stats.RemovedCues
		if stats.RemovedCues > 0 {
			log.Debug("removed advertisement cues", slog.Int("cues", stats.RemovedCues))
		}
	}

	report := transcript.ParseReport(text)
	if len(report.Skips) > 0 {
		log.Debug("skipped malformed blocks", slog.Int("blocks", len(report.Skips)))
	}
	if len(report.Entries) == 0 {
		return Result{}, ErrNoEntries
	}

	entries := report.Entries
	if opts.Group {
		entries = segment.Group(entries, segment.Options{
			MaxGap:      opts.MaxGap,
			MinDuration: opts.MinDuration,
		})
	}

	result.Entries = entries
	result.Skips = report.Skips
	result.Stats = segment.Summarize(report.Entries, entries)

	log.Info("processed transcript",
		slog.Int("entries", result.Stats.TotalEntries),
		slog.Int("segments", result.Stats.GroupedEntries),
		slog.Float64("duration_seconds", result.Stats.TotalDuration),
		slog.Bool("grouped", opts.Group),
	)
	return result, nil
}
