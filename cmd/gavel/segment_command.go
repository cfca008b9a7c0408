package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"gavel/internal/logging"
	"gavel/internal/pipeline"
	"gavel/internal/segment"
)

func newSegmentCommand(ctx *commandContext) *cobra.Command {
	var group bool
	var clean bool
	var maxGap float64
	var minDuration float64
	var jsonOutput bool
	var outputPath string

	cmd := &cobra.Command{
		Use:   "segment <transcript.srt>",
		Short: "Parse a subtitle transcript and merge it into topic-length segments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			source := strings.TrimSpace(args[0])
			data, err := os.ReadFile(source)
			if err != nil {
				return fmt.Errorf("read transcript: %w", err)
			}

			opts := pipeline.OptionsFromConfig(cfg)
			if cmd.Flags().Changed("group") {
				opts.Group = group
			}
			if cmd.Flags().Changed("clean") {
				opts.Clean = clean
			}
			if cmd.Flags().Changed("max-gap") {
				opts.MaxGap = maxGap
			}
			if cmd.Flags().Changed("min-duration") {
				opts.MinDuration = minDuration
			}

			seg := pipeline.New(logger.With(logging.FieldSource, source))
			result, err := seg.Process(cmd.Context(), string(data), opts)
			if err != nil {
				return err
			}

			if outputPath != "" {
				if err := writeSRTFile(outputPath, result.Entries); err != nil {
					return err
				}
			}

			if jsonOutput {
				return writeJSON(cmd, result)
			}
			renderResult(cmd, result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&group, "group", true, "Merge entries into segments (use --group=false for raw entries)")
	cmd.Flags().BoolVar(&clean, "clean", false, "Strip advertisement cues before parsing")
	cmd.Flags().Float64Var(&maxGap, "max-gap", segment.DefaultMaxGap, "Largest silence in seconds a segment may bridge")
	cmd.Flags().Float64Var(&minDuration, "min-duration", segment.DefaultMinDuration, "Segment length in seconds at which a segment stops growing")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the full result as JSON")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the resulting segments to an SRT file")

	return cmd
}

func renderResult(cmd *cobra.Command, result pipeline.Result) {
	out := cmd.OutOrStdout()

	rows := make([][]string, 0, len(result.Entries))
	for i, entry := range result.Entries {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			formatClock(entry.StartSec),
			formatClock(entry.EndSec),
			formatSeconds(entry.Duration()),
			segment.Title(entry, 60),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"#", "Start", "End", "Length", "Title"},
		rows,
		[]columnAlignment{alignRight, alignRight, alignRight, alignRight, alignLeft},
	))

	fmt.Fprintf(out, "%d entries -> %d segments, %s total\n",
		result.Stats.TotalEntries,
		result.Stats.GroupedEntries,
		formatSeconds(result.Stats.TotalDuration),
	)
	if result.RemovedCues > 0 {
		fmt.Fprintf(out, "%d advertisement cues removed\n", result.RemovedCues)
	}
	if len(result.Skips) > 0 {
		fmt.Fprintf(out, "%d malformed blocks skipped\n", len(result.Skips))
	}
}
