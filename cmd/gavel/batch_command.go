package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"gavel/internal/pipeline"
)

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var outputDir string
	var clean bool

	cmd := &cobra.Command{
		Use:   "batch <directory>",
		Short: "Segment every .srt transcript in a directory",
		Long: `Batch processes a directory of subtitle transcripts with the configured
grouping thresholds and writes one JSON result per transcript. A lock file
in the output directory prevents concurrent batch runs from clobbering each
other's results.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			dir := strings.TrimSpace(args[0])
			info, err := os.Stat(dir)
			if err != nil {
				return fmt.Errorf("stat directory: %w", err)
			}
			if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", dir)
			}

			sources, err := filepath.Glob(filepath.Join(dir, "*.srt"))
			if err != nil {
				return fmt.Errorf("scan directory: %w", err)
			}
			sort.Strings(sources)
			if len(sources) == 0 {
				return fmt.Errorf("no .srt transcripts found in %s", dir)
			}

			outDir := strings.TrimSpace(outputDir)
			if outDir == "" {
				outDir = cfg.Batch.OutputDir
			}
			if outDir == "" {
				outDir = filepath.Join(dir, "segments")
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("ensure output directory: %w", err)
			}

			lock := flock.New(filepath.Join(outDir, ".gavel.lock"))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire batch lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another batch run is already writing to %s", outDir)
			}
			defer lock.Unlock()

			opts := pipeline.OptionsFromConfig(cfg)
			if cmd.Flags().Changed("clean") {
				opts.Clean = clean
			}
			seg := pipeline.New(logger)

			out := cmd.OutOrStdout()
			rows := make([][]string, 0, len(sources))
			failures := 0
			for _, source := range sources {
				name := filepath.Base(source)
				result, err := processFile(cmd, seg, source, opts)
				if err != nil {
					failures++
					rows = append(rows, []string{name, "-", "-", "-", err.Error()})
					continue
				}

				target := filepath.Join(outDir, strings.TrimSuffix(name, filepath.Ext(name))+".json")
				if err := writeResultFile(target, result); err != nil {
					return err
				}
				rows = append(rows, []string{
					name,
					fmt.Sprintf("%d", result.Stats.TotalEntries),
					fmt.Sprintf("%d", result.Stats.GroupedEntries),
					formatSeconds(result.Stats.TotalDuration),
					"ok",
				})
			}

			if stdoutIsTerminal() {
				fmt.Fprintln(out, renderTable(
					[]string{"Transcript", "Entries", "Segments", "Length", "Status"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignLeft},
				))
			} else {
				for _, row := range rows {
					fmt.Fprintln(out, strings.Join(row, "\t"))
				}
			}
			fmt.Fprintf(out, "%d of %d transcripts processed into %s\n", len(sources)-failures, len(sources), outDir)

			if failures == len(sources) {
				return fmt.Errorf("all %d transcripts failed", failures)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for per-transcript JSON results")
	cmd.Flags().BoolVar(&clean, "clean", false, "Strip advertisement cues before parsing")
	return cmd
}

func processFile(cmd *cobra.Command, seg *pipeline.Segmenter, source string, opts pipeline.Options) (pipeline.Result, error) {
	data, err := os.ReadFile(source)
	if err != nil {
		return pipeline.Result{}, fmt.Errorf("read transcript: %w", err)
	}
	return seg.Process(cmd.Context(), string(data), opts)
}

func writeResultFile(path string, result pipeline.Result) error {
	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
