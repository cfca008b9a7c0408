package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"gavel/internal/transcript"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "inspect <transcript.srt>",
		Short: "Report cue counts, time bounds, and format issues for a transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("read transcript: %w", err)
			}

			inspection := transcript.Inspect(string(data))
			if jsonOutput {
				return writeJSON(cmd, inspection)
			}

			out := cmd.OutOrStdout()
			rows := [][]string{
				{"Blocks", fmt.Sprintf("%d", inspection.Blocks)},
				{"Valid entries", fmt.Sprintf("%d", inspection.Entries)},
				{"Skipped blocks", fmt.Sprintf("%d", inspection.Skipped)},
				{"First cue", formatClock(inspection.FirstSec)},
				{"Last cue", formatClock(inspection.LastSec)},
				{"Usable", yesNo(len(inspection.Issues) == 0)},
			}
			fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))
			for _, issue := range inspection.Issues {
				fmt.Fprintf(out, "issue: %s\n", issue)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the inspection as JSON")
	return cmd
}
