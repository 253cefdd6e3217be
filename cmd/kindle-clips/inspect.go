// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/golfeado/kindle-clips/internal/parse"
	"github.com/golfeado/kindle-clips/internal/report"
	"github.com/golfeado/kindle-clips/pkg/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Summarize a clippings file without converting it",
	Long: `Inspect parses the given clippings file and reports per-kind counts,
warnings, and the full five lines of every record that could not be
classified. No clip output is produced.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

// inspectSummary is the machine-readable shape for --json output.
type inspectSummary struct {
	Highlights int      `json:"highlights"`
	Notes      int      `json:"notes"`
	Bookmarks  int      `json:"bookmarks"`
	Unparsed   int      `json:"unparsed"`
	Warnings   []string `json:"warnings"`
}

// summarize condenses an extraction into the counts the summary output
// reports. Warnings stays a non-nil slice so the JSON shape is stable.
func summarize(ext *types.Extraction) inspectSummary {
	warnings := ext.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return inspectSummary{
		Highlights: ext.Count(types.KindHighlight),
		Notes:      ext.Count(types.KindNote),
		Bookmarks:  ext.Count(types.KindBookmark),
		Unparsed:   len(ext.Unparsed),
		Warnings:   warnings,
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	ext, err := parse.Parse(in)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summarize(ext))
	}

	report.Counts(os.Stdout, ext, nil)
	fmt.Fprintf(os.Stdout, "Found %d unparsed records.\n", len(ext.Unparsed))
	report.Warnings(os.Stdout, ext.Warnings)
	report.UnparsedRecords(os.Stdout, ext.Unparsed)
	return nil
}

func init() {
	inspectCmd.Flags().Bool("json", false, "output the summary as JSON")

	rootCmd.AddCommand(inspectCmd)
}
