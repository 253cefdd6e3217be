// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/golfeado/kindle-clips/internal/format"
	"github.com/golfeado/kindle-clips/internal/parse"
	"github.com/golfeado/kindle-clips/internal/report"
	"github.com/golfeado/kindle-clips/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a clippings file into the selected output format",
	Long: `Convert parses the given clippings file and renders the extracted clips
as plain text, org-mode, JSON, or YAML.

By default all three clip kinds are included; the --highlights, --notes,
and --bookmarks flags restrict the output to the named kinds. Records
that match no known kind are reported on stderr with their ending line
number unless --quiet is set.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := convertConfig(cmd)

	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	if !cfg.Quiet {
		report.Processing(os.Stderr, args[0])
	}

	ext, err := parse.Parse(in)
	if err != nil {
		return err
	}

	if !cfg.Quiet {
		report.Warnings(os.Stderr, ext.Warnings)
		report.UnparsedRecords(os.Stderr, ext.Unparsed)
		report.Counts(os.Stderr, ext, cfg.Kinds)
	}

	clips := ext.Select(cfg.Kinds)
	if err := sortClips(clips, cfg.Sort); err != nil {
		return err
	}

	rendered, err := format.Render(clips, cfg.Format)
	if err != nil {
		return err
	}

	outPath, _ := cmd.Flags().GetString("output")
	var out io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	_, err = io.WriteString(out, rendered)
	return err
}

// convertConfig resolves flags, the config file, and the environment
// into one ConvertConfig. Flags win over config values, config values
// over built-in defaults.
func convertConfig(cmd *cobra.Command) types.ConvertConfig {
	cfg := types.ConvertConfig{
		Format: types.Format(stringSetting(cmd, "format")),
		Sort:   types.SortOrder(stringSetting(cmd, "sort")),
		Quiet:  boolSetting(cmd, "quiet"),
	}

	for _, k := range types.AllKinds {
		if set, _ := cmd.Flags().GetBool(string(k) + "s"); set {
			cfg.Kinds = append(cfg.Kinds, k)
		}
	}

	return cfg
}

func stringSetting(cmd *cobra.Command, name string) string {
	if !cmd.Flags().Changed(name) && viper.IsSet(name) {
		return viper.GetString(name)
	}
	v, _ := cmd.Flags().GetString(name)
	return v
}

func boolSetting(cmd *cobra.Command, name string) bool {
	if !cmd.Flags().Changed(name) && viper.IsSet(name) {
		return viper.GetBool(name)
	}
	v, _ := cmd.Flags().GetBool(name)
	return v
}

// sortClips orders clips in place. The sort is stable, so clips that
// compare equal keep their extraction order.
func sortClips(clips []types.Clip, order types.SortOrder) error {
	switch order {
	case types.SortNone, "":
		return nil
	case types.SortSource:
		sort.SliceStable(clips, func(i, j int) bool {
			return clips[i].Source < clips[j].Source
		})
		return nil
	case types.SortDate:
		sort.SliceStable(clips, func(i, j int) bool {
			return stampKey(clips[i]) < stampKey(clips[j])
		})
		return nil
	}
	return fmt.Errorf("unsupported sort order %q: use none, source, or date", order)
}

// stampKey builds a lexicographically sortable creation stamp. Clips
// without a date sort after everything else.
func stampKey(c types.Clip) string {
	if c.Date == nil {
		return "~"
	}
	key := c.Date.String()
	if c.Time != nil {
		key += " " + c.Time.String()
	}
	return key
}

func init() {
	convertCmd.Flags().StringP("format", "f", string(types.FormatText), "output format: text, org, json, or yaml")
	convertCmd.Flags().StringP("output", "o", "", "write output to FILE instead of stdout (overwritten without confirmation)")
	convertCmd.Flags().String("sort", string(types.SortNone), "output order: none, source, or date")
	convertCmd.Flags().BoolP("highlights", "H", false, "include highlights")
	convertCmd.Flags().BoolP("notes", "n", false, "include notes")
	convertCmd.Flags().BoolP("bookmarks", "b", false, "include bookmarks")
	convertCmd.Flags().BoolP("quiet", "q", false, "suppress progress and diagnostic messages")

	rootCmd.AddCommand(convertCmd)
}
