// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes the progress and diagnostic messages of a parse
// run to a caller-supplied writer. The caller decides the sink and
// whether to call at all (the quiet flag lives in the CLI layer).
package report

import (
	"fmt"
	"io"

	"github.com/golfeado/kindle-clips/pkg/types"
)

// Processing announces the input file being parsed.
func Processing(w io.Writer, path string) {
	fmt.Fprintf(w, "Processing '%s'.\n", path)
}

// Warnings lists the non-fatal oddities collected during the parse.
func Warnings(w io.Writer, warnings []string) {
	for _, msg := range warnings {
		fmt.Fprintf(w, "Warning: %s\n", msg)
	}
}

// UnparsedRecords shows every record whose metadata line matched no
// known kind prefix, with its ending line number and all five captured
// lines, so the source file can be inspected and fixed by hand.
func UnparsedRecords(w io.Writer, unparsed []types.UnparsedRecord) {
	for _, u := range unparsed {
		fmt.Fprintf(w, "The record ending at line %d could not be parsed:\n", u.Line)
		fmt.Fprintf(w, "    > %s\n", u.Record.Source)
		fmt.Fprintf(w, "ERR > %s\n", u.Record.Info)
		fmt.Fprintf(w, "    > %s\n", u.Record.Blank)
		fmt.Fprintf(w, "    > %s\n", u.Record.Content)
		fmt.Fprintf(w, "    > %s\n", u.Record.Delimiter)
	}
}

// Counts prints how many clips of each requested kind were found. An
// empty request reports all kinds.
func Counts(w io.Writer, ext *types.Extraction, kinds []types.Kind) {
	if len(kinds) == 0 {
		kinds = types.AllKinds
	}
	for _, k := range kinds {
		fmt.Fprintf(w, "Found %d %ss.\n", ext.Count(k), k)
	}
}
