// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package format renders clips into the supported output encodings:
// plain text, org-mode, JSON, and YAML. Rendering is a pure function of
// the clip sequence and the selector.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golfeado/kindle-clips/pkg/types"
)

// Render encodes clips with the selected format. An unknown selector is
// an error; there is no default.
func Render(clips []types.Clip, f types.Format) (string, error) {
	switch f {
	case types.FormatText:
		return renderText(clips), nil
	case types.FormatOrg:
		return renderOrg(clips), nil
	case types.FormatJSON:
		return renderJSON(clips)
	case types.FormatYAML:
		return renderYAML(clips)
	}
	return "", fmt.Errorf("unsupported format %q: use text, org, json, or yaml", f)
}

// RangeString pretty-prints a page or location sequence: "no data" when
// empty, the bare value for a single page, "a-b" for a range, and a
// comma-joined list for anything longer.
func RangeString(nn []int) string {
	switch len(nn) {
	case 0:
		return "no data"
	case 1:
		return strconv.Itoa(nn[0])
	case 2:
		return fmt.Sprintf("%d-%d", nn[0], nn[1])
	}

	parts := make([]string, len(nn))
	for i, n := range nn {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

// dateString renders an optional date, "no data" when absent.
func dateString(d *types.Date) string {
	if d == nil {
		return "no data"
	}
	return d.String()
}

// timeString renders an optional time of day, "no data" when absent.
func timeString(t *types.ClockTime) string {
	if t == nil {
		return "no data"
	}
	return t.String()
}

const ruleWidth = 70

// renderText produces the human-readable block format: one labeled block
// per clip, a rule line before the first block and after every block.
func renderText(clips []types.Clip) string {
	rule := strings.Repeat("-", ruleWidth) + "\n"

	var b strings.Builder
	b.WriteString(rule)
	for _, c := range clips {
		fmt.Fprintf(&b, "Source: %s\n", c.Source)
		fmt.Fprintf(&b, "Page: %s\n", RangeString(c.Page))
		fmt.Fprintf(&b, "Location: %s\n", RangeString(c.Location))
		fmt.Fprintf(&b, "Creation: %s | %s\n", dateString(c.Date), timeString(c.Time))
		fmt.Fprintf(&b, "%s:\n\n", c.Kind.Capitalized())
		b.WriteString(c.Content)
		b.WriteString("\n")
		b.WriteString(rule)
	}
	return b.String()
}

// renderOrg produces one org-mode heading per clip with a property
// drawer, followed by the content and a separating blank line.
func renderOrg(clips []types.Clip) string {
	var b strings.Builder
	for _, c := range clips {
		fmt.Fprintf(&b, "* %s\n", c.Source)
		b.WriteString("  :PROPERTIES:\n")
		fmt.Fprintf(&b, "  :Source: %s\n", c.Source)
		fmt.Fprintf(&b, "  :Page: %s\n", RangeString(c.Page))
		fmt.Fprintf(&b, "  :Location: %s\n", RangeString(c.Location))
		fmt.Fprintf(&b, "  :Date: %s\n", dateString(c.Date))
		fmt.Fprintf(&b, "  :Time: %s\n", timeString(c.Time))
		fmt.Fprintf(&b, "  :Type: %s\n", c.Kind)
		b.WriteString("  :END:\n\n")
		b.WriteString(c.Content)
		b.WriteString("\n\n")
	}
	return b.String()
}
