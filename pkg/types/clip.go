// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data types shared between the parsing core,
// the output formatters, and the CLI.
package types

import (
	"fmt"
	"time"
)

// Kind categorizes a clip as stored by the device.
type Kind string

const (
	KindHighlight Kind = "highlight"
	KindNote      Kind = "note"
	KindBookmark  Kind = "bookmark"
)

// AllKinds lists the clip kinds in their canonical output order.
var AllKinds = []Kind{KindHighlight, KindNote, KindBookmark}

// Capitalized returns the kind name with an upper-case first letter,
// e.g. "Highlight".
func (k Kind) Capitalized() string {
	s := string(k)
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// RawRecord is one five-line window of the clippings file, prior to
// classification and field extraction. Line content is kept verbatim
// (newline stripped, nothing else touched).
type RawRecord struct {
	// Source is the title/author line.
	Source string

	// Info is the metadata line carrying kind, page, location, date and time.
	Info string

	// Blank is the third line, expected empty but not validated.
	Blank string

	// Content is the highlighted or annotated text.
	Content string

	// Delimiter is the fifth line, conventionally a run of '=' characters.
	// Its content is not validated.
	Delimiter string
}

// Lines returns the record's five lines in input order.
func (r RawRecord) Lines() [5]string {
	return [5]string{r.Source, r.Info, r.Blank, r.Content, r.Delimiter}
}

// Date is a calendar date without a time zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// String renders the date in ISO form, e.g. "2023-08-27".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// ClockTime is a 24-hour time of day.
type ClockTime struct {
	Hour   int
	Minute int
	Second int
}

// String renders the time as "15:04:05".
func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Clip is a fully parsed annotation record. Only records whose metadata
// line matched one of the known kind prefixes become Clips; everything
// else stays a RawRecord in the unparsed bucket.
//
// The tags name the structured-output fields, but the JSON and YAML
// encodings are produced from a dedicated entry struct in
// internal/format; keep the two tag sets in step.
type Clip struct {
	// Kind is the clip category. Always set.
	Kind Kind `json:"type" yaml:"type"`

	// Source is the title/author line, verbatim.
	Source string `json:"source" yaml:"source"`

	// Page holds zero, one, or two page numbers: unknown, a single page,
	// or an inclusive range.
	Page []int `json:"page" yaml:"page"`

	// Location holds zero, one, or two location numbers, with the same
	// semantics as Page.
	Location []int `json:"location" yaml:"location"`

	// Date is the calendar date the clip was added, if present.
	Date *Date `json:"date" yaml:"date"`

	// Time is the time of day the clip was added, if present.
	Time *ClockTime `json:"time" yaml:"time"`

	// Content is the highlighted or annotated text, verbatim.
	Content string `json:"content" yaml:"content"`
}

// UnparsedRecord pairs a record that matched no kind prefix with the
// 1-based line number of its delimiter line, for diagnostics.
type UnparsedRecord struct {
	Record RawRecord
	Line   int
}

// Extraction is the result of one parse pass: clips bucketed by kind,
// the unparsed records, and any warnings raised along the way.
type Extraction struct {
	Highlights []Clip
	Notes      []Clip
	Bookmarks  []Clip
	Unparsed   []UnparsedRecord

	// Warnings records non-fatal oddities: unrecognized month names and
	// a discarded partial record at end of input.
	Warnings []string
}

// Count returns the number of clips of the given kind.
func (e *Extraction) Count(k Kind) int {
	switch k {
	case KindHighlight:
		return len(e.Highlights)
	case KindNote:
		return len(e.Notes)
	case KindBookmark:
		return len(e.Bookmarks)
	}
	return 0
}

// Select concatenates the buckets for the requested kinds, preserving
// input order within each bucket and the canonical highlight, note,
// bookmark order across buckets. An empty request selects all kinds.
func (e *Extraction) Select(kinds []Kind) []Clip {
	if len(kinds) == 0 {
		kinds = AllKinds
	}
	requested := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		requested[k] = true
	}

	var out []Clip
	if requested[KindHighlight] {
		out = append(out, e.Highlights...)
	}
	if requested[KindNote] {
		out = append(out, e.Notes...)
	}
	if requested[KindBookmark] {
		out = append(out, e.Bookmarks...)
	}
	return out
}
