// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatOrg  Format = "org"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// SortOrder selects how the rendered clips are ordered.
type SortOrder string

const (
	// SortNone keeps input order (within the kind buckets).
	SortNone SortOrder = "none"

	// SortSource orders clips by their title/author line.
	SortSource SortOrder = "source"

	// SortDate orders clips by date then time; clips without a date sort last.
	SortDate SortOrder = "date"
)

// ConvertConfig holds the settings for one conversion run. The CLI
// resolves flags, config file, and environment into this value; the
// core packages read nothing else.
type ConvertConfig struct {
	// Format is the output encoding: text, org, json, or yaml.
	Format Format `json:"format" yaml:"format"`

	// Kinds is the subset of clip kinds to render. Empty means all.
	Kinds []Kind `json:"kinds" yaml:"kinds"`

	// Sort is the output ordering (default none).
	Sort SortOrder `json:"sort" yaml:"sort"`

	// Quiet suppresses progress messages, warnings, and unparsed-record
	// diagnostics.
	Quiet bool `json:"quiet" yaml:"quiet"`
}
