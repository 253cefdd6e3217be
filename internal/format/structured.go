// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v3"

	"github.com/golfeado/kindle-clips/pkg/types"
)

// entry is the structured-output shape shared by the JSON and YAML
// encodings. Page and location stay integer arrays rather than the
// pretty strings used by the text formats; absent date and time render
// as null.
type entry struct {
	Source   string  `json:"source" yaml:"source"`
	Page     []int   `json:"page" yaml:"page"`
	Location []int   `json:"location" yaml:"location"`
	Date     *string `json:"date" yaml:"date"`
	Time     *string `json:"time" yaml:"time"`
	Type     string  `json:"type" yaml:"type"`
	Content  string  `json:"content" yaml:"content"`
}

func toEntries(clips []types.Clip) []entry {
	entries := make([]entry, len(clips))
	for i, c := range clips {
		entries[i] = entry{
			Source:   c.Source,
			Page:     nonNil(c.Page),
			Location: nonNil(c.Location),
			Type:     string(c.Kind),
			Content:  c.Content,
		}
		if c.Date != nil {
			s := c.Date.String()
			entries[i].Date = &s
		}
		if c.Time != nil {
			s := c.Time.String()
			entries[i].Time = &s
		}
	}
	return entries
}

// nonNil keeps an empty sequence encoding as [] instead of null.
func nonNil(nn []int) []int {
	if nn == nil {
		return []int{}
	}
	return nn
}

func renderJSON(clips []types.Clip) (string, error) {
	data, err := json.MarshalIndent(toEntries(clips), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	return string(data) + "\n", nil
}

func renderYAML(clips []types.Clip) (string, error) {
	data, err := yaml.Marshal(toEntries(clips))
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	return string(data), nil
}
