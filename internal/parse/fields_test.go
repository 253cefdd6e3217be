// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"reflect"
	"testing"
	"time"

	"github.com/golfeado/kindle-clips/pkg/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		info     string
		wantKind types.Kind
		wantOK   bool
	}{
		{"highlight", "- Your Highlight on page 46 | Location 694-694", types.KindHighlight, true},
		{"note", "- Your Note on page 12", types.KindNote, true},
		{"bookmark", "- Your Bookmark on Location 100", types.KindBookmark, true},
		{"prefix only is enough", "- Your Highlight", types.KindHighlight, true},
		{"case sensitive", "- your highlight on page 46", "", false},
		{"unknown prefix", "- Your Doodle on page 3", "", false},
		{"empty line", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := classify(tt.info)
			if ok != tt.wantOK || kind != tt.wantKind {
				t.Errorf("classify(%q) = (%q, %v), want (%q, %v)", tt.info, kind, ok, tt.wantKind, tt.wantOK)
			}
		})
	}
}

func TestExtractPage(t *testing.T) {
	tests := []struct {
		name string
		info string
		want []int
	}{
		{"single page", "- Your Highlight on page 46 | Location 694", []int{46}},
		{"page range", "- Your Highlight on pages 46-48 | Location 694", []int{46, 48}},
		{"case insensitive", "- Your Highlight on Page 7", []int{7}},
		{"absent", "- Your Highlight on Location 694-694", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractPage(tt.info)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("extractPage(%q) = %v, want %v", tt.info, got, tt.want)
			}
			if len(got) > 2 {
				t.Errorf("extractPage returned %d values, cap is 2", len(got))
			}
		})
	}
}

func TestExtractLocation(t *testing.T) {
	tests := []struct {
		name string
		info string
		want []int
	}{
		{"range", "- Your Highlight on page 46 | Location 694-702", []int{694, 702}},
		{"single", "- Your Bookmark on Location 512", []int{512}},
		{"case insensitive", "- Your Note on location 9", []int{9}},
		{"absent", "- Your Note on page 46", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractLocation(tt.info)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("extractLocation(%q) = %v, want %v", tt.info, got, tt.want)
			}
		})
	}
}

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name    string
		info    string
		want    *types.Date
		wantErr bool
	}{
		{
			name: "full stamp",
			info: "- Your Highlight | Added on Sunday, August 27, 2023 1:37:08 PM",
			want: &types.Date{Year: 2023, Month: time.August, Day: 27},
		},
		{
			name: "lower case month",
			info: "- Your Note | Added on monday, january 1, 2024 9:00:00 AM",
			want: &types.Date{Year: 2024, Month: time.January, Day: 1},
		},
		{
			name: "absent",
			info: "- Your Highlight on page 46",
			want: nil,
		},
		{
			name:    "unknown month",
			info:    "- Your Highlight | Added on Sunday, Brumaire 27, 2023 1:37:08 PM",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractDate(tt.info)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("extractDate(%q): want error, got %v", tt.info, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("extractDate(%q): %v", tt.info, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("extractDate(%q) = %v, want %v", tt.info, got, tt.want)
			}
		})
	}
}

func TestExtractTime(t *testing.T) {
	tests := []struct {
		name string
		info string
		want *types.ClockTime
	}{
		{"afternoon", "- Your Highlight | Added on Sunday, August 27, 2023 1:37:08 PM", &types.ClockTime{Hour: 13, Minute: 37, Second: 8}},
		{"morning", "- Your Note | Added on Monday, May 1, 2023 9:05:30 AM", &types.ClockTime{Hour: 9, Minute: 5, Second: 30}},
		{"midnight", "- Your Note | Added on Monday, May 1, 2023 12:00:00 AM", &types.ClockTime{Hour: 0, Minute: 0, Second: 0}},
		{"noon", "- Your Note | Added on Monday, May 1, 2023 12:00:00 PM", &types.ClockTime{Hour: 12, Minute: 0, Second: 0}},
		{"absent", "- Your Highlight on page 46", nil},
		{"not at end of line", "- Your Note 1:37:08 PM trailing text", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractTime(tt.info)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("extractTime(%q) = %v, want %v", tt.info, got, tt.want)
			}
		})
	}
}
