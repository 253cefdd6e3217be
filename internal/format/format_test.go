// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"strings"
	"testing"
	"time"

	"github.com/golfeado/kindle-clips/pkg/types"
)

func sampleClip() types.Clip {
	return types.Clip{
		Kind:     types.KindHighlight,
		Source:   "Common LISP (David S. Touretzky)",
		Page:     []int{46},
		Location: []int{694, 694},
		Date:     &types.Date{Year: 2023, Month: time.August, Day: 27},
		Time:     &types.ClockTime{Hour: 13, Minute: 37, Second: 8},
		Content:  "The length of a list is the number of elements it has",
	}
}

func bareClip() types.Clip {
	return types.Clip{
		Kind:    types.KindBookmark,
		Source:  "Some Book",
		Content: "",
	}
}

func TestRangeString(t *testing.T) {
	tests := []struct {
		name string
		nn   []int
		want string
	}{
		{"empty", nil, "no data"},
		{"empty slice", []int{}, "no data"},
		{"single", []int{46}, "46"},
		{"range", []int{694, 702}, "694-702"},
		{"longer than extraction ever yields", []int{1, 2, 3, 4}, "1, 2, 3, 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RangeString(tt.nn); got != tt.want {
				t.Errorf("RangeString(%v) = %q, want %q", tt.nn, got, tt.want)
			}
		})
	}
}

func TestRenderText(t *testing.T) {
	rule := strings.Repeat("-", 70) + "\n"
	want := rule +
		"Source: Common LISP (David S. Touretzky)\n" +
		"Page: 46\n" +
		"Location: 694-694\n" +
		"Creation: 2023-08-27 | 13:37:08\n" +
		"Highlight:\n\n" +
		"The length of a list is the number of elements it has\n" +
		rule

	got, err := Render([]types.Clip{sampleClip()}, types.FormatText)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != want {
		t.Errorf("text output:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderText_AbsentFields(t *testing.T) {
	got, err := Render([]types.Clip{bareClip()}, types.FormatText)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, line := range []string{"Page: no data\n", "Location: no data\n", "Creation: no data | no data\n", "Bookmark:\n"} {
		if !strings.Contains(got, line) {
			t.Errorf("text output missing %q:\n%s", line, got)
		}
	}
}

func TestRenderOrg(t *testing.T) {
	want := "* Common LISP (David S. Touretzky)\n" +
		"  :PROPERTIES:\n" +
		"  :Source: Common LISP (David S. Touretzky)\n" +
		"  :Page: 46\n" +
		"  :Location: 694-694\n" +
		"  :Date: 2023-08-27\n" +
		"  :Time: 13:37:08\n" +
		"  :Type: highlight\n" +
		"  :END:\n\n" +
		"The length of a list is the number of elements it has\n\n"

	got, err := Render([]types.Clip{sampleClip()}, types.FormatOrg)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != want {
		t.Errorf("org output:\n%q\nwant:\n%q", got, want)
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := Render([]types.Clip{sampleClip()}, types.Format("pdf"))
	if err == nil {
		t.Fatal("Render with unknown format: want error, got nil")
	}
	if !strings.Contains(err.Error(), "pdf") {
		t.Errorf("error %q does not name the bad selector", err)
	}
}

func TestRender_Idempotent(t *testing.T) {
	clips := []types.Clip{sampleClip(), bareClip()}
	for _, f := range []types.Format{types.FormatText, types.FormatOrg, types.FormatJSON, types.FormatYAML} {
		first, err := Render(clips, f)
		if err != nil {
			t.Fatalf("Render(%s): %v", f, err)
		}
		second, err := Render(clips, f)
		if err != nil {
			t.Fatalf("Render(%s): %v", f, err)
		}
		if first != second {
			t.Errorf("Render(%s) is not deterministic", f)
		}
	}
}

func TestRender_ContentFidelity(t *testing.T) {
	clip := sampleClip()
	clip.Content = `spaced   text, "quotes", trailing tab	`
	clip.Source = `A & B <C> (D. Author)`

	for _, f := range []types.Format{types.FormatText, types.FormatOrg} {
		got, err := Render([]types.Clip{clip}, f)
		if err != nil {
			t.Fatalf("Render(%s): %v", f, err)
		}
		if !strings.Contains(got, clip.Content) {
			t.Errorf("Render(%s) altered the content", f)
		}
		if !strings.Contains(got, clip.Source) {
			t.Errorf("Render(%s) altered the source", f)
		}
	}
}
