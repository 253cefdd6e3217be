// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/golfeado/kindle-clips/pkg/types"
)

// Kind prefixes as the device writes them on the metadata line.
// Matching is case-sensitive and prefix-only.
const (
	prefixHighlight = "- Your Highlight"
	prefixNote      = "- Your Note"
	prefixBookmark  = "- Your Bookmark"
)

// classify determines the record kind from the metadata line. The second
// return value is false when the line matches no known prefix.
func classify(info string) (types.Kind, bool) {
	switch {
	case strings.HasPrefix(info, prefixHighlight):
		return types.KindHighlight, true
	case strings.HasPrefix(info, prefixNote):
		return types.KindNote, true
	case strings.HasPrefix(info, prefixBookmark):
		return types.KindBookmark, true
	}
	return "", false
}

var (
	pageRe     = regexp.MustCompile(`(?i)pages? ([0-9]+)-([0-9]+)|page ([0-9]+)`)
	locationRe = regexp.MustCompile(`(?i)Location ([0-9]+)-([0-9]+)|Location ([0-9]+)`)
	dateRe     = regexp.MustCompile(`(?i)Added on [a-z]+, ([a-z]+) ([0-9]{1,2}), ([0-9]{4})`)
	timeRe     = regexp.MustCompile(`(?i)([0-9]{1,2}):([0-9]{1,2}):([0-9]{1,2}) ([AMP]+)$`)
)

// months maps lower-cased English month names to their numbers. The
// device emits English month names regardless of locale.
var months = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

// extractPage returns the page numbers on the metadata line: two values
// for "pages N-M", one for "page N", none when absent.
func extractPage(info string) []int {
	return matchRange(pageRe, info)
}

// extractLocation returns the location numbers, with the same shapes as
// extractPage.
func extractLocation(info string) []int {
	return matchRange(locationRe, info)
}

// matchRange collects the non-empty capture groups of the first match as
// integers. The patterns capture at most a range pair or a single value.
func matchRange(re *regexp.Regexp, info string) []int {
	m := re.FindStringSubmatch(info)
	if m == nil {
		return nil
	}
	var out []int
	for _, g := range m[1:] {
		if g == "" {
			continue
		}
		n, err := strconv.Atoi(g)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// extractDate returns the calendar date from the "Added on <weekday>,
// <month> <day>, <year>" portion of the metadata line. The weekday is
// discarded. A nil date with nil error means the pattern is absent; a
// matched pattern with a month name outside the table is an error.
func extractDate(info string) (*types.Date, error) {
	m := dateRe.FindStringSubmatch(info)
	if m == nil {
		return nil, nil
	}

	month, ok := months[strings.ToLower(m[1])]
	if !ok {
		return nil, fmt.Errorf("unknown month name %q", m[1])
	}
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	return &types.Date{Year: year, Month: month, Day: day}, nil
}

// extractTime returns the time of day from the "H:MM:SS AM|PM" portion
// anchored at the end of the metadata line, converted to 24-hour form:
// PM with hour != 12 adds 12, and 12 AM becomes hour 0. Whether the
// device means midnight or noon by 12 AM is taken at face value.
func extractTime(info string) *types.ClockTime {
	m := timeRe.FindStringSubmatch(info)
	if m == nil {
		return nil
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	second, _ := strconv.Atoi(m[3])
	period := strings.ToUpper(m[4])

	if period == "PM" && hour != 12 {
		hour += 12
	} else if period == "AM" && hour == 12 {
		hour -= 12
	}

	return &types.ClockTime{Hour: hour, Minute: minute, Second: second}
}
