// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse segments a Kindle clippings export into five-line records
// and extracts typed clips from them.
package parse

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/golfeado/kindle-clips/pkg/types"
)

// segmenter groups input lines into five-line records. It is purely
// positional: the first four lines of each group are collected, and the
// fifth always completes the record whatever it contains.
type segmenter struct {
	pending []string // collected lines of the current record, at most four
	line    int      // 1-based number of the last line fed
}

// feed advances the segmenter by one line. When the line completes a
// record, feed returns it together with the line number of its delimiter.
func (s *segmenter) feed(line string) (types.RawRecord, int, bool) {
	s.line++

	if len(s.pending) < 4 {
		s.pending = append(s.pending, line)
		return types.RawRecord{}, 0, false
	}

	rec := types.RawRecord{
		Source:    s.pending[0],
		Info:      s.pending[1],
		Blank:     s.pending[2],
		Content:   s.pending[3],
		Delimiter: line,
	}
	s.pending = s.pending[:0]
	return rec, s.line, true
}

// tail returns the number of lines stuck in an incomplete record.
func (s *segmenter) tail() int {
	return len(s.pending)
}

// Parse consumes the clippings text from r in a single pass and returns
// the extraction: clips bucketed by kind, unparsed records with their
// ending line numbers, and warnings. Lines are split on '\n' only; any
// other byte, including '\r', is part of the line and preserved verbatim.
//
// A trailing group of fewer than five lines produces no record; the loss
// is surfaced as a warning.
func Parse(r io.Reader) (*types.Extraction, error) {
	br := bufio.NewReader(r)
	ext := &types.Extraction{}
	var seg segmenter

	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("reading input: %w", err)
		}
		if line != "" {
			rec, endLine, complete := seg.feed(strings.TrimSuffix(line, "\n"))
			if complete {
				buildRecord(ext, rec, endLine)
			}
		}
		if err == io.EOF {
			break
		}
	}

	if n := seg.tail(); n > 0 {
		ext.Warnings = append(ext.Warnings,
			fmt.Sprintf("input ended mid-record: %d trailing line(s) discarded", n))
	}

	return ext, nil
}

// buildRecord resolves one raw record into a clip or an unparsed entry.
// Classification runs first; unparsed records skip field extraction
// entirely. The four field extractors run independently of one another,
// so a missing page never blocks the date, and so on.
func buildRecord(ext *types.Extraction, rec types.RawRecord, endLine int) {
	kind, ok := classify(rec.Info)
	if !ok {
		ext.Unparsed = append(ext.Unparsed, types.UnparsedRecord{Record: rec, Line: endLine})
		return
	}

	clip := types.Clip{
		Kind:     kind,
		Source:   rec.Source,
		Page:     extractPage(rec.Info),
		Location: extractLocation(rec.Info),
		Time:     extractTime(rec.Info),
		Content:  rec.Content,
	}

	date, err := extractDate(rec.Info)
	if err != nil {
		// An unrecognized month name degrades the date to absent rather
		// than discarding the record; the token is reported so the file
		// can be fixed by hand.
		ext.Warnings = append(ext.Warnings,
			fmt.Sprintf("record ending at line %d: %v; date treated as absent", endLine, err))
	} else {
		clip.Date = date
	}

	switch kind {
	case types.KindHighlight:
		ext.Highlights = append(ext.Highlights, clip)
	case types.KindNote:
		ext.Notes = append(ext.Notes, clip)
	case types.KindBookmark:
		ext.Bookmarks = append(ext.Bookmarks, clip)
	}
}
