// Copyright © 2026 Laminate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/segment.go
// Summary: Segment, a contiguous styled text run measured in display columns.
// Usage: The unit of layer content handed to the compositor.

package core

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Segment is a contiguous run of text sharing one style. Its width is its
// display-column footprint, not its rune count.
type Segment struct {
	Text  string
	Style Style
}

// Width returns the display-column footprint of the segment's text.
func (s Segment) Width() int {
	return runewidth.StringWidth(s.Text)
}

// BlankSegment returns a segment of n spaces in the given style. Returns a
// zero segment for n <= 0.
func BlankSegment(n int, style Style) Segment {
	if n <= 0 {
		return Segment{Style: style}
	}
	return Segment{Text: strings.Repeat(" ", n), Style: style}
}

// SegmentsWidth sums the display width of a segment sequence.
func SegmentsWidth(segs []Segment) int {
	total := 0
	for _, s := range segs {
		total += s.Width()
	}
	return total
}

// SegmentsText concatenates the text of a segment sequence. Mostly useful
// in tests and diagnostics.
func SegmentsText(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}
