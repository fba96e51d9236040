// Copyright © 2026 Laminate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: compose/chop.go
// Summary: Display-width-accurate extraction of a layer line's sub-range.
// Notes: The only place multi-column character integrity is enforced. Never
// panics on mismatched boundaries; it resolves by padding.

package compose

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/laminate-ui/laminate/core"
)

// chopLine extracts the absolute column interval [start, start+width) from
// a layer line whose content begins at column origin. The result is
// re-expressed relative to the interval start and always totals exactly
// width columns: content that ends early is padded with blanks in the
// given blank style, and a 2-column grapheme straddling either boundary is
// replaced by blank padding rather than rendered half.
func chopLine(segs []core.Segment, origin, start, width int, blank core.Style) []core.Segment {
	if width <= 0 {
		return nil
	}
	end := start + width
	out := make([]core.Segment, 0, len(segs)+1)
	got := 0

	col := origin
	for _, seg := range segs {
		if col >= end {
			break
		}
		segW := seg.Width()
		if col+segW <= start {
			col += segW
			continue
		}
		piece := cutSegment(seg, start-col, end-col)
		if piece.Text != "" {
			out = append(out, piece)
			got += runewidth.StringWidth(piece.Text)
		}
		col += segW
	}

	if got < width {
		out = append(out, core.BlankSegment(width-got, blank))
	}
	return out
}

// cutSegment returns the part of seg covering the column range [from, to)
// measured from the segment's own start. Out-of-range bounds clamp. A wide
// grapheme only partially inside the range contributes spaces for the
// columns it overlaps, in the segment's style.
func cutSegment(seg core.Segment, from, to int) core.Segment {
	if from < 0 {
		from = 0
	}
	if to <= from {
		return core.Segment{Style: seg.Style}
	}

	var b strings.Builder
	col := 0
	gr := uniseg.NewGraphemes(seg.Text)
	for gr.Next() {
		if col >= to {
			break
		}
		cluster := gr.Str()
		w := runewidth.StringWidth(cluster)
		if w <= 0 {
			// Zero-width clusters ride along with the grapheme before them.
			if col > from && col <= to {
				b.WriteString(cluster)
			}
			continue
		}
		switch {
		case col+w <= from:
			// Entirely before the range.
		case col >= from && col+w <= to:
			b.WriteString(cluster)
		default:
			// Straddles a boundary: substitute a space per covered column.
			overlap := min(col+w, to) - max(col, from)
			for i := 0; i < overlap; i++ {
				b.WriteByte(' ')
			}
		}
		col += w
	}
	return core.Segment{Text: b.String(), Style: seg.Style}
}
