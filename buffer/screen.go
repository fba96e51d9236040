// Copyright © 2026 Laminate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: buffer/screen.go
// Summary: ScreenBuffer, the flat cell grid holding one frame's contents,
// and the grapheme-aware line writer that fills it.
// Usage: Written by the compositor, read by the differencer.
// Notes: Wide cells always pair with a trailing continuation cell; every
// mutation path preserves that pairing.

package buffer

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/laminate-ui/laminate/core"
)

// ScreenBuffer is a width x height grid of cells stored row-major. It is
// the sole record of what the screen should currently show.
type ScreenBuffer struct {
	width  int
	height int
	cells  []core.Cell
}

// NewScreenBuffer allocates a blank grid. Negative dimensions clamp to zero.
func NewScreenBuffer(width, height int) *ScreenBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &ScreenBuffer{
		width:  width,
		height: height,
		cells:  make([]core.Cell, width*height),
	}
	b.Fill(core.DefaultStyle())
	return b
}

// Size returns the declared dimensions.
func (b *ScreenBuffer) Size() (int, int) {
	return b.width, b.height
}

// Width returns the column count.
func (b *ScreenBuffer) Width() int { return b.width }

// Height returns the row count.
func (b *ScreenBuffer) Height() int { return b.height }

// Fill resets every cell to a blank in the given style.
func (b *ScreenBuffer) Fill(style core.Style) {
	blank := core.BlankCell(style)
	for i := range b.cells {
		b.cells[i] = blank
	}
}

// At returns the cell at (x, y). Out-of-bounds positions read as a default
// blank so callers never have to guard probes.
func (b *ScreenBuffer) At(x, y int) core.Cell {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return core.BlankCell(core.DefaultStyle())
	}
	return b.cells[y*b.width+x]
}

// Set places a cell at (x, y), repairing wide-cell pairing around it: an
// orphaned continuation to the right becomes a blank, and a wide cell whose
// continuation slot is being overwritten collapses to a blank itself.
// Out-of-bounds writes are dropped.
func (b *ScreenBuffer) Set(x, y int, c core.Cell) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	i := y*b.width + x
	old := b.cells[i]

	// Overwriting the head of a wide pair strands its continuation.
	if old.Width == 2 && x+1 < b.width && b.cells[i+1].IsContinuation() {
		b.cells[i+1] = core.BlankCell(b.cells[i+1].Style)
	}
	// Overwriting a continuation strands the wide head to its left.
	if old.IsContinuation() && x > 0 && b.cells[i-1].Width == 2 {
		b.cells[i-1] = core.BlankCell(b.cells[i-1].Style)
	}

	if c.Width == 2 {
		if x+1 >= b.width {
			// No room for the continuation slot; degrade to a blank.
			b.cells[i] = core.BlankCell(c.Style)
			return
		}
		next := b.cells[i+1]
		if next.Width == 2 && x+2 < b.width && b.cells[i+2].IsContinuation() {
			b.cells[i+2] = core.BlankCell(b.cells[i+2].Style)
		}
		b.cells[i] = c
		b.cells[i+1] = core.ContinuationCell(c.Style)
		return
	}
	b.cells[i] = c
}

// WriteLine converts one composed segment line into cells on row y. It
// iterates grapheme clusters so combining marks stay attached to their base
// character, emits a continuation cell after every 2-column grapheme, and
// replaces a wide grapheme that would overflow the final column with a
// blank. Content past the right edge is dropped.
func (b *ScreenBuffer) WriteLine(y int, segs []core.Segment) {
	if y < 0 || y >= b.height {
		return
	}
	x := 0
	for _, seg := range segs {
		if x >= b.width {
			break
		}
		gr := uniseg.NewGraphemes(seg.Text)
		for gr.Next() {
			if x >= b.width {
				break
			}
			cluster := gr.Str()
			w := runewidth.StringWidth(cluster)
			switch {
			case w <= 0:
				// Zero-width clusters (bare combining marks, control
				// residue) merge into the previous cell when possible.
				if x > 0 {
					i := y*b.width + x - 1
					if !b.cells[i].IsContinuation() {
						b.cells[i].Content += cluster
					}
				}
			case w == 1:
				b.Set(x, y, core.Cell{Content: cluster, Style: seg.Style, Width: 1})
				x++
			default:
				if x+1 >= b.width {
					b.Set(x, y, core.BlankCell(seg.Style))
					x++
					continue
				}
				b.Set(x, y, core.Cell{Content: cluster, Style: seg.Style, Width: 2})
				x += 2
			}
		}
	}
	// Segments shorter than the row leave the remainder untouched; the
	// compositor guarantees full-width lines so this only matters for
	// direct callers.
}

// Row returns a copy of row y's cells, or nil when out of range.
func (b *ScreenBuffer) Row(y int) []core.Cell {
	if y < 0 || y >= b.height {
		return nil
	}
	out := make([]core.Cell, b.width)
	copy(out, b.cells[y*b.width:(y+1)*b.width])
	return out
}
