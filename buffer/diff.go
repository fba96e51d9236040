// Copyright © 2026 Laminate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: buffer/diff.go
// Summary: Frame differencing between the current and previous ScreenBuffer.
// Usage: Feeds the terminal renderer the minimal per-frame change list.

package buffer

import "github.com/laminate-ui/laminate/core"

// Change records one cell that differs from the previous frame.
type Change struct {
	X, Y int
	Cell core.Cell
}

// Diff compares b against the immediately preceding frame and returns the
// changed cells in row-major order. A nil previous buffer or a dimension
// mismatch yields a full redraw: every cell reported as changed.
func (b *ScreenBuffer) Diff(previous *ScreenBuffer) []Change {
	if previous == nil || previous.width != b.width || previous.height != b.height {
		return b.fullChanges()
	}
	var changes []Change
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		prev := previous.cells[y*b.width : (y+1)*b.width]
		for x := 0; x < b.width; x++ {
			if !row[x].Equal(prev[x]) {
				changes = append(changes, Change{X: x, Y: y, Cell: row[x]})
			}
		}
	}
	return changes
}

func (b *ScreenBuffer) fullChanges() []Change {
	changes := make([]Change, 0, b.width*b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			changes = append(changes, Change{X: x, Y: y, Cell: b.cells[y*b.width+x]})
		}
	}
	return changes
}
