// Copyright © 2026 Laminate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: compose/compositor.go
// Summary: The layer collector and per-row region resolver that flattens a
// frame's layers into a ScreenBuffer.
// Usage: Clear, AddLayer for each widget, then Compose once per frame.

package compose

import (
	"sort"

	"github.com/laminate-ui/laminate/buffer"
	"github.com/laminate-ui/laminate/core"
)

// Compositor collects a frame's layers and resolves them, row by row, into
// a target grid. Layers are borrowed for the duration of one Compose call
// and never retained across frames.
type Compositor struct {
	layers     []Layer
	background core.Style
}

// NewCompositor returns an empty compositor whose unowned intervals render
// as blanks in the given background style.
func NewCompositor(background core.Style) *Compositor {
	return &Compositor{background: background}
}

// SetBackground changes the style used for unowned intervals.
func (c *Compositor) SetBackground(style core.Style) {
	c.background = style
}

// Clear resets the layer collection at the start of a frame.
func (c *Compositor) Clear() {
	c.layers = c.layers[:0]
}

// AddLayer appends a layer. Layers may arrive in any order; stacking is
// decided by z-index, with later insertion winning ties. Layer effects are
// applied here, once, so Compose reads settled content.
func (c *Compositor) AddLayer(l Layer) {
	for _, e := range l.Effects {
		l.Lines = e.Apply(l.Lines)
	}
	l.Effects = nil
	c.layers = append(c.layers, l)
}

// Len returns the number of collected layers.
func (c *Compositor) Len() int {
	return len(c.layers)
}

// Compose flattens the collected layers into grid. Every row is rewritten
// in full; zero layers produce the background state. Layers entirely
// outside the grid contribute nothing.
func (c *Compositor) Compose(grid *buffer.ScreenBuffer) {
	width, height := grid.Size()
	if width <= 0 || height <= 0 {
		return
	}
	cuts := make([]int, 0, 2*len(c.layers)+2)
	for y := 0; y < height; y++ {
		cuts = c.rowCuts(cuts[:0], y, width)
		line := c.composeRow(y, cuts)
		grid.WriteLine(y, line)
	}
}

// rowCuts appends the deduplicated, ascending column boundaries induced on
// row y by layer edges, always bracketed by 0 and width.
func (c *Compositor) rowCuts(cuts []int, y, width int) []int {
	cuts = append(cuts, 0, width)
	for i := range c.layers {
		l := &c.layers[i]
		if !l.Region.ContainsRow(y) {
			continue
		}
		left := clamp(l.Region.X, 0, width)
		right := clamp(l.Region.Right(), 0, width)
		if left == right {
			// Zero visible width contributes no distinct cut.
			continue
		}
		cuts = append(cuts, left, right)
	}
	sort.Ints(cuts)
	// Deduplicate in place.
	out := cuts[:1]
	for _, v := range cuts[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// composeRow stitches the row's intervals, left to right, into one
// full-width segment line.
func (c *Compositor) composeRow(y int, cuts []int) []core.Segment {
	line := make([]core.Segment, 0, len(cuts))
	for i := 0; i+1 < len(cuts); i++ {
		a, b := cuts[i], cuts[i+1]
		owner := c.ownerAt(y, a, b)
		if owner < 0 {
			line = append(line, core.BlankSegment(b-a, c.background))
			continue
		}
		l := &c.layers[owner]
		line = append(line, chopLine(l.Line(y), l.Region.X, a, b-a, c.background)...)
	}
	return line
}

// ownerAt selects the topmost layer covering row y over [a, b). Insertion
// order breaks z ties: scanning forward with >= makes the later layer win.
func (c *Compositor) ownerAt(y, a, b int) int {
	owner := -1
	for i := range c.layers {
		l := &c.layers[i]
		if !l.Region.ContainsRow(y) {
			continue
		}
		if l.Region.X >= b || l.Region.Right() <= a {
			continue
		}
		if owner < 0 || l.Z >= c.layers[owner].Z {
			owner = i
		}
	}
	return owner
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
