// Copyright © 2026 Laminate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: compose/layer.go
// Summary: Layer, one widget's rendered output for a single frame.
// Usage: Collected fresh each frame and discarded after Compose.

package compose

import "github.com/laminate-ui/laminate/core"

// Z-order constants for common layering scenarios.
const (
	ZOrderDefault  = 0    // normal content
	ZOrderFloating = 100  // floating windows
	ZOrderDialog   = 500  // modal dialogs
	ZOrderTooltip  = 2000 // tooltips and temporary overlays
)

// Layer is one widget's rendered output for one frame: a region in grid
// coordinates, an integer stacking priority, and styled text lines. The
// compositor only reads its data; widget identity stays an opaque integer.
type Layer struct {
	Widget  int
	Region  core.Rect
	Z       int
	Lines   [][]core.Segment
	Effects []Effect
}

// Line returns the layer's content for grid row y, or nil when the row
// falls outside the region or the widget supplied fewer lines than the
// region is tall.
func (l *Layer) Line(y int) []core.Segment {
	idx := y - l.Region.Y
	if idx < 0 || idx >= len(l.Lines) {
		return nil
	}
	return l.Lines[idx]
}
