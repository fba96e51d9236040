// Copyright © 2026 Laminate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: compose/effect.go
// Summary: Compose-time layer effects: tint and dim color transforms.
// Usage: Attached to a Layer and applied when the layer is collected.
// Notes: Effects transform segment styles only; text is never altered.

package compose

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/laminate-ui/laminate/core"
)

// Effect transforms a layer's lines before composition.
type Effect interface {
	Apply(lines [][]core.Segment) [][]core.Segment
}

// Tint blends every resolvable color toward Color at the given intensity
// (0 leaves the layer untouched, 1 replaces it). Terminal-default colors
// have no knowable value and pass through unchanged.
type Tint struct {
	Color     core.Color
	Intensity float64
}

// Apply blends segment styles toward the tint color.
func (t Tint) Apply(lines [][]core.Segment) [][]core.Segment {
	if t.Intensity <= 0 {
		return lines
	}
	tr, tg, tb, ok := t.Color.RGB8()
	if !ok {
		return lines
	}
	target := colorful.Color{R: float64(tr) / 255, G: float64(tg) / 255, B: float64(tb) / 255}
	return mapStyles(lines, func(s core.Style) core.Style {
		s.FG = blendToward(s.FG, target, t.Intensity)
		s.BG = blendToward(s.BG, target, t.Intensity)
		return s
	})
}

// Dim darkens a layer by blending it toward black.
type Dim struct {
	Intensity float64
}

// Apply darkens segment styles.
func (d Dim) Apply(lines [][]core.Segment) [][]core.Segment {
	return Tint{Color: core.RGB(0, 0, 0), Intensity: d.Intensity}.Apply(lines)
}

func blendToward(c core.Color, target colorful.Color, intensity float64) core.Color {
	r, g, b, ok := c.RGB8()
	if !ok {
		return c
	}
	from := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	mixed := from.BlendRgb(target, intensity).Clamped()
	return core.RGB(uint8(mixed.R*255+0.5), uint8(mixed.G*255+0.5), uint8(mixed.B*255+0.5))
}

func mapStyles(lines [][]core.Segment, f func(core.Style) core.Style) [][]core.Segment {
	out := make([][]core.Segment, len(lines))
	for i, line := range lines {
		row := make([]core.Segment, len(line))
		for j, seg := range line {
			seg.Style = f(seg.Style)
			row[j] = seg
		}
		out[i] = row
	}
	return out
}
