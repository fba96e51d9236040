// Copyright © 2026 Laminate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/downgrade.go
// Summary: Lossy color conversion toward the target terminal's tier.
// Usage: Applied at emission time only; stored cell data keeps full fidelity.
// Notes: Downgrading an in-tier value is a no-op, so repeated application
// is idempotent.

package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/laminate-ui/laminate/core"
)

// DowngradeColor converts c to a representation the given tier can encode.
// Values already within the tier pass through unchanged; richer values map
// to the perceptually nearest available entry.
func DowngradeColor(c core.Color, level ColorLevel) core.Color {
	switch level {
	case LevelTrueColor:
		return c
	case Level256:
		if c.Mode == core.ColorModeRGB {
			return core.PaletteColor(nearest256(c.R, c.G, c.B))
		}
		return c
	case Level16:
		switch c.Mode {
		case core.ColorModeRGB:
			return core.ANSIColor(nearest16(c.R, c.G, c.B))
		case core.ColorMode256:
			if c.Value < 16 {
				return core.ANSIColor(c.Value)
			}
			r, g, b := core.PaletteRGB(c.Value)
			return core.ANSIColor(nearest16(r, g, b))
		}
		return c
	default:
		return core.DefaultColor()
	}
}

// DowngradeStyle applies DowngradeColor to both channels. A colorless
// target strips the style entirely, leaving only the hyperlink.
func DowngradeStyle(s core.Style, level ColorLevel) core.Style {
	if level == LevelNone {
		return core.Style{Link: s.Link}
	}
	s.FG = DowngradeColor(s.FG, level)
	s.BG = DowngradeColor(s.BG, level)
	return s
}

func toColorful(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// nearest16 finds the perceptually closest of the 16 named ANSI colors.
func nearest16(r, g, b uint8) uint8 {
	want := toColorful(r, g, b)
	best, bestDist := 0, -1.0
	for i := 0; i < 16; i++ {
		e := core.ANSIPalette[i]
		d := want.DistanceLuv(toColorful(e[0], e[1], e[2]))
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return uint8(best)
}

// nearest256 finds the closest xterm palette entry. The search skips the
// first 16 entries: their actual appearance is theme-dependent, so exact
// matches are only reachable through the cube and gray ramp.
func nearest256(r, g, b uint8) uint8 {
	want := toColorful(r, g, b)
	best, bestDist := 16, -1.0
	for i := 16; i < 256; i++ {
		pr, pg, pb := core.PaletteRGB(uint8(i))
		d := want.DistanceLuv(toColorful(pr, pg, pb))
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return uint8(best)
}
