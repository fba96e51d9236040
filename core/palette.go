// Copyright © 2026 Laminate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/palette.go
// Summary: RGB values for the named ANSI colors and the xterm 256 palette.
// Usage: Shared by compose-time color blending and render-time downgrading.

package core

// ANSIPalette holds the conventional RGB values of the 16 named ANSI
// colors, matching the xterm defaults.
var ANSIPalette = [16][3]uint8{
	{0x00, 0x00, 0x00}, // 0: black
	{0x80, 0x00, 0x00}, // 1: red
	{0x00, 0x80, 0x00}, // 2: green
	{0x80, 0x80, 0x00}, // 3: yellow
	{0x00, 0x00, 0x80}, // 4: blue
	{0x80, 0x00, 0x80}, // 5: magenta
	{0x00, 0x80, 0x80}, // 6: cyan
	{0xC0, 0xC0, 0xC0}, // 7: white
	{0x80, 0x80, 0x80}, // 8: bright black
	{0xFF, 0x00, 0x00}, // 9: bright red
	{0x00, 0xFF, 0x00}, // 10: bright green
	{0xFF, 0xFF, 0x00}, // 11: bright yellow
	{0x00, 0x00, 0xFF}, // 12: bright blue
	{0xFF, 0x00, 0xFF}, // 13: bright magenta
	{0x00, 0xFF, 0xFF}, // 14: bright cyan
	{0xFF, 0xFF, 0xFF}, // 15: bright white
}

// xterm256 is the full 256-entry palette: the 16 named colors, a 6x6x6
// color cube, and a 24-step gray ramp.
var xterm256 [256][3]uint8

// cubeLevels are the channel values used by the xterm color cube.
var cubeLevels = [6]uint8{0x00, 0x5F, 0x87, 0xAF, 0xD7, 0xFF}

func init() {
	copy(xterm256[:16], ANSIPalette[:])
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				xterm256[i] = [3]uint8{cubeLevels[r], cubeLevels[g], cubeLevels[b]}
				i++
			}
		}
	}
	for g := 0; g < 24; g++ {
		v := uint8(8 + g*10)
		xterm256[i] = [3]uint8{v, v, v}
		i++
	}
}

// PaletteRGB returns the RGB value of a 256-palette index.
func PaletteRGB(index uint8) (r, g, b uint8) {
	e := xterm256[index]
	return e[0], e[1], e[2]
}

// RGB8 resolves the color to concrete RGB channels. ok is false for the
// terminal default, which has no knowable value.
func (c Color) RGB8() (r, g, b uint8, ok bool) {
	switch c.Mode {
	case ColorModeRGB:
		return c.R, c.G, c.B, true
	case ColorModeANSI:
		e := ANSIPalette[c.Value&0x0F]
		return e[0], e[1], e[2], true
	case ColorMode256:
		e := xterm256[c.Value]
		return e[0], e[1], e[2], true
	}
	return 0, 0, 0, false
}
