// Copyright © 2026 Laminate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/cell.go
// Summary: Defines the cell, color and attribute value types shared by the
// compositing pipeline.
// Usage: Consumed by every package that touches grid contents.
// Notes: Keeps the value vocabulary free of rendering concerns.

package core

// Attribute is a bit set of text decorations.
type Attribute uint16

const (
	AttrBold Attribute = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrStrikethrough
)

// Has reports whether attr is present in the set.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// String returns a human-readable representation of the attribute flags.
func (a Attribute) String() string {
	if a == 0 {
		return "none"
	}
	names := []struct {
		flag Attribute
		name string
	}{
		{AttrBold, "bold"},
		{AttrDim, "dim"},
		{AttrItalic, "italic"},
		{AttrUnderline, "underline"},
		{AttrBlink, "blink"},
		{AttrReverse, "reverse"},
		{AttrStrikethrough, "strikethrough"},
	}
	var out string
	for _, n := range names {
		if a&n.flag == 0 {
			continue
		}
		if out != "" {
			out += "|"
		}
		out += n.name
	}
	if out == "" {
		return "unknown"
	}
	return out
}

// ColorMode defines the representation a Color carries.
type ColorMode uint8

const (
	ColorModeDefault ColorMode = iota // terminal default, also the "unset" state
	ColorModeANSI                     // the 16 named ANSI colors (0-15)
	ColorMode256                      // 256-color palette index
	ColorModeRGB                      // 24-bit true color
)

// Color represents a terminal color in one of four representations.
// Equality is representation-exact: an RGB value never compares equal to a
// palette index, even when they denote the same hue.
type Color struct {
	Mode    ColorMode
	Value   uint8 // index for ANSI (0-15) and 256-mode (0-255)
	R, G, B uint8 // channels for RGB mode
}

// DefaultColor is the terminal's own default color.
func DefaultColor() Color {
	return Color{Mode: ColorModeDefault}
}

// ANSIColor returns one of the 16 named ANSI colors.
func ANSIColor(index uint8) Color {
	return Color{Mode: ColorModeANSI, Value: index & 0x0F}
}

// PaletteColor returns one of the 256 xterm palette colors.
func PaletteColor(index uint8) Color {
	return Color{Mode: ColorMode256, Value: index}
}

// RGB returns a 24-bit true color.
func RGB(r, g, b uint8) Color {
	return Color{Mode: ColorModeRGB, R: r, G: g, B: b}
}

// Hex returns a 24-bit true color from a packed value such as 0xFF5500.
func Hex(hex uint32) Color {
	return RGB(uint8(hex>>16), uint8(hex>>8), uint8(hex))
}

// The 16 named ANSI colors.
var (
	Black   = ANSIColor(0)
	Red     = ANSIColor(1)
	Green   = ANSIColor(2)
	Yellow  = ANSIColor(3)
	Blue    = ANSIColor(4)
	Magenta = ANSIColor(5)
	Cyan    = ANSIColor(6)
	White   = ANSIColor(7)

	BrightBlack   = ANSIColor(8)
	BrightRed     = ANSIColor(9)
	BrightGreen   = ANSIColor(10)
	BrightYellow  = ANSIColor(11)
	BrightBlue    = ANSIColor(12)
	BrightMagenta = ANSIColor(13)
	BrightCyan    = ANSIColor(14)
	BrightWhite   = ANSIColor(15)
)

// IsDefault reports whether the color is the terminal default.
func (c Color) IsDefault() bool {
	return c.Mode == ColorModeDefault
}

// Equal reports representation-exact equality.
func (c Color) Equal(other Color) bool {
	if c.Mode != other.Mode {
		return false
	}
	switch c.Mode {
	case ColorModeDefault:
		return true
	case ColorModeANSI, ColorMode256:
		return c.Value == other.Value
	case ColorModeRGB:
		return c.R == other.R && c.G == other.G && c.B == other.B
	}
	return false
}

// Cell is a single character slot in the grid. Content holds one grapheme
// cluster; Width is its column footprint. Width 0 marks the continuation
// slot that trails a 2-column cell.
type Cell struct {
	Content string
	Style   Style
	Width   uint8
}

// BlankCell returns a cell holding a space in the given style.
func BlankCell(style Style) Cell {
	return Cell{Content: " ", Style: style, Width: 1}
}

// ContinuationCell returns the width-0 slot that follows a 2-column cell.
func ContinuationCell(style Style) Cell {
	return Cell{Content: "", Style: style, Width: 0}
}

// IsContinuation reports whether the cell is the trailing half of a wide cell.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// Equal reports whether two cells would render identically.
func (c Cell) Equal(other Cell) bool {
	return c.Content == other.Content && c.Width == other.Width && c.Style.Equal(other.Style)
}
