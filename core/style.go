// Copyright © 2026 Laminate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/style.go
// Summary: Style value type with builder methods and field-wise merge.

package core

// Style combines foreground and background colors, text attributes and an
// optional hyperlink target. Styles are plain values compared structurally;
// a zero Style means "terminal default, no decorations".
type Style struct {
	FG   Color
	BG   Color
	Attr Attribute
	Link string // OSC 8 hyperlink target, empty when absent
}

// DefaultStyle returns the zero style explicitly.
func DefaultStyle() Style {
	return Style{}
}

// Foreground returns a copy with the given foreground color.
func (s Style) Foreground(c Color) Style {
	s.FG = c
	return s
}

// Background returns a copy with the given background color.
func (s Style) Background(c Color) Style {
	s.BG = c
	return s
}

// Bold returns a copy with bold enabled.
func (s Style) Bold() Style {
	s.Attr |= AttrBold
	return s
}

// Dim returns a copy with dim enabled.
func (s Style) Dim() Style {
	s.Attr |= AttrDim
	return s
}

// Italic returns a copy with italic enabled.
func (s Style) Italic() Style {
	s.Attr |= AttrItalic
	return s
}

// Underline returns a copy with underline enabled.
func (s Style) Underline() Style {
	s.Attr |= AttrUnderline
	return s
}

// Blink returns a copy with blink enabled.
func (s Style) Blink() Style {
	s.Attr |= AttrBlink
	return s
}

// Reverse returns a copy with reverse video enabled.
func (s Style) Reverse() Style {
	s.Attr |= AttrReverse
	return s
}

// Strikethrough returns a copy with strikethrough enabled.
func (s Style) Strikethrough() Style {
	s.Attr |= AttrStrikethrough
	return s
}

// Hyperlink returns a copy that targets the given URL.
func (s Style) Hyperlink(url string) Style {
	s.Link = url
	return s
}

// Merge overlays other on s: fields other has set win, unset fields keep
// the receiver's value. Attributes accumulate.
func (s Style) Merge(other Style) Style {
	out := s
	if !other.FG.IsDefault() {
		out.FG = other.FG
	}
	if !other.BG.IsDefault() {
		out.BG = other.BG
	}
	out.Attr |= other.Attr
	if other.Link != "" {
		out.Link = other.Link
	}
	return out
}

// Equal reports structural equality.
func (s Style) Equal(other Style) bool {
	return s.FG.Equal(other.FG) &&
		s.BG.Equal(other.BG) &&
		s.Attr == other.Attr &&
		s.Link == other.Link
}
