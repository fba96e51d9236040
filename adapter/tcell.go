// Copyright © 2026 Laminate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: adapter/tcell.go
// Summary: Bridges the compositing core to an existing tcell.Screen for
// applications already running inside the tcell event loop.
// Usage: Construct a ScreenDriver around a tcell.Screen and hand it change
// lists instead of using the ANSI renderer.

package adapter

import (
	"github.com/gdamore/tcell/v2"

	"github.com/laminate-ui/laminate/buffer"
	"github.com/laminate-ui/laminate/core"
)

// ToTcellColor converts a core color to its tcell equivalent.
func ToTcellColor(c core.Color) tcell.Color {
	switch c.Mode {
	case core.ColorModeANSI:
		return tcell.PaletteColor(int(c.Value))
	case core.ColorMode256:
		return tcell.PaletteColor(int(c.Value))
	case core.ColorModeRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return tcell.ColorReset
}

// ToTcellStyle converts a core style to a tcell style. Hyperlinks carry
// over; tcell decides whether the target terminal honors them.
func ToTcellStyle(s core.Style) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(ToTcellColor(s.FG)).
		Background(ToTcellColor(s.BG)).
		Bold(s.Attr.Has(core.AttrBold)).
		Dim(s.Attr.Has(core.AttrDim)).
		Italic(s.Attr.Has(core.AttrItalic)).
		Underline(s.Attr.Has(core.AttrUnderline)).
		Blink(s.Attr.Has(core.AttrBlink)).
		Reverse(s.Attr.Has(core.AttrReverse)).
		StrikeThrough(s.Attr.Has(core.AttrStrikethrough))
	if s.Link != "" {
		st = st.Url(s.Link)
	}
	return st
}

// ScreenDriver presents composed frames on a tcell.Screen.
type ScreenDriver struct {
	screen tcell.Screen
}

// NewScreenDriver wraps the provided screen.
func NewScreenDriver(screen tcell.Screen) *ScreenDriver {
	return &ScreenDriver{screen: screen}
}

// Size returns the screen dimensions in cells.
func (d *ScreenDriver) Size() (int, int) {
	return d.screen.Size()
}

// ApplyChanges writes a change list to the screen. Continuation cells are
// skipped; tcell manages wide-cell shadowing itself. Show must be called
// to make the result visible.
func (d *ScreenDriver) ApplyChanges(changes []buffer.Change) {
	for _, ch := range changes {
		if ch.Cell.IsContinuation() {
			continue
		}
		mainc, combc := splitCluster(ch.Cell.Content)
		d.screen.SetContent(ch.X, ch.Y, mainc, combc, ToTcellStyle(ch.Cell.Style))
	}
}

// Show flushes pending updates to the terminal.
func (d *ScreenDriver) Show() {
	d.screen.Show()
}

// Underlying exposes the wrapped tcell.Screen for code paths that still
// need direct access.
func (d *ScreenDriver) Underlying() tcell.Screen {
	return d.screen
}

// splitCluster separates a grapheme cluster into the base rune and its
// trailing combining runes, the shape tcell's SetContent expects.
func splitCluster(cluster string) (rune, []rune) {
	runes := []rune(cluster)
	if len(runes) == 0 {
		return ' ', nil
	}
	if len(runes) == 1 {
		return runes[0], nil
	}
	return runes[0], runes[1:]
}
