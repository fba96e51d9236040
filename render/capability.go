// Copyright © 2026 Laminate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/capability.go
// Summary: Terminal capability descriptor consumed by the renderer.

package render

// ColorLevel is the color support tier of the target terminal.
type ColorLevel uint8

const (
	LevelNone ColorLevel = iota
	Level16
	Level256
	LevelTrueColor
)

// String returns a short name for the level.
func (l ColorLevel) String() string {
	switch l {
	case LevelNone:
		return "none"
	case Level16:
		return "16"
	case Level256:
		return "256"
	case LevelTrueColor:
		return "truecolor"
	}
	return "unknown"
}

// Capabilities describes what the target terminal supports. It is the only
// configuration the renderer takes.
type Capabilities struct {
	Colors     ColorLevel
	SyncOutput bool // CSI ?2026 synchronized-update support
	Hyperlinks bool // OSC 8 hyperlink support
}
