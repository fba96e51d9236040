// Copyright © 2026 Laminate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/renderer.go
// Summary: Turns a frame's change list into the terminal byte stream.
// Usage: One Renderer per output stream; call Reset when the stream's
// state can no longer be trusted (resize, reconnect, external writes).
// Notes: Cursor and style tracking are renderer-local and valid only for
// the duration of one continuous output stream.

package render

import (
	"bytes"
	"strconv"

	"github.com/laminate-ui/laminate/buffer"
	"github.com/laminate-ui/laminate/core"
)

const (
	beginSync = csi + "?2026h"
	endSync   = csi + "?2026l"
)

// HideCursor returns the sequence that makes the cursor invisible.
func HideCursor() []byte { return []byte(csi + "?25l") }

// ShowCursor returns the sequence that makes the cursor visible again.
func ShowCursor() []byte { return []byte(csi + "?25h") }

// ClearScreen returns the sequence erasing the whole display.
func ClearScreen() []byte { return []byte(csi + "2J" + csi + "H") }

// Renderer converts change lists into ANSI/VT byte sequences, tracking the
// logical cursor position and the last emitted style so redundant control
// sequences are skipped within a frame.
type Renderer struct {
	caps Capabilities

	styleKnown bool
	lastStyle  core.Style
	lastLink   string

	cursorKnown bool
	curX, curY  int

	buf bytes.Buffer
}

// NewRenderer creates a renderer for a terminal with the given capabilities.
func NewRenderer(caps Capabilities) *Renderer {
	return &Renderer{caps: caps}
}

// Capabilities returns the descriptor the renderer was built with.
func (r *Renderer) Capabilities() Capabilities {
	return r.caps
}

// Reset forgets all assumptions about the terminal's cursor and style
// state. Call it after a resize or any external write to the stream; the
// next Frame then re-establishes everything it emits.
func (r *Renderer) Reset() {
	r.styleKnown = false
	r.cursorKnown = false
	r.lastLink = ""
}

// Frame encodes the change list into a byte stream: cursor moves only when
// the cursor is not already there, style updates carrying only changed
// attributes, literal UTF-8 for cell contents. When the terminal supports
// synchronized output the whole frame is wrapped in begin/end markers. The
// returned slice is valid until the next Frame call.
func (r *Renderer) Frame(changes []buffer.Change) []byte {
	r.buf.Reset()
	if len(changes) == 0 {
		return nil
	}
	if r.caps.SyncOutput {
		r.buf.WriteString(beginSync)
	}
	for _, ch := range changes {
		if ch.Cell.IsContinuation() {
			// The wide cell to the left already produced these columns.
			continue
		}
		r.moveTo(ch.X, ch.Y)
		r.applyStyle(DowngradeStyle(ch.Cell.Style, r.caps.Colors))
		r.buf.WriteString(ch.Cell.Content)
		r.curX += int(ch.Cell.Width)
	}
	r.closeLink()
	if r.caps.SyncOutput {
		r.buf.WriteString(endSync)
	}
	return r.buf.Bytes()
}

// moveTo emits a cursor-position sequence unless the cursor is already
// logically at (x, y) from the previous emission.
func (r *Renderer) moveTo(x, y int) {
	if r.cursorKnown && r.curX == x && r.curY == y {
		return
	}
	r.buf.WriteString(csi)
	r.buf.WriteString(strconv.Itoa(y + 1))
	r.buf.WriteByte(';')
	r.buf.WriteString(strconv.Itoa(x + 1))
	r.buf.WriteByte('H')
	r.curX, r.curY = x, y
	r.cursorKnown = true
}

// applyStyle emits the minimal SGR transition from the last emitted style,
// or the full style when nothing is known yet, then reconciles hyperlink
// state.
func (r *Renderer) applyStyle(s core.Style) {
	if !r.styleKnown {
		appendSGR(&r.buf, styleCodes(s))
		r.lastStyle = s
		r.styleKnown = true
	} else if !r.lastStyle.Equal(s) {
		appendSGR(&r.buf, deltaCodes(r.lastStyle, s))
		r.lastStyle = s
	}
	if r.caps.Hyperlinks && s.Link != r.lastLink {
		r.writeLink(s.Link)
	}
}

// writeLink opens or closes an OSC 8 hyperlink run.
func (r *Renderer) writeLink(target string) {
	r.buf.WriteString(osc)
	r.buf.WriteString("8;;")
	r.buf.WriteString(target)
	r.buf.WriteString(st)
	r.lastLink = target
}

func (r *Renderer) closeLink() {
	if r.lastLink != "" {
		r.writeLink("")
	}
}
