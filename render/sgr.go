// Copyright © 2026 Laminate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/sgr.go
// Summary: SGR (Select Graphic Rendition) sequence construction, including
// minimal transitions between two known styles.

package render

import (
	"bytes"
	"strconv"

	"github.com/laminate-ui/laminate/core"
)

const (
	csi = "\x1b["
	osc = "\x1b]"
	st  = "\x1b\\"
)

// attrCodes maps each attribute to its SGR on code. Off codes are handled
// in appendStyleDelta because 22 clears bold and dim together.
var attrCodes = []struct {
	flag core.Attribute
	on   int
	off  int
}{
	{core.AttrBold, 1, 22},
	{core.AttrDim, 2, 22},
	{core.AttrItalic, 3, 23},
	{core.AttrUnderline, 4, 24},
	{core.AttrBlink, 5, 25},
	{core.AttrReverse, 7, 27},
	{core.AttrStrikethrough, 9, 29},
}

// appendSGR writes one CSI ... m sequence with the given codes. Writes
// nothing for an empty code list.
func appendSGR(buf *bytes.Buffer, codes []int) {
	if len(codes) == 0 {
		return
	}
	buf.WriteString(csi)
	for i, c := range codes {
		if i > 0 {
			buf.WriteByte(';')
		}
		buf.WriteString(strconv.Itoa(c))
	}
	buf.WriteByte('m')
}

// fgCodes appends the SGR parameters selecting c as foreground.
func fgCodes(codes []int, c core.Color) []int {
	switch c.Mode {
	case core.ColorModeANSI:
		if c.Value < 8 {
			return append(codes, 30+int(c.Value))
		}
		return append(codes, 90+int(c.Value-8))
	case core.ColorMode256:
		return append(codes, 38, 5, int(c.Value))
	case core.ColorModeRGB:
		return append(codes, 38, 2, int(c.R), int(c.G), int(c.B))
	}
	return append(codes, 39)
}

// bgCodes appends the SGR parameters selecting c as background.
func bgCodes(codes []int, c core.Color) []int {
	switch c.Mode {
	case core.ColorModeANSI:
		if c.Value < 8 {
			return append(codes, 40+int(c.Value))
		}
		return append(codes, 100+int(c.Value-8))
	case core.ColorMode256:
		return append(codes, 48, 5, int(c.Value))
	case core.ColorModeRGB:
		return append(codes, 48, 2, int(c.R), int(c.G), int(c.B))
	}
	return append(codes, 49)
}

// styleCodes returns the full parameter list establishing style from a
// freshly reset terminal state, beginning with an explicit reset.
func styleCodes(s core.Style) []int {
	codes := []int{0}
	for _, a := range attrCodes {
		if s.Attr.Has(a.flag) {
			codes = append(codes, a.on)
		}
	}
	if !s.FG.IsDefault() {
		codes = fgCodes(codes, s.FG)
	}
	if !s.BG.IsDefault() {
		codes = bgCodes(codes, s.BG)
	}
	return codes
}

// deltaCodes returns the minimal parameter list transforming style from
// into style to. An empty result means the styles already match.
func deltaCodes(from, to core.Style) []int {
	var codes []int

	// 22 switches off bold and dim together, so turning either off must
	// re-assert the surviving one.
	boldDimOff := (from.Attr.Has(core.AttrBold) && !to.Attr.Has(core.AttrBold)) ||
		(from.Attr.Has(core.AttrDim) && !to.Attr.Has(core.AttrDim))
	if boldDimOff {
		codes = append(codes, 22)
		if to.Attr.Has(core.AttrBold) {
			codes = append(codes, 1)
		}
		if to.Attr.Has(core.AttrDim) {
			codes = append(codes, 2)
		}
	} else {
		if !from.Attr.Has(core.AttrBold) && to.Attr.Has(core.AttrBold) {
			codes = append(codes, 1)
		}
		if !from.Attr.Has(core.AttrDim) && to.Attr.Has(core.AttrDim) {
			codes = append(codes, 2)
		}
	}
	for _, a := range attrCodes[2:] {
		had, want := from.Attr.Has(a.flag), to.Attr.Has(a.flag)
		if had == want {
			continue
		}
		if want {
			codes = append(codes, a.on)
		} else {
			codes = append(codes, a.off)
		}
	}

	if !from.FG.Equal(to.FG) {
		codes = fgCodes(codes, to.FG)
	}
	if !from.BG.Equal(to.BG) {
		codes = bgCodes(codes, to.BG)
	}
	return codes
}
