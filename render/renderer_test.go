package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/laminate-ui/laminate/buffer"
	"github.com/laminate-ui/laminate/core"
)

func cellChange(x, y int, text string, style core.Style) buffer.Change {
	return buffer.Change{X: x, Y: y, Cell: core.Cell{Content: text, Style: style, Width: 1}}
}

func TestFrameEmptyChangeListProducesNothing(t *testing.T) {
	r := NewRenderer(Capabilities{Colors: LevelTrueColor, SyncOutput: true})
	if out := r.Frame(nil); len(out) != 0 {
		t.Fatalf("expected no output, got %q", out)
	}
}

func TestFrameBasicRun(t *testing.T) {
	r := NewRenderer(Capabilities{Colors: LevelTrueColor})
	changes := []buffer.Change{
		cellChange(0, 0, "a", core.DefaultStyle()),
		cellChange(1, 0, "b", core.DefaultStyle()),
		cellChange(2, 0, "c", core.DefaultStyle()),
	}
	out := string(r.Frame(changes))
	want := "\x1b[1;1H\x1b[0mabc"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestFrameCursorMoveOnlyWhenNeeded(t *testing.T) {
	r := NewRenderer(Capabilities{Colors: LevelTrueColor})
	changes := []buffer.Change{
		cellChange(0, 0, "a", core.DefaultStyle()),
		cellChange(1, 0, "b", core.DefaultStyle()),
		cellChange(5, 1, "c", core.DefaultStyle()),
	}
	out := string(r.Frame(changes))
	if strings.Count(out, "H") != 2 {
		t.Fatalf("expected exactly 2 cursor moves in %q", out)
	}
	if !strings.Contains(out, "\x1b[2;6H") {
		t.Fatalf("missing positioned move in %q", out)
	}
}

func TestFrameStyleDeltaOnlyChangedAttributes(t *testing.T) {
	r := NewRenderer(Capabilities{Colors: LevelTrueColor})
	bold := core.DefaultStyle().Foreground(core.Red).Bold()
	boldUnder := bold.Underline()
	changes := []buffer.Change{
		cellChange(0, 0, "a", bold),
		cellChange(1, 0, "b", boldUnder),
	}
	out := string(r.Frame(changes))
	want := "\x1b[1;1H\x1b[0;1;31ma\x1b[4mb"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestFrameStyleDeltaTurnsAttributesOff(t *testing.T) {
	r := NewRenderer(Capabilities{Colors: LevelTrueColor})
	changes := []buffer.Change{
		cellChange(0, 0, "a", core.DefaultStyle().Bold().Dim()),
		cellChange(1, 0, "b", core.DefaultStyle().Dim()),
	}
	out := string(r.Frame(changes))
	// SGR 22 clears bold and dim together, so dim is re-asserted.
	want := "\x1b[1;1H\x1b[0;1;2ma\x1b[22;2mb"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestFrameUnchangedStyleEmitsNoSGR(t *testing.T) {
	r := NewRenderer(Capabilities{Colors: LevelTrueColor})
	style := core.DefaultStyle().Foreground(core.RGB(1, 2, 3))
	changes := []buffer.Change{
		cellChange(0, 0, "a", style),
		cellChange(1, 0, "b", style),
	}
	out := string(r.Frame(changes))
	if strings.Count(out, "m") != 1 {
		t.Fatalf("expected a single SGR in %q", out)
	}
}

func TestFrameSkipsContinuationCells(t *testing.T) {
	r := NewRenderer(Capabilities{Colors: LevelTrueColor})
	style := core.DefaultStyle()
	changes := []buffer.Change{
		{X: 0, Y: 0, Cell: core.Cell{Content: "中", Style: style, Width: 2}},
		{X: 1, Y: 0, Cell: core.ContinuationCell(style)},
		cellChange(2, 0, "x", style),
	}
	out := string(r.Frame(changes))
	want := "\x1b[1;1H\x1b[0m中x"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestFrameSynchronizedOutputWrapping(t *testing.T) {
	r := NewRenderer(Capabilities{Colors: LevelTrueColor, SyncOutput: true})
	out := string(r.Frame([]buffer.Change{cellChange(0, 0, "a", core.DefaultStyle())}))
	if !strings.HasPrefix(out, "\x1b[?2026h") {
		t.Fatalf("missing sync begin in %q", out)
	}
	if !strings.HasSuffix(out, "\x1b[?2026l") {
		t.Fatalf("missing sync end in %q", out)
	}
}

func TestFrameDeterministicAfterReset(t *testing.T) {
	r := NewRenderer(Capabilities{Colors: Level256, SyncOutput: true})
	changes := []buffer.Change{
		cellChange(0, 0, "a", core.DefaultStyle().Foreground(core.RGB(250, 50, 20)).Bold()),
		cellChange(3, 2, "b", core.DefaultStyle().Background(core.PaletteColor(33))),
	}
	first := append([]byte(nil), r.Frame(changes)...)
	r.Reset()
	second := r.Frame(changes)
	if !bytes.Equal(first, second) {
		t.Fatalf("render not deterministic:\n%q\n%q", first, second)
	}
}

func TestFrameResetForcesFullStyleAndCursor(t *testing.T) {
	r := NewRenderer(Capabilities{Colors: LevelTrueColor})
	change := []buffer.Change{cellChange(0, 0, "a", core.DefaultStyle())}
	r.Frame(change)
	// On warm state the second identical frame repositions the cursor
	// (it advanced past the cell) but needs no SGR.
	out := string(r.Frame(change))
	if out != "\x1b[1;1Ha" {
		t.Fatalf("expected move plus bare content on warm state, got %q", out)
	}
	r.Reset()
	out = string(r.Frame(change))
	if !strings.Contains(out, "\x1b[1;1H") || !strings.Contains(out, "\x1b[0m") {
		t.Fatalf("reset did not force re-establishment: %q", out)
	}
}

func TestFrameDowngradesColorsAtEmission(t *testing.T) {
	r := NewRenderer(Capabilities{Colors: Level16})
	changes := []buffer.Change{
		cellChange(0, 0, "a", core.DefaultStyle().Foreground(core.RGB(0xFF, 0x00, 0x00))),
	}
	out := string(r.Frame(changes))
	// Bright red is SGR 91; no 38;2 true-color introducer may appear.
	if !strings.Contains(out, "91m") || strings.Contains(out, "38;2") {
		t.Fatalf("color not downgraded for 16-color target: %q", out)
	}
}

func TestFrameNoColorTargetStripsSGRParams(t *testing.T) {
	r := NewRenderer(Capabilities{Colors: LevelNone})
	changes := []buffer.Change{
		cellChange(0, 0, "a", core.DefaultStyle().Foreground(core.Red).Bold()),
	}
	out := string(r.Frame(changes))
	want := "\x1b[1;1H\x1b[0ma"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestFrameHyperlinkRuns(t *testing.T) {
	r := NewRenderer(Capabilities{Colors: LevelTrueColor, Hyperlinks: true})
	linked := core.DefaultStyle().Hyperlink("https://example.com")
	changes := []buffer.Change{
		cellChange(0, 0, "a", linked),
		cellChange(1, 0, "b", core.DefaultStyle()),
	}
	out := string(r.Frame(changes))
	if !strings.Contains(out, "\x1b]8;;https://example.com\x1b\\") {
		t.Fatalf("missing hyperlink open in %q", out)
	}
	if !strings.HasSuffix(out, "b") && !strings.Contains(out, "\x1b]8;;\x1b\\") {
		t.Fatalf("hyperlink never closed in %q", out)
	}
}

func TestFrameHyperlinkClosedAtFrameEnd(t *testing.T) {
	r := NewRenderer(Capabilities{Colors: LevelTrueColor, Hyperlinks: true})
	linked := core.DefaultStyle().Hyperlink("https://example.com")
	out := string(r.Frame([]buffer.Change{cellChange(0, 0, "a", linked)}))
	if !strings.HasSuffix(out, "\x1b]8;;\x1b\\") {
		t.Fatalf("frame ended with open hyperlink: %q", out)
	}
}
