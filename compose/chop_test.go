package compose

import (
	"testing"

	"github.com/laminate-ui/laminate/core"
)

func chopText(t *testing.T, segs []core.Segment, origin, start, width int) string {
	t.Helper()
	out := chopLine(segs, origin, start, width, core.DefaultStyle())
	if got := core.SegmentsWidth(out); got != width {
		t.Fatalf("chop width %d, want %d (segments %+v)", got, width, out)
	}
	return core.SegmentsText(out)
}

func TestChopExactInterval(t *testing.T) {
	segs := []core.Segment{{Text: "hello"}, {Text: "world"}}
	if got := chopText(t, segs, 0, 0, 10); got != "helloworld" {
		t.Fatalf("got %q", got)
	}
}

func TestChopSkipsLeadingSegments(t *testing.T) {
	segs := []core.Segment{{Text: "aaa"}, {Text: "bbb"}, {Text: "ccc"}}
	if got := chopText(t, segs, 0, 3, 3); got != "bbb" {
		t.Fatalf("got %q", got)
	}
}

func TestChopSplitsSegmentAtBothBoundaries(t *testing.T) {
	segs := []core.Segment{{Text: "abcdefgh"}}
	if got := chopText(t, segs, 0, 2, 4); got != "cdef" {
		t.Fatalf("got %q", got)
	}
}

func TestChopHonorsLayerOrigin(t *testing.T) {
	// Content starts at absolute column 5; the interval [7, 10) should
	// see the third character onward.
	segs := []core.Segment{{Text: "abcdef"}}
	if got := chopText(t, segs, 5, 7, 3); got != "cde" {
		t.Fatalf("got %q", got)
	}
}

func TestChopPadsShortContent(t *testing.T) {
	segs := []core.Segment{{Text: "ab"}}
	if got := chopText(t, segs, 0, 0, 5); got != "ab   " {
		t.Fatalf("got %q", got)
	}
}

func TestChopEmptyContentIsAllPadding(t *testing.T) {
	if got := chopText(t, nil, 0, 0, 4); got != "    " {
		t.Fatalf("got %q", got)
	}
}

func TestChopWideCharInsideIntervalSurvives(t *testing.T) {
	segs := []core.Segment{{Text: "a中b"}}
	if got := chopText(t, segs, 0, 0, 4); got != "a中b" {
		t.Fatalf("got %q", got)
	}
}

func TestChopWideCharAtLeftBoundaryBecomesPadding(t *testing.T) {
	// "中" spans columns 1-2; cutting at column 2 lands inside it.
	segs := []core.Segment{{Text: "a中b"}}
	if got := chopText(t, segs, 0, 2, 2); got != " b" {
		t.Fatalf("got %q", got)
	}
}

func TestChopWideCharAtRightBoundaryBecomesPadding(t *testing.T) {
	// Cutting at column 2 splits "中" (columns 1-2) at its midpoint.
	segs := []core.Segment{{Text: "a中b"}}
	if got := chopText(t, segs, 0, 0, 2); got != "a " {
		t.Fatalf("got %q", got)
	}
}

func TestChopNeverReturnsHalfWideChar(t *testing.T) {
	segs := []core.Segment{{Text: "中中中"}}
	for start := 0; start < 6; start++ {
		for width := 1; width <= 6-start; width++ {
			out := chopLine(segs, 0, start, width, core.DefaultStyle())
			if got := core.SegmentsWidth(out); got != width {
				t.Fatalf("start=%d width=%d: total %d", start, width, got)
			}
			// Glyph i occupies columns [2i, 2i+2); only glyphs fully
			// inside the interval may survive, the rest must pad.
			want := 0
			for i := 0; i < 3; i++ {
				if 2*i >= start && 2*i+2 <= start+width {
					want++
				}
			}
			got := 0
			for _, seg := range out {
				for _, r := range seg.Text {
					if r == '中' {
						got++
					}
				}
			}
			if got != want {
				t.Fatalf("start=%d width=%d: %d glyphs survived, want %d", start, width, got, want)
			}
		}
	}
}

func TestChopZeroWidthIntervalIsEmpty(t *testing.T) {
	if out := chopLine([]core.Segment{{Text: "abc"}}, 0, 1, 0, core.DefaultStyle()); len(out) != 0 {
		t.Fatalf("expected no segments, got %+v", out)
	}
}

func TestCutSegmentKeepsStyle(t *testing.T) {
	style := core.DefaultStyle().Bold().Foreground(core.Red)
	out := cutSegment(core.Segment{Text: "abcd", Style: style}, 1, 3)
	if out.Text != "bc" {
		t.Fatalf("got %q", out.Text)
	}
	if !out.Style.Equal(style) {
		t.Fatalf("style lost in cut: %+v", out.Style)
	}
}
