// Copyright © 2026 Laminate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/laminate-demo/main.go
// Summary: Demonstration frame loop compositing overlapping layers with
// z-order, effects and differential rendering to the controlling terminal.

package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/laminate-ui/laminate/buffer"
	"github.com/laminate-ui/laminate/compose"
	"github.com/laminate-ui/laminate/core"
	"github.com/laminate-ui/laminate/render"
	"github.com/laminate-ui/laminate/term"
)

func main() {
	logFile, err := os.OpenFile("laminate-demo.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err == nil {
		defer logFile.Close()
		log.SetOutput(logFile)
	}
	log.Println("demo starting")

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Println("demo stopped cleanly")
}

func run() error {
	out := os.Stdout
	w, h, err := term.Size(out)
	if err != nil {
		return err
	}
	restore, err := term.RawMode(os.Stdin)
	if err != nil {
		return err
	}
	defer restore()

	caps := term.Detect()
	log.Printf("terminal %dx%d, colors=%s sync=%v", w, h, caps.Colors, caps.SyncOutput)

	out.Write(render.HideCursor())
	out.Write(render.ClearScreen())
	defer func() {
		out.Write(render.ShowCursor())
		out.Write([]byte("\x1b[0m\x1b[2J\x1b[H"))
	}()

	sizes := make(chan [2]int, 1)
	stop := make(chan struct{})
	defer close(stop)
	term.WatchResize(out, sizes, stop)

	keys := make(chan byte, 1)
	go func() {
		buf := make([]byte, 1)
		for {
			if _, err := os.Stdin.Read(buf); err != nil {
				return
			}
			select {
			case keys <- buf[0]:
			case <-stop:
				return
			}
		}
	}()

	comp := compose.NewCompositor(core.DefaultStyle())
	renderer := render.NewRenderer(caps)
	current := buffer.NewScreenBuffer(w, h)
	previous := (*buffer.ScreenBuffer)(nil)

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case k := <-keys:
			if k == 'q' || k == 3 { // q or Ctrl-C
				return nil
			}
		case sz := <-sizes:
			w, h = sz[0], sz[1]
			current = buffer.NewScreenBuffer(w, h)
			previous = nil
			renderer.Reset()
			out.Write(render.ClearScreen())
		case <-ticker.C:
			frame++
			comp.Clear()
			collectLayers(comp, w, h, frame)
			comp.Compose(current)
			changes := current.Diff(previous)
			if len(changes) > 0 {
				out.Write(renderer.Frame(changes))
			}
			// Rotate the buffer pair.
			if previous == nil {
				previous = buffer.NewScreenBuffer(w, h)
			}
			current, previous = previous, current
		}
	}
}

// collectLayers builds the frame's layers: a background field, a drifting
// dialog on top of it, and a status line above everything.
func collectLayers(comp *compose.Compositor, w, h, frame int) {
	backdrop := core.DefaultStyle().Foreground(core.PaletteColor(240))
	bgLines := make([][]core.Segment, h)
	for y := range bgLines {
		bgLines[y] = []core.Segment{core.BlankSegment(w, backdrop.Background(core.RGB(16, 16, 32)))}
	}
	comp.AddLayer(compose.Layer{
		Widget: 1,
		Region: core.Rect{X: 0, Y: 0, W: w, H: h},
		Z:      compose.ZOrderDefault,
		Lines:  bgLines,
	})

	dw, dh := 32, 7
	dx := (frame / 2) % max(w-dw, 1)
	dy := (frame / 5) % max(h-dh, 1)
	dialogStyle := core.DefaultStyle().
		Foreground(core.BrightWhite).
		Background(core.RGB(48, 48, 96))
	dialog := make([][]core.Segment, dh)
	for y := range dialog {
		text := core.BlankSegment(dw, dialogStyle)
		if y == dh/2 {
			label := fmt.Sprintf("  frame %d (press q to quit)", frame)
			text = core.Segment{Text: pad(label, dw), Style: dialogStyle.Bold()}
		}
		dialog[y] = []core.Segment{text}
	}
	comp.AddLayer(compose.Layer{
		Widget:  2,
		Region:  core.Rect{X: dx, Y: dy, W: dw, H: dh},
		Z:       compose.ZOrderDialog,
		Lines:   dialog,
		Effects: []compose.Effect{compose.Tint{Color: core.RGB(255, 184, 108), Intensity: 0.1}},
	})

	status := core.DefaultStyle().
		Foreground(core.Black).
		Background(core.ANSIColor(6)).
		Hyperlink("https://example.com/laminate")
	comp.AddLayer(compose.Layer{
		Widget: 3,
		Region: core.Rect{X: 0, Y: h - 1, W: w, H: 1},
		Z:      compose.ZOrderTooltip,
		Lines: [][]core.Segment{{
			{Text: pad(" laminate demo ", w), Style: status},
		}},
	})
}

func pad(s string, w int) string {
	for len(s) < w {
		s += " "
	}
	if len(s) > w {
		s = s[:w]
	}
	return s
}
