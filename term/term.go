// Copyright © 2026 Laminate contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/term.go
// Summary: Terminal probing for the render pipeline: size, raw mode,
// capability detection and resize notification.
// Usage: The application's render loop uses this to feed screen dimensions
// and a capability descriptor into the core.

package term

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/laminate-ui/laminate/render"
)

// ErrNotTerminal is returned when the output stream is not a terminal.
var ErrNotTerminal = errors.New("term: output is not a terminal")

// Size returns the terminal dimensions of f in cells.
func Size(f *os.File) (width, height int, err error) {
	if !term.IsTerminal(int(f.Fd())) {
		return 0, 0, ErrNotTerminal
	}
	width, height, err = term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("term: get size: %w", err)
	}
	return width, height, nil
}

// RawMode puts f into raw mode and returns a restore function.
func RawMode(f *os.File) (restore func() error, err error) {
	oldState, err := term.MakeRaw(int(f.Fd()))
	if err != nil {
		return nil, fmt.Errorf("term: make raw: %w", err)
	}
	return func() error {
		return term.Restore(int(f.Fd()), oldState)
	}, nil
}

// Detect builds a capability descriptor from the environment the way most
// terminals advertise themselves: COLORTERM for true color, the TERM name
// for the 256/16 tiers, with NO_COLOR as an override.
func Detect() render.Capabilities {
	return DetectFromEnv(os.Getenv("TERM"), os.Getenv("COLORTERM"), os.Getenv("NO_COLOR") != "")
}

// DetectFromEnv is Detect with explicit inputs, separated out for tests.
func DetectFromEnv(termName, colorTerm string, noColor bool) render.Capabilities {
	caps := render.Capabilities{}
	if noColor || termName == "" || termName == "dumb" {
		return caps
	}

	switch {
	case colorTerm == "truecolor" || colorTerm == "24bit":
		caps.Colors = render.LevelTrueColor
	case strings.Contains(termName, "256color"):
		caps.Colors = render.Level256
	default:
		caps.Colors = render.Level16
	}

	// Terminals implementing mode 2026 and OSC 8 do not announce it in
	// TERM; recognizing the common emulators is the practical heuristic.
	switch {
	case strings.HasPrefix(termName, "xterm-kitty"),
		strings.HasPrefix(termName, "wezterm"),
		strings.HasPrefix(termName, "alacritty"),
		strings.HasPrefix(termName, "foot"),
		strings.HasPrefix(termName, "ghostty"):
		caps.SyncOutput = true
		caps.Hyperlinks = true
	case strings.HasPrefix(termName, "tmux"), strings.HasPrefix(termName, "screen"):
		// Multiplexers pass 2026 through but hyperlink support varies.
		caps.SyncOutput = true
	}
	return caps
}

// WatchResize delivers the new terminal size on sizes after every SIGWINCH
// until stop is closed. The initial size is not delivered.
func WatchResize(f *os.File, sizes chan<- [2]int, stop <-chan struct{}) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGWINCH)
	go func() {
		defer signal.Stop(sigChan)
		for {
			select {
			case <-sigChan:
				w, h, err := Size(f)
				if err != nil {
					continue
				}
				select {
				case sizes <- [2]int{w, h}:
				case <-stop:
					return
				}
			case <-stop:
				return
			}
		}
	}()
}
