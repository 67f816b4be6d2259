// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package termplay draws the display on a terminal using half-block
// characters and reads the keypad from the keyboard.
//
// Terminals do not report when a key is released. A key is held down for a
// short time after the character is read and the hold is extended by the
// keyboard's auto-repeat.
package termplay

import (
	"fmt"
	"os"
	"time"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/termplay/easyterm"
	"github.com/jetsetilly/gopher8/gui/termplay/easyterm/ansi"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/performance/limiter"
)

// how long a key stays pressed after the character has been read. long
// enough to bridge the gap before auto-repeat begins
const holdDuration = 250 * time.Millisecond

const framesPerSecond = 30

// TermPlay implements the gui.GUI interface for a terminal
type TermPlay struct {
	c8  *hardware.Chip8
	ctl *gui.Controller

	term easyterm.Terminal
	lmtr *limiter.FpsLimiter
	pen  string

	// chunks of input read from the terminal
	input chan []byte
	quit  chan bool

	// the time at which each key will be released. zero if the key is not
	// held
	held [keypad.NumKeys]time.Time
}

// NewTermPlay is the preferred method of initialisation for the TermPlay
// type. Stdin and stdout must both be terminals.
func NewTermPlay(c8 *hardware.Chip8) (*TermPlay, error) {
	tp := &TermPlay{
		c8:    c8,
		ctl:   gui.NewController(c8),
		input: make(chan []byte, 16),
		quit:  make(chan bool),
	}

	var err error

	tp.pen, err = ansi.ColorBuild("green", "black", true, false)
	if err != nil {
		return nil, fmt.Errorf("termplay: %w", err)
	}

	err = tp.term.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return nil, fmt.Errorf("termplay: %w", err)
	}

	geom := tp.term.Geometry()
	if geom.Cols < display.Width || geom.Rows < Rows {
		logger.Logf(c8.Env, "termplay", "terminal is too small (%dx%d)", geom.Cols, geom.Rows)
	}

	tp.lmtr, err = limiter.NewFPSLimiter(framesPerSecond)
	if err != nil {
		tp.term.CleanUp()
		return nil, fmt.Errorf("termplay: %w", err)
	}

	tp.term.RawMode()
	tp.term.Print("%s%s%s", ansi.HideCursor, ansi.ClearScreen, ansi.CursorHome)

	go tp.reader()

	return tp, nil
}

// reader runs on its own goroutine until the quit channel is closed or until
// the terminal returns an error
func (tp *TermPlay) reader() {
	for {
		select {
		case <-tp.quit:
			return
		default:
		}

		b := make([]byte, 16)
		n, err := tp.term.Read(b)
		if err != nil {
			return
		}
		if n == 0 {
			continue
		}

		select {
		case tp.input <- b[:n]:
		case <-tp.quit:
			return
		}
	}
}

// Destroy implements the gui.GUI interface
func (tp *TermPlay) Destroy() {
	close(tp.quit)
	tp.lmtr.Close()
	tp.term.Print("%s%s%s%s", ansi.NormalPen, ansi.ShowCursor, ansi.ClearScreen, ansi.CursorHome)
	tp.term.CleanUp()
}

// Service implements the gui.GUI interface. The machine must have been
// started.
func (tp *TermPlay) Service() error {
	done := tp.ctl.Emulate()

	tp.c8.Display.ForceRedraw()

	for {
		select {
		case err := <-done:
			return err
		default:
		}

		now := time.Now()

		empty := false
		for !empty {
			select {
			case b := <-tp.input:
				if err := tp.handleInput(b, now); err != nil {
					return fmt.Errorf("termplay: %w", err)
				}
			default:
				empty = true
			}
		}

		if err := tp.releaseExpired(now); err != nil {
			return fmt.Errorf("termplay: %w", err)
		}

		tp.lmtr.Wait()

		if f, dirty := tp.c8.ReadDisplay(); dirty {
			tp.c8.Display.Flush()
			tp.term.Print("%s%s%s", ansi.CursorHome, tp.pen, render(f))
		}

		tp.c8.Keypad.Reset()
	}
}

// handleInput translates a chunk of terminal input into events. an escape
// character on its own is the quit key. an escape followed by other bytes is
// a control sequence and is ignored
func (tp *TermPlay) handleInput(b []byte, now time.Time) error {
	if len(b) > 1 && b[0] == easyterm.KeyEsc {
		return nil
	}

	for _, c := range b {
		switch c {
		case easyterm.KeyEsc, easyterm.KeyInterrupt:
			return tp.ctl.Handle(gui.EventQuit{})
		case easyterm.KeySpace:
			if err := tp.ctl.Handle(gui.EventPause{}); err != nil {
				return err
			}
		default:
			if k, ok := mapKey(c); ok {
				tp.held[k] = now.Add(holdDuration)
				if err := tp.ctl.Handle(gui.EventKeypad{Key: k, Down: true}); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func (tp *TermPlay) releaseExpired(now time.Time) error {
	for k, t := range tp.held {
		if t.IsZero() || now.Before(t) {
			continue
		}
		tp.held[k] = time.Time{}
		if err := tp.ctl.Handle(gui.EventKeypad{Key: keypad.Key(k), Down: false}); err != nil {
			return err
		}
	}
	return nil
}
