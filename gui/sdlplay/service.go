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

package sdlplay

import (
	"fmt"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/veandco/go-sdl2/sdl"
)

// Service implements the gui.GUI interface. The machine must have been
// started.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Service() error {
	// MOUSEMOTION events fill up the event queue pretty quickly and we have
	// no use for them
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	done := scr.ctl.Emulate()

	// draw the display on the first frame whether it has changed or not
	scr.c8.Display.ForceRedraw()

	for {
		select {
		case err := <-done:
			return err
		default:
		}

		// loop until there are no more events to retrieve
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			if err := scr.handleEvent(ev); err != nil {
				return fmt.Errorf("sdlplay: %w", err)
			}
		}

		// wait for frame limiter
		scr.lmtr.Wait()

		if f, dirty := scr.c8.ReadDisplay(); dirty {
			scr.c8.Display.Flush()
			if err := scr.draw(f); err != nil {
				return fmt.Errorf("sdlplay: %w", err)
			}
		}

		scr.c8.Keypad.Reset()
	}
}

func (scr *SdlPlay) handleEvent(ev sdl.Event) error {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return scr.ctl.Handle(gui.EventQuit{})

	case *sdl.KeyboardEvent:
		if ev.Repeat != 0 {
			return nil
		}

		down := ev.Type == sdl.KEYDOWN

		switch ev.Keysym.Sym {
		case sdl.K_ESCAPE:
			if down {
				return scr.ctl.Handle(gui.EventQuit{})
			}
			return nil
		case sdl.K_SPACE:
			if down {
				return scr.ctl.Handle(gui.EventPause{})
			}
			return nil
		}

		if k, ok := mapKey(ev.Keysym.Scancode); ok {
			return scr.ctl.Handle(gui.EventKeypad{Key: k, Down: down})
		}
	}

	return nil
}
