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

// Package display implements the 64x32 monochrome frame buffer.
//
// Pixels are only ever changed by the CPU, with Clear() and Toggle(). The
// display keeps a dirty flag which is set by any change and cleared by
// Flush(). A renderer on another goroutine can take a copy of the frame with
// Frame() and need only redraw if the dirty flag was set.
package display

import (
	"strings"
	"sync"
)

// Dimensions of the display
const (
	Width  = 64
	Height = 32
)

// Frame is a copy of the pixels of the display. Indexed by row then column
type Frame [Height][Width]bool

func (f Frame) String() string {
	s := strings.Builder{}
	for _, row := range f {
		for _, p := range row {
			if p {
				s.WriteRune('#')
			} else {
				s.WriteRune('.')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}

// Display is the frame buffer of the machine
type Display struct {
	crit  sync.Mutex
	frame Frame
	dirty bool
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay() *Display {
	return &Display{}
}

func (dsp *Display) String() string {
	f, _ := dsp.Frame()
	return f.String()
}

// Clear all pixels
func (dsp *Display) Clear() {
	dsp.crit.Lock()
	defer dsp.crit.Unlock()
	dsp.frame = Frame{}
	dsp.dirty = true
}

// Toggle the pixel at the coordinates. Coordinates outside the display are
// ignored. Returns true if the pixel was set before it was toggled (ie. the
// pixel has been turned off).
func (dsp *Display) Toggle(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}

	dsp.crit.Lock()
	defer dsp.crit.Unlock()

	was := dsp.frame[y][x]
	dsp.frame[y][x] = !was
	dsp.dirty = true
	return was
}

// Pixel returns the state of the pixel at the coordinates. Coordinates outside
// the display are never set.
func (dsp *Display) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}

	dsp.crit.Lock()
	defer dsp.crit.Unlock()
	return dsp.frame[y][x]
}

// Frame returns a copy of the display and whether it has changed since the
// last call to Flush()
func (dsp *Display) Frame() (Frame, bool) {
	dsp.crit.Lock()
	defer dsp.crit.Unlock()
	return dsp.frame, dsp.dirty
}

// Flush clears the dirty flag. Should be called by the renderer once the
// frame has been drawn.
func (dsp *Display) Flush() {
	dsp.crit.Lock()
	defer dsp.crit.Unlock()
	dsp.dirty = false
}

// ForceRedraw sets the dirty flag without changing any pixels. Useful when
// the renderer has lost the contents of its window.
func (dsp *Display) ForceRedraw() {
	dsp.crit.Lock()
	defer dsp.crit.Unlock()
	dsp.dirty = true
}
