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
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/version"

	"github.com/veandco/go-sdl2/sdl"
)

// the rate at which the window is redrawn and events are serviced
const framesPerSecond = 60

// DefaultScale is the size of a single display pixel in screen pixels
const DefaultScale = 10

// pixel colours
var (
	background = sdl.Color{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
	foreground = sdl.Color{R: 0xe0, G: 0xe0, B: 0xd0, A: 0xff}
)

// SdlPlay is a simple SDL window for the emulation. It implements the gui.GUI
// interface.
type SdlPlay struct {
	c8  *hardware.Chip8
	ctl *gui.Controller

	// limit screen updates to a fixed fps
	lmtr *limiter.FpsLimiter

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer

	scale int32

	// one rectangle for every pixel that might be set
	rects []sdl.Rect
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. The
// machine should have been created but need not have been started.
func NewSdlPlay(c8 *hardware.Chip8, scale int) (*SdlPlay, error) {
	if scale <= 0 {
		scale = DefaultScale
	}

	scr := &SdlPlay{
		c8:    c8,
		ctl:   gui.NewController(c8),
		scale: int32(scale),
		rects: make([]sdl.Rect, 0, display.Width*display.Height),
	}

	var err error

	err = sdl.InitSubSystem(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	scr.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		display.Width*scr.scale, display.Height*scr.scale,
		uint32(sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE))
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.window.Destroy()
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	// the display keeps its proportions when the window is resized
	err = scr.renderer.SetLogicalSize(display.Width*scr.scale, display.Height*scr.scale)
	if err != nil {
		scr.renderer.Destroy()
		scr.window.Destroy()
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	scr.lmtr, err = limiter.NewFPSLimiter(framesPerSecond)
	if err != nil {
		scr.renderer.Destroy()
		scr.window.Destroy()
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	logger.Logf(c8.Env, "sdlplay", "window is %dx%d", display.Width*scr.scale, display.Height*scr.scale)

	return scr, nil
}

// Destroy implements the gui.GUI interface
func (scr *SdlPlay) Destroy() {
	scr.lmtr.Close()
	scr.renderer.Destroy()
	scr.window.Destroy()
}

// draw the frame in its entirety. set pixels are drawn as rectangles over
// the background colour
func (scr *SdlPlay) draw(f display.Frame) error {
	scr.rects = scr.rects[:0]
	for y := range display.Height {
		for x := range display.Width {
			if f[y][x] {
				scr.rects = append(scr.rects, sdl.Rect{
					X: int32(x) * scr.scale,
					Y: int32(y) * scr.scale,
					W: scr.scale,
					H: scr.scale,
				})
			}
		}
	}

	err := scr.renderer.SetDrawColor(background.R, background.G, background.B, background.A)
	if err != nil {
		return err
	}
	err = scr.renderer.Clear()
	if err != nil {
		return err
	}

	if len(scr.rects) > 0 {
		err = scr.renderer.SetDrawColor(foreground.R, foreground.G, foreground.B, foreground.A)
		if err != nil {
			return err
		}
		err = scr.renderer.FillRects(scr.rects)
		if err != nil {
			return err
		}
	}

	scr.renderer.Present()

	return nil
}
