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

// Package gui defines the interface shared by the frontends. The frontends
// translate their native input into the events defined here and pass them to
// a Controller.
package gui

import (
	"fmt"
	"sync/atomic"

	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/logger"
)

// GUI defines the operations that can be performed on user interfaces.
type GUI interface {
	// Service the interface until the user quits or until the emulation
	// ends with an error. Must be called from the main thread.
	Service() error

	// Release any resources held by the interface. Service() must not be
	// called after Destroy().
	Destroy()
}

// Controller sits between a GUI and the emulation. Events from the GUI are
// applied to the machine with Handle() and the emulation is run on its own
// goroutine with Emulate().
type Controller struct {
	c8    *hardware.Chip8
	state atomic.Int32
}

// NewController is the preferred method of initialisation for the
// Controller type.
func NewController(c8 *hardware.Chip8) *Controller {
	ctl := &Controller{c8: c8}
	ctl.state.Store(int32(govern.Running))
	return ctl
}

// State returns the current emulation state as set by events.
func (ctl *Controller) State() govern.State {
	return govern.State(ctl.state.Load())
}

// Handle applies the event to the machine. Returns an error for events that
// are not recognised.
func (ctl *Controller) Handle(ev Event) error {
	switch ev := ev.(type) {
	case EventKeypad:
		if ev.Down {
			ctl.c8.Keypad.Press(ev.Key)
		} else {
			ctl.c8.Keypad.Release(ev.Key)
		}

	case EventPause:
		if ctl.State() == govern.Paused {
			ctl.state.CompareAndSwap(int32(govern.Paused), int32(govern.Running))
		} else {
			ctl.state.CompareAndSwap(int32(govern.Running), int32(govern.Paused))
		}
		logger.Log(ctl.c8.Env, "gui", ctl.State())

	case EventQuit:
		ctl.state.Store(int32(govern.Ending))

	default:
		return fmt.Errorf("gui: unsupported event (%T)", ev)
	}

	return nil
}

// continueCheck is the function passed to hardware.Chip8.Run()
func (ctl *Controller) continueCheck() (govern.State, error) {
	return ctl.State(), nil
}

// Emulate runs the machine on a new goroutine until an EventQuit is handled
// or until the emulation returns an error. The machine must have been
// started. The result of the emulation is sent on the returned channel.
func (ctl *Controller) Emulate() <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- ctl.c8.Run(ctl.continueCheck)
	}()
	return done
}
