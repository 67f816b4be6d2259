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

// Package sound defines the interface between the sound timer and whatever
// is producing the tone.
//
// The sound timer calls Play() on every tick that the sound counter is
// non-zero and Pause() on every tick that it is zero. The calls are made
// while the lock on the sound counter is held so implementations must return
// promptly and must never call back into the machine.
package sound

import (
	"sync"
)

// Device is implemented by anything that can produce the single tone of the
// machine.
type Device interface {
	Play()
	Pause()
}

// Null is a Device that does nothing. Useful for headless emulation.
type Null struct{}

// Play implements the Device interface
func (Null) Play() {}

// Pause implements the Device interface
func (Null) Pause() {}

// Multi forwards every call to a list of devices, in order
type Multi []Device

// NewMulti is the preferred method of initialisation for the Multi type. Nil
// devices are ignored.
func NewMulti(devices ...Device) Multi {
	m := make(Multi, 0, len(devices))
	for _, d := range devices {
		if d != nil {
			m = append(m, d)
		}
	}
	return m
}

// Play implements the Device interface
func (m Multi) Play() {
	for _, d := range m {
		d.Play()
	}
}

// Pause implements the Device interface
func (m Multi) Pause() {
	for _, d := range m {
		d.Pause()
	}
}

// Event is a single call to a Device
type Event bool

// List of Event values
const (
	Pause Event = false
	Play  Event = true
)

func (e Event) String() string {
	if e {
		return "play"
	}
	return "pause"
}

// Recorder is a Device that keeps a list of every call made to it
type Recorder struct {
	crit   sync.Mutex
	events []Event
}

// Play implements the Device interface
func (r *Recorder) Play() {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.events = append(r.events, Play)
}

// Pause implements the Device interface
func (r *Recorder) Pause() {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.events = append(r.events, Pause)
}

// Events returns a copy of the recorded events
func (r *Recorder) Events() []Event {
	r.crit.Lock()
	defer r.crit.Unlock()
	return append([]Event(nil), r.events...)
}
