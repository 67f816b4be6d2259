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

package gui

import "github.com/jetsetilly/gopher8/hardware/keypad"

// Event is the interface for all events sent from a GUI to the Controller.
type Event interface{}

// EventKeypad is sent when a key that is mapped to the keypad changes state.
type EventKeypad struct {
	Key  keypad.Key
	Down bool
}

// EventPause toggles the paused state of the emulation.
type EventPause struct{}

// EventQuit is sent when the window is closed or when the user presses the
// quit key.
type EventQuit struct{}
