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

// Package prefs facilitates the storing of preference values. The Bool, Int
// and String types can be read and written from more than one goroutine and
// can have hooks attached that run before and after a value changes.
//
// Preferences are grouped into a Collection, where each preference has a key
// and a default value. The values in a Collection can be overridden from the
// command line with a preferences string, for example:
//
//	hardware.cosmic::true; hardware.randomSeed::0x1234
//
// The string is pushed onto the command line stack with
// PushCommandLineStack() before the Collection is created and the Collection
// consumes the values it recognises with ApplyCommandLine(). Values that are
// not consumed can be retrieved with PopCommandLineStack(), which is useful
// for warning about misspelled keys.
package prefs
