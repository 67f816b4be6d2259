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

package termplay

import (
	"strings"

	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keypad"
)

// the same layout as the SDL window but keyed on the character
var keymap = map[byte]keypad.Key{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xc,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xd,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xe,
	'z': 0xa, 'x': 0x0, 'c': 0xb, 'v': 0xf,
}

func mapKey(b byte) (keypad.Key, bool) {
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	k, ok := keymap[b]
	return k, ok
}

// Rows is the number of terminal rows required to show the display
const Rows = display.Height / 2

// render the frame using half-block characters. each character cell covers
// two rows of the display. each line ends with a carriage return because the
// terminal is in raw mode
func render(f display.Frame) string {
	s := strings.Builder{}
	s.Grow(Rows * (display.Width*3 + 2))

	for y := 0; y < display.Height; y += 2 {
		for x := range display.Width {
			top := f[y][x]
			bottom := f[y+1][x]
			switch {
			case top && bottom:
				s.WriteRune('█')
			case top:
				s.WriteRune('▀')
			case bottom:
				s.WriteRune('▄')
			default:
				s.WriteRune(' ')
			}
		}
		s.WriteString("\r\n")
	}

	return s.String()
}
