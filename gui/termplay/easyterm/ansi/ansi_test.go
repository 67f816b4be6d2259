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

package ansi_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/gui/termplay/easyterm/ansi"
	"github.com/jetsetilly/gopher8/test"
)

func TestColorBuild(t *testing.T) {
	s, err := ansi.ColorBuild("green", "", false, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[32m")

	s, err = ansi.ColorBuild("white", "black", true, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[97;40m")

	s, err = ansi.ColorBuild("", "blue", false, true)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[104m")

	_, err = ansi.ColorBuild("purple", "", false, false)
	test.ExpectFailure(t, err)
}

func TestCursorMove(t *testing.T) {
	test.ExpectEquality(t, ansi.CursorMove(0, 0), "\033[1;1H")
	test.ExpectEquality(t, ansi.CursorMove(15, 63), "\033[16;64H")
}
