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

package display_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/test"
)

func TestToggle(t *testing.T) {
	dsp := display.NewDisplay()

	_, dirty := dsp.Frame()
	test.ExpectFailure(t, dirty)

	test.ExpectFailure(t, dsp.Toggle(3, 4))
	test.ExpectSuccess(t, dsp.Pixel(3, 4))

	f, dirty := dsp.Frame()
	test.ExpectSuccess(t, dirty)
	test.ExpectSuccess(t, f[4][3])

	dsp.Flush()
	_, dirty = dsp.Frame()
	test.ExpectFailure(t, dirty)

	// toggling a set pixel reports the collision
	test.ExpectSuccess(t, dsp.Toggle(3, 4))
	test.ExpectFailure(t, dsp.Pixel(3, 4))

	// out of range coordinates are ignored
	test.ExpectFailure(t, dsp.Toggle(display.Width, 0))
	test.ExpectFailure(t, dsp.Toggle(0, display.Height))
	test.ExpectFailure(t, dsp.Pixel(-1, 0))
}

func TestClear(t *testing.T) {
	dsp := display.NewDisplay()
	dsp.Toggle(0, 0)
	dsp.Toggle(63, 31)
	dsp.Flush()

	dsp.Clear()
	f, dirty := dsp.Frame()
	test.ExpectSuccess(t, dirty)
	test.ExpectEquality(t, f, display.Frame{})

	dsp.Flush()
	dsp.ForceRedraw()
	_, dirty = dsp.Frame()
	test.ExpectSuccess(t, dirty)
}

func TestString(t *testing.T) {
	dsp := display.NewDisplay()
	dsp.Toggle(1, 0)

	lines := strings.Split(dsp.String(), "\n")
	test.DemandEquality(t, len(lines), display.Height+1)
	test.ExpectEquality(t, lines[0], "."+"#"+strings.Repeat(".", display.Width-2))
	test.ExpectEquality(t, lines[1], strings.Repeat(".", display.Width))
}
