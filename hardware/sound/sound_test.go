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

package sound_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/sound"
	"github.com/jetsetilly/gopher8/test"
)

func TestMulti(t *testing.T) {
	var a, b sound.Recorder

	m := sound.NewMulti(&a, nil, sound.Null{}, &b)
	test.ExpectEquality(t, len(m), 3)
	test.ExpectImplements[sound.Device](t, m)

	m.Play()
	m.Pause()

	for _, r := range []*sound.Recorder{&a, &b} {
		ev := r.Events()
		test.DemandEquality(t, len(ev), 2)
		test.ExpectEquality(t, ev[0], sound.Play)
		test.ExpectEquality(t, ev[1], sound.Pause)
	}

	test.ExpectEquality(t, sound.Play.String(), "play")
}
