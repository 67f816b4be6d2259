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

package beep_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/beep"
	"github.com/jetsetilly/gopher8/test"
)

func TestSquare(t *testing.T) {
	b := beep.NewSquare(441)
	test.DemandEquality(t, len(b.Data), 100)
	test.ExpectEquality(t, b.Data[0], -b.Data[99])
	test.ExpectEquality(t, b.Data[49], b.Data[0])
	test.ExpectEquality(t, b.Data[50], b.Data[99])

	// a bad frequency uses the default
	b = beep.NewSquare(0)
	test.ExpectEquality(t, len(b.Data), beep.SampleRate/beep.DefaultFrequency)
}

func TestTick(t *testing.T) {
	b := beep.NewSquare(441)
	d := b.Tick(time.Millisecond * 3)
	test.DemandEquality(t, len(d), 132)

	// the wave continues where the previous tick ended
	test.ExpectEquality(t, d[100], d[0])
	next := b.Tick(time.Millisecond)
	test.ExpectEquality(t, next[0], b.Data[32])

	// silence restarts the wave
	s := b.Silence(time.Millisecond)
	test.ExpectEquality(t, len(s), 44)
	test.ExpectEquality(t, s[0], 0)
	next = b.Tick(time.Millisecond)
	test.ExpectEquality(t, next[0], b.Data[0])
}

func TestBytes(t *testing.T) {
	d := beep.Bytes([]int16{0x1234, -2})
	test.DemandEquality(t, len(d), 4)
	test.ExpectEquality(t, d[0], 0x34)
	test.ExpectEquality(t, d[1], 0x12)
	test.ExpectEquality(t, d[2], 0xfe)
	test.ExpectEquality(t, d[3], 0xff)
}

func TestLoadUnsupported(t *testing.T) {
	_, err := beep.Load(filepath.Join(t.TempDir(), "missing.wav"))
	test.ExpectFailure(t, err)

	fn := filepath.Join(t.TempDir(), "tone.txt")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("beep"), 0o644))
	_, err = beep.Load(fn)
	test.ExpectSuccess(t, errors.Is(err, beep.ErrUnsupported))
}
