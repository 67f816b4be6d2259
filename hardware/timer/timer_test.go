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

package timer_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/hardware/faults"
	"github.com/jetsetilly/gopher8/hardware/sound"
	"github.com/jetsetilly/gopher8/hardware/state"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/test"
)

const period = time.Millisecond

// waitFor polls the condition until it is true or until a generous deadline
// has passed
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not met before deadline")
		}
		time.Sleep(period)
	}
}

func TestNotRunning(t *testing.T) {
	st := state.NewState()
	test.DemandSuccess(t, st.Delay.Set(5))

	// the run flag is not set so the timer ends without touching the counter
	h := timer.StartDelay(logger.Allow, st, period)
	h.Wait()
	test.ExpectSuccess(t, h.Err())

	v, _ := st.Delay.Get()
	test.ExpectEquality(t, v, 5)
}

func TestDelay(t *testing.T) {
	st := state.NewState()
	test.DemandSuccess(t, st.Running.Set(true))
	test.DemandSuccess(t, st.Delay.Set(5))

	h := timer.StartDelay(logger.Allow, st, period)

	waitFor(t, func() bool {
		v, _ := st.Delay.Get()
		return v == 0
	})

	// counter stays at zero
	time.Sleep(5 * period)
	v, _ := st.Delay.Get()
	test.ExpectEquality(t, v, 0)

	test.DemandSuccess(t, st.Running.Set(false))
	h.Wait()
	h.Wait()
	test.ExpectSuccess(t, h.Err())
}

func TestSound(t *testing.T) {
	st := state.NewState()
	test.DemandSuccess(t, st.Running.Set(true))
	test.DemandSuccess(t, st.Sound.Set(3))

	var rec sound.Recorder
	h := timer.StartSound(logger.Allow, st, period, &rec)

	waitFor(t, func() bool {
		return len(rec.Events()) >= 5
	})

	test.DemandSuccess(t, st.Running.Set(false))
	h.Wait()

	ev := rec.Events()
	test.ExpectEquality(t, ev[0], sound.Play)
	test.ExpectEquality(t, ev[1], sound.Play)
	test.ExpectEquality(t, ev[2], sound.Play)
	for _, e := range ev[3:] {
		test.ExpectEquality(t, e, sound.Pause)
	}

	v, _ := st.Sound.Get()
	test.ExpectEquality(t, v, 0)
}

type faultyDevice struct{}

func (faultyDevice) Play() {
	panic("audio device gone")
}

func (faultyDevice) Pause() {}

func TestSoundDevicePanic(t *testing.T) {
	st := state.NewState()
	test.DemandSuccess(t, st.Running.Set(true))
	test.DemandSuccess(t, st.Sound.Set(1))

	h := timer.StartSound(logger.Allow, st, period, faultyDevice{})

	// the timer ends of its own accord
	select {
	case <-h.Done():
	case <-time.After(2 * time.Second):
		t.Fatalf("sound timer did not end")
	}

	test.ExpectSuccess(t, errors.Is(h.Err(), faults.SoundTimerLocked))

	_, err := st.Sound.Get()
	test.ExpectSuccess(t, errors.Is(err, faults.SoundTimerLocked))

	// the machine is still marked as running
	test.ExpectSuccess(t, st.IsRunning())
}

func TestNilHandle(t *testing.T) {
	var h *timer.Handle
	h.Wait()
}
