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

package state_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/faults"
	"github.com/jetsetilly/gopher8/hardware/state"
	"github.com/jetsetilly/gopher8/test"
)

func TestGetSet(t *testing.T) {
	st := state.NewState()
	test.ExpectFailure(t, st.IsRunning())

	test.ExpectSuccess(t, st.Running.Set(true))
	test.ExpectSuccess(t, st.IsRunning())

	test.ExpectSuccess(t, st.Delay.Set(10))
	v, err := st.Delay.Get()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 10)
}

func TestDecrement(t *testing.T) {
	v := uint8(2)
	test.ExpectEquality(t, state.Decrement(&v), 2)
	test.ExpectEquality(t, state.Decrement(&v), 1)
	test.ExpectEquality(t, v, 0)

	// never underflows
	test.ExpectEquality(t, state.Decrement(&v), 0)
	test.ExpectEquality(t, v, 0)
}

func TestPoisoning(t *testing.T) {
	st := state.NewState()
	test.ExpectSuccess(t, st.Sound.Set(5))

	err := st.Sound.Access(func(v *uint8) {
		panic("device failure")
	})
	test.ExpectSuccess(t, errors.Is(err, faults.SoundTimerLocked))
	test.ExpectSuccess(t, st.Sound.Poisoned())

	// every access fails from now on
	_, err = st.Sound.Get()
	test.ExpectSuccess(t, errors.Is(err, faults.SoundTimerLocked))
	err = st.Sound.Set(1)
	test.ExpectSuccess(t, errors.Is(err, faults.SoundTimerLocked))

	// other fields are unaffected
	test.ExpectSuccess(t, st.Delay.Set(1))
	test.ExpectFailure(t, st.Delay.Poisoned())
}

func TestContention(t *testing.T) {
	st := state.NewState()

	held := make(chan bool)
	release := make(chan bool)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = st.Delay.Access(func(v *uint8) {
			held <- true
			<-release
		})
	}()
	<-held

	// the lock is held for longer than LockWait
	_, err := st.Delay.Get()
	test.ExpectSuccess(t, errors.Is(err, faults.DelayTimerLocked))

	// the run flag has its own lock
	test.ExpectSuccess(t, st.Running.Set(true))

	close(release)
	wg.Wait()

	// lock failure is not permanent
	test.ExpectFailure(t, st.Delay.Poisoned())
	test.ExpectSuccess(t, st.Delay.Set(1))
}
