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

// Package timer implements the delay and sound timers. Each timer is a
// goroutine that ticks at a fixed period for as long as the run flag in the
// shared state is set.
//
// On every tick a timer first reads the run flag and ends if it is false. It
// then decrements its counter in a single critical section and sleeps until
// the next tick. No lock is held while sleeping.
//
// The sound timer additionally calls Play() on the sound device if the counter
// was non-zero and Pause() if it was zero. The device call happens inside the
// critical section of the sound counter. If the device panics the sound
// counter is poisoned and the timer ends.
package timer

import (
	"time"

	"github.com/jetsetilly/gopher8/hardware/sound"
	"github.com/jetsetilly/gopher8/hardware/state"
	"github.com/jetsetilly/gopher8/logger"
)

// Handle is returned when a timer is started and is used to wait for the
// timer to end.
type Handle struct {
	name string
	done chan bool
	err  error
}

func newHandle(name string) *Handle {
	return &Handle{
		name: name,
		done: make(chan bool),
	}
}

func (h *Handle) String() string {
	return h.name
}

// Wait blocks until the timer has ended. It is safe to call more than once
// and safe to call on a nil Handle.
func (h *Handle) Wait() {
	if h == nil {
		return
	}
	<-h.done
}

// Done returns a channel that is closed when the timer ends
func (h *Handle) Done() <-chan bool {
	return h.done
}

// Err returns the reason the timer ended. It is nil if the timer ended because
// the run flag was cleared. The value is only meaningful after the timer has
// ended.
func (h *Handle) Err() error {
	return h.err
}

// tick is called once per period. it returns false when the timer should end
type tick func() (bool, error)

func run(perm logger.Permission, h *Handle, st *state.State, period time.Duration, t tick) {
	defer close(h.done)

	for {
		running, err := st.Running.Get()
		if err != nil {
			if st.Running.Poisoned() {
				h.err = err
				logger.Logf(perm, h.name, "ended: %v", err)
				return
			}
			// contention on the run flag. try again next tick
			running = true
		}
		if !running {
			return
		}

		ok, err := t()
		if !ok {
			h.err = err
			logger.Logf(perm, h.name, "ended: %v", err)
			return
		}
		if err != nil {
			logger.Log(perm, h.name, err)
		}

		time.Sleep(period)
	}
}

// StartDelay starts the delay timer. The run flag should be set before
// calling this function or the timer will end immediately.
func StartDelay(perm logger.Permission, st *state.State, period time.Duration) *Handle {
	h := newHandle("delay timer")
	go run(perm, h, st, period, func() (bool, error) {
		err := st.Delay.Access(func(v *uint8) {
			state.Decrement(v)
		})
		return !st.Delay.Poisoned(), err
	})
	return h
}

// StartSound starts the sound timer. The run flag should be set before
// calling this function or the timer will end immediately.
func StartSound(perm logger.Permission, st *state.State, period time.Duration, dev sound.Device) *Handle {
	h := newHandle("sound timer")
	go run(perm, h, st, period, func() (bool, error) {
		err := st.Sound.Access(func(v *uint8) {
			if state.Decrement(v) > 0 {
				dev.Play()
			} else {
				dev.Pause()
			}
		})
		return !st.Sound.Poisoned(), err
	})
	return h
}
