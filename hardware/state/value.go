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

package state

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// LockWait is the longest time an access will wait for a lock before failing
const LockWait = time.Millisecond

// Value is a single value protected by its own lock. Access to the value can
// fail, in which case the error supplied to NewValue() is returned.
//
// An access fails if the lock cannot be acquired within LockWait or if the
// value has been poisoned. A value is poisoned when a panic escapes from a
// critical section. Once poisoned every subsequent access fails.
type Value[T any] struct {
	crit     sync.Mutex
	value    T
	poisoned atomic.Bool
	lockErr  error
}

// NewValue is the preferred method of initialisation for the Value type. The
// error is returned by every failed access.
func NewValue[T any](initial T, lockErr error) *Value[T] {
	return &Value[T]{
		value:   initial,
		lockErr: lockErr,
	}
}

func (v *Value[T]) lock() bool {
	if v.crit.TryLock() {
		return true
	}
	deadline := time.Now().Add(LockWait)
	for time.Now().Before(deadline) {
		runtime.Gosched()
		if v.crit.TryLock() {
			return true
		}
	}
	return false
}

// Access calls f with a pointer to the value inside the critical section. The
// pointer must not be retained after f returns.
//
// If f panics then the value is poisoned and the panic is returned as an error
// wrapping the lock error.
func (v *Value[T]) Access(f func(value *T)) (err error) {
	if v.poisoned.Load() {
		return v.lockErr
	}
	if !v.lock() {
		return v.lockErr
	}

	defer func() {
		if r := recover(); r != nil {
			v.poisoned.Store(true)
			err = fmt.Errorf("%w: %v", v.lockErr, r)
		}
		v.crit.Unlock()
	}()

	f(&v.value)

	return nil
}

// Get the current value
func (v *Value[T]) Get() (T, error) {
	var r T
	err := v.Access(func(value *T) {
		r = *value
	})
	return r, err
}

// Set a new value
func (v *Value[T]) Set(n T) error {
	return v.Access(func(value *T) {
		*value = n
	})
}

// Poisoned returns true if a panic has escaped from a critical section
func (v *Value[T]) Poisoned() bool {
	return v.poisoned.Load()
}
