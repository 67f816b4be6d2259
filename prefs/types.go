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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value is the underlying value of a preference. The concrete type depends on
// the preference type.
type Value any

// Pref is implemented by all the types in the prefs system
type Pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// hooks are shared by all preference types. the pre hook can veto a new value
// by returning an error
type hooks struct {
	pre  func(value Value) error
	post func(value Value) error
}

// SetHookPre installs a function that sees every new value before it is
// stored. Returning an error leaves the stored value untouched. The hook runs
// on every Set(), whether or not the value differs.
func (h *hooks) SetHookPre(f func(value Value) error) {
	h.pre = f
}

// SetHookPost installs a function that sees every new value once it has been
// stored.
func (h *hooks) SetHookPost(f func(value Value) error) {
	h.post = f
}

func (h *hooks) store(v *atomic.Value, nv Value) error {
	if h.pre != nil {
		if err := h.pre(nv); err != nil {
			return err
		}
	}
	v.Store(nv)
	if h.post != nil {
		if err := h.post(nv); err != nil {
			return err
		}
	}
	return nil
}

// load returns the stored value or zero if nothing has been stored yet
func load[T any](v *atomic.Value, zero T) T {
	if ov := v.Load(); ov != nil {
		return ov.(T)
	}
	return zero
}

// Bool is a true/false preference.
type Bool struct {
	hooks
	value atomic.Value // bool
}

func (p *Bool) String() string {
	return fmt.Sprintf("%v", p.Get())
}

// Set accepts a bool or a string. Any string other than "true", ignoring case
// and surrounding space, is taken to mean false.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		nv = strings.ToLower(strings.TrimSpace(v)) == "true"
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
	}
	return p.store(&p.value, nv)
}

// Get implements the Pref interface. The dynamic type is always bool.
func (p *Bool) Get() Value {
	return load(&p.value, false)
}

// Reset to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// Int is an integer preference.
type Int struct {
	hooks
	value atomic.Value // int
}

func (p *Int) String() string {
	return fmt.Sprintf("%d", p.Get())
}

// Set accepts any of the integer types used by the hardware packages or a
// string. Strings may carry a base prefix, so "0x10" and "16" are equivalent.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int:
		nv = v
	case int64:
		nv = int(v)
	case int32:
		nv = int(v)
	case uint16:
		nv = int(v)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 0, 64)
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Int: %w", v, err)
		}
		nv = int(n)
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
	}
	return p.store(&p.value, nv)
}

// Get implements the Pref interface. The dynamic type is always int.
func (p *Int) Get() Value {
	return load(&p.value, 0)
}

// Reset to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// String is a free text preference.
type String struct {
	hooks
	value atomic.Value // string
}

func (p *String) String() string {
	return load(&p.value, "")
}

// Set new value to String type. Values of any type are formatted with the %v
// verb.
func (p *String) Set(v Value) error {
	return p.store(&p.value, fmt.Sprintf("%v", v))
}

// Get implements the Pref interface. The dynamic type is always string.
func (p *String) Get() Value {
	return p.String()
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}
