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
	"sort"
	"strings"
)

type entry struct {
	pref     Pref
	defValue Value
}

// Collection is a keyed list of preferences. Each preference has a default
// value which is applied when the preference is added and by Reset().
type Collection struct {
	entries map[string]entry
}

// NewCollection is the preferred method of initialisation for the Collection
// type.
func NewCollection() *Collection {
	return &Collection{
		entries: make(map[string]entry),
	}
}

// Add a preference to the collection and set it to the default value. Keys
// must be unique.
func (c *Collection) Add(key string, p Pref, defValue Value) error {
	if _, ok := c.entries[key]; ok {
		return fmt.Errorf("prefs: key %q already exists", key)
	}
	if err := p.Set(defValue); err != nil {
		return fmt.Errorf("prefs: %s: %w", key, err)
	}
	c.entries[key] = entry{pref: p, defValue: defValue}
	return nil
}

// Reset all preferences in the collection to their default value.
func (c *Collection) Reset() error {
	for key, e := range c.entries {
		if err := e.pref.Set(e.defValue); err != nil {
			return fmt.Errorf("prefs: %s: %w", key, err)
		}
	}
	return nil
}

// ApplyCommandLine sets any preference that has a value in the current command
// line group. Values are consumed from the group as they are applied.
func (c *Collection) ApplyCommandLine() error {
	for key, e := range c.entries {
		if ok, v := GetCommandLinePref(key); ok {
			if err := e.pref.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", key, err)
			}
		}
	}
	return nil
}

// Set the preference named by key. The value is converted by the preference
// type.
func (c *Collection) Set(key string, v Value) error {
	e, ok := c.entries[key]
	if !ok {
		return fmt.Errorf("prefs: no preference with key %q", key)
	}
	return e.pref.Set(v)
}

// String returns every preference in the collection, sorted by key, one per
// line.
func (c *Collection) String() string {
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, c.entries[k].pref))
	}
	return s.String()
}
