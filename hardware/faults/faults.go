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

package faults

import (
	"fmt"
	"io"
	"sync"
)

// Category classifies the reason for a fault. A Category is an error in its
// own right and can be used as the target of errors.Is()
type Category string

// List of valid Category values
const (
	None               Category = "none"
	StackUnderflow     Category = "stack underflow"
	StackOverflow      Category = "stack overflow"
	ExecutionLocked    Category = "execution locked"
	DelayTimerLocked   Category = "delay timer locked"
	SoundTimerLocked   Category = "sound timer locked"
	UnhookedKeyboard   Category = "unhooked keyboard"
	InvalidInstruction Category = "invalid instruction"
)

func (c Category) Error() string {
	return string(c)
}

// Locked returns true if the category indicates that a shared resource could
// not be acquired. The operation that failed may succeed if tried again.
func (c Category) Locked() bool {
	switch c {
	case ExecutionLocked, DelayTimerLocked, SoundTimerLocked:
		return true
	}
	return false
}

// Fault is the error returned when an instruction cannot be completed
type Fault struct {
	Category Category

	// the instruction and the address it was fetched from
	Opcode  uint16
	Address uint16
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s: %04x (PC: %03x)", f.Category, f.Opcode, f.Address)
}

// Unwrap allows errors.Is() to match the fault against a Category
func (f *Fault) Unwrap() error {
	return f.Category
}

// Entry is a single entry in the fault log
type Entry struct {
	Fault

	// number of times this specific fault has been seen
	Count int
}

func (e Entry) String() string {
	if e.Count > 1 {
		return fmt.Sprintf("%s (x%d)", e.Fault.Error(), e.Count)
	}
	return e.Fault.Error()
}

// Faults records every fault seen by the machine. Faults with the same
// category, opcode and address share an entry. Safe for concurrent use.
type Faults struct {
	crit sync.Mutex

	entries map[Fault]*Entry

	// all the faults in order of the first time they appear
	log []*Entry
}

// NewFaults is the preferred method of initialisation for the Faults type.
func NewFaults() *Faults {
	return &Faults{
		entries: make(map[Fault]*Entry),
	}
}

// NewEntry adds a fault to the log
func (flt *Faults) NewEntry(f Fault) {
	flt.crit.Lock()
	defer flt.crit.Unlock()

	e, found := flt.entries[f]
	if !found {
		e = &Entry{Fault: f}
		flt.entries[f] = e
		flt.log = append(flt.log, e)
	}
	e.Count++
}

// Clear all entries from faults log
func (flt *Faults) Clear() {
	flt.crit.Lock()
	defer flt.crit.Unlock()
	clear(flt.entries)
	flt.log = flt.log[:0]
}

// Len returns the number of distinct faults in the log
func (flt *Faults) Len() int {
	flt.crit.Lock()
	defer flt.crit.Unlock()
	return len(flt.log)
}

// Entries returns a copy of the log in the order faults were first seen
func (flt *Faults) Entries() []Entry {
	flt.crit.Lock()
	defer flt.crit.Unlock()
	c := make([]Entry, len(flt.log))
	for i, e := range flt.log {
		c[i] = *e
	}
	return c
}

// WriteLog writes the list of faults in the order they were added
func (flt *Faults) WriteLog(w io.Writer) {
	for _, e := range flt.Entries() {
		io.WriteString(w, e.String())
		io.WriteString(w, "\n")
	}
}
