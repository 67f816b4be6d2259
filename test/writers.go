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

package test

import (
	"fmt"
	"sync"
)

// CompareWriter is an implementation of io.Writer. It should be used to
// capture output and to compare with predefined strings. It is safe to write
// to from more than one goroutine.
type CompareWriter struct {
	crit   sync.Mutex
	buffer []byte
}

// Write implements the io.Writer interface
func (cw *CompareWriter) Write(p []byte) (n int, err error) {
	cw.crit.Lock()
	defer cw.crit.Unlock()
	cw.buffer = append(cw.buffer, p...)
	return len(p), nil
}

// Clear empties the buffer
func (cw *CompareWriter) Clear() {
	cw.crit.Lock()
	defer cw.crit.Unlock()
	cw.buffer = cw.buffer[:0]
}

// Compare buffered output with predefined/example string
func (cw *CompareWriter) Compare(s string) bool {
	return s == cw.String()
}

func (cw *CompareWriter) String() string {
	cw.crit.Lock()
	defer cw.crit.Unlock()
	return string(cw.buffer)
}

// CappedWriter is an implementation of io.Writer that stops buffering once a
// predefined size is reached
type CappedWriter struct {
	buffer []byte
	size   int
}

// NewCappedWriter is the preferred method of initialisation for the
// CappedWriter type
func NewCappedWriter(size int) (*CappedWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("test: invalid size for CappedWriter (%d)", size)
	}
	return &CappedWriter{
		size:   size,
		buffer: make([]byte, 0, size),
	}, nil
}

func (cw *CappedWriter) String() string {
	return string(cw.buffer)
}

// Reset empties the buffer
func (cw *CappedWriter) Reset() {
	cw.buffer = cw.buffer[:0]
}

// Write implements the io.Writer interface. Bytes beyond the cap are silently
// dropped
func (cw *CappedWriter) Write(p []byte) (n int, err error) {
	remaining := cw.size - len(cw.buffer)
	if len(p) > remaining {
		p = p[:remaining]
	}
	cw.buffer = append(cw.buffer, p...)
	return len(p), nil
}

// RingWriter is an implementation of io.Writer that keeps only the most
// recent bytes written to it
type RingWriter struct {
	buffer  []byte
	size    int
	cursor  int
	wrapped bool
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("test: invalid size for RingWriter (%d)", size)
	}
	return &RingWriter{
		size:   size,
		buffer: make([]byte, size),
	}, nil
}

func (rw *RingWriter) String() string {
	if rw.wrapped {
		return string(rw.buffer[rw.cursor:]) + string(rw.buffer[:rw.cursor])
	}
	return string(rw.buffer[:rw.cursor])
}

// Reset empties the buffer
func (rw *RingWriter) Reset() {
	rw.cursor = 0
	rw.wrapped = false
}

// Write implements the io.Writer interface
func (rw *RingWriter) Write(p []byte) (n int, err error) {
	n = len(p)

	// only the tail end of a long write can ever be seen
	if len(p) >= rw.size {
		copy(rw.buffer, p[len(p)-rw.size:])
		rw.cursor = 0
		rw.wrapped = true
		return n, nil
	}

	c := copy(rw.buffer[rw.cursor:], p)
	if c < len(p) {
		copy(rw.buffer, p[c:])
		rw.wrapped = true
	}
	rw.cursor = (rw.cursor + len(p)) % rw.size
	if rw.cursor == 0 {
		rw.wrapped = true
	}

	return n, nil
}
