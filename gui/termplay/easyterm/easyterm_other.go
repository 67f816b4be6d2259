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

//go:build !unix

package easyterm

import (
	"fmt"
	"os"
)

// Geometry contains the dimensions of a terminal in characters
type Geometry struct {
	Rows int
	Cols int
}

// Terminal is not available on this platform
type Terminal struct{}

// Initialise always fails on this platform
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	return fmt.Errorf("easyterm: not available on this platform")
}

func (pt *Terminal) CleanUp() {}
func (pt *Terminal) Print(s string, a ...any) {}
func (pt *Terminal) Read(b []byte) (int, error) { return 0, nil }
func (pt *Terminal) UpdateGeometry() error { return nil }
func (pt *Terminal) Geometry() Geometry { return Geometry{} }
func (pt *Terminal) CanonicalMode() {}
func (pt *Terminal) RawMode() {}
func (pt *Terminal) Flush() error { return nil }
