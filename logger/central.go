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

package logger

import (
	"io"
)

// the application wide log. packages that don't need a log of their own
// write here through the package level functions
var central = NewLogger(256)

// Log adds an entry to the application log. The detail argument can be a
// string, an error or a fmt.Stringer. Any other type is formatted with the %v
// verb.
func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf is the formatted variant of Log.
func Logf(perm Permission, tag string, format string, args ...any) {
	central.Logf(perm, tag, format, args...)
}

// Clear empties the application log.
func Clear() {
	central.Clear()
}

// Write every entry in the application log to output.
func Write(output io.Writer) {
	central.Write(output)
}

// SetEcho copies new entries to output as they are logged. A nil output stops
// the echo.
func SetEcho(output io.Writer, writeRecent bool) {
	central.SetEcho(output, writeRecent)
}
