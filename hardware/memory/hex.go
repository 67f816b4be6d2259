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

package memory

// hexDigit returns the value of a hexadecimal digit. The boolean is false if
// the character is not a hexadecimal digit.
func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// LoadHex writes bytes described by a string of hexadecimal digits, starting
// at base. Each pair of digits is one byte, high nibble first. Characters
// that are not hexadecimal digits are skipped, so "F0 90-90" is the same as
// "F09090". A final unpaired digit is ignored.
//
// Returns the number of bytes written.
func (mem *Memory) LoadHex(base uint16, hex string) int {
	return mem.LoadHexN(base, hex, -1)
}

// LoadHexN is the same as LoadHex but writes no more than n bytes. A negative
// value for n means no limit.
func (mem *Memory) LoadHexN(base uint16, hex string, n int) int {
	data := DecodeHex(hex, n)
	mem.Load(base, data)
	return len(data)
}

// DecodeHex converts a string of hexadecimal digits to bytes by the same rules
// as LoadHex(). No more than n bytes are returned unless n is negative.
func DecodeHex(hex string, n int) []uint8 {
	var data []uint8
	var hi uint8
	var half bool

	for i := 0; i < len(hex) && len(data) != n; i++ {
		v, ok := hexDigit(hex[i])
		if !ok {
			continue
		}
		if !half {
			hi = v
			half = true
			continue
		}
		data = append(data, hi<<4|v)
		half = false
	}

	return data
}
