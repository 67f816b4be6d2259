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

// Package fonts contains the built-in font. Each glyph is five bytes, one
// byte per row with the pixels in the high nibble. Glyphs are stored as
// strings of hexadecimal digits, the format accepted by the LoadHex()
// function of the memory package.
package fonts

// Origin is the address of the first glyph in memory
const Origin = 0x000

// GlyphSize is the number of bytes in each glyph
const GlyphSize = 5

// NumGlyphs is the number of glyphs in a font
const NumGlyphs = 16

// Font is a complete set of sixteen glyphs
type Font [NumGlyphs]string

// Classic is the font of the original interpreter
var Classic = Font{
	"F0909090F0", // 0
	"2060202070", // 1
	"F010F080F0", // 2
	"F010F010F0", // 3
	"9090F01010", // 4
	"F080F010F0", // 5
	"F080F090F0", // 6
	"F010204040", // 7
	"F090F090F0", // 8
	"F090F010F0", // 9
	"F090F09090", // A
	"E090E090E0", // B
	"F0808080F0", // C
	"E0909090E0", // D
	"F080F080F0", // E
	"F080F08080", // F
}

// Address returns the address of the glyph for the low nibble of digit
func Address(digit uint8) uint16 {
	return Origin + uint16(digit&0x0f)*GlyphSize
}
