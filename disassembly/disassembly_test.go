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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/jetsetilly/gopher8/disassembly"
)

func TestDisassemble(t *testing.T) {
	tests := []struct {
		opcode   uint16
		expected string
	}{
		{0x00e0, "CLS"},
		{0x00ee, "RET"},
		{0x00fd, "NOP"},
		{0x0123, "SYS $123"},
		{0x1228, "JP $228"},
		{0x2abc, "CALL $ABC"},
		{0x3a12, "SE VA, $12"},
		{0x4b34, "SNE VB, $34"},
		{0x5120, "SE V1, V2"},
		{0x6005, "LD V0, $05"},
		{0x7fff, "ADD VF, $FF"},
		{0x8010, "LD V0, V1"},
		{0x8011, "OR V0, V1"},
		{0x8012, "AND V0, V1"},
		{0x8013, "XOR V0, V1"},
		{0x8014, "ADD V0, V1"},
		{0x8015, "SUB V0, V1"},
		{0x8016, "SHR V0, V1"},
		{0x8017, "SUBN V0, V1"},
		{0x801e, "SHL V0, V1"},
		{0x9340, "SNE V3, V4"},
		{0xa22a, "LD I, $22A"},
		{0xb300, "JP V0, $300"},
		{0xc1ff, "RND V1, $FF"},
		{0xd015, "DRW V0, V1, $5"},
		{0xe59e, "SKP V5"},
		{0xe5a1, "SKNP V5"},
		{0xf207, "LD V2, DT"},
		{0xf20a, "LD V2, K"},
		{0xf215, "LD DT, V2"},
		{0xf218, "LD ST, V2"},
		{0xf21e, "ADD I, V2"},
		{0xf229, "LD F, V2"},
		{0xf233, "LD B, V2"},
		{0xf255, "LD [I], V2"},
		{0xf265, "LD V2, [I]"},
	}

	for _, tt := range tests {
		e := disassembly.Disassemble(0x200, tt.opcode)
		assert.Equal(t, tt.expected, e.Instruction())
		assert.True(t, e.Valid)
	}
}

func TestInvalid(t *testing.T) {
	for _, opcode := range []uint16{0x5121, 0x8018, 0x801f, 0x9341, 0xe500, 0xf200, 0xf2ff} {
		e := disassembly.Disassemble(0x200, opcode)
		assert.False(t, e.Valid)
		assert.Equal(t, "DW", e.Mnemonic)
	}

	e := disassembly.Disassemble(0x204, 0x5121)
	assert.Equal(t, "204: 5121  DW $5121", e.String())
}

func TestProgram(t *testing.T) {
	w := &strings.Builder{}
	err := disassembly.Program(w, []uint8{0x60, 0x05, 0x61, 0x03, 0x80, 0x14, 0xaa}, 0x200)
	assert.NoError(t, err)

	expected := "200: 6005  LD V0, $05\n" +
		"202: 6103  LD V1, $03\n" +
		"204: 8014  ADD V0, V1\n" +
		"206: AA    DB $AA\n"
	assert.Equal(t, expected, w.String())
}
