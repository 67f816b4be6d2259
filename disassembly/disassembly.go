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

// Package disassembly turns opcodes into assembly language. The mnemonics
// and operand formats are those of the common CHIP-8 assemblers.
//
// Disassembly of a single opcode is done with Disassemble(). A complete
// program can be listed with Program(). The CPU uses Disassemble() when
// tracing is enabled.
//
// Opcodes that the CPU would reject with an invalid instruction fault are
// disassembled as data, with the DW mnemonic.
package disassembly

import (
	"fmt"
	"io"
	"strings"
)

// Entry is the disassembly of a single opcode
type Entry struct {
	Address  uint16
	Opcode   uint16
	Mnemonic string
	Operands string

	// false if the opcode is not a valid instruction
	Valid bool
}

// Instruction returns the mnemonic and operands as a single string
func (e Entry) Instruction() string {
	if e.Operands == "" {
		return e.Mnemonic
	}
	return fmt.Sprintf("%s %s", e.Mnemonic, e.Operands)
}

func (e Entry) String() string {
	return fmt.Sprintf("%03X: %04X  %s", e.Address, e.Opcode, e.Instruction())
}

// mnemonics of the 8XYN instructions, keyed by N
var aluMnemonics = map[uint16]string{
	0x0: "LD", 0x1: "OR", 0x2: "AND", 0x3: "XOR", 0x4: "ADD",
	0x5: "SUB", 0x6: "SHR", 0x7: "SUBN", 0xe: "SHL",
}

// Disassemble the opcode. The address is the address the opcode was fetched
// from and is used only for presentation.
func Disassemble(address uint16, opcode uint16) Entry {
	e := Entry{
		Address: address,
		Opcode:  opcode,
		Valid:   true,
	}

	x := (opcode >> 8) & 0x0f
	y := (opcode >> 4) & 0x0f
	n := opcode & 0x000f
	kk := opcode & 0x00ff
	nnn := opcode & 0x0fff

	set := func(mnemonic string, format string, args ...any) {
		e.Mnemonic = mnemonic
		if format != "" {
			e.Operands = fmt.Sprintf(format, args...)
		}
	}

	switch opcode & 0xf000 {
	case 0x0000:
		switch opcode {
		case 0x00e0:
			set("CLS", "")
		case 0x00ee:
			set("RET", "")
		case 0x00fd:
			set("NOP", "")
		default:
			set("SYS", "$%03X", nnn)
		}
	case 0x1000:
		set("JP", "$%03X", nnn)
	case 0x2000:
		set("CALL", "$%03X", nnn)
	case 0x3000:
		set("SE", "V%X, $%02X", x, kk)
	case 0x4000:
		set("SNE", "V%X, $%02X", x, kk)
	case 0x5000:
		if n == 0 {
			set("SE", "V%X, V%X", x, y)
		}
	case 0x6000:
		set("LD", "V%X, $%02X", x, kk)
	case 0x7000:
		set("ADD", "V%X, $%02X", x, kk)
	case 0x8000:
		if m, ok := aluMnemonics[n]; ok {
			set(m, "V%X, V%X", x, y)
		}
	case 0x9000:
		if n == 0 {
			set("SNE", "V%X, V%X", x, y)
		}
	case 0xa000:
		set("LD", "I, $%03X", nnn)
	case 0xb000:
		set("JP", "V0, $%03X", nnn)
	case 0xc000:
		set("RND", "V%X, $%02X", x, kk)
	case 0xd000:
		set("DRW", "V%X, V%X, $%X", x, y, n)
	case 0xe000:
		switch kk {
		case 0x9e:
			set("SKP", "V%X", x)
		case 0xa1:
			set("SKNP", "V%X", x)
		}
	case 0xf000:
		switch kk {
		case 0x07:
			set("LD", "V%X, DT", x)
		case 0x0a:
			set("LD", "V%X, K", x)
		case 0x15:
			set("LD", "DT, V%X", x)
		case 0x18:
			set("LD", "ST, V%X", x)
		case 0x1e:
			set("ADD", "I, V%X", x)
		case 0x29:
			set("LD", "F, V%X", x)
		case 0x33:
			set("LD", "B, V%X", x)
		case 0x55:
			set("LD", "[I], V%X", x)
		case 0x65:
			set("LD", "V%X, [I]", x)
		}
	}

	if e.Mnemonic == "" {
		e.Valid = false
		set("DW", "$%04X", opcode)
	}

	return e
}

// Program writes a listing of the program to w. The origin is the address
// at which the first byte of the program is loaded. A trailing odd byte is
// listed as a single byte of data.
func Program(w io.Writer, program []uint8, origin uint16) error {
	s := &strings.Builder{}
	for i := 0; i+1 < len(program); i += 2 {
		opcode := uint16(program[i])<<8 | uint16(program[i+1])
		s.WriteString(Disassemble(origin+uint16(i), opcode).String())
		s.WriteString("\n")
	}
	if len(program)%2 == 1 {
		i := len(program) - 1
		fmt.Fprintf(s, "%03X: %02X    DB $%02X\n", origin+uint16(i), program[i], program[i])
	}

	if _, err := io.WriteString(w, s.String()); err != nil {
		return fmt.Errorf("disassembly: %w", err)
	}
	return nil
}
