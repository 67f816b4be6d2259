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

package cpu

import (
	"errors"

	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8/hardware/faults"
	"github.com/jetsetilly/gopher8/hardware/fonts"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/logger"
)

// Memory defines the memory operations required by the CPU
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
	Word(address uint16) uint16
	Push(address uint16) error
	Pop() (uint16, error)
}

// Display defines the display operations required by the CPU
type Display interface {
	Clear()
	Toggle(x, y int) bool
}

// Display dimensions. Drawing starts at coordinates wrapped to these values
// and is clipped at the right and bottom edges
const (
	displayWidth  = 64
	displayHeight = 32
)

// Keypad defines the keypad operations required by the CPU
type Keypad interface {
	IsPressed(k keypad.Key) bool
	FirstPressed() (keypad.Key, bool)
}

// Random is the source of numbers for the CXNN instruction
type Random interface {
	Byte() uint8
}

// Counter is one of the two timer counters. Access to a counter can fail if
// the lock protecting it cannot be acquired
type Counter interface {
	Get() (uint8, error)
	Set(v uint8) error
}

// Connections are the parts of the machine the CPU talks to
type Connections struct {
	Mem    Memory
	Dsp    Display
	Keys   Keypad
	Rnd    Random
	Delay  Counter
	Sound  Counter
	Origin uint16
}

// LastResult is the most recently executed instruction
type LastResult struct {
	Address uint16
	Opcode  uint16

	// the instruction did not complete and the error was returned by
	// ExecuteInstruction()
	Fault bool
}

// CPU implements the instruction set. It has no notion of running or stopped.
// That is the responsibility of the machine that contains it.
type CPU struct {
	perm logger.Permission

	Regs *registers.Registers

	conn Connections

	// the legacy quirks mode. fixed when the CPU is created
	cosmic bool

	// log the disassembly of every instruction
	Trace bool

	LastResult LastResult
}

// NewCPU is the preferred method of initialisation for the CPU type. All
// fields of the Connections argument must be supplied.
func NewCPU(perm logger.Permission, cosmic bool, conn Connections) *CPU {
	return &CPU{
		perm:   perm,
		Regs:   registers.NewRegisters(conn.Origin),
		conn:   conn,
		cosmic: cosmic,
	}
}

func (mc *CPU) String() string {
	return mc.Regs.String()
}

// Cosmic returns true if the CPU is using the legacy quirks mode
func (mc *CPU) Cosmic() bool {
	return mc.cosmic
}

// Reset registers to their initial state. The program counter is set to the
// origin address
func (mc *CPU) Reset() {
	mc.Regs.Reset(mc.conn.Origin)
	mc.LastResult = LastResult{}
}

// ExecuteInstruction fetches the opcode at the program counter and executes
// it. The program counter is advanced before the instruction is executed.
//
// If the instruction fails then the returned error is a *faults.Fault and the
// program counter is restored to the address of the failed instruction. No
// other state is changed by a failed instruction.
func (mc *CPU) ExecuteInstruction() error {
	address := mc.Regs.PC.Address()
	opcode := mc.conn.Mem.Word(address)
	mc.LastResult = LastResult{Address: address, Opcode: opcode}

	if mc.Trace {
		logger.Log(mc.perm, "cpu", disassembly.Disassemble(address, opcode))
	}

	mc.Regs.PC.Advance()

	if cat := mc.execute(opcode); cat != faults.None {
		mc.Regs.PC.Load(address)
		mc.LastResult.Fault = true
		return &faults.Fault{Category: cat, Opcode: opcode, Address: address}
	}

	return nil
}

// category returns the fault category for an error returned by a Counter. the
// fallback category is used if the error is not already categorised
func category(err error, fallback faults.Category) faults.Category {
	var cat faults.Category
	if errors.As(err, &cat) {
		return cat
	}
	return fallback
}

// execute the opcode. returns faults.None if the instruction completed
func (mc *CPU) execute(opcode uint16) faults.Category {
	x := uint8(opcode>>8) & 0x0f
	y := uint8(opcode>>4) & 0x0f
	n := uint8(opcode) & 0x0f
	kk := uint8(opcode)
	nnn := opcode & 0x0fff

	r := mc.Regs
	vx := r.V(x)
	vy := r.V(y)

	switch opcode & 0xf000 {
	case 0x0000:
		switch opcode {
		case 0x00e0:
			mc.conn.Dsp.Clear()
		case 0x00ee:
			address, err := mc.conn.Mem.Pop()
			if err != nil {
				return category(err, faults.StackUnderflow)
			}
			r.PC.Load(address)
		case 0x00fd:
		default:
			r.PC.Load(nnn)
		}

	case 0x1000:
		r.PC.Load(nnn)

	case 0x2000:
		if err := mc.conn.Mem.Push(r.PC.Address()); err != nil {
			return category(err, faults.StackOverflow)
		}
		r.PC.Load(nnn)

	case 0x3000:
		if vx == kk {
			r.PC.Advance()
		}

	case 0x4000:
		if vx != kk {
			r.PC.Advance()
		}

	case 0x5000:
		if n != 0 {
			return faults.InvalidInstruction
		}
		if vx == vy {
			r.PC.Advance()
		}

	case 0x6000:
		r.SetV(x, kk)

	case 0x7000:
		r.SetV(x, vx+kk)

	case 0x8000:
		return mc.alu(x, y, n)

	case 0x9000:
		if n != 0 {
			return faults.InvalidInstruction
		}
		if vx != vy {
			r.PC.Advance()
		}

	case 0xa000:
		r.SetI(nnn)

	case 0xb000:
		if mc.cosmic {
			r.PC.Load(nnn + uint16(r.V(0)))
		} else {
			r.PC.Load(nnn + uint16(vx))
		}

	case 0xc000:
		r.SetV(x, mc.conn.Rnd.Byte()&kk)

	case 0xd000:
		mc.draw(vx, vy, n)

	case 0xe000:
		switch kk {
		case 0x9e:
			if mc.conn.Keys.IsPressed(keypad.Key(vx & 0x0f)) {
				r.PC.Advance()
			}
		case 0xa1:
			if !mc.conn.Keys.IsPressed(keypad.Key(vx & 0x0f)) {
				r.PC.Advance()
			}
		default:
			return faults.InvalidInstruction
		}

	case 0xf000:
		return mc.misc(x, kk)
	}

	return faults.None
}

// the 8XYN instructions. results are calculated from the values of the
// registers before the instruction. the flag is always written after the
// result so that VF holds the flag even when X is F
func (mc *CPU) alu(x, y, n uint8) faults.Category {
	r := mc.Regs
	vx := r.V(x)
	vy := r.V(y)

	switch n {
	case 0x0:
		r.SetV(x, vy)
	case 0x1:
		r.SetV(x, vx|vy)
	case 0x2:
		r.SetV(x, vx&vy)
	case 0x3:
		r.SetV(x, vx^vy)
	case 0x4:
		sum := uint16(vx) + uint16(vy)
		r.SetV(x, uint8(sum))
		r.SetFlag(sum > 0xff)
	case 0x5:
		r.SetV(x, vx-vy)
		r.SetFlag(vx > vy)
	case 0x6:
		if mc.cosmic {
			vx = vy
		}
		r.SetV(x, vx>>1)
		r.SetFlag(vx&0x01 == 0x01)
	case 0x7:
		r.SetV(x, vy-vx)
		r.SetFlag(vy > vx)
	case 0xe:
		if mc.cosmic {
			vx = vy
		}
		r.SetV(x, vx<<1)
		r.SetFlag(vx&0x80 == 0x80)
	default:
		return faults.InvalidInstruction
	}

	return faults.None
}

// the DXYN instruction. the sprite is N bytes long and is read from the
// address in the index register
func (mc *CPU) draw(vx, vy, n uint8) {
	r := mc.Regs
	x0 := int(vx) % displayWidth
	y0 := int(vy) % displayHeight

	var collision bool

	for row := 0; row < int(n); row++ {
		y := y0 + row
		if y >= displayHeight {
			break
		}

		b := mc.conn.Mem.Read(r.I() + uint16(row))
		for bit := 0; bit < 8; bit++ {
			x := x0 + bit
			if x >= displayWidth {
				break
			}
			if b&(0x80>>bit) != 0 {
				if mc.conn.Dsp.Toggle(x, y) {
					collision = true
				}
			}
		}
	}

	r.SetFlag(collision)
}

// the FXNN instructions
func (mc *CPU) misc(x, kk uint8) faults.Category {
	r := mc.Regs
	vx := r.V(x)

	switch kk {
	case 0x07:
		v, err := mc.conn.Delay.Get()
		if err != nil {
			return category(err, faults.DelayTimerLocked)
		}
		r.SetV(x, v)

	case 0x0a:
		if k, ok := mc.conn.Keys.FirstPressed(); ok {
			r.SetV(x, uint8(k))
		} else {
			r.PC.Rewind()
		}

	case 0x15:
		if err := mc.conn.Delay.Set(vx); err != nil {
			return category(err, faults.DelayTimerLocked)
		}

	case 0x18:
		if err := mc.conn.Sound.Set(vx); err != nil {
			return category(err, faults.SoundTimerLocked)
		}

	case 0x1e:
		sum := r.I() + uint16(vx)
		r.SetI(sum)
		if !mc.cosmic {
			r.SetFlag(sum > registers.Mask)
		}

	case 0x29:
		r.SetI(fonts.Address(vx))

	case 0x33:
		mc.conn.Mem.Write(r.I(), vx/100)
		mc.conn.Mem.Write(r.I()+1, (vx/10)%10)
		mc.conn.Mem.Write(r.I()+2, vx%10)

	case 0x55:
		r.StoreTo(mc.conn.Mem, x, mc.cosmic)

	case 0x65:
		r.LoadFrom(mc.conn.Mem, x, mc.cosmic)

	default:
		return faults.InvalidInstruction
	}

	return faults.None
}
