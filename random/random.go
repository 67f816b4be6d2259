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

package random

import (
	"math/bits"
)

// DefaultSeed is the seed used when no other seed has been specified
const DefaultSeed = 0xfcfb

const (
	multiplier = 6364136223846793005
	increment  = 1442695040888963407
)

// Random is a deterministic source of random numbers. It is not safe for use
// by more than one goroutine at a time. In practice only the CPU ever asks for
// a random number.
type Random struct {
	seed  uint64
	state uint64
	inc   uint64
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(seed uint64) *Random {
	rnd := &Random{
		seed: seed,
		inc:  (increment << 1) | 1,
	}
	rnd.Reset()
	return rnd
}

// Reset the generator to the start of the sequence for the seed supplied to
// NewRandom().
func (rnd *Random) Reset() {
	rnd.state = 0
	_ = rnd.Uint32()
	rnd.state += rnd.seed
	_ = rnd.Uint32()
}

// Seed returns the seed used to initialise the generator
func (rnd *Random) Seed() uint64 {
	return rnd.seed
}

// Uint32 returns the next number in the sequence
func (rnd *Random) Uint32() uint32 {
	old := rnd.state
	rnd.state = old*multiplier + rnd.inc
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := int(old >> 59)
	return bits.RotateLeft32(xorshifted, -rot)
}

// Byte returns a random byte. Two numbers are taken from the sequence. The
// first decides which of the lower three bytes of the second is returned.
func (rnd *Random) Byte() uint8 {
	r := rnd.Uint32()
	shift := (((r & 0x0f) % 4) * 8) % 25
	return uint8(rnd.Uint32() >> shift)
}
