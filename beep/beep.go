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

// Package beep produces the PCM data for the single tone of the machine. The
// tone is either a generated square wave or a sample loaded from a WAV or MP3
// file.
//
// All PCM data is mono and signed 16 bit. The sound devices in the
// wavwriter and sdlaudio packages ask for one timer tick of data at a time
// with the Tick() function.
package beep

import (
	"time"
)

// SampleRate is the rate of the generated square wave
const SampleRate = 44100

// DefaultFrequency is the pitch of the generated square wave
const DefaultFrequency = 440

// amplitude of the generated square wave. about a quarter of full scale
const amplitude = 0x2000

// Beep is a loop of PCM data
type Beep struct {
	// samples per second
	Rate int

	// mono signed 16 bit samples
	Data []int16

	// the position in Data of the next sample returned by Tick()
	pos int
}

// NewSquare is the preferred method of initialisation for a Beep that is a
// square wave of the given frequency. The data holds a single cycle of the
// wave.
func NewSquare(freq int) *Beep {
	if freq <= 0 {
		freq = DefaultFrequency
	}

	n := SampleRate / freq
	if n < 2 {
		n = 2
	}

	b := &Beep{
		Rate: SampleRate,
		Data: make([]int16, n),
	}
	for i := range b.Data {
		if i < n/2 {
			b.Data[i] = amplitude
		} else {
			b.Data[i] = -amplitude
		}
	}

	return b
}

// Samples returns the number of samples that cover the duration
func (b *Beep) Samples(d time.Duration) int {
	return int(int64(b.Rate) * int64(d) / int64(time.Second))
}

// Tick returns enough samples to cover the duration. The data loops so
// consecutive calls produce a continuous tone.
func (b *Beep) Tick(d time.Duration) []int16 {
	out := make([]int16, b.Samples(d))
	if len(b.Data) == 0 {
		return out
	}
	for i := range out {
		out[i] = b.Data[b.pos]
		b.pos++
		if b.pos >= len(b.Data) {
			b.pos = 0
		}
	}
	return out
}

// Silence returns enough silent samples to cover the duration. The position
// of the loop is reset so the next tone starts at the beginning of the data.
func (b *Beep) Silence(d time.Duration) []int16 {
	b.pos = 0
	return make([]int16, b.Samples(d))
}

// Bytes converts samples to little-endian bytes
func Bytes(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		out[i*2] = byte(s)
		out[i*2+1] = byte(uint16(s) >> 8)
	}
	return out
}
