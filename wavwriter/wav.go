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

// Package wavwriter records the output of the sound timer to a WAV file.
// Audio data is buffered in memory in its entirety and written to disk when
// Close() is called. It is therefore probably only suitable for testing
// purposes.
package wavwriter

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/gopher8/beep"
	"github.com/jetsetilly/gopher8/logger"
)

const bitDepth = 16

// WavWriter implements the sound.Device interface. Every call to Play() or
// Pause() adds one timer tick of tone or silence to the recording.
type WavWriter struct {
	crit sync.Mutex

	perm     logger.Permission
	filename string
	tick     time.Duration
	tone     *beep.Beep
	buffer   []int16
	closed   bool
}

// NewWavWriter is the preferred method of initialisation for the WavWriter
// type. The tick argument is the period of the sound timer. If tone is nil
// the default square wave is used.
func NewWavWriter(perm logger.Permission, filename string, tick time.Duration, tone *beep.Beep) (*WavWriter, error) {
	if filename == "" {
		return nil, fmt.Errorf("wavwriter: no filename")
	}
	if tick <= 0 {
		return nil, fmt.Errorf("wavwriter: tick must be positive")
	}
	if tone == nil {
		tone = beep.NewSquare(beep.DefaultFrequency)
	}
	return &WavWriter{
		perm:     perm,
		filename: filename,
		tick:     tick,
		tone:     tone,
	}, nil
}

// Play implements the sound.Device interface
func (aw *WavWriter) Play() {
	aw.crit.Lock()
	defer aw.crit.Unlock()
	if !aw.closed {
		aw.buffer = append(aw.buffer, aw.tone.Tick(aw.tick)...)
	}
}

// Pause implements the sound.Device interface
func (aw *WavWriter) Pause() {
	aw.crit.Lock()
	defer aw.crit.Unlock()
	if !aw.closed {
		aw.buffer = append(aw.buffer, aw.tone.Silence(aw.tick)...)
	}
}

// Len returns the number of samples recorded so far
func (aw *WavWriter) Len() int {
	aw.crit.Lock()
	defer aw.crit.Unlock()
	return len(aw.buffer)
}

// Close writes the recording to disk. Calls to Play() and Pause() after
// Close() are ignored. Calling Close() more than once has no effect.
func (aw *WavWriter) Close() (rerr error) {
	aw.crit.Lock()
	defer aw.crit.Unlock()

	if aw.closed {
		return nil
	}
	aw.closed = true

	f, err := os.Create(aw.filename)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  aw.tone.Rate,
		},
		Data:           make([]int, len(aw.buffer)),
		SourceBitDepth: bitDepth,
	}
	for i, s := range aw.buffer {
		buf.Data[i] = int(s)
	}

	// audio format 1 is uncompressed PCM
	enc := wav.NewEncoder(f, aw.tone.Rate, bitDepth, 1, 1)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	logger.Logf(aw.perm, "wavwriter", "%d samples written to %s", len(aw.buffer), aw.filename)

	return nil
}
