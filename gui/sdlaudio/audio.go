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

package sdlaudio

import (
	"fmt"
	"sync"
	"time"

	"github.com/jetsetilly/gopher8/beep"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// the number of ticks worth of audio that can be queued before Play() stops
// adding to the queue. too short and the tone breaks up between ticks. too
// long and the tone continues after Pause() has been called on some devices
const queueTicks = 3

// Audio outputs the tone using SDL. It implements the sound.Device interface.
type Audio struct {
	perm logger.Permission

	crit sync.Mutex

	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	tick time.Duration
	tone *beep.Beep

	closed bool
}

// NewAudio is the preferred method of initialisation for the Audio type. The
// tick is the period of the sound timer. Every call to Play() queues a tick's
// worth of the tone. A nil tone is replaced by a square wave.
func NewAudio(perm logger.Permission, tick time.Duration, tone *beep.Beep) (*Audio, error) {
	if tick <= 0 {
		return nil, fmt.Errorf("sdlaudio: tick must be positive")
	}
	if tone == nil {
		tone = beep.NewSquare(beep.DefaultFrequency)
	}

	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, fmt.Errorf("sdlaudio: %w", err)
	}

	aud := &Audio{
		perm: perm,
		tick: tick,
		tone: tone,
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(tone.Rate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  uint16(512),
	}

	var err error

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		return nil, fmt.Errorf("sdlaudio: %w", err)
	}

	logger.Logf(aud.perm, "sdlaudio", "frequency: %d samples/sec", aud.spec.Freq)
	logger.Logf(aud.perm, "sdlaudio", "buffer size: %d samples", aud.spec.Samples)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// Play implements the sound.Device interface
func (aud *Audio) Play() {
	aud.crit.Lock()
	defer aud.crit.Unlock()

	if aud.closed {
		return
	}

	limit := uint32(aud.tone.Samples(aud.tick) * 2 * queueTicks)
	if sdl.GetQueuedAudioSize(aud.id) >= limit {
		return
	}

	if err := sdl.QueueAudio(aud.id, beep.Bytes(aud.tone.Tick(aud.tick))); err != nil {
		logger.Log(aud.perm, "sdlaudio", err)
	}
}

// Pause implements the sound.Device interface
func (aud *Audio) Pause() {
	aud.crit.Lock()
	defer aud.crit.Unlock()

	if aud.closed {
		return
	}

	sdl.ClearQueuedAudio(aud.id)
	aud.tone.Silence(0)
}

// Close the audio device. Play() and Pause() do nothing after Close()
func (aud *Audio) Close() {
	aud.crit.Lock()
	defer aud.crit.Unlock()

	if aud.closed {
		return
	}
	aud.closed = true

	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
}
