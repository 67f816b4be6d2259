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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher8/beep"
	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui/sdlaudio"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/faults"
	"github.com/jetsetilly/gopher8/hardware/sound"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/wavwriter"
)

// flags shared by every mode that creates a machine
type machineFlags struct {
	cosmic    *bool
	prefs     *string
	log       *bool
	wav       *string
	beep      *string
	memviz    *string
	statsview *bool
}

func addMachineFlags(md *modalflag.Modes) *machineFlags {
	mf := &machineFlags{
		cosmic: md.AddBool("cosmic", false, "use the instruction behaviour of the COSMAC VIP"),
		prefs:  md.AddString("prefs", "", "preferences as key::value pairs separated by semi-colons"),
		log:    md.AddBool("log", false, "echo log to output"),
		wav:    md.AddString("wav", "", "record sound to wav file"),
		beep:   md.AddString("beep", "", "wav or mp3 file to use as the tone"),
		memviz: md.AddString("memviz", "", "write a graph of the machine to a DOT file before starting"),
	}
	if statsview.Available() {
		mf.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return mf
}

// machine is the emulation and the sound devices attached to it
type machine struct {
	c8  *hardware.Chip8
	aud *sdlaudio.Audio
	wav *wavwriter.WavWriter
}

// newMachine loads the program and creates a machine for it. SDL audio is
// only used by the interactive modes. Failure to open the audio device is
// logged but is not fatal.
func newMachine(filename string, mf *machineFlags, output io.Writer, mode govern.Mode) (*machine, error) {
	if *mf.log {
		logger.SetEcho(output, false)
	}

	if mf.statsview != nil && *mf.statsview {
		statsview.Launch(output)
	}

	ld := romloader.NewLoader(filename)
	if err := ld.Load(); err != nil {
		return nil, err
	}
	logger.Logf(logger.Allow, "gopher8", "loaded %s (%d bytes, sha1 %s)", ld.ShortName(), len(ld.Data), ld.Hash)

	if *mf.prefs != "" {
		prefs.PushCommandLineStack(*mf.prefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "gopher8", "unused preferences: %s", unused)
			}
		}()
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		return nil, err
	}

	if *mf.cosmic {
		if err := env.Prefs.Set("hardware.cosmic", true); err != nil {
			return nil, err
		}
	}

	tone := beep.NewSquare(beep.DefaultFrequency)
	if *mf.beep != "" {
		tone, err = beep.Load(*mf.beep)
		if err != nil {
			return nil, err
		}
	}

	m := &machine{}
	var devs []sound.Device

	if mode == govern.ModeWindow || mode == govern.ModeTerminal {
		// each device plays its own copy of the tone
		t := *tone
		m.aud, err = sdlaudio.NewAudio(env, env.Prefs.TimerDuration(), &t)
		if err != nil {
			logger.Log(env, "gopher8", err)
			m.aud = nil
		} else {
			devs = append(devs, m.aud)
		}
	}

	if *mf.wav != "" {
		t := *tone
		m.wav, err = wavwriter.NewWavWriter(env, *mf.wav, env.Prefs.TimerDuration(), &t)
		if err != nil {
			m.close(output)
			return nil, err
		}
		devs = append(devs, m.wav)
	}

	m.c8, err = hardware.NewChip8(env, sound.NewMulti(devs...))
	if err != nil {
		m.close(output)
		return nil, err
	}

	if err := m.c8.LoadProgram(ld.Data); err != nil {
		m.close(output)
		return nil, err
	}

	if *mf.memviz != "" {
		if err := m.memviz(*mf.memviz); err != nil {
			m.close(output)
			return nil, err
		}
	}

	return m, nil
}

// memviz writes a graph of the machine's data structures
func (m *machine) memviz(filename string) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	memviz.Map(f, m.c8)
	logger.Logf(m.c8.Env, "gopher8", "machine graph written to %s", filename)

	return nil
}

// close the sound devices. the machine must have been stopped
func (m *machine) close(output io.Writer) {
	if m.wav != nil {
		if err := m.wav.Close(); err != nil {
			fmt.Fprintf(output, "* error writing wav file: %v\n", err)
		}
	}
	if m.aud != nil {
		m.aud.Close()
	}
}

// fault writes the fault log if the error is a fault. the error is returned
// unchanged
func (m *machine) fault(output io.Writer, err error) error {
	var f *faults.Fault
	if errors.As(err, &f) {
		fmt.Fprintln(output, "* fault log")
		m.c8.Faults.WriteLog(output)
	}
	return err
}
