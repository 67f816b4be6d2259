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
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/modalflag"
)

// headless runs the program without a frontend and writes the final state of
// the display to the output. With the -digest flag every change to the
// display is added to a digest and the hash is written after the display.
func headless(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	mf := addMachineFlags(md)
	duration := md.AddDuration("duration", time.Second, "run the program for the duration")
	instructions := md.AddInt("instructions", 0, "stop after the number of instructions (zero for no limit)")
	useDigest := md.AddBool("digest", false, "write a digest of every change to the display")

	if err := parse(md); err != nil {
		return err
	}

	m, err := newMachine(md.GetArg(0), mf, output, govern.ModeHeadless)
	if err != nil {
		return err
	}
	defer m.close(output)

	delay, sound, err := m.c8.Start()
	if err != nil {
		return err
	}
	defer m.c8.Stop(delay, sound)

	deadline := time.Now().Add(*duration)

	dig := digest.NewVideo()

	var count int
	err = m.c8.Run(func() (govern.State, error) {
		count++
		if *useDigest {
			if f, dirty := m.c8.ReadDisplay(); dirty {
				m.c8.Display.Flush()
				dig.Frame(f)
			}
		}
		if *instructions > 0 && count >= *instructions {
			return govern.Ending, nil
		}
		if count%hardware.PerformanceBrake == 0 && time.Now().After(deadline) {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	if err != nil {
		return m.fault(output, err)
	}

	f, _ := m.c8.ReadDisplay()
	fmt.Fprint(output, f.String())
	if *useDigest {
		fmt.Fprintf(output, "digest: %s (%d frames)\n", dig.Hash(), dig.Frames())
	}

	return nil
}
