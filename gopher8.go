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
	"runtime"
	"time"

	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/sdlplay"
	"github.com/jetsetilly/gopher8/gui/termplay"
	"github.com/jetsetilly/gopher8/hardware/faults"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/version"
)

// values returned to the operating system
const (
	exitOK    = 0
	exitParse = 10
	exitError = 20
	exitFault = 30
)

// SDL requires that window and event handling happen on the main thread
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. Returns the value
// to be used with os.Exit()
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "TERMINAL", "HEADLESS", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParse
	}

	switch md.Mode() {
	case "RUN":
		err = play(md, output, govern.ModeWindow)
	case "TERMINAL":
		err = play(md, output, govern.ModeTerminal)
	case "HEADLESS":
		err = headless(md, output)
	case "DISASM":
		err = disasm(md, output)
	case "PERFORMANCE":
		err = perform(md, output)
	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		if errors.Is(err, errHelp) {
			return exitOK
		}
		var f *faults.Fault
		if errors.As(err, &f) {
			fmt.Fprintf(output, "* fault in %s mode: %v\n", md, err)
			return exitFault
		}
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		return exitError
	}

	return exitOK
}

// returned by modes when help has been requested for the mode
var errHelp = errors.New("help")

// parse the flags for the current mode. the mode expects exactly one
// argument
func parse(md *modalflag.Modes) error {
	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return errHelp
	case modalflag.ParseError:
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("a CHIP-8 program is required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func play(md *modalflag.Modes, output io.Writer, mode govern.Mode) error {
	md.NewMode()

	mf := addMachineFlags(md)
	var scale *int
	if mode == govern.ModeWindow {
		scale = md.AddInt("scale", sdlplay.DefaultScale, "size of a display pixel in screen pixels")
	}

	if err := parse(md); err != nil {
		return err
	}

	m, err := newMachine(md.GetArg(0), mf, output, mode)
	if err != nil {
		return err
	}
	defer m.close(output)

	var scr gui.GUI
	switch mode {
	case govern.ModeWindow:
		scr, err = sdlplay.NewSdlPlay(m.c8, *scale)
	case govern.ModeTerminal:
		scr, err = termplay.NewTermPlay(m.c8)
	default:
		err = fmt.Errorf("unsupported frontend (%s)", mode)
	}
	if err != nil {
		return err
	}
	defer scr.Destroy()

	delay, sound, err := m.c8.Start()
	if err != nil {
		return err
	}
	defer m.c8.Stop(delay, sound)

	return m.fault(output, scr.Service())
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	if err := parse(md); err != nil {
		return err
	}

	ld := romloader.NewLoader(md.GetArg(0))
	if err := ld.Load(); err != nil {
		return err
	}

	return disassembly.Program(output, ld.Data, memory.Origin)
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	mf := addMachineFlags(md)
	duration := md.AddDuration("duration", 5*time.Second, "run performance check for the duration")
	profile := md.AddString("profile", "none", "create profiling data: cpu, mem, trace, all, none")

	if err := parse(md); err != nil {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	m, err := newMachine(md.GetArg(0), mf, output, govern.ModeHeadless)
	if err != nil {
		return err
	}
	defer m.close(output)

	return m.fault(output, performance.Check(output, m.c8, *duration, prf))
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return errHelp
	case modalflag.ParseError:
		return err
	}

	v := version.Version()
	if *revision {
		fmt.Fprintln(output, v.String())
		return nil
	}
	fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v.Version)
	return nil
}
