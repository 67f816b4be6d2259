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

// Package modalflag wraps the flag package of the standard library so that a
// program can have modes, each with its own set of flags.
//
// Arguments are given to NewArgs() and then consumed one layer at a time by
// Parse(). Before each call to Parse() the flags and the sub-modes for that
// layer are declared. The first sub-mode is the default and is selected when
// the next argument does not name a sub-mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DISASM")
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		cosmic := md.AddBool("cosmic", false, "legacy quirks mode")
//		...
//	}
//
// Sub-mode names are case insensitive. A request for help (-help or -h)
// prints the flags and sub-modes of the current layer to Output and Parse()
// returns ParseHelp.
package modalflag
