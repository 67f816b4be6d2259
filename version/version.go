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

// Package version reports the version of the program. The version number is
// set at link time:
//
//	go build -ldflags "-X github.com/jetsetilly/gopher8/version.number=v0.1.0"
//
// Revision information comes from the build information embedded by the Go
// toolchain.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// ApplicationName is used when referring to the application
const ApplicationName = "Gopher8"

// set by the linker. empty if the program was not built with a version number
var number string

// Info describes the build
type Info struct {
	// the version number, "unreleased" if built from a checkout without a
	// version number or "local" if there is no VCS information at all
	Version string

	// the VCS revision. suffixed with "+dirty" if there were uncommitted
	// changes when the program was built
	Revision string

	// the version of Go used to build the program
	GoVersion string

	// true if this is a numbered release
	Release bool
}

func (i Info) String() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "%s %s\n", ApplicationName, i.Version)
	if !i.Release {
		fmt.Fprintf(&s, "revision: %s\n", i.Revision)
	}
	fmt.Fprintf(&s, "built with: %s\n", i.GoVersion)
	return s.String()
}

var info Info

// Version returns information about the build
func Version() Info {
	return info
}

func init() {
	info = fromBuildInfo(number, debug.ReadBuildInfo)
}

func fromBuildInfo(number string, read func() (*debug.BuildInfo, bool)) Info {
	var i Info
	var vcs bool
	var modified bool

	if bi, ok := read(); ok {
		i.GoVersion = bi.GoVersion
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				i.Revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if i.Revision == "" {
		i.Revision = "no revision information"
	} else if modified {
		i.Revision = fmt.Sprintf("%s+dirty", i.Revision)
	}

	switch {
	case number != "":
		i.Version = number
		i.Release = true
	case vcs:
		i.Version = "unreleased"
	default:
		i.Version = "local"
	}

	return i
}
