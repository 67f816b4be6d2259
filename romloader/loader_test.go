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

package romloader_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))
	return fn
}

func TestNewLoader(t *testing.T) {
	ld := romloader.NewLoader("/roms/Pong.ch8")
	test.ExpectFailure(t, ld.IsHex)
	test.ExpectEquality(t, ld.ShortName(), "Pong")

	ld = romloader.NewLoader("maze.HEX")
	test.ExpectSuccess(t, ld.IsHex)
}

func TestLoadFile(t *testing.T) {
	fn := writeFile(t, "test.ch8", []byte{0x60, 0x05, 0x12, 0x02})

	ld := romloader.NewLoader(fn)
	test.DemandSuccess(t, ld.Load())
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectEquality(t, len(ld.Data), 4)
	test.ExpectEquality(t, len(ld.Hash), 40)

	// a second load with the correct hash succeeds
	ld2 := romloader.NewLoader(fn)
	ld2.Hash = ld.Hash
	test.ExpectSuccess(t, ld2.Load())

	// a load with the wrong hash fails
	ld3 := romloader.NewLoader(fn)
	ld3.Hash = "0000"
	test.ExpectSuccess(t, errors.Is(ld3.Load(), romloader.ErrHash))
}

func TestLoadHexFile(t *testing.T) {
	fn := writeFile(t, "test.hex", []byte("6005 6103\n8014\n"))

	ld := romloader.NewLoader(fn)
	test.DemandSuccess(t, ld.Load())
	test.DemandEquality(t, len(ld.Data), 6)
	test.ExpectEquality(t, ld.Data[4], 0x80)
	test.ExpectEquality(t, ld.Data[5], 0x14)
}

func TestLoadErrors(t *testing.T) {
	ld := romloader.NewLoader("")
	test.ExpectSuccess(t, errors.Is(ld.Load(), romloader.ErrNoFilename))

	ld = romloader.NewLoader(filepath.Join(t.TempDir(), "missing.ch8"))
	test.ExpectFailure(t, ld.Load())

	ld = romloader.NewLoader(writeFile(t, "empty.ch8", nil))
	test.ExpectSuccess(t, errors.Is(ld.Load(), romloader.ErrEmpty))

	ld = romloader.NewLoader(writeFile(t, "big.ch8", make([]byte, hardware.MaxProgramSize+1)))
	test.ExpectSuccess(t, errors.Is(ld.Load(), romloader.ErrTooLarge))

	ld = romloader.NewLoader("ftp://example.com/pong.ch8")
	test.ExpectSuccess(t, errors.Is(ld.Load(), romloader.ErrBadScheme))
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pong.ch8" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte{0x00, 0xe0, 0x12, 0x00})
	}))
	defer srv.Close()

	ld := romloader.NewLoader(srv.URL + "/pong.ch8")
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, len(ld.Data), 4)

	ld = romloader.NewLoader(srv.URL + "/missing.ch8")
	test.ExpectSuccess(t, errors.Is(ld.Load(), romloader.ErrBadStatus))
}
