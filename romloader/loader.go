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

// Package romloader is used to specify and load the program to be run by the
// emulation. Programs can be loaded from a local file or from an HTTP URL.
//
// Programs are usually binary images but a program can also be written as
// hexadecimal text, in which case the file should have one of the extensions
// listed in HexExtensions.
package romloader

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// FileExtensions is the list of file extensions that are recognised as
// binary program images
var FileExtensions = [...]string{".CH8", ".C8", ".ROM", ".BIN"}

// HexExtensions is the list of file extensions that are recognised as
// programs written as hexadecimal text
var HexExtensions = [...]string{".HEX", ".TXT"}

// Sentinel errors
var (
	ErrTooLarge   = errors.New("program too large")
	ErrEmpty      = errors.New("program is empty")
	ErrHash       = errors.New("unexpected hash value")
	ErrBadStatus  = errors.New("unexpected HTTP status")
	ErrBadScheme  = errors.New("unsupported URL scheme")
	ErrNoFilename = errors.New("no filename")
)

// Loader specifies the program to load
type Loader struct {
	// filename or URL of the program
	Filename string

	// the file contains hexadecimal text rather than a binary image
	IsHex bool

	// expected SHA1 hash of the loaded program. an empty string means that
	// the hash is not checked. after a successful Load() the field contains
	// the hash of the loaded program
	Hash string

	// the program. filled by Load()
	Data []uint8
}

// NewLoader is the preferred method of initialisation for the Loader type.
// The file extension decides whether the file is treated as hexadecimal
// text. Extensions are case insensitive.
func NewLoader(filename string) Loader {
	ext := strings.ToUpper(filepath.Ext(filename))
	return Loader{
		Filename: filename,
		IsHex:    slices.Contains(HexExtensions[:], ext),
	}
}

func (ld Loader) String() string {
	return ld.Filename
}

// ShortName returns the filename without the path and without the extension
func (ld Loader) ShortName() string {
	n := filepath.Base(ld.Filename)
	return strings.TrimSuffix(n, filepath.Ext(n))
}

// HasLoaded returns true if Load() has been successfully called
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the program. Does nothing if the program has already been loaded.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}
	if ld.Filename == "" {
		return fmt.Errorf("romloader: %w", ErrNoFilename)
	}

	scheme := "file"
	if u, err := url.Parse(ld.Filename); err == nil && len(u.Scheme) > 1 {
		// a single letter scheme is a windows drive letter
		scheme = u.Scheme
	}

	var data []uint8
	var err error

	switch scheme {
	case "http", "https":
		data, err = fromHTTP(ld.Filename)
	case "file":
		data, err = os.ReadFile(strings.TrimPrefix(ld.Filename, "file://"))
	default:
		err = fmt.Errorf("%w (%s)", ErrBadScheme, scheme)
	}
	if err != nil {
		return fmt.Errorf("romloader: %w", err)
	}

	// the hash is of the file as it was loaded, not of the decoded program
	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return fmt.Errorf("romloader: %w", ErrHash)
	}

	if ld.IsHex {
		data = memory.DecodeHex(string(data), -1)
	}

	if len(data) == 0 {
		return fmt.Errorf("romloader: %w", ErrEmpty)
	}
	if len(data) > hardware.MaxProgramSize {
		return fmt.Errorf("romloader: %w (%d bytes)", ErrTooLarge, len(data))
	}

	ld.Hash = hash
	ld.Data = data

	return nil
}

func fromHTTP(filename string) ([]uint8, error) {
	resp, err := http.Get(filename)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w (%s)", ErrBadStatus, resp.Status)
	}

	// read one byte more than the largest binary program so that an
	// oversized download is detected without reading all of it. hexadecimal
	// text is larger than the program it describes
	limit := int64(hardware.MaxProgramSize*4 + 1)
	return io.ReadAll(io.LimitReader(resp.Body, limit))
}
