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

package beep

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

// ErrUnsupported is returned by Load() for files that are neither WAV nor MP3
var ErrUnsupported = errors.New("unsupported file type")

// Load a sample from a WAV or MP3 file. Only the first channel of a stereo
// file is used.
func Load(filename string) (*Beep, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("beep: %w", err)
	}
	defer f.Close()

	var b *Beep

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		b, err = fromWAV(f)
	case ".mp3":
		b, err = fromMP3(f)
	default:
		err = ErrUnsupported
	}
	if err != nil {
		return nil, fmt.Errorf("beep: %w", err)
	}

	return b, nil
}

func fromWAV(r io.ReadSeeker) (*Beep, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("wav: not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wav: %w", err)
	}

	chans := int(dec.NumChans)
	if chans < 1 {
		chans = 1
	}

	// scale to 16 bit
	shift := int(dec.BitDepth) - 16

	b := &Beep{
		Rate: int(dec.SampleRate),
		Data: make([]int16, 0, len(buf.Data)/chans),
	}
	for i := 0; i < len(buf.Data); i += chans {
		v := buf.Data[i]
		switch {
		case dec.BitDepth == 8:
			// eight bit wav data is unsigned
			v = (v - 128) << 8
		case shift > 0:
			v >>= shift
		case shift < 0:
			v <<= -shift
		}
		b.Data = append(b.Data, int16(v))
	}

	return b, nil
}

func fromMP3(r io.Reader) (*Beep, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	b := &Beep{
		Rate: dec.SampleRate(),
	}

	// the decoded stream is always 16 bit little-endian with two channels.
	// each sample is four bytes and the left channel is the first two
	chunk := make([]byte, 4096)
	for {
		n, err := dec.Read(chunk)
		for i := 0; i+1 < n; i += 4 {
			b.Data = append(b.Data, int16(uint16(chunk[i])|uint16(chunk[i+1])<<8))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("mp3: %w", err)
		}
	}

	return b, nil
}
