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

// Package ansi defines the ANSI control codes used to draw on a terminal.
package ansi

import (
	"fmt"
	"strings"
)

// ansi color.
const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
	colDefault = 9
)

// ansi target.
const (
	targetPen         = 3
	targetPaper       = 4
	targetBrightPen   = 9
	targetBrightPaper = 10
)

// Cursor and screen control sequences.
const (
	ClearScreen = "\033[2J"
	CursorHome  = "\033[H"
	HideCursor  = "\033[?25l"
	ShowCursor  = "\033[?25h"
	NormalPen   = "\033[m"
)

// CursorMove returns the sequence that moves the cursor to the row and
// column. Both values count from zero.
func CursorMove(row, col int) string {
	return fmt.Sprintf("\033[%d;%dH", row+1, col+1)
}

func color(name string) (int, error) {
	switch strings.ToUpper(name) {
	case "BLACK":
		return colBlack, nil
	case "RED":
		return colRed, nil
	case "GREEN":
		return colGreen, nil
	case "YELLOW":
		return colYellow, nil
	case "BLUE":
		return colBlue, nil
	case "MAGENTA":
		return colMagenta, nil
	case "CYAN":
		return colCyan, nil
	case "WHITE":
		return colWhite, nil
	case "NORMAL":
		return colDefault, nil
	}
	return 0, fmt.Errorf("ansi: unknown color (%s)", name)
}

// ColorBuild creates the ANSI sequence for the pen and paper colours. An
// empty string leaves that colour unchanged.
func ColorBuild(pen, paper string, brightPen, brightPaper bool) (string, error) {
	s := strings.Builder{}
	s.Grow(16)
	s.WriteString("\033[")

	if pen != "" {
		c, err := color(pen)
		if err != nil {
			return "", err
		}
		t := targetPen
		if brightPen {
			t = targetBrightPen
		}
		s.WriteString(fmt.Sprintf("%d%d", t, c))
	}

	if paper != "" {
		c, err := color(paper)
		if err != nil {
			return "", err
		}
		if s.Len() > 2 {
			s.WriteString(";")
		}
		t := targetPaper
		if brightPaper {
			t = targetBrightPaper
		}
		s.WriteString(fmt.Sprintf("%d%d", t, c))
	}

	s.WriteString("m")

	return s.String(), nil
}
