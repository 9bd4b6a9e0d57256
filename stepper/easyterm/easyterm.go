// This file is part of Memcore.
//
// Memcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Memcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Memcore.  If not, see <https://www.gnu.org/licenses/>.

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It wraps
// the termios functions in functions with friendlier names and only provides
// the terminal modes needed by the stepper.
package easyterm

import (
	"fmt"
	"os"

	"github.com/jetsetilly/memcore/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Sentinal errors.
const (
	NotATerminal  = "easyterm: %s is not a terminal"
	TerminalError = "easyterm: %v"
)

// IsTerminal returns true if the file is connected to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Terminal is the container for a posix terminal.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// Initialise the fields in the Terminal struct. The input file must be a
// terminal.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return curated.Errorf(TerminalError, "requires an input file")
	}
	if outputFile == nil {
		return curated.Errorf(TerminalError, "requires an output file")
	}
	if !IsTerminal(inputFile) {
		return curated.Errorf(NotATerminal, inputFile.Name())
	}

	pt.input = inputFile
	pt.output = outputFile

	// prepare the attributes for the different terminal modes
	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	return nil
}

// Print writes the formatted string to the output file.
func (pt *Terminal) Print(s string, a ...any) {
	pt.output.WriteString(fmt.Sprintf(s, a...))
	pt.output.Sync()
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() error {
	if err := termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.canAttr); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}

// CBreakMode puts terminal into cbreak mode. Key presses are available to
// the reader immediately but signals are still generated.
func (pt *Terminal) CBreakMode() error {
	if err := termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.cbreakAttr); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}

// Flush discards any input waiting to be read and any output not yet written.
// The output is left alone if it is not a terminal.
func (pt *Terminal) Flush() error {
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	if !IsTerminal(pt.output) {
		return nil
	}
	if err := termios.Tcflush(pt.output.Fd(), termios.TCOFLUSH); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}
