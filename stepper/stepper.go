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

// Package stepper is an interactive session that advances a device one edge
// at a time. Every key press changes the input pins or advances the clock.
//
// The session reads from any io.Reader. The command line puts the terminal
// into cbreak mode with the easyterm package so that key presses are seen
// immediately.
package stepper

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/jetsetilly/memcore/hardware/memory"
	"github.com/jetsetilly/memcore/hardware/memory/bus"
	"github.com/jetsetilly/memcore/hardware/pins"
	"github.com/jetsetilly/memcore/logger"
)

// list of keys recognised by the stepper
const (
	KeyEdge        = ' '
	KeyEdgeAlt     = '\n'
	KeyReset       = 'r'
	KeyWriteEnable = 'w'
	KeyAddressUp   = '+'
	KeyAddressDown = '-'
	KeyDataUp      = ']'
	KeyDataDown    = '['
	KeyDump        = 'd'
	KeyHelp        = '?'
	KeyQuit        = 'q'
)

const help = `space/enter  advance one edge
r            toggle reset
w            toggle write enable
+ -          change address
[ ]          change data
d            dump cells
?            help
q            quit
`

// Stepper is an interactive single edge session.
type Stepper struct {
	pins pins.Interface
	dbg  bus.DebugBus

	input  *bufio.Reader
	output io.Writer

	// input pins as set by key presses
	address     uint16
	writeEnable bool
	data        uint8
	reset       bool

	edges int
}

// NewStepper is the preferred method of initialisation for the Stepper type.
func NewStepper(p pins.Interface, dbg bus.DebugBus, input io.Reader, output io.Writer) *Stepper {
	st := &Stepper{
		pins:   p,
		dbg:    dbg,
		input:  bufio.NewReader(input),
		output: output,
	}
	st.drive()
	return st
}

// Edges returns the number of edges advanced by the stepper.
func (st *Stepper) Edges() int {
	return st.edges
}

func (st *Stepper) drive() {
	st.pins.Drive(st.address, st.writeEnable, st.data)
	st.pins.SetReset(st.reset)
}

func (st *Stepper) printInputs() {
	fmt.Fprintf(st.output, "> %s\n", st.pins.Inputs())
}

func (st *Stepper) printEdge(out uint8) {
	v, err := st.dbg.Peek(st.address)
	if err != nil {
		fmt.Fprintf(st.output, "edge %d: out=%#02x\n", st.edges, out)
		return
	}
	fmt.Fprintf(st.output, "edge %d: out=%#02x cell[%#04x]=%#02x\n", st.edges, out, st.address, v)
}

func (st *Stepper) dump() {
	fmt.Fprintln(st.output, memory.HexDump(st.dbg.Cells()))
}

// Run the session until the quit key is pressed or the input is exhausted.
func (st *Stepper) Run() error {
	capacity := st.pins.Capacity()

	logger.Logf(logger.Allow, "stepper", "stepping %s pins with %d cells", st.pins.Label(), capacity)
	io.WriteString(st.output, help)
	st.printInputs()

	for {
		r, _, err := st.input.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}

		switch r {
		case KeyQuit:
			logger.Logf(logger.Allow, "stepper", "quit after %d edges", st.edges)
			return nil
		case KeyEdge, KeyEdgeAlt:
			out := st.pins.Edge()
			st.edges++
			st.printEdge(out)
			continue
		case KeyReset:
			st.reset = !st.reset
		case KeyWriteEnable:
			st.writeEnable = !st.writeEnable
		case KeyAddressUp:
			st.address = uint16((int(st.address) + 1) % capacity)
		case KeyAddressDown:
			st.address = uint16((int(st.address) + capacity - 1) % capacity)
		case KeyDataUp:
			st.data++
		case KeyDataDown:
			st.data--
		case KeyDump:
			st.dump()
			continue
		case KeyHelp:
			io.WriteString(st.output, help)
			continue
		default:
			continue
		}

		st.drive()
		st.printInputs()
	}

	logger.Logf(logger.Allow, "stepper", "end of input after %d edges", st.edges)
	return nil
}
