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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/memcore/curated"
	"github.com/jetsetilly/memcore/logger"
)

// SettleEdges is the number of edges after an address change before the read
// output reflects the newly addressed cell.
const SettleEdges = 2

// MaxCapacity is the largest number of cells that can be addressed with the
// 16 bit address input.
const MaxCapacity = 0x10000

// Sentinal error patterns.
const (
	CapacityOutOfRange = "memory: capacity out of range (%d)"
	UnpeekableAddress  = "memory: address out of range (%#04x)"
)

// State of the core. The state changes on the edge where the reset input is
// sampled differently to the previous edge.
type State int

// List of valid State values.
const (
	Normal State = iota
	Resetting
)

func (s State) String() string {
	switch s {
	case Normal:
		return "NORMAL"
	case Resetting:
		return "RESETTING"
	}
	return "UNKNOWN"
}

// Core is the storage core. It should be created with NewCore() and only
// ever changed with Tick().
type Core struct {
	cells []uint8

	// the address latched on the previous edge. always in range
	address uint16

	// the read output register
	output uint8

	state State

	// number of edges since the core was created
	edges uint64
}

// NewCore is the preferred method of initialisation for the Core type. All
// cells are zero on creation.
func NewCore(capacity int) (*Core, error) {
	if capacity < 1 || capacity > MaxCapacity {
		return nil, curated.Errorf(CapacityOutOfRange, capacity)
	}
	return &Core{
		cells: make([]uint8, capacity),
		state: Normal,
	}, nil
}

// Tick advances the core by one edge and returns the value of the read output
// register. Implements the bus.EdgeBus interface.
//
// The address is reduced into range by taking it modulo the capacity. For
// power of two capacities this is the same as ignoring the upper address
// bits.
func (mc *Core) Tick(address uint16, writeEnable bool, data uint8, reset bool) uint8 {
	mc.edges++

	address = uint16(int(address) % len(mc.cells))

	if reset {
		if mc.state != Resetting {
			mc.state = Resetting
			logger.Logf(logger.Allow, "memory", "reset asserted at edge %d", mc.edges)
		}
		clear(mc.cells)
		mc.address = 0
		mc.output = 0
		return mc.output
	}

	if mc.state != Normal {
		mc.state = Normal
		logger.Logf(logger.Allow, "memory", "reset released at edge %d", mc.edges)
	}

	// the output register is loaded from the address register and the cells
	// as they were before the edge
	mc.output = mc.cells[mc.address]

	if writeEnable {
		mc.cells[address] = data
	}

	mc.address = address

	return mc.output
}

// Capacity returns the number of cells in the core.
func (mc *Core) Capacity() int {
	return len(mc.cells)
}

// State returns the state the core entered on the most recent edge.
func (mc *Core) State() State {
	return mc.state
}

// Output returns the current value of the read output register.
func (mc *Core) Output() uint8 {
	return mc.output
}

// Address returns the current value of the address register.
func (mc *Core) Address() uint16 {
	return mc.address
}

// Edges returns the number of edges since the core was created. Implements
// the random.Clock interface.
func (mc *Core) Edges() uint64 {
	return mc.edges
}

// Peek is an implementation of bus.DebugBus.
func (mc *Core) Peek(address uint16) (uint8, error) {
	if int(address) >= len(mc.cells) {
		return 0, curated.Errorf(UnpeekableAddress, address)
	}
	return mc.cells[address], nil
}

// Cells is an implementation of bus.DebugBus.
func (mc *Core) Cells() []uint8 {
	c := make([]uint8, len(mc.cells))
	copy(c, mc.cells)
	return c
}

// Snapshot creates a copy of the core in its current state.
func (mc *Core) Snapshot() *Core {
	n := *mc
	n.cells = mc.Cells()
	return &n
}

// String returns a hex dump of the cells.
func (mc *Core) String() string {
	return HexDump(mc.cells)
}

// HexDump formats the cells sixteen to a row, each row prefixed with the
// address of the first cell. There is no newline after the last row.
func HexDump(cells []uint8) string {
	var s strings.Builder
	for i := 0; i < len(cells); i += 16 {
		j := min(i+16, len(cells))
		s.WriteString(fmt.Sprintf("%04x : % 02x\n", i, cells[i:j]))
	}
	return strings.TrimSuffix(s.String(), "\n")
}
