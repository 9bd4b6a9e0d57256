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

package pins

import (
	"fmt"

	"github.com/jetsetilly/memcore/curated"
)

// AllInputs is the value of the output enable for the bidirectional pins
// when every pin is an input. The core never drives the bidirectional pins.
const AllInputs uint8 = 0x00

// CapacityTooLarge is returned by the adapter constructors when the core has
// more cells than the address port can select.
const CapacityTooLarge = "pins: capacity of %d cells is too large for a %d bit address port"

// Inputs is the decoded state of the input pins.
type Inputs struct {
	Address     uint16
	WriteEnable bool
	Data        uint8
	Reset       bool
}

func (in Inputs) String() string {
	we := "--"
	if in.WriteEnable {
		we = "WE"
	}
	rst := "---"
	if in.Reset {
		rst = "RST"
	}
	return fmt.Sprintf("addr=%#04x data=%#02x %s %s", in.Address, in.Data, we, rst)
}

// Interface is implemented by the pin adapters. The adapters translate the
// pin layout into calls to the EdgeBus of the core.
type Interface interface {
	// short name for the pin layout
	Label() string

	// the number of cells in the attached core and the width of the
	// address port
	Capacity() int
	AddressWidth() int

	// Drive sets the input pins for the next edge. The address is masked
	// to the width of the address port.
	Drive(address uint16, writeEnable bool, data uint8)

	// SetReset sets the level of the active-low reset pin. The pin is low
	// when asserted is true.
	SetReset(asserted bool)

	// Inputs returns the decoded state of the input pins.
	Inputs() Inputs

	// Edge advances the core by one clock edge. Returns the value on the
	// output pins after the edge.
	Edge() uint8

	// Output returns the value on the output pins.
	Output() uint8

	// OutputEnable returns the direction control of the bidirectional pins.
	// Always AllInputs.
	OutputEnable() uint8
}

// AddressMask returns the mask for an address port of the specified width.
func AddressMask(width int) uint16 {
	return uint16((1 << width) - 1)
}

// CheckCapacity returns an error if the capacity is larger than the number
// of cells that can be selected by an address port of the specified width.
func CheckCapacity(capacity int, width int) error {
	if capacity > 1<<width {
		return curated.Errorf(CapacityTooLarge, capacity, width)
	}
	return nil
}
