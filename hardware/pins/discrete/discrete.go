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

// Package discrete is the pin adapter for the layout with separate ports for
// the address, the data and the write enable level.
package discrete

import (
	"github.com/jetsetilly/memcore/hardware/memory/bus"
	"github.com/jetsetilly/memcore/hardware/pins"
)

// AddressWidth is the width of the address port in bits.
const AddressWidth = 6

// Label for this pin layout.
const Label = "discrete"

// Pins is the discrete pin adapter.
type Pins struct {
	core bus.EdgeBus

	// six bit address port. upper bits are ignored
	Address uint8

	DataIn      uint8
	WriteEnable bool

	// active-low reset
	RstN bool

	// updated on every edge
	DataOut uint8
}

// NewPins is the preferred method of initialisation for the Pins type. The
// reset pin is released.
func NewPins(core bus.EdgeBus) (*Pins, error) {
	if err := pins.CheckCapacity(core.Capacity(), AddressWidth); err != nil {
		return nil, err
	}
	return &Pins{
		core: core,
		RstN: true,
	}, nil
}

// Label implements the pins.Interface interface.
func (p *Pins) Label() string {
	return Label
}

// Capacity implements the pins.Interface interface.
func (p *Pins) Capacity() int {
	return p.core.Capacity()
}

// AddressWidth implements the pins.Interface interface.
func (p *Pins) AddressWidth() int {
	return AddressWidth
}

// Drive implements the pins.Interface interface.
func (p *Pins) Drive(address uint16, writeEnable bool, data uint8) {
	p.Address = uint8(address & pins.AddressMask(AddressWidth))
	p.WriteEnable = writeEnable
	p.DataIn = data
}

// SetReset implements the pins.Interface interface.
func (p *Pins) SetReset(asserted bool) {
	p.RstN = !asserted
}

// Inputs implements the pins.Interface interface.
func (p *Pins) Inputs() pins.Inputs {
	return pins.Inputs{
		Address:     uint16(p.Address) & pins.AddressMask(AddressWidth),
		WriteEnable: p.WriteEnable,
		Data:        p.DataIn,
		Reset:       !p.RstN,
	}
}

// Edge implements the pins.Interface interface.
func (p *Pins) Edge() uint8 {
	in := p.Inputs()
	p.DataOut = p.core.Tick(in.Address, in.WriteEnable, in.Data, in.Reset)
	return p.DataOut
}

// Output implements the pins.Interface interface.
func (p *Pins) Output() uint8 {
	return p.DataOut
}

// OutputEnable implements the pins.Interface interface.
func (p *Pins) OutputEnable() uint8 {
	return pins.AllInputs
}
