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

// Package muxed is the pin adapter for the layout where the write enable flag
// and the address share the 8 bit input bus:
//
//	UI[7]     write enable
//	UI[6:0]   address
//	UIO[7:0]  data in (bidirectional pins, always inputs)
//	UO[7:0]   read output
//	RstN      active-low reset
package muxed

import (
	"github.com/jetsetilly/memcore/hardware/memory/bus"
	"github.com/jetsetilly/memcore/hardware/pins"
)

// Bit layout of the UI bus.
const (
	WriteEnable  uint8 = 0x80
	AddressBits  uint8 = 0x7f
	AddressWidth       = 7
)

// Label for this pin layout.
const Label = "muxed"

// Pins is the muxed pin adapter. The pin fields can be set directly or with
// the Drive() and SetReset() functions.
type Pins struct {
	core bus.EdgeBus

	// dedicated inputs
	UI uint8

	// bidirectional pins. used only as inputs for the data to be written
	UIO uint8

	// active-low reset
	RstN bool

	// dedicated outputs. updated on every edge
	UO uint8
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
	p.UI = uint8(address) & AddressBits
	if writeEnable {
		p.UI |= WriteEnable
	}
	p.UIO = data
}

// SetReset implements the pins.Interface interface.
func (p *Pins) SetReset(asserted bool) {
	p.RstN = !asserted
}

// Inputs implements the pins.Interface interface.
func (p *Pins) Inputs() pins.Inputs {
	return pins.Inputs{
		Address:     uint16(p.UI & AddressBits),
		WriteEnable: p.UI&WriteEnable == WriteEnable,
		Data:        p.UIO,
		Reset:       !p.RstN,
	}
}

// Edge implements the pins.Interface interface.
func (p *Pins) Edge() uint8 {
	in := p.Inputs()
	p.UO = p.core.Tick(in.Address, in.WriteEnable, in.Data, in.Reset)
	return p.UO
}

// Output implements the pins.Interface interface.
func (p *Pins) Output() uint8 {
	return p.UO
}

// OutputEnable implements the pins.Interface interface.
func (p *Pins) OutputEnable() uint8 {
	return pins.AllInputs
}
