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

package muxed_test

import (
	"testing"

	"github.com/jetsetilly/memcore/curated"
	"github.com/jetsetilly/memcore/hardware/memory"
	"github.com/jetsetilly/memcore/hardware/pins"
	"github.com/jetsetilly/memcore/hardware/pins/muxed"
	"github.com/jetsetilly/memcore/test"
)

func newPins(t *testing.T, capacity int) *muxed.Pins {
	t.Helper()
	mc, err := memory.NewCore(capacity)
	test.DemandSuccess(t, err)
	p, err := muxed.NewPins(mc)
	test.DemandSuccess(t, err)
	return p
}

func clockCycles(p *muxed.Pins, n int) {
	for i := 0; i < n; i++ {
		p.Edge()
	}
}

func TestInterface(t *testing.T) {
	var p any = newPins(t, 32)
	_, ok := p.(pins.Interface)
	test.ExpectSuccess(t, ok)
}

func TestCapacity(t *testing.T) {
	mc, err := memory.NewCore(256)
	test.DemandSuccess(t, err)
	_, err = muxed.NewPins(mc)
	test.ExpectSuccess(t, curated.Is(err, pins.CapacityTooLarge))

	p := newPins(t, 128)
	test.ExpectEquality(t, p.Capacity(), 128)
	test.ExpectEquality(t, p.AddressWidth(), muxed.AddressWidth)
	test.ExpectEquality(t, p.Label(), muxed.Label)
}

func TestDrive(t *testing.T) {
	p := newPins(t, 32)

	// reset is released on creation
	test.ExpectSuccess(t, p.RstN)

	p.Drive(0x1ff, true, 0x12)
	test.ExpectEquality(t, p.UI, uint8(0xff))
	test.ExpectEquality(t, p.UIO, uint8(0x12))

	in := p.Inputs()
	test.ExpectEquality(t, in.Address, uint16(0x7f))
	test.ExpectSuccess(t, in.WriteEnable)
	test.ExpectEquality(t, in.Data, uint8(0x12))
	test.ExpectFailure(t, in.Reset)

	p.Drive(9, false, 0x00)
	test.ExpectEquality(t, p.UI, uint8(0x09))

	p.SetReset(true)
	test.ExpectFailure(t, p.RstN)
	test.ExpectSuccess(t, p.Inputs().Reset)
}

func TestOutputEnable(t *testing.T) {
	p := newPins(t, 32)
	for i := 0; i < 1024; i++ {
		p.UI = uint8(i)
		p.UIO = uint8(i >> 2)
		p.RstN = i%37 != 0
		p.Edge()
		test.ExpectEquality(t, p.OutputEnable(), pins.AllInputs, i)
	}
}

// the scenario is driven directly at the pin level without the harness
// package. the pins are set and the output sampled as an external harness would.
func TestPinLevelScenario(t *testing.T) {
	p := newPins(t, 32)

	p.UI = 0
	p.UIO = 0
	p.RstN = false
	clockCycles(p, 10)
	p.RstN = true

	test.ExpectEquality(t, p.OutputEnable(), uint8(0))

	// write 4 bytes to addresses 8, 9, 10, 11
	for i, v := range []uint8{0x55, 0x66, 0x77, 0x88} {
		p.UI = muxed.WriteEnable | uint8(8+i)
		p.UIO = v
		clockCycles(p, 1)
	}

	// read back the bytes
	p.UIO = 0
	for i, v := range []uint8{0x55, 0x66, 0x77, 0x88} {
		p.UI = uint8(8 + i)
		clockCycles(p, 2)
		test.ExpectEquality(t, p.UO, v, 8+i)
	}

	// write a byte at address 12 and overwrite the byte at address 10
	p.UI = muxed.WriteEnable | 12
	p.UIO = 0x99
	clockCycles(p, 1)
	p.UI = muxed.WriteEnable | 10
	p.UIO = 0xaa
	clockCycles(p, 1)

	p.UIO = 0
	for _, c := range []struct {
		address uint8
		value   uint8
	}{{12, 0x99}, {10, 0xaa}, {8, 0x55}} {
		p.UI = c.address
		clockCycles(p, 2)
		test.ExpectEquality(t, p.UO, c.value, c.address)
	}

	// reset again and make sure the memory is cleared
	p.RstN = false
	clockCycles(p, 10)
	p.RstN = true

	for i := uint8(0); i < 32; i++ {
		p.UI = i
		clockCycles(p, 2)
		test.ExpectEquality(t, p.UO, uint8(0), i)
	}
}
