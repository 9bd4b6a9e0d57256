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

package discrete_test

import (
	"testing"

	"github.com/jetsetilly/memcore/curated"
	"github.com/jetsetilly/memcore/hardware/memory"
	"github.com/jetsetilly/memcore/hardware/pins"
	"github.com/jetsetilly/memcore/hardware/pins/discrete"
	"github.com/jetsetilly/memcore/test"
)

func newPins(t *testing.T, capacity int) *discrete.Pins {
	t.Helper()
	mc, err := memory.NewCore(capacity)
	test.DemandSuccess(t, err)
	p, err := discrete.NewPins(mc)
	test.DemandSuccess(t, err)
	return p
}

func clockCycles(p *discrete.Pins, n int) {
	for i := 0; i < n; i++ {
		p.Edge()
	}
}

func TestInterface(t *testing.T) {
	var p any = newPins(t, 64)
	_, ok := p.(pins.Interface)
	test.ExpectSuccess(t, ok)
}

func TestCapacity(t *testing.T) {
	mc, err := memory.NewCore(65)
	test.DemandSuccess(t, err)
	_, err = discrete.NewPins(mc)
	test.ExpectSuccess(t, curated.Is(err, pins.CapacityTooLarge))

	p := newPins(t, 64)
	test.ExpectEquality(t, p.Capacity(), 64)
	test.ExpectEquality(t, p.AddressWidth(), discrete.AddressWidth)
	test.ExpectEquality(t, p.Label(), discrete.Label)
}

func TestDrive(t *testing.T) {
	p := newPins(t, 64)

	p.Drive(0xff, true, 0x34)
	test.ExpectEquality(t, p.Address, uint8(0x3f))
	test.ExpectSuccess(t, p.WriteEnable)
	test.ExpectEquality(t, p.DataIn, uint8(0x34))

	// upper bits set directly on the address port are ignored
	p.Address = 0xc1
	test.ExpectEquality(t, p.Inputs().Address, uint16(0x01))
}

func TestOutputEnable(t *testing.T) {
	p := newPins(t, 64)
	for i := 0; i < 1024; i++ {
		p.Address = uint8(i)
		p.DataIn = uint8(i * 3)
		p.WriteEnable = i%3 == 0
		p.RstN = i%41 != 0
		p.Edge()
		test.ExpectEquality(t, p.OutputEnable(), pins.AllInputs, i)
	}
}

// the scenario is driven directly at the pin level without the harness
// package. the pins are set and the output sampled as an external harness would.
func TestPinLevelScenario(t *testing.T) {
	p := newPins(t, 64)

	p.RstN = false
	clockCycles(p, 2)
	p.RstN = true
	test.ExpectEquality(t, p.OutputEnable(), uint8(0))

	for _, offset := range []int{5, 15} {
		for i := 0; i < 64; i++ {
			p.Address = uint8(i)
			p.DataIn = uint8(i + offset)
			p.WriteEnable = true
			clockCycles(p, 1)
		}
		p.WriteEnable = false

		for i := 0; i < 64; i++ {
			p.Address = uint8(i)
			clockCycles(p, 2)
			test.ExpectEquality(t, p.DataOut, uint8(i+offset), offset, i)
		}
	}
}
