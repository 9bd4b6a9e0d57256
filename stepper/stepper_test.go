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

package stepper_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/memcore/hardware/memory"
	"github.com/jetsetilly/memcore/hardware/pins/muxed"
	"github.com/jetsetilly/memcore/stepper"
	"github.com/jetsetilly/memcore/test"
)

func newStepper(t *testing.T, keys string) (*memory.Core, *muxed.Pins, *stepper.Stepper, *test.CompareWriter) {
	t.Helper()
	mc, err := memory.NewCore(32)
	test.DemandSuccess(t, err)
	p, err := muxed.NewPins(mc)
	test.DemandSuccess(t, err)
	w := &test.CompareWriter{}
	return mc, p, stepper.NewStepper(p, mc, strings.NewReader(keys), w), w
}

func TestWriteAndRead(t *testing.T) {
	keys := "w" + strings.Repeat("]", 0x20) + " w q   "
	mc, _, st, w := newStepper(t, keys)

	test.ExpectSuccess(t, st.Run())

	// keys after the quit key are not consumed
	test.ExpectEquality(t, st.Edges(), 2)

	v, err := mc.Peek(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x20))

	test.ExpectSuccess(t, w.Contains("edge 1: out=0x0"))
	test.ExpectSuccess(t, w.Contains("edge 2: out=0x20"))
}

func TestReset(t *testing.T) {
	keys := "w]]]]]]]]]]]]]]]]]] r  "
	mc, p, st, _ := newStepper(t, keys)

	test.ExpectSuccess(t, st.Run())
	test.ExpectEquality(t, st.Edges(), 3)
	test.ExpectSuccess(t, p.Inputs().Reset)
	test.ExpectEquality(t, mc.State(), memory.Resetting)

	v, err := mc.Peek(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0))
}

func TestAddressWrap(t *testing.T) {
	_, p, st, _ := newStepper(t, "-")
	test.ExpectSuccess(t, st.Run())
	test.ExpectEquality(t, p.Inputs().Address, uint16(31))

	_, p, st, _ = newStepper(t, "-++")
	test.ExpectSuccess(t, st.Run())
	test.ExpectEquality(t, p.Inputs().Address, uint16(1))

	// data wraps at the byte boundary
	_, p, st, _ = newStepper(t, "[")
	test.ExpectSuccess(t, st.Run())
	test.ExpectEquality(t, p.Inputs().Data, uint8(0xff))
}

func TestDump(t *testing.T) {
	keys := "w" + strings.Repeat("]", 0x20) + " +" + strings.Repeat("]", 0x11) + " d"
	_, _, st, w := newStepper(t, keys)

	test.ExpectSuccess(t, st.Run())
	test.ExpectEquality(t, st.Edges(), 2)
	test.ExpectSuccess(t, w.Contains("0000 : 20 31 00"))
	test.ExpectSuccess(t, w.Contains("0010 : 00"))
}
