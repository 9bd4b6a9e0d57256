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

package harness

import (
	"github.com/jetsetilly/memcore/curated"
	"github.com/jetsetilly/memcore/hardware/memory"
	"github.com/jetsetilly/memcore/hardware/pins"
)

// Sentinal error patterns. These are contract violations observed by the
// harness. The core itself never returns an error.
const (
	ReadMismatch        = "harness: read from %#04x returned %#02x, expected %#02x"
	WriteFollowMismatch = "harness: write to %#04x showed %#02x on the output, expected %#02x"
	PinsDriven          = "harness: bidirectional pins driven (output enable %#02x)"
	CapacityTooSmall    = "harness: %s needs at least %d cells (%d)"
)

// Harness drives a pin adapter in the same manner as an external verification
// harness: setting input pins, advancing the clock and sampling the output.
type Harness struct {
	pins pins.Interface

	// number of edges driven by the harness
	edges int
}

// NewHarness is the preferred method of initialisation for the Harness type.
func NewHarness(p pins.Interface) *Harness {
	return &Harness{
		pins: p,
	}
}

// Pins returns the pin adapter being driven by the harness.
func (h *Harness) Pins() pins.Interface {
	return h.pins
}

// Edges returns the number of edges driven by the harness.
func (h *Harness) Edges() int {
	return h.edges
}

// ClockCycles advances the clock by n edges without changing the input pins.
// Returns the value of the output pins after the last edge.
func (h *Harness) ClockCycles(n int) uint8 {
	for i := 0; i < n; i++ {
		h.pins.Edge()
		h.edges++
	}
	return h.pins.Output()
}

// ResetFor holds the reset pin low for the specified number of edges and
// then releases it. The input pins are cleared before the reset is asserted.
func (h *Harness) ResetFor(edges int) error {
	h.pins.Drive(0, false, 0)
	h.pins.SetReset(true)
	h.ClockCycles(edges)
	h.pins.SetReset(false)
	return h.CheckOutputEnable()
}

// Write drives the write enable, address and data pins for one edge. Returns
// the value of the output pins after the edge.
//
// The write enable is not lowered after the edge. Consecutive calls to Write()
// keep the write enable high.
func (h *Harness) Write(address uint16, value uint8) uint8 {
	h.pins.Drive(address, true, value)
	return h.ClockCycles(1)
}

// Read drives the address pins with write enable low and waits for the output
// to settle. Returns the value of the output pins.
func (h *Harness) Read(address uint16) uint8 {
	h.pins.Drive(address, false, 0)
	return h.ClockCycles(memory.SettleEdges)
}

// Expect is like Read but returns an error if the value on the output pins
// is not the expected value.
func (h *Harness) Expect(address uint16, expected uint8) error {
	if v := h.Read(address); v != expected {
		return curated.Errorf(ReadMismatch, address, v, expected)
	}
	return nil
}

// CheckOutputEnable returns an error if any of the bidirectional pins are
// being driven by the device.
func (h *Harness) CheckOutputEnable() error {
	if oe := h.pins.OutputEnable(); oe != pins.AllInputs {
		return curated.Errorf(PinsDriven, oe)
	}
	return nil
}

// requireCapacity returns an error if the device has fewer cells than are
// needed by the named scenario.
func (h *Harness) requireCapacity(name string, capacity int) error {
	if h.pins.Capacity() < capacity {
		return curated.Errorf(CapacityTooSmall, name, capacity, h.pins.Capacity())
	}
	return nil
}
