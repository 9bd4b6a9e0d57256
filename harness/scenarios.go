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
	"github.com/jetsetilly/memcore/logger"
)

// Scenario is a fixed stimulus sequence with assertions.
type Scenario struct {
	Name string

	// the minimum number of cells required by the scenario
	Capacity int

	// the number of edges the reset is held for
	ResetEdges int

	run func(h *Harness) error
}

// Run the scenario using the harness. Returns the first contract violation.
func (s Scenario) Run(h *Harness) error {
	if err := h.requireCapacity(s.Name, s.Capacity); err != nil {
		return err
	}
	logger.Logf(logger.Allow, "harness", "%s: start (%s pins)", s.Name, h.pins.Label())
	if err := s.run(h); err != nil {
		return err
	}
	logger.Logf(logger.Allow, "harness", "%s: all good after %d edges", s.Name, h.edges)
	return nil
}

// Muxed is the scenario for the flag-bit-multiplexed pin layout. It will work
// with any pin layout with at least 32 cells.
var Muxed = Scenario{
	Name:       "muxed",
	Capacity:   32,
	ResetEdges: 10,
}

// Discrete is the scenario for the discrete pin layout. Every cell in the
// device is written and read back so the scenario works with any capacity of
// 64 cells or more.
var Discrete = Scenario{
	Name:       "discrete",
	Capacity:   64,
	ResetEdges: 2,
}

func init() {
	Muxed.run = runMuxed
	Discrete.run = runDiscrete
}

type poke struct {
	address uint16
	value   uint8
}

func expectAll(h *Harness, pokes []poke) error {
	for _, p := range pokes {
		if err := h.Expect(p.address, p.value); err != nil {
			return err
		}
	}
	return nil
}

func runMuxed(h *Harness) error {
	logger.Log(logger.Allow, "harness", "reset")
	if err := h.ResetFor(Muxed.ResetEdges); err != nil {
		return err
	}

	logger.Log(logger.Allow, "harness", "write 4 bytes to addresses 8, 9, 10, 11")
	pokes := []poke{{8, 0x55}, {9, 0x66}, {10, 0x77}, {11, 0x88}}
	for _, p := range pokes {
		h.Write(p.address, p.value)
	}

	logger.Log(logger.Allow, "harness", "read back the bytes and verify they are correct")
	if err := expectAll(h, pokes); err != nil {
		return err
	}

	logger.Log(logger.Allow, "harness", "write a byte at address 12")
	h.Write(12, 0x99)

	logger.Log(logger.Allow, "harness", "overwrite the byte at address 10")
	h.Write(10, 0xaa)

	logger.Log(logger.Allow, "harness", "read back the bytes and verify they are correct")
	if err := expectAll(h, []poke{{12, 0x99}, {10, 0xaa}, {8, 0x55}}); err != nil {
		return err
	}

	logger.Log(logger.Allow, "harness", "reset")
	if err := h.ResetFor(Muxed.ResetEdges); err != nil {
		return err
	}

	for a := 0; a < h.pins.Capacity(); a++ {
		if err := h.Expect(uint16(a), 0); err != nil {
			return err
		}
	}

	return h.CheckOutputEnable()
}

func runDiscrete(h *Harness) error {
	logger.Log(logger.Allow, "harness", "reset")
	if err := h.ResetFor(Discrete.ResetEdges); err != nil {
		return err
	}

	for _, offset := range []int{5, 15} {
		logger.Logf(logger.Allow, "harness", "write i+%d to every address", offset)
		for a := 0; a < h.pins.Capacity(); a++ {
			h.Write(uint16(a), uint8(a+offset))
		}

		logger.Log(logger.Allow, "harness", "read back every address")
		for a := 0; a < h.pins.Capacity(); a++ {
			if err := h.Expect(uint16(a), uint8(a+offset)); err != nil {
				return err
			}
		}
	}

	return h.CheckOutputEnable()
}
