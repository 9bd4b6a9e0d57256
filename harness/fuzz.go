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
	"fmt"

	"github.com/jetsetilly/memcore/curated"
	"github.com/jetsetilly/memcore/logger"
	"github.com/jetsetilly/memcore/random"
)

// MinFuzzOps is the minimum number of random operations performed by Fuzz().
const MinFuzzOps = 2000

// FuzzResult summarises a completed call to Fuzz().
type FuzzResult struct {
	Seed   int64
	Reads  int
	Writes int
	Idles  int
}

func (r FuzzResult) String() string {
	return fmt.Sprintf("seed %d: %d reads, %d writes, %d idle edges", r.Seed, r.Reads, r.Writes, r.Idles)
}

// Fuzz seeds every cell with a random value and then performs a random mix of
// reads, writes and idle edges. Every value on the output pins is checked
// against a reference copy of the cells.
//
// Idle edges drive a random address and data value with the write enable low.
// The output of a write or idle edge is the value of the cell at the address
// driven by the previous operation, which is also checked.
//
// The number of operations is raised to MinFuzzOps if necessary.
func Fuzz(h *Harness, rnd *random.Random, ops int) (FuzzResult, error) {
	res := FuzzResult{Seed: rnd.Seed()}

	ops = max(ops, MinFuzzOps)

	if err := h.ResetFor(2); err != nil {
		return res, err
	}

	ref := make([]uint8, h.pins.Capacity())

	// the address driven by the most recent operation
	var last uint16

	write := func(a uint16, v uint8) error {
		if out := h.Write(a, v); out != ref[last] {
			return curated.Errorf(WriteFollowMismatch, a, out, ref[last])
		}
		ref[a] = v
		last = a
		res.Writes++
		return nil
	}

	logger.Logf(logger.Allow, "harness", "fuzz: seeding %d cells", len(ref))
	for a := range ref {
		if err := write(uint16(a), rnd.Byte()); err != nil {
			return res, err
		}
	}

	logger.Logf(logger.Allow, "harness", "fuzz: %d random operations", ops)
	for i := 0; i < ops; i++ {
		a := uint16(rnd.Intn(len(ref)))

		switch rnd.Intn(5) {
		case 0, 1:
			if err := write(a, rnd.Byte()); err != nil {
				return res, err
			}
		case 2, 3:
			if err := h.Expect(a, ref[a]); err != nil {
				return res, err
			}
			last = a
			res.Reads++
		default:
			h.pins.Drive(a, false, rnd.Byte())
			if out := h.ClockCycles(1); out != ref[last] {
				return res, curated.Errorf(ReadMismatch, last, out, ref[last])
			}
			last = a
			res.Idles++
		}
	}

	// a final sweep confirms that no cell has been disturbed by an idle edge
	// or by a write to a different address
	for a := range ref {
		if err := h.Expect(uint16(a), ref[a]); err != nil {
			return res, err
		}
		res.Reads++
	}

	logger.Logf(logger.Allow, "harness", "fuzz: %s", res)

	return res, h.CheckOutputEnable()
}
