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

// Package random should be used in preference to the math/rand package when a
// random number is required inside a simulation.
//
// The number source is reseeded whenever the edge count of the attached clock
// changes. The seed is the sum of a base seed and the edge count, so a run
// driven by the same sequence of edges and draws produces the same numbers.
// The base seed is taken from the time the program started unless ZeroSeed is
// set or a seed is given explicitly with SetSeed().
package random

import (
	"math/rand"
	"time"
)

var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Clock is the source of the edge count used to seed the random number
// generator. The core package implements this interface.
type Clock interface {
	Edges() uint64
}

// Random is a random number generator tied to the edge count of a clock.
type Random struct {
	clk Clock

	// use zero seed rather than the random base seed. useful for tests and
	// for recordings where the random numbers must be predictable
	ZeroSeed bool

	// seed set explicitly with SetSeed(). zero means no seed has been set
	seed int64

	// the number source for the current edge
	rng  *rand.Rand
	edge uint64
}

// NewRandom is the preferred method of initialisation for the Random type.
// The clock argument can be nil, in which case the edge count is always zero.
func NewRandom(clk Clock) *Random {
	return &Random{
		clk: clk,
	}
}

// SetSeed sets the base seed explicitly. A value of zero reverts to the
// default behaviour.
func (rnd *Random) SetSeed(seed int64) {
	rnd.seed = seed
	rnd.rng = nil
}

// Seed returns the base seed currently in use.
func (rnd *Random) Seed() int64 {
	if rnd.ZeroSeed {
		return 0
	}
	if rnd.seed != 0 {
		return rnd.seed
	}
	return baseSeed
}

func (rnd *Random) source() *rand.Rand {
	var e uint64
	if rnd.clk != nil {
		e = rnd.clk.Edges()
	}

	if rnd.rng == nil || e != rnd.edge {
		rnd.edge = e
		rnd.rng = rand.New(rand.NewSource(rnd.Seed() + int64(e)))
	}

	return rnd.rng
}

// Intn returns a random number in the range [0, n).
func (rnd *Random) Intn(n int) int {
	return rnd.source().Intn(n)
}

// Byte returns a random byte value.
func (rnd *Random) Byte() uint8 {
	return uint8(rnd.source().Intn(256))
}

// Bool returns true or false with equal probability.
func (rnd *Random) Bool() bool {
	return rnd.source().Intn(2) == 1
}
