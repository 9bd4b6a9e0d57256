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

package bus

// EdgeBus is the only way the contents of the storage core can be changed.
// One call to Tick() is one clock edge.
type EdgeBus interface {
	// Tick samples the inputs at the edge and returns the value of the read
	// output register after the edge. The address is reduced into range by
	// the implementation.
	Tick(address uint16, writeEnable bool, data uint8, reset bool) uint8

	// the number of cells in the core
	Capacity() int
}

// DebugBus defines the read-only access available to debuggers, the digest
// and the recorder. There is deliberately no Poke() function.
type DebugBus interface {
	// Peek returns the value stored in the cell at address. Unlike Tick()
	// the address is not reduced into range and an error is returned for
	// an address outside the core.
	Peek(address uint16) (uint8, error)

	// Cells returns a copy of the contents of every cell
	Cells() []uint8
}
