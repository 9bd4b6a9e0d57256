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

// Package memory implements the storage core: a fixed number of byte cells
// with a synchronous write port, a registered read port and an active reset
// that clears every cell.
//
// The core is advanced one clock edge at a time with the Tick() function.
// Everything that happens on an edge is decided by the inputs sampled at that
// edge and by the state of the core before the edge. There is no wall clock
// and no concurrency.
//
// The read port is two registers deep:
//
//	                 edge T               edge T+1
//
//	address in ---> address register ---> cells[address register] ---> output register
//
// An address presented before edge T is latched into the address register at
// T. At T+1 the cell it selects is copied into the output register. The
// output therefore settles SettleEdges (two) edges after an address change. A
// consumer must advance at least that many edges before sampling.
//
// A write commits on the edge where write enable is sampled high, into the
// cell selected by the address input at that edge (not the address register).
// Because the output register is loaded with the contents of the cells as
// they were before the edge, a value written at edge T is seen on the output
// at T+1 when the address is held. This is also the case when write enable
// stays high and the address moves on to the next cell: the output at T+1
// shows the value written at T.
//
// Whether a read on the same edge as a write to the same cell sees the old or
// the new value is not part of the contract. The model happens to register
// the old value but callers must not rely on it.
//
// Reset is dominant. On any edge where reset is sampled asserted the cells,
// the address register and the output register are all cleared and the write
// port is ignored.
package memory
