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

// Package digest is used to create hashes of the state of the storage core.
// Two runs of the core that are driven by the same stimulus must produce the
// same digest. Useful for the recorder and for checking that the model is
// deterministic.
package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/memcore/hardware/memory/bus"
)

// Digest implementations provide a hash of the state of the core.
type Digest interface {
	Hash() string
	ResetDigest()
}

// State returns the hash of the current contents of the core. The hash is not
// chained so it only depends on the cell contents at the moment of the call.
func State(dbg bus.DebugBus) string {
	return fmt.Sprintf("%x", sha1.Sum(dbg.Cells()))
}

// Cells is a chained digest of the core. Every call to Update() folds the
// current cell contents and the read output into the digest.
type Cells struct {
	dbg bus.DebugBus

	digest [sha1.Size]byte

	// the first sha1.Size bytes are the previous digest. the next byte is
	// the read output and the remainder are the cell contents
	buffer []byte

	updates int
}

// NewCells is the preferred method of initialisation for the Cells type.
func NewCells(dbg bus.DebugBus) *Cells {
	return &Cells{
		dbg: dbg,
	}
}

// Hash implements the Digest interface.
func (dig *Cells) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Cells) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.updates = 0
}

// Updates returns the number of calls to Update() since the digest was reset.
func (dig *Cells) Updates() int {
	return dig.updates
}

// Update chains the current state of the core onto the digest. It should be
// called once per edge with the value of the read output after the edge.
func (dig *Cells) Update(output uint8) {
	cells := dig.dbg.Cells()

	l := len(dig.digest) + 1 + len(cells)
	if len(dig.buffer) != l {
		dig.buffer = make([]byte, l)
	}

	n := copy(dig.buffer, dig.digest[:])
	dig.buffer[n] = output
	copy(dig.buffer[n+1:], cells)

	dig.digest = sha1.Sum(dig.buffer)
	dig.updates++
}
