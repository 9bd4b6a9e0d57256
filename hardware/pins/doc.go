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

// Package pins defines the contract between an external driver and a pin
// adapter. The adapters themselves are in the sub-packages:
//
//	muxed      write enable flag and address share the 8 bit input bus
//	discrete   separate address, data and write enable ports
//
// An adapter has no logic of its own beyond masking the address to the width
// of its address port. In particular the adapters never drive the
// bidirectional pins and the output enable is always AllInputs.
//
// The reset pin is active-low on both adapters. The adapters are created with
// the reset pin high (released).
package pins
