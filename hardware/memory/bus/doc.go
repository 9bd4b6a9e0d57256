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

// Package bus defines the access patterns for the different parts of the
// program that talk to the storage core.
//
// The pin adapters in the hardware/pins packages drive the core through the
// EdgeBus. Nothing else should mutate the core.
//
// The DebugBus is for the digest, the recorder and the interactive stepper.
// It allows inspection of the core without advancing the clock.
package bus
