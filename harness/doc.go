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

// Package harness drives a device through its pins, in the manner of an
// external verification harness. The Harness type sets the input pins,
// advances the clock and samples the output pins.
//
// Contract violations are returned as curated errors. The device itself never
// fails.
//
// The Muxed and Discrete scenarios are fixed stimulus sequences for the two
// pin layouts. Fuzz() is a randomised run that checks every read against a
// reference copy of the cells.
package harness
