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

// Package curated wraps the plain Go error type so that expected errors can be
// told apart from unexpected ones.
//
// Curated errors are created with Errorf(). Unlike fmt.Errorf() the message
// is not formatted at creation time. The pattern is kept and it is the
// pattern that identifies the error:
//
//	e := curated.Errorf("core: capacity out of range (%d)", n)
//
//	if curated.Is(e, "core: capacity out of range (%d)") {
//		fmt.Println("true")
//	}
//
// Packages in memcore export the patterns they use as constants so that
// callers never need to repeat the string.
//
// Has() is like Is() but looks through the whole chain of wrapped curated
// errors:
//
//	f := curated.Errorf("harness: %v", e)
//	curated.Has(f, core.CapacityOutOfRange) // true
//	curated.Is(f, core.CapacityOutOfRange)  // false
//
// When the error is printed, adjacent duplicate parts of the chain are
// removed. So wrapping an error of the "harness: %v" pattern inside another
// "harness: %v" error does not result in "harness: harness: ..." output.
// Functions can wrap errors returned by other functions in the same package
// without worrying about how the final message will look.
//
// IsAny() answers whether the error is curated at all. A curated error is an
// expected error and can be shown to the user as is. Anything else is
// unexpected and probably a bug.
package curated
