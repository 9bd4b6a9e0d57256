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

// Package prefs holds typed preference values and the means of setting them
// from the command line.
//
// The Bool, Int and String types can be set from values of their own type or
// from strings. Hook functions can be attached to each value. A pre-hook can
// veto a new value by returning an error; a post-hook is called once the new
// value has been stored.
//
//	var capacity prefs.Int
//	capacity.SetHookPre(func(v prefs.Value) error {
//		if v.(int) < 1 {
//			return fmt.Errorf("capacity too small")
//		}
//		return nil
//	})
//
// Preference values are collected in a Group under a key. Apply() sets every
// value in the group for which a key has been pushed onto the command line
// stack. The command line stack is populated with PushCommandLineStack(),
// with a string of the form:
//
//	"core.capacity::64; log.echo::true"
//
// Keys are consumed as they are used. A key that was never used can be
// discovered by calling PopCommandLineStack(), which returns whatever is left
// in the same string format.
package prefs
