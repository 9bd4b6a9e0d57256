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

package statsview_test

import (
	"testing"

	"github.com/jetsetilly/memcore/statsview"
	"github.com/jetsetilly/memcore/test"
)

func TestLaunch(t *testing.T) {
	w := &test.CompareWriter{}

	srv := statsview.Launch(w, "localhost:0")
	test.ExpectEquality(t, srv.Addr(), "localhost:0")
	test.ExpectEquality(t, w.String(), "stats server available at localhost:0/debug/statsview\n")
	srv.Stop()
}
