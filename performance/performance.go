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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/memcore/curated"
	"github.com/jetsetilly/memcore/hardware/pins"
	"github.com/jetsetilly/memcore/random"
)

// the number of edges between checks of the timer. checking the timer
// channel on every edge is relatively expensive
const brake = 1000

// sentinal error returned by the runner when the duration has expired.
var timedOut = errors.New("performance timed out")

// Check the performance of the device by driving the pins with random inputs
// for the specified duration. Profiling information is generated as defined by
// the Profile argument.
//
// Returns the number of edges driven.
func Check(output io.Writer, profile Profile, p pins.Interface, rnd *random.Random, duration string) (uint64, error) {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return 0, curated.Errorf(ProfileError, err)
	}

	var edges uint64

	runner := func() error {
		timer := time.NewTimer(dur)
		defer timer.Stop()

		capacity := p.Capacity()

		for {
			for i := 0; i < brake; i++ {
				p.Drive(uint16(rnd.Intn(capacity)), rnd.Bool(), rnd.Byte())
				p.Edge()
			}
			edges += brake

			select {
			case <-timer.C:
				return timedOut
			default:
			}
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return edges, err
	}

	rate := CalcRate(edges, dur.Seconds())
	fmt.Fprintf(output, "%.0f edges/sec (%d edges in %.2f seconds)\n", rate, edges, dur.Seconds())

	return edges, nil
}

// CalcRate takes the number of edges and the duration (in seconds) and returns
// the edges-per-second.
func CalcRate(edges uint64, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return float64(edges) / duration
}
