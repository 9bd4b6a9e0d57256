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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/memcore/curated"
	"github.com/jetsetilly/memcore/hardware/preferences"
	"github.com/jetsetilly/memcore/harness"
	"github.com/jetsetilly/memcore/performance"
	"github.com/jetsetilly/memcore/recorder"
	"github.com/jetsetilly/memcore/test"
	"github.com/jetsetilly/memcore/version"
)

func execute(t *testing.T, args ...string) (*test.CompareWriter, error) {
	t.Helper()
	w := &test.CompareWriter{}
	cmd := newRootCmd(w)
	cmd.SetArgs(args)
	return w, cmd.Execute()
}

func TestRun(t *testing.T) {
	w, err := execute(t, "run")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, w.Contains("muxed scenario passed: muxed pins, 32 cells"))

	w, err = execute(t, "run", "B")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, w.Contains("discrete scenario passed: discrete pins, 64 cells"))

	w, err = execute(t, "--variant", "B", "run")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, w.Contains("discrete scenario passed: discrete pins, 64 cells"))

	// the scenario for the muxed layout works with a larger core
	w, err = execute(t, "--capacity", "128", "run", "A")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, w.Contains("muxed scenario passed: muxed pins, 128 cells"))
}

func TestRunFailures(t *testing.T) {
	_, err := execute(t, "run", "B", "--capacity", "32")
	test.ExpectSuccess(t, curated.Has(err, harness.CapacityTooSmall))

	_, err = execute(t, "run", "C")
	test.ExpectSuccess(t, curated.Has(err, preferences.UnknownVariant))

	_, err = execute(t, "--capacity", "0", "run")
	test.ExpectSuccess(t, curated.Has(err, preferences.BadCapacity))

	_, err = execute(t, "run", "A", "B")
	test.ExpectFailure(t, err)
}

func TestPrefsString(t *testing.T) {
	w, err := execute(t, "--prefs", "pins.variant::B; core.capacity::64", "run")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, w.Contains("discrete scenario passed: discrete pins, 64 cells"))

	// the prefs string does not persist between commands
	w, err = execute(t, "run")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, w.Contains("muxed scenario passed"))

	// the capacity is the default for a variant given in the prefs string
	w, err = execute(t, "--prefs", "pins.variant::B", "run")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, w.Contains("discrete scenario passed: discrete pins, 64 cells"))

	// a capacity in the prefs string is kept when the variant changes
	_, err = execute(t, "--prefs", "core.capacity::48", "run", "B")
	test.ExpectSuccess(t, curated.Has(err, harness.CapacityTooSmall))

	w, err = execute(t, "--prefs", "core.capacity::128", "--variant", "B", "run", "A")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, w.Contains("muxed scenario passed: muxed pins, 128 cells"))
}

func TestLogEcho(t *testing.T) {
	w, err := execute(t, "--log", "run")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, w.Contains("harness: "))

	// echo does not carry over to the next command
	w, err = execute(t, "run")
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, w.Contains("harness: "))
}

func TestFuzz(t *testing.T) {
	w, err := execute(t, "fuzz", "--variant", "B", "--seed", "7")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, w.Contains("fuzz passed: seed 7:"))
	test.ExpectSuccess(t, w.Contains("discrete pins, 64 cells"))

	w, err = execute(t, "--prefs", "random.seed::99", "fuzz", "--ops", "3000")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, w.Contains("fuzz passed: seed 99:"))
}

func TestRecordPlayback(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "discrete.transcript")

	w, err := execute(t, "record", fn, "--variant", "B")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, w.Contains("of the discrete scenario to"))

	// the pin layout is taken from the transcript
	w, err = execute(t, "playback", fn)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, w.Contains("playback verified"))
	test.ExpectSuccess(t, w.Contains("discrete pins, 64 cells"))

	// recording never overwrites an existing transcript
	_, err = execute(t, "record", fn)
	test.ExpectSuccess(t, curated.Has(err, recorder.RecordingError))

	_, err = execute(t, "playback", filepath.Join(t.TempDir(), "missing"))
	test.ExpectSuccess(t, curated.Has(err, recorder.PlaybackError))
}

func TestDump(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "core.dot")

	w, err := execute(t, "dump", fn)
	test.DemandSuccess(t, err)

	// the core is dumped after the second reset of the scenario
	test.ExpectSuccess(t, w.Contains("0000 : 00 00 00 00"))

	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(b), "digraph"))
}

func TestPerf(t *testing.T) {
	w, err := execute(t, "perf", "--duration", "20ms")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, w.Contains("edges/sec"))

	_, err = execute(t, "perf", "--duration", "20ms", "--profile", "gpu")
	test.ExpectSuccess(t, curated.Has(err, performance.UnknownProfile))
}

func TestVersion(t *testing.T) {
	w, err := execute(t, "--version")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, w.Contains(version.String()))
}
