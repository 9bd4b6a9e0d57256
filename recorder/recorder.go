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

package recorder

import (
	"bufio"
	"io"
	"os"

	"github.com/jetsetilly/memcore/curated"
	"github.com/jetsetilly/memcore/digest"
	"github.com/jetsetilly/memcore/hardware/memory/bus"
	"github.com/jetsetilly/memcore/hardware/pins"
	"github.com/jetsetilly/memcore/logger"
)

// RecordingError is the pattern used for errors encountered while recording.
const RecordingError = "recorder: %v"

// Recorder writes every edge of the pins it decorates to a transcript. It
// implements the pins.Interface and can be used anywhere the decorated pins
// would be used.
type Recorder struct {
	pins.Interface

	dbg    bus.DebugBus
	digest *digest.Cells

	// state digest of the core when the recording started
	state string

	file   *os.File
	output *bufio.Writer

	edges int

	// the first error encountered while writing an entry. Edge() cannot
	// return an error so it is kept until End() is called
	err error
}

// NewRecorder is the preferred method of initialisation for the Recorder type.
// The transcript file is created and must not already exist.
func NewRecorder(transcript string, p pins.Interface, dbg bus.DebugBus) (*Recorder, error) {
	f, err := os.OpenFile(transcript, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, curated.Errorf(RecordingError, err)
	}

	rec, err := NewRecorderWriter(f, p, dbg)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	rec.file = f

	logger.Logf(logger.Allow, "recorder", "recording to %s", transcript)

	return rec, nil
}

// NewRecorderWriter is like NewRecorder but the transcript is written to an
// io.Writer.
func NewRecorderWriter(output io.Writer, p pins.Interface, dbg bus.DebugBus) (*Recorder, error) {
	rec := &Recorder{
		Interface: p,
		dbg:       dbg,
		digest:    digest.NewCells(dbg),
		state:     digest.State(dbg),
		output:    bufio.NewWriter(output),
	}

	if err := rec.writeHeader(); err != nil {
		return nil, err
	}

	return rec, nil
}

// Edge implements the pins.Interface interface. The inputs and output of
// the edge are added to the transcript.
func (rec *Recorder) Edge() uint8 {
	in := rec.Interface.Inputs()
	out := rec.Interface.Edge()

	rec.edges++
	rec.digest.Update(out)

	if rec.err == nil {
		rec.err = rec.writeEntry(in, out)
	}

	return out
}

// Edges returns the number of edges recorded.
func (rec *Recorder) Edges() int {
	return rec.edges
}

// End flushes and closes the transcript. Returns the first error encountered
// during recording, if any.
func (rec *Recorder) End() error {
	err := rec.err

	if ferr := rec.output.Flush(); ferr != nil && err == nil {
		err = curated.Errorf(RecordingError, ferr)
	}

	if rec.file != nil {
		if cerr := rec.file.Close(); cerr != nil && err == nil {
			err = curated.Errorf(RecordingError, cerr)
		}
		rec.file = nil
	}

	logger.Logf(logger.Allow, "recorder", "recorded %d edges", rec.edges)

	return err
}
