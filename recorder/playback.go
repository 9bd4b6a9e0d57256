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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/memcore/curated"
	"github.com/jetsetilly/memcore/digest"
	"github.com/jetsetilly/memcore/hardware/memory/bus"
	"github.com/jetsetilly/memcore/hardware/pins"
	"github.com/jetsetilly/memcore/logger"
)

// Sentinal errors returned by the playback functions.
const (
	PlaybackError     = "playback: %v"
	PlaybackPins      = "playback: recording was made with %s pins and %d cells. trying to playback with %s pins and %d cells"
	PlaybackState     = "playback: core is not in the state it was when the recording started"
	PlaybackOutput    = "playback: unexpected output %#02x at line %d (edge %d), expected %#02x"
	PlaybackHashError = "playback: unexpected core state at line %d (edge %d)"
)

type playbackEntry struct {
	edge   int
	inputs pins.Inputs
	output uint8
	hash   string

	// the line in the transcript the entry appears
	line int
}

// Playback re-drives the inputs of a previously recorded transcript and
// checks the output and the state of the core after every edge.
type Playback struct {
	transcript string

	// pin layout and capacity of the device used to make the recording
	Label    string
	Capacity int

	// state digest of the core when the recording started
	state string

	sequence []playbackEntry
	seqCt    int
}

func (plb Playback) String() string {
	if len(plb.sequence) == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d (%.1f%%)", plb.seqCt, len(plb.sequence), 100*(float64(plb.seqCt)/float64(len(plb.sequence))))
}

// NewPlayback is the preferred method of initialisation for the Playback type.
func NewPlayback(transcript string) (*Playback, error) {
	tf, err := os.Open(transcript)
	if err != nil {
		return nil, curated.Errorf(PlaybackError, err)
	}
	defer tf.Close()

	plb, err := ReadPlayback(tf)
	if err != nil {
		return nil, err
	}
	plb.transcript = transcript

	return plb, nil
}

// ReadPlayback is like NewPlayback but the transcript is read from an
// io.Reader.
func ReadPlayback(input io.Reader) (*Playback, error) {
	buffer, err := io.ReadAll(input)
	if err != nil {
		return nil, curated.Errorf(PlaybackError, err)
	}

	plb := &Playback{
		sequence: make([]playbackEntry, 0),
	}

	// convert file contents to an array of lines. a transcript always ends
	// with a newline so the last element of the array is empty. anything else
	// means the transcript has been cut short
	lines := strings.Split(string(buffer), "\n")
	if lines[len(lines)-1] != "" {
		return nil, curated.Errorf(PlaybackError, fmt.Sprintf("transcript truncated at line %d", len(lines)))
	}
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}

	err = plb.readHeader(lines)
	if err != nil {
		return nil, err
	}

	for i := numHeaderLines; i < len(lines)-1; i++ {
		entry, err := parseEntry(lines[i], i+1)
		if err != nil {
			return nil, err
		}
		plb.sequence = append(plb.sequence, entry)
	}

	return plb, nil
}

// Len returns the number of edges in the transcript.
func (plb *Playback) Len() int {
	return len(plb.sequence)
}

// Verify drives the pins with the inputs from the transcript, checking the
// output and the state of the core after every edge. The pins must have the
// same layout and capacity as the pins used for the recording and the core
// must be in the same state.
func (plb *Playback) Verify(p pins.Interface, dbg bus.DebugBus) error {
	if p.Label() != plb.Label || p.Capacity() != plb.Capacity {
		return curated.Errorf(PlaybackPins, plb.Label, plb.Capacity, p.Label(), p.Capacity())
	}

	if digest.State(dbg) != plb.state {
		return curated.Errorf(PlaybackState)
	}

	dig := digest.NewCells(dbg)

	for plb.seqCt = 0; plb.seqCt < len(plb.sequence); plb.seqCt++ {
		entry := plb.sequence[plb.seqCt]

		p.Drive(entry.inputs.Address, entry.inputs.WriteEnable, entry.inputs.Data)
		p.SetReset(entry.inputs.Reset)
		out := p.Edge()
		dig.Update(out)

		if out != entry.output {
			return curated.Errorf(PlaybackOutput, out, entry.line, entry.edge, entry.output)
		}
		if dig.Hash() != entry.hash {
			return curated.Errorf(PlaybackHashError, entry.line, entry.edge)
		}
	}

	logger.Logf(logger.Allow, "playback", "verified %d edges", len(plb.sequence))

	return nil
}
