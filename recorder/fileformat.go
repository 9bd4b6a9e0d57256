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
	"strconv"
	"strings"

	"github.com/jetsetilly/memcore/curated"
	"github.com/jetsetilly/memcore/hardware/pins"
)

// transcript entry format
// -----------------------
//
// <edge>, <address>, <write enable>, <data>, <reset>, <output>, <digest>
//
// the address, data and output fields are hexadecimal with the 0x prefix. the
// write enable and reset fields are true or false. the digest is the chained
// digest of the core after the edge.

const (
	fieldEdge int = iota
	fieldAddress
	fieldWriteEnable
	fieldData
	fieldReset
	fieldOutput
	fieldHash
	numFields
)

const fieldSep = ", "

// transcript header format
// ------------------------
//
// <magic>
// <pin layout label>
// <capacity>
// <state digest of the core before the first edge>

const (
	lineMagic int = iota
	linePins
	lineCapacity
	lineState
	numHeaderLines
)

const magic = "memcore transcript v1"

func (rec *Recorder) writeHeader() error {
	lines := make([]string, numHeaderLines)

	lines[lineMagic] = magic
	lines[linePins] = rec.Interface.Label()
	lines[lineCapacity] = strconv.Itoa(rec.Interface.Capacity())
	lines[lineState] = rec.state

	line := fmt.Sprintf("%s\n", strings.Join(lines, "\n"))

	n, err := io.WriteString(rec.output, line)
	if err != nil {
		return curated.Errorf(RecordingError, err)
	}
	if n != len(line) {
		return curated.Errorf(RecordingError, "output truncated")
	}

	return nil
}

func (rec *Recorder) writeEntry(in pins.Inputs, output uint8) error {
	toks := make([]string, numFields)
	toks[fieldEdge] = strconv.Itoa(rec.edges)
	toks[fieldAddress] = fmt.Sprintf("%#04x", in.Address)
	toks[fieldWriteEnable] = strconv.FormatBool(in.WriteEnable)
	toks[fieldData] = fmt.Sprintf("%#02x", in.Data)
	toks[fieldReset] = strconv.FormatBool(in.Reset)
	toks[fieldOutput] = fmt.Sprintf("%#02x", output)
	toks[fieldHash] = rec.digest.Hash()

	line := fmt.Sprintf("%s\n", strings.Join(toks, fieldSep))

	n, err := io.WriteString(rec.output, line)
	if err != nil {
		return curated.Errorf(RecordingError, err)
	}
	if n != len(line) {
		return curated.Errorf(RecordingError, "output truncated")
	}

	return nil
}

func (plb *Playback) readHeader(lines []string) error {
	if len(lines) < numHeaderLines {
		return curated.Errorf(PlaybackError, "transcript header is incomplete")
	}

	if lines[lineMagic] != magic {
		return curated.Errorf(PlaybackError, "not a transcript file")
	}

	plb.Label = lines[linePins]

	var err error
	plb.Capacity, err = strconv.Atoi(lines[lineCapacity])
	if err != nil {
		return curated.Errorf(PlaybackError, fmt.Sprintf("capacity at line %d: %v", lineCapacity+1, err))
	}

	plb.state = lines[lineState]

	return nil
}

// parse a single transcript line. the line number is used for error messages.
func parseEntry(line string, lineNum int) (playbackEntry, error) {
	entry := playbackEntry{line: lineNum}

	toks := strings.Split(line, fieldSep)
	if len(toks) != numFields {
		return entry, curated.Errorf(PlaybackError, fmt.Sprintf("expected %d fields at line %d", numFields, lineNum))
	}

	// col returns the column number of the field for error messages
	col := func(field int) int {
		return len(strings.Join(toks[:field], fieldSep)) + 1
	}

	var err error

	entry.edge, err = strconv.Atoi(toks[fieldEdge])
	if err != nil {
		return entry, curated.Errorf(PlaybackError, fmt.Sprintf("%v line %d, col %d", err, lineNum, col(fieldEdge)))
	}

	a, err := strconv.ParseUint(toks[fieldAddress], 0, 16)
	if err != nil {
		return entry, curated.Errorf(PlaybackError, fmt.Sprintf("%v line %d, col %d", err, lineNum, col(fieldAddress)))
	}
	entry.inputs.Address = uint16(a)

	entry.inputs.WriteEnable, err = strconv.ParseBool(toks[fieldWriteEnable])
	if err != nil {
		return entry, curated.Errorf(PlaybackError, fmt.Sprintf("%v line %d, col %d", err, lineNum, col(fieldWriteEnable)))
	}

	d, err := strconv.ParseUint(toks[fieldData], 0, 8)
	if err != nil {
		return entry, curated.Errorf(PlaybackError, fmt.Sprintf("%v line %d, col %d", err, lineNum, col(fieldData)))
	}
	entry.inputs.Data = uint8(d)

	entry.inputs.Reset, err = strconv.ParseBool(toks[fieldReset])
	if err != nil {
		return entry, curated.Errorf(PlaybackError, fmt.Sprintf("%v line %d, col %d", err, lineNum, col(fieldReset)))
	}

	o, err := strconv.ParseUint(toks[fieldOutput], 0, 8)
	if err != nil {
		return entry, curated.Errorf(PlaybackError, fmt.Sprintf("%v line %d, col %d", err, lineNum, col(fieldOutput)))
	}
	entry.output = uint8(o)

	entry.hash = toks[fieldHash]

	return entry, nil
}
