// SPDX-License-Identifier: EPL-2.0

package midi

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/ik5/sgxd2sf2/chunk"
	"github.com/ik5/sgxd2sf2/sgxd"
)

// DefaultDivision is used when a sequence does not declare its ticks per
// quarter note.
const DefaultDivision = 480

const (
	metaTrackName = 0x03
	smpteDivision = 0x8000
)

var (
	headerTag = chunk.NewTag("MThd")
	trackTag  = chunk.NewTag("MTrk")

	endOfTrack = []byte{0x00, 0xFF, 0x2F, 0x00}
)

// BuildTrack returns the events of a RAWMIDI sequence. The payload may be a
// bare event stream, a single MTrk chunk or a complete SMF; in the last case
// the first track is used. A missing end of track is added.
func BuildTrack(seq *sgxd.Sequence) (smf.Track, error) {
	if seq.Format != sgxd.FormatRawMIDI {
		return nil, fmt.Errorf("%w: %s sequence %q", ErrUnsupportedFormat, seq.Format, seq.Name)
	}

	if _, err := division(seq); err != nil {
		return nil, err
	}

	file, err := smf.ReadFrom(bytes.NewReader(wrap(seq)))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidSequence, seq.Name, err)
	}

	if len(file.Tracks) == 0 {
		return nil, fmt.Errorf("%w: %q has no track", ErrInvalidSequence, seq.Name)
	}

	track := file.Tracks[0]
	if !closed(track) {
		track.Close(0)
	}

	return track, nil
}

// Division returns the metric ticks per quarter note of seq.
func Division(seq *sgxd.Sequence) (uint16, error) {
	switch {
	case seq.Division == 0:
		return DefaultDivision, nil
	case seq.Division&smpteDivision != 0:
		return 0, fmt.Errorf("%w: %q uses SMPTE timing 0x%04x", ErrInvalidSequence, seq.Name, seq.Division)
	default:
		return seq.Division, nil
	}
}

// division is the timing Encode writes: the embedded header's for a complete
// SMF payload, Division otherwise. smf.ReadFrom cannot handle SMPTE timing,
// so both are checked before parsing.
func division(seq *sgxd.Sequence) (uint16, error) {
	if !bytes.HasPrefix(seq.Data, headerTag[:]) {
		return Division(seq)
	}

	if len(seq.Data) < 14 {
		return 0, fmt.Errorf("%w: %q has a short MThd", ErrInvalidSequence, seq.Name)
	}

	embedded := binary.BigEndian.Uint16(seq.Data[12:])
	if embedded == 0 {
		return 0, fmt.Errorf("%w: %q has a zero MThd division", ErrInvalidSequence, seq.Name)
	}

	return Division(&sgxd.Sequence{Name: seq.Name, Division: embedded})
}

// wrap turns the sequence payload into a format 0 SMF.
func wrap(seq *sgxd.Sequence) []byte {
	data := seq.Data

	switch {
	case bytes.HasPrefix(data, headerTag[:]):
		return data
	case bytes.HasPrefix(data, trackTag[:]) && len(data) >= 8:
		n := int(binary.BigEndian.Uint32(data[4:]))
		data = data[8:min(len(data), 8+n)]
	}

	events := make([]byte, 0, len(data)+len(seq.Name)+len(endOfTrack)+8)

	if seq.Name != "" {
		events = append(events, 0x00, 0xFF, metaTrackName)
		events = appendVarInt(events, uint32(len(seq.Name)))
		events = append(events, seq.Name...)
	}

	events = append(events, data...)
	if !bytes.HasSuffix(events, endOfTrack[1:]) {
		events = append(events, endOfTrack...)
	}

	ticks := seq.Division
	if ticks == 0 {
		ticks = DefaultDivision
	}

	header := make([]byte, 0, 6)
	header = binary.BigEndian.AppendUint16(header, 0) // format
	header = binary.BigEndian.AppendUint16(header, 1) // tracks
	header = binary.BigEndian.AppendUint16(header, ticks)

	out := (&chunk.Chunk{ID: headerTag, Order: binary.BigEndian, NoPad: true, Data: header}).Bytes()

	return append(out, (&chunk.Chunk{ID: trackTag, Order: binary.BigEndian, NoPad: true, Data: events}).Bytes()...)
}

// appendVarInt writes v as a MIDI variable length quantity.
func appendVarInt(b []byte, v uint32) []byte {
	var tmp [5]byte

	i := len(tmp) - 1
	tmp[i] = byte(v & 0x7F)

	for v >>= 7; v > 0; v >>= 7 {
		i--
		tmp[i] = byte(v&0x7F) | 0x80
	}

	return append(b, tmp[i:]...)
}

func closed(track smf.Track) bool {
	if len(track) == 0 {
		return false
	}

	return bytes.Equal(track[len(track)-1].Message, endOfTrack[1:])
}
