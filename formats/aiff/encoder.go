// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"

	"github.com/ik5/sgxd2sf2/chunk"
	"github.com/ik5/sgxd2sf2/internal/memio"
	"github.com/ik5/sgxd2sf2/sgxd"
)

const (
	bitDepth    = 16
	defaultRate = 44100
	maxChannels = 6

	markerLoopBegin = 1
	markerLoopEnd   = 2
	loopForward     = 1
)

// EncodeWaveform returns w as a 16-bit AIFF file.
func EncodeWaveform(w *sgxd.Waveform) ([]byte, error) {
	buf := memio.NewBuffer(nil)

	if err := Encode(buf, w); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Encode writes w to ws, which must be positioned at the start of the file.
// Looped waveforms get MARK and INST chunks describing a sustain loop.
func Encode(ws io.WriteSeeker, w *sgxd.Waveform) error {
	if len(w.PCM) == 0 {
		return fmt.Errorf("%w: %q", ErrNoPCM, w.Name)
	}

	channels := w.ChannelCount()
	if channels > maxChannels {
		return fmt.Errorf("%w: %d", ErrUnsupportedChannels, channels)
	}

	rate := int(w.SampleRate)
	if rate <= 0 {
		rate = defaultRate
	}

	data := make([]int, len(w.PCM))
	for i, v := range w.PCM {
		data[i] = int(v)
	}

	enc := aiff.NewEncoder(ws, rate, bitDepth, channels)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("aiff: write: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("aiff: close: %w", err)
	}

	if !w.Looped() {
		return nil
	}

	return appendChunks(ws, markers(w), instrument())
}

// appendChunks writes cs at the end of the file and fixes the FORM length.
func appendChunks(ws io.WriteSeeker, cs ...*chunk.Chunk) error {
	end, err := ws.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("aiff: %w", err)
	}

	for _, c := range cs {
		n, err := c.WriteTo(ws)
		if err != nil {
			return fmt.Errorf("aiff: %s: %w", c.ID, err)
		}

		end += n
	}

	if _, err := ws.Seek(4, io.SeekStart); err != nil {
		return fmt.Errorf("aiff: %w", err)
	}

	var size [4]byte
	binary.BigEndian.PutUint32(size[:], uint32(end-8))

	if _, err := ws.Write(size[:]); err != nil {
		return fmt.Errorf("aiff: %w", err)
	}

	_, err = ws.Seek(0, io.SeekEnd)

	return err
}

func markers(w *sgxd.Waveform) *chunk.Chunk {
	b := binary.BigEndian.AppendUint16(nil, 2)
	b = appendMarker(b, markerLoopBegin, uint32(max(w.LoopBegin, 0)), "beg loop")
	b = appendMarker(b, markerLoopEnd, uint32(max(w.LoopEnd, 0)), "end loop")

	return &chunk.Chunk{ID: chunk.NewTag("MARK"), Order: binary.BigEndian, Data: b}
}

// appendMarker writes one marker; its name is a Pascal string padded to an
// even length.
func appendMarker(b []byte, id uint16, pos uint32, name string) []byte {
	b = binary.BigEndian.AppendUint16(b, id)
	b = binary.BigEndian.AppendUint32(b, pos)
	b = append(b, byte(len(name)))
	b = append(b, name...)

	if (len(name)+1)%2 == 1 {
		b = append(b, 0)
	}

	return b
}

func instrument() *chunk.Chunk {
	b := []byte{
		60, 0, // base note, detune
		0, 127, // note range
		1, 127, // velocity range
		0, 0, // gain
	}

	for _, v := range []uint16{loopForward, markerLoopBegin, markerLoopEnd, 0, 0, 0} {
		b = binary.BigEndian.AppendUint16(b, v)
	}

	return &chunk.Chunk{ID: chunk.NewTag("INST"), Order: binary.BigEndian, Data: b}
}
