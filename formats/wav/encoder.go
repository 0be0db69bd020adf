// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/sgxd2sf2/chunk"
	"github.com/ik5/sgxd2sf2/internal/memio"
	"github.com/ik5/sgxd2sf2/sgxd"
)

const (
	bitDepth       = 16
	formatPCM      = 1
	unityNote      = 60
	defaultRate    = 44100
	maxWavChannels = 8
)

// EncodeWaveform returns w as a 16-bit PCM WAV file.
func EncodeWaveform(w *sgxd.Waveform) ([]byte, error) {
	buf := memio.NewBuffer(nil)

	if err := Encode(buf, w); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Encode writes w to ws, which must be positioned at the start of the file.
// Looped waveforms get a smpl chunk after the data chunk.
func Encode(ws io.WriteSeeker, w *sgxd.Waveform) error {
	if len(w.PCM) == 0 {
		return fmt.Errorf("%w: %q", ErrNoPCM, w.Name)
	}

	channels := w.ChannelCount()
	if channels > maxWavChannels {
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

	enc := wav.NewEncoder(ws, rate, bitDepth, channels, formatPCM)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wav: write: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: close: %w", err)
	}

	if !w.Looped() {
		return nil
	}

	return appendChunk(ws, samplerChunk(w, rate))
}

// appendChunk writes c at the end of the file and fixes the RIFF length.
func appendChunk(ws io.WriteSeeker, c *chunk.Chunk) error {
	end, err := ws.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("wav: %w", err)
	}

	n, err := c.WriteTo(ws)
	if err != nil {
		return fmt.Errorf("wav: smpl: %w", err)
	}

	if _, err := ws.Seek(4, io.SeekStart); err != nil {
		return fmt.Errorf("wav: %w", err)
	}

	var size [4]byte
	binary.LittleEndian.PutUint32(size[:], uint32(end+n-8))

	if _, err := ws.Write(size[:]); err != nil {
		return fmt.Errorf("wav: %w", err)
	}

	_, err = ws.Seek(0, io.SeekEnd)

	return err
}

// samplerChunk describes the waveform loop as a smpl chunk with one forward
// loop. The loop end in smpl is the last sample played, inclusive.
func samplerChunk(w *sgxd.Waveform, rate int) *chunk.Chunk {
	var b []byte

	put := func(vs ...uint32) {
		for _, v := range vs {
			b = binary.LittleEndian.AppendUint32(b, v)
		}
	}

	start, end := max(w.LoopBegin, 0), max(w.LoopEnd, 0)
	if end > start {
		end--
	}

	put(
		0, 0, // manufacturer, product
		uint32(1_000_000_000/rate), // sample period in ns
		unityNote, 0, // unity note, pitch fraction
		0, 0, // SMPTE format and offset
		1, 0, // loop count, sampler data size
	)
	put(0, 0, uint32(start), uint32(end), 0, 0)

	return chunk.New("smpl", b)
}
