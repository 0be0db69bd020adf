// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/riff"
	"github.com/google/uuid"
)

const waveFormatExtensible = 0xFFFE

// ATRAC3PlusSubFormat is the WAVE_FORMAT_EXTENSIBLE sub-format of ATRAC3+.
var ATRAC3PlusSubFormat = uuid.MustParse("e923aabf-cb58-4471-a119-fffa01e4ce62")

type atrac3Plus struct {
	ext ExternalDecoder
}

func (a *atrac3Plus) Decode(data []byte, samples, channels int) (Result, error) {
	if err := ProbeATRAC3Plus(data); err != nil {
		return Result{}, err
	}

	if a.ext == nil {
		return Result{}, fmt.Errorf("%w: no ATRAC3+ decoder configured", ErrUnsupportedCodec)
	}

	return External(a.ext).Decode(data, samples, channels)
}

// ProbeATRAC3Plus checks that data is a RIFF WAVE file whose fmt chunk
// declares the ATRAC3+ sub-format.
func ProbeATRAC3Plus(data []byte) error {
	p := riff.New(bytes.NewReader(data))
	if err := p.ParseHeaders(); err != nil {
		return fmt.Errorf("%w: %w", ErrNotATRAC3Plus, err)
	}

	if p.Format != riff.WavFormatID {
		return fmt.Errorf("%w: form type %q", ErrNotATRAC3Plus, p.Format[:])
	}

	for {
		ch, err := p.NextChunk()
		if err != nil {
			return fmt.Errorf("%w: no fmt chunk: %w", ErrNotATRAC3Plus, err)
		}

		if ch.ID != riff.FmtID {
			ch.Drain()

			continue
		}

		buf := make([]byte, ch.Size)
		if _, err := io.ReadFull(ch, buf); err != nil {
			return fmt.Errorf("%w: fmt chunk: %w", ErrNotATRAC3Plus, err)
		}

		return checkExtensible(buf)
	}
}

func checkExtensible(fmtChunk []byte) error {
	if len(fmtChunk) < 40 {
		return fmt.Errorf("%w: fmt chunk of %d bytes", ErrNotATRAC3Plus, len(fmtChunk))
	}

	if tag := binary.LittleEndian.Uint16(fmtChunk); tag != waveFormatExtensible {
		return fmt.Errorf("%w: format tag 0x%04x", ErrNotATRAC3Plus, tag)
	}

	if sub := guidFromWire(fmtChunk[24:40]); sub != ATRAC3PlusSubFormat {
		return fmt.Errorf("%w: sub-format %s", ErrNotATRAC3Plus, sub)
	}

	return nil
}

// guidFromWire converts a Windows GUID, whose first three fields are stored
// little-endian, into its canonical form.
func guidFromWire(b []byte) uuid.UUID {
	var u uuid.UUID

	copy(u[:], b)
	u[0], u[1], u[2], u[3] = b[3], b[2], b[1], b[0]
	u[4], u[5] = b[5], b[4]
	u[6], u[7] = b[7], b[6]

	return u
}
