// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"fmt"

	"github.com/ik5/sgxd2sf2/audio"
)

// PCMDecoder decodes a complete in-memory Ogg Vorbis stream to interleaved
// 16-bit PCM. It satisfies codec.ExternalDecoder.
type PCMDecoder struct{}

// Decode returns samples*channels values; a positive samples count cuts or
// zero pads the stream to that many frames.
func (PCMDecoder) Decode(data []byte, samples, channels int) ([]int16, error) {
	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return decodePCM(src, samples, channels)
}

func decodePCM(src audio.Source, samples, channels int) ([]int16, error) {
	defer src.Close()

	if channels > 0 && src.Channels() != channels {
		return nil, fmt.Errorf("%w: stream has %d, declared %d", ErrChannelMismatch, src.Channels(), channels)
	}

	limit := 0
	if samples > 0 {
		limit = samples * src.Channels()
	}

	return audio.ReadAllInt16(src, limit)
}
