// SPDX-License-Identifier: EPL-2.0

package codec

import "fmt"

// ID is the codec selector stored in a waveform record.
type ID uint8

const (
	PCM16LE    ID = 0x00
	PCM16BE    ID = 0x01
	Vorbis     ID = 0x02
	ADPCM      ID = 0x03
	ATRAC3Plus ID = 0x04
	ADPCMShort ID = 0x05
	AC3        ID = 0x06
)

var idNames = map[ID]string{
	PCM16LE:    "pcm16le",
	PCM16BE:    "pcm16be",
	Vorbis:     "vorbis",
	ADPCM:      "adpcm",
	ATRAC3Plus: "atrac3plus",
	ADPCMShort: "adpcm-short",
	AC3:        "ac3",
}

func (id ID) String() string {
	if name, ok := idNames[id]; ok {
		return name
	}

	return fmt.Sprintf("codec(0x%02x)", uint8(id))
}

// Result is a decoded waveform. LoopStart and LoopEnd are frame indices
// found in the stream itself, or -1 when the codec carries no marker.
type Result struct {
	PCM       []int16
	LoopStart int
	LoopEnd   int
}

// Decoder turns one compressed stream into interleaved PCM. samples is the
// frame count declared by the container.
type Decoder interface {
	Decode(data []byte, samples, channels int) (Result, error)
}

// DecoderFunc adapts a function to Decoder.
type DecoderFunc func(data []byte, samples, channels int) (Result, error)

func (f DecoderFunc) Decode(data []byte, samples, channels int) (Result, error) {
	return f(data, samples, channels)
}

// ExternalDecoder is the contract for decoders living outside this module
// (Vorbis, AC-3, ATRAC3+).
type ExternalDecoder interface {
	Decode(data []byte, samples, channels int) ([]int16, error)
}

// External wraps an ExternalDecoder; its results never carry loop markers.
func External(dec ExternalDecoder) Decoder {
	return DecoderFunc(func(data []byte, samples, channels int) (Result, error) {
		pcm, err := dec.Decode(data, samples, channels)
		if err != nil {
			return Result{}, err
		}

		return Result{PCM: pcm, LoopStart: -1, LoopEnd: -1}, nil
	})
}
