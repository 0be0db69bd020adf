// SPDX-License-Identifier: EPL-2.0

package codec

import "encoding/binary"

// PCM16 copies raw 16-bit samples. The output holds samples*channels values,
// zero padded when the stream is short; a non-positive samples count keeps
// every whole sample in data.
func PCM16(bigEndian bool) Decoder {
	var order binary.ByteOrder = binary.LittleEndian
	if bigEndian {
		order = binary.BigEndian
	}

	return DecoderFunc(func(data []byte, samples, channels int) (Result, error) {
		if channels <= 0 {
			return Result{}, ErrInvalidChannels
		}

		n := len(data) / 2
		if samples > 0 {
			n = samples * channels
		}

		pcm := make([]int16, n)
		for i := 0; i < n && 2*i+1 < len(data); i++ {
			pcm[i] = int16(order.Uint16(data[2*i:]))
		}

		return Result{PCM: pcm, LoopStart: -1, LoopEnd: -1}, nil
	})
}
