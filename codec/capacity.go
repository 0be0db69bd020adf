// SPDX-License-Identifier: EPL-2.0

package codec

import "github.com/ik5/sgxd2sf2/codec/adpcm"

// MaxValuesPerByte bounds the output of compressed codecs whose length cannot
// be derived from the stream size.
const MaxValuesPerByte = 64

// Capacity returns the largest frame count a stream of n bytes can stand
// for under codec id. Declared sample counts above it cannot be right and
// would only turn into padding.
func Capacity(id ID, n, channels int) int {
	if channels <= 0 || n <= 0 {
		return 0
	}

	switch id {
	case PCM16LE, PCM16BE:
		return n / (2 * channels)
	case ADPCM:
		return adpcm.FramesIn(n, channels, false)
	case ADPCMShort:
		return adpcm.FramesIn(n, channels, true)
	default:
		return n * MaxValuesPerByte / channels
	}
}
