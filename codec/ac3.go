// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"bytes"
	"fmt"
)

var oggMagic = []byte("OggS")

type ac3 struct {
	ogg Decoder
	ext ExternalDecoder
}

// Decode sends Ogg streams stored under the AC-3 id to the Vorbis decoder and
// everything else to the external AC-3 decoder.
func (a *ac3) Decode(data []byte, samples, channels int) (Result, error) {
	if bytes.HasPrefix(data, oggMagic) {
		return a.ogg.Decode(data, samples, channels)
	}

	if a.ext == nil {
		return Result{}, fmt.Errorf("%w: no AC-3 decoder configured", ErrUnsupportedCodec)
	}

	return External(a.ext).Decode(data, samples, channels)
}
