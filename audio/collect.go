// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/sgxd2sf2/utils"
)

// ReadAllInt16 drains src and returns its samples as 16-bit PCM. When limit
// is positive, at most limit values are kept and the output is zero padded
// up to limit.
func ReadAllInt16(src Source, limit int) ([]int16, error) {
	bufSize := src.BufSize()
	if bufSize <= 0 {
		bufSize = 4096
	}

	// keep reads frame aligned
	if ch := src.Channels(); ch > 1 {
		bufSize -= bufSize % ch
		if bufSize == 0 {
			bufSize = ch
		}
	}

	pcm := make([]int16, 0, max(limit, 0))
	buf := make([]float32, bufSize)

	for limit <= 0 || len(pcm) < limit {
		n, err := src.ReadSamples(buf)
		if limit > 0 {
			n = min(n, limit-len(pcm))
		}

		for _, v := range buf[:n] {
			pcm = append(pcm, utils.Float32ToInt16(v))
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		if n == 0 {
			break
		}
	}

	for limit > 0 && len(pcm) < limit {
		pcm = append(pcm, 0)
	}

	return pcm, nil
}

// Downmix returns pcm folded to a single channel. Mono input is returned
// unchanged.
func Downmix(pcm []int16, sampleRate, channels int) ([]int16, error) {
	if channels == 1 {
		return pcm, nil
	}

	src, err := NewPCMSource(pcm, sampleRate, channels)
	if err != nil {
		return nil, err
	}

	return ReadAllInt16(NewMonoMixer(src), src.Frames())
}
