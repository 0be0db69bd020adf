// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"

	"github.com/ik5/sgxd2sf2/utils"
)

// PCMSource serves an in-memory interleaved int16 buffer as a Source.
type PCMSource struct {
	pcm        []int16
	sampleRate int
	channels   int
	pos        int
}

// NewPCMSource wraps pcm. The slice is not copied.
func NewPCMSource(pcm []int16, sampleRate, channels int) (*PCMSource, error) {
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}

	if sampleRate <= 0 {
		return nil, ErrInvalidRate
	}

	return &PCMSource{pcm: pcm, sampleRate: sampleRate, channels: channels}, nil
}

func (s *PCMSource) SampleRate() int { return s.sampleRate }
func (s *PCMSource) Channels() int   { return s.channels }
func (s *PCMSource) BufSize() int    { return len(s.pcm) }
func (s *PCMSource) Close() error    { return nil }

// Frames is the number of complete frames in the buffer.
func (s *PCMSource) Frames() int { return len(s.pcm) / s.channels }

func (s *PCMSource) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if s.pos >= len(s.pcm) {
		return 0, io.EOF
	}

	n := copyInt16(dst, s.pcm[s.pos:])
	s.pos += n

	if s.pos >= len(s.pcm) {
		return n, io.EOF
	}

	return n, nil
}

func copyInt16(dst []float32, src []int16) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = utils.Int16ToFloat32(src[i])
	}

	return n
}
