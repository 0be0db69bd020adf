// SPDX-License-Identifier: EPL-2.0

package audiotest

import "io"

// FuncSource is an audio.Source whose samples come from a function of the
// frame index and channel. It is declared here without importing package
// audio so that audio's own tests can use it.
type FuncSource struct {
	rate     int
	channels int
	frames   int
	pos      int
	sample   func(frame, channel int) float32
}

// NewFuncSource returns frames frames of fn at the given rate.
func NewFuncSource(rate, channels, frames int, fn func(frame, channel int) float32) *FuncSource {
	return &FuncSource{rate: rate, channels: channels, frames: frames, sample: fn}
}

// Constant returns a source holding v on every channel.
func Constant(rate, channels, frames int, v float32) *FuncSource {
	return NewFuncSource(rate, channels, frames, func(int, int) float32 { return v })
}

// Stereo returns a two channel source with fixed left and right levels.
func Stereo(rate, frames int, left, right float32) *FuncSource {
	return NewFuncSource(rate, 2, frames, func(_, ch int) float32 {
		if ch == 0 {
			return left
		}

		return right
	})
}

func (s *FuncSource) SampleRate() int { return s.rate }
func (s *FuncSource) Channels() int   { return s.channels }
func (s *FuncSource) BufSize() int    { return 4096 }
func (s *FuncSource) Close() error    { return nil }

// ReadSamples fills dst with whole frames. The call delivering the last
// frame also returns io.EOF.
func (s *FuncSource) ReadSamples(dst []float32) (int, error) {
	left := s.frames - s.pos
	if left <= 0 {
		return 0, io.EOF
	}

	n := min(len(dst)/s.channels, left)
	for f := range n {
		for ch := range s.channels {
			dst[f*s.channels+ch] = s.sample(s.pos+f, ch)
		}
	}

	s.pos += n
	if s.pos == s.frames {
		return n * s.channels, io.EOF
	}

	return n * s.channels, nil
}
