// SPDX-License-Identifier: EPL-2.0

package adpcm

import (
	"fmt"

	"github.com/ik5/sgxd2sf2/utils"
)

const (
	// MaxChannels is the largest interleave the decoder accepts.
	MaxChannels = 16

	BlockSize       = 16
	SamplesPerBlock = 28

	ShortBlockSize       = 4
	ShortSamplesPerBlock = 6

	flagLoopEnd   = 0x01
	flagLoopStart = 0x04
	flagStop      = 0x07
)

// Options describe the stream being decoded.
type Options struct {
	Channels int
	// Samples is the number of sample frames the caller expects; the output
	// is cut or zero filled to Samples*Channels values.
	Samples int
	// Short selects 4-byte blocks without a flag byte.
	Short bool
	// Extended selects the 16 row predictor table.
	Extended bool
}

// Result is decoded PCM plus the loop markers found in the block flags.
// LoopStart and LoopEnd are sample frame indexes, or -1 when absent.
type Result struct {
	PCM       []int16
	LoopStart int
	LoopEnd   int
}

// HasLoop reports whether both loop markers were found.
func (r Result) HasLoop() bool {
	return r.LoopStart >= 0 && r.LoopEnd > r.LoopStart
}

type history struct {
	s1, s2 int32
}

// Decode expands data into interleaved 16-bit PCM. Blocks are interleaved per
// channel: block b of channel c starts at (b*Channels+c)*blocksize.
func Decode(data []byte, opts Options) (Result, error) {
	if opts.Channels <= 0 || opts.Channels > MaxChannels {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidChannels, opts.Channels)
	}

	if opts.Samples < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidSampleCount, opts.Samples)
	}

	blockSize, perBlock := BlockSize, SamplesPerBlock
	if opts.Short {
		blockSize, perBlock = ShortBlockSize, ShortSamplesPerBlock
	}

	channels := opts.Channels
	res := Result{
		PCM:       make([]int16, opts.Samples*channels),
		LoopStart: -1,
		LoopEnd:   -1,
	}

	hist := make([]history, channels)
	frame := make([]int16, perBlock)
	stride := blockSize * channels

	for b := 0; (b+1)*stride <= len(data); b++ {
		first := b * perBlock
		if first >= opts.Samples {
			break
		}

		stop := false

		for c := range channels {
			block := data[b*stride+c*blockSize : b*stride+(c+1)*blockSize]

			if !opts.Short {
				flag := block[1]
				if flag == flagStop {
					stop = true

					break
				}

				// Markers are taken from the first channel only.
				if c == 0 {
					if flag&flagLoopStart != 0 && res.LoopStart < 0 {
						res.LoopStart = first
					}

					if flag&flagLoopEnd != 0 && res.LoopEnd < 0 {
						res.LoopEnd = first + perBlock
					}
				}
			}

			decodeBlock(block, opts, &hist[c], frame)

			for i, s := range frame {
				idx := first + i
				if idx >= opts.Samples {
					break
				}

				res.PCM[idx*channels+c] = s
			}
		}

		if stop {
			break
		}
	}

	return res, nil
}

// decodeBlock expands one block of one channel into out.
func decodeBlock(block []byte, opts Options, h *history, out []int16) {
	header := block[0]
	shift := uint(header & 0x0F)
	if shift > 12 {
		shift = 9
	}

	coef := lookup(int(header>>4), opts.Extended)

	payload := block[2:]
	if opts.Short {
		payload = block[1:]
	}

	for i, b := range payload {
		out[2*i] = h.next(b&0x0F, shift, coef)
		out[2*i+1] = h.next(b>>4, shift, coef)
	}
}

// next turns a 4-bit residual into a sample and updates the history.
func (h *history) next(nibble byte, shift uint, coef coefficient) int16 {
	residual := int32(int16(uint16(nibble)<<12)) >> shift
	predicted := (h.s1*coef.a + h.s2*coef.b + 32) >> 6

	s := utils.ClampInt16(residual + predicted)
	h.s2 = h.s1
	h.s1 = int32(s)

	return s
}

// BlocksFor returns how many bytes of stream hold the given number of frames.
func BlocksFor(samples, channels int, short bool) int {
	blockSize, perBlock := BlockSize, SamplesPerBlock
	if short {
		blockSize, perBlock = ShortBlockSize, ShortSamplesPerBlock
	}

	blocks := (samples + perBlock - 1) / perBlock

	return blocks * blockSize * channels
}

// FramesIn returns how many frames n bytes of stream decode to. Partial
// blocks do not count.
func FramesIn(n, channels int, short bool) int {
	blockSize, perBlock := BlockSize, SamplesPerBlock
	if short {
		blockSize, perBlock = ShortBlockSize, ShortSamplesPerBlock
	}

	if channels <= 0 {
		return 0
	}

	return n / (blockSize * channels) * perBlock
}
