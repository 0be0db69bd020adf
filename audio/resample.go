// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"

	"github.com/ik5/sgxd2sf2/utils"
)

// Resample converts interleaved pcm from srcRate to dstRate with cubic
// interpolation. Channel count is preserved.
func Resample(pcm []int16, channels, srcRate, dstRate int) ([]int16, error) {
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}

	if srcRate <= 0 || dstRate <= 0 {
		return nil, ErrInvalidRate
	}

	if srcRate == dstRate || len(pcm) == 0 {
		return pcm, nil
	}

	frames := len(pcm) / channels
	outFrames := ScaleFrames(frames, srcRate, dstRate)
	ratio := float64(srcRate) / float64(dstRate)
	out := make([]int16, outFrames*channels)

	at := func(f, c int) float32 {
		f = max(0, min(f, frames-1))

		return utils.Int16ToFloat32(pcm[f*channels+c])
	}

	for i := range outFrames {
		pos := float64(i) * ratio
		base := int(math.Floor(pos))
		x := float32(pos - float64(base))

		for c := range channels {
			v := utils.CubicInterpolate(at(base-1, c), at(base, c), at(base+1, c), at(base+2, c), x)
			out[i*channels+c] = utils.Float32ToInt16(v)
		}
	}

	return out, nil
}

// ScaleFrames converts a frame position from srcRate to dstRate.
func ScaleFrames(frames, srcRate, dstRate int) int {
	if srcRate == dstRate || srcRate <= 0 {
		return frames
	}

	return int(int64(frames) * int64(dstRate) / int64(srcRate))
}
