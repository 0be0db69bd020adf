// SPDX-License-Identifier: EPL-2.0

package sgxd2sf2

import (
	"fmt"

	"github.com/ik5/sgxd2sf2/audio"
	"github.com/ik5/sgxd2sf2/sgxd"
)

const defaultSampleRate = 44100

// ResampleToMono16 folds a decoded waveform to one channel and resamples it
// to targetRate with cubic interpolation. A targetRate of zero keeps the
// waveform rate. It returns the samples and their rate.
//
// This is the preparation sf2.Build applies to every sample; it is exported
// for previews and for tools writing their own sample formats.
func ResampleToMono16(w *sgxd.Waveform, targetRate int) ([]int16, int, error) {
	if len(w.PCM) == 0 {
		return nil, 0, fmt.Errorf("%w: %q", ErrNoAudio, w.Name)
	}

	rate := int(w.SampleRate)
	if rate <= 0 {
		rate = defaultSampleRate
	}

	if targetRate <= 0 {
		targetRate = rate
	}

	mono, err := audio.Downmix(w.PCM, rate, w.ChannelCount())
	if err != nil {
		return nil, 0, fmt.Errorf("downmix: %w", err)
	}

	out, err := audio.Resample(mono, 1, rate, targetRate)
	if err != nil {
		return nil, 0, fmt.Errorf("resample: %w", err)
	}

	return out, targetRate, nil
}
