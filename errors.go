// SPDX-License-Identifier: EPL-2.0

package sgxd2sf2

import "errors"

var (
	ErrWaveformIndex = errors.New("sgxd2sf2: waveform index out of range")
	ErrSequenceIndex = errors.New("sgxd2sf2: sequence index out of range")

	// ErrUnknownFormat is returned by ExtractWaveform for an output format
	// that has no writer.
	ErrUnknownFormat = errors.New("sgxd2sf2: unknown output format")

	// ErrNoAudio is returned for waveforms that decoded to nothing.
	ErrNoAudio = errors.New("sgxd2sf2: waveform has no audio")
)
