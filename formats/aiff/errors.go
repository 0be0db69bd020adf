// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNoPCM is returned for waveforms without decoded audio.
	ErrNoPCM = errors.New("aiff: waveform has no decoded PCM")

	ErrUnsupportedChannels = errors.New("aiff: unsupported channel count")
)
