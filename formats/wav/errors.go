// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNoPCM is returned for waveforms without decoded audio.
	ErrNoPCM = errors.New("wav: waveform has no decoded PCM")

	ErrUnsupportedChannels = errors.New("wav: unsupported channel count")
)
