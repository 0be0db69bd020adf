// SPDX-License-Identifier: EPL-2.0

package adpcm

import "errors"

var (
	// ErrInvalidChannels is returned for a channel count of zero or above MaxChannels.
	ErrInvalidChannels = errors.New("adpcm: invalid channel count")

	// ErrInvalidSampleCount is returned for a negative sample count.
	ErrInvalidSampleCount = errors.New("adpcm: invalid sample count")
)
