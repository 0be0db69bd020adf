// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var (
	// ErrNotVorbis wraps failures to open the Ogg Vorbis stream.
	ErrNotVorbis = errors.New("not an Ogg Vorbis stream")

	// ErrChannelMismatch is returned when the stream does not carry the
	// channel count the container declared.
	ErrChannelMismatch = errors.New("vorbis channel count does not match the declared count")
)
