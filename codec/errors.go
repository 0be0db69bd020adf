// SPDX-License-Identifier: EPL-2.0

package codec

import "errors"

var (
	// ErrUnsupportedCodec is returned when no decoder is available for a
	// codec id, including known codecs whose external decoder is not set.
	ErrUnsupportedCodec = errors.New("unsupported codec")

	// ErrNotATRAC3Plus is returned when an ATRAC3+ stream is not wrapped in
	// the expected RIFF WAVE container.
	ErrNotATRAC3Plus = errors.New("stream is not a RIFF wrapped ATRAC3+ stream")

	ErrInvalidChannels = errors.New("channel count must be positive")
)
