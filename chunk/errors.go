// SPDX-License-Identifier: EPL-2.0

package chunk

import "errors"

var (
	// ErrShortBuffer is returned when a read needs more bytes than remain.
	ErrShortBuffer = errors.New("chunk: short buffer")

	// ErrTruncated is returned when a chunk declares a length running past
	// the end of its buffer.
	ErrTruncated = errors.New("chunk: declared length exceeds buffer")

	// ErrOffset is returned for seeks outside the buffer.
	ErrOffset = errors.New("chunk: offset out of range")
)
