// SPDX-License-Identifier: EPL-2.0

// Package memio provides an in-memory io.ReadWriteSeeker for encoders that
// patch headers after writing, such as go-audio/wav and go-audio/aiff.
package memio

import (
	"errors"
	"fmt"
	"io"
)

var ErrNegativePosition = errors.New("memio: negative position")

// Buffer is a growable byte slice with a file-like cursor. Writing past the
// end grows the buffer; seeking past the end and writing leaves zero bytes
// in the gap.
type Buffer struct {
	data   []byte
	offset int64
}

// NewBuffer returns a Buffer reading from data, positioned at 0.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Bytes returns the whole content, regardless of the cursor.
func (b *Buffer) Bytes() []byte { return b.data }

func (b *Buffer) Len() int { return len(b.data) }

func (b *Buffer) Read(p []byte) (int, error) {
	if b.offset >= int64(len(b.data)) {
		return 0, io.EOF
	}

	n := copy(p, b.data[b.offset:])
	b.offset += int64(n)

	return n, nil
}

func (b *Buffer) Write(p []byte) (int, error) {
	end := b.offset + int64(len(p))
	if end > int64(len(b.data)) {
		if end > int64(cap(b.data)) {
			grown := make([]byte, end, max(end, 2*int64(cap(b.data))))
			copy(grown, b.data)
			b.data = grown
		} else {
			b.data = b.data[:end]
		}
	}

	n := copy(b.data[b.offset:], p)
	b.offset += int64(n)

	return n, nil
}

func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	var next int64

	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = b.offset + offset
	case io.SeekEnd:
		next = int64(len(b.data)) + offset
	default:
		return 0, fmt.Errorf("memio: invalid whence: %d", whence)
	}

	if next < 0 {
		return 0, ErrNegativePosition
	}

	b.offset = next

	return next, nil
}
