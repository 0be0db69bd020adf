// SPDX-License-Identifier: EPL-2.0

package chunk

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Chunk is a tagged block ready to be serialized. Children added with Append
// are serialized into Data immediately, so the parent length is always the
// length of everything appended so far.
type Chunk struct {
	ID Tag
	// Order of the length field; nil means little-endian (RIFF).
	Order binary.ByteOrder
	// Reversed writes the tag bytes in reverse order.
	Reversed bool
	// NoLength omits the length field (a bare tag followed by the payload).
	NoLength bool
	// NoPad disables the trailing pad byte for odd payloads.
	NoPad bool

	Data []byte
}

// New returns a little-endian chunk holding data.
func New(id string, data []byte) *Chunk {
	return &Chunk{ID: NewTag(id), Data: data}
}

// List returns a RIFF style container: the id ("RIFF" or "LIST"), then the
// form type, then every child.
func List(id, kind string, children ...*Chunk) *Chunk {
	form := NewTag(kind)
	c := &Chunk{ID: NewTag(id), Data: append([]byte(nil), form[:]...)}

	for _, child := range children {
		c.Append(child)
	}

	return c
}

// Text returns a chunk holding s as a NUL terminated string padded to an
// even length, as RIFF INFO sub-chunks require.
func Text(id, s string) *Chunk {
	n := len(s) + 1
	if n%2 == 1 {
		n++
	}

	data := make([]byte, n)
	copy(data, s)

	return New(id, data)
}

// Append serializes child at the end of c's payload.
func (c *Chunk) Append(child *Chunk) {
	c.Data = append(c.Data, child.Bytes()...)
}

// PayloadSize is the declared length: the payload without padding.
func (c *Chunk) PayloadSize() int { return len(c.Data) }

// Size is the number of bytes Bytes will produce.
func (c *Chunk) Size() int {
	n := 4 + len(c.Data)
	if !c.NoLength {
		n += 4
	}

	if c.padded() {
		n++
	}

	return n
}

func (c *Chunk) padded() bool {
	return !c.NoPad && len(c.Data)%2 == 1
}

// Bytes serializes the chunk.
func (c *Chunk) Bytes() []byte {
	var buf bytes.Buffer

	buf.Grow(c.Size())
	_, _ = c.WriteTo(&buf)

	return buf.Bytes()
}

// WriteTo writes the serialized chunk to w.
func (c *Chunk) WriteTo(w io.Writer) (int64, error) {
	order := c.Order
	if order == nil {
		order = binary.LittleEndian
	}

	id := c.ID
	if c.Reversed {
		id = id.Reverse()
	}

	head := make([]byte, 0, 8)
	head = append(head, id[:]...)

	if !c.NoLength {
		if uint64(len(c.Data)) > 0xFFFFFFFF {
			return 0, fmt.Errorf("chunk %s: payload of %d bytes does not fit a 32-bit length", c.ID, len(c.Data))
		}

		var size [4]byte
		order.PutUint32(size[:], uint32(len(c.Data)))
		head = append(head, size[:]...)
	}

	var total int64

	for _, part := range [][]byte{head, c.Data} {
		n, err := w.Write(part)
		total += int64(n)

		if err != nil {
			return total, fmt.Errorf("%w", err)
		}
	}

	if c.padded() {
		n, err := w.Write([]byte{0})
		total += int64(n)

		if err != nil {
			return total, fmt.Errorf("%w", err)
		}
	}

	return total, nil
}

// Write is a shorthand serializing a little-endian chunk with the given tag.
func Write(tag string, payload []byte, hasLength bool) []byte {
	c := &Chunk{ID: NewTag(tag), NoLength: !hasLength, Data: payload}

	return c.Bytes()
}
