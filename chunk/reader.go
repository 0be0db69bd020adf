// SPDX-License-Identifier: EPL-2.0

package chunk

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Header describes a chunk found by Reader.ReadChunk.
type Header struct {
	ID     Tag
	Size   int // declared payload length
	Offset int // absolute offset of the tag
}

// Reader is a bounds-checked cursor over an in-memory buffer. Every read
// either returns the requested bytes or fails without moving the cursor.
type Reader struct {
	buf   []byte
	pos   int
	order binary.ByteOrder

	// Reversed makes Tag and ReadChunk return tags with their bytes swapped
	// back to reading order.
	Reversed bool
	// Padded makes ReadChunk skip the pad byte after an odd payload.
	Padded bool
}

// NewReader returns a cursor at offset 0. order is used for every integer
// read; nil means little-endian.
func NewReader(buf []byte, order binary.ByteOrder) *Reader {
	if order == nil {
		order = binary.LittleEndian
	}

	return &Reader{buf: buf, order: order}
}

func (r *Reader) Order() binary.ByteOrder { return r.order }
func (r *Reader) Pos() int                { return r.pos }
func (r *Reader) Len() int                { return len(r.buf) }
func (r *Reader) Remaining() int          { return len(r.buf) - r.pos }

// Seek moves the cursor to the absolute offset off.
func (r *Reader) Seek(off int) error {
	if off < 0 || off > len(r.buf) {
		return fmt.Errorf("%w: seek to %d in %d bytes", ErrOffset, off, len(r.buf))
	}

	r.pos = off

	return nil
}

// Skip advances the cursor by n bytes.
func (r *Reader) Skip(n int) error {
	if _, err := r.Bytes(n); err != nil {
		return err
	}

	return nil
}

// Bytes returns the next n bytes. The result aliases the buffer.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, fmt.Errorf("%w: need %d bytes at 0x%x, have %d", ErrShortBuffer, n, r.pos, r.Remaining())
	}

	b := r.buf[r.pos : r.pos+n]
	r.pos += n

	return b, nil
}

// Slice returns n bytes at the absolute offset off without moving the cursor.
func (r *Reader) Slice(off, n int) ([]byte, error) {
	if off < 0 || n < 0 || off > len(r.buf) || n > len(r.buf)-off {
		return nil, fmt.Errorf("%w: need %d bytes at 0x%x, buffer is %d", ErrShortBuffer, n, off, len(r.buf))
	}

	return r.buf[off : off+n], nil
}

// At returns a new cursor sharing the buffer and byte order, positioned at off.
func (r *Reader) At(off int) (*Reader, error) {
	c := *r
	if err := c.Seek(off); err != nil {
		return nil, err
	}

	return &c, nil
}

// Record reads the next n bytes as a fixed layout record.
func (r *Reader) Record(n int) (Record, error) {
	b, err := r.Bytes(n)
	if err != nil {
		return Record{}, err
	}

	return Record{b: b, order: r.order}, nil
}

func (r *Reader) Uint8() (uint8, error) {
	b, err := r.Bytes(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

func (r *Reader) Int8() (int8, error) {
	v, err := r.Uint8()

	return int8(v), err
}

func (r *Reader) Uint16() (uint16, error) {
	b, err := r.Bytes(2)
	if err != nil {
		return 0, err
	}

	return r.order.Uint16(b), nil
}

func (r *Reader) Int16() (int16, error) {
	v, err := r.Uint16()

	return int16(v), err
}

func (r *Reader) Uint32() (uint32, error) {
	b, err := r.Bytes(4)
	if err != nil {
		return 0, err
	}

	return r.order.Uint32(b), nil
}

func (r *Reader) Int32() (int32, error) {
	v, err := r.Uint32()

	return int32(v), err
}

// Tag reads a four character code.
func (r *Reader) Tag() (Tag, error) {
	b, err := r.Bytes(4)
	if err != nil {
		return Tag{}, err
	}

	t := Tag{b[0], b[1], b[2], b[3]}
	if r.Reversed {
		t = t.Reverse()
	}

	return t, nil
}

// CString returns the NUL terminated byte string starting at the absolute
// offset off. A string running to the end of the buffer is returned whole.
func (r *Reader) CString(off int) ([]byte, error) {
	if off < 0 || off >= len(r.buf) {
		return nil, fmt.Errorf("%w: string at 0x%x, buffer is %d", ErrOffset, off, len(r.buf))
	}

	s := r.buf[off:]
	if i := bytes.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}

	return s, nil
}

// ReadChunk reads a {tag}{u32 length}{payload} block. When the declared
// length runs past the buffer the cursor is left on the tag and the error
// wraps ErrTruncated.
func (r *Reader) ReadChunk() (Header, []byte, error) {
	start := r.pos
	if r.Remaining() < 8 {
		return Header{}, nil, fmt.Errorf("%w: chunk header at 0x%x", ErrShortBuffer, start)
	}

	id, _ := r.Tag()
	size, _ := r.Uint32()
	h := Header{ID: id, Size: int(size), Offset: start}

	if uint64(size) > uint64(r.Remaining()) {
		r.pos = start

		return h, nil, fmt.Errorf("%w: %s at 0x%x declares %d bytes, %d left",
			ErrTruncated, id, start, size, len(r.buf)-start-8)
	}

	payload, _ := r.Bytes(int(size))
	if r.Padded && size%2 == 1 && r.Remaining() > 0 {
		r.pos++
	}

	return h, payload, nil
}

// Record is a view over a fixed-size, already length checked record.
// Accessors take offsets relative to the record start.
type Record struct {
	b     []byte
	order binary.ByteOrder
}

// NewRecord wraps b with the given byte order.
func NewRecord(b []byte, order binary.ByteOrder) Record {
	if order == nil {
		order = binary.LittleEndian
	}

	return Record{b: b, order: order}
}

func (r Record) Len() int             { return len(r.b) }
func (r Record) Raw() []byte          { return r.b }
func (r Record) U8(off int) uint8     { return r.b[off] }
func (r Record) I8(off int) int8      { return int8(r.b[off]) }
func (r Record) U16(off int) uint16   { return r.order.Uint16(r.b[off:]) }
func (r Record) I16(off int) int16    { return int16(r.order.Uint16(r.b[off:])) }
func (r Record) U32(off int) uint32   { return r.order.Uint32(r.b[off:]) }
func (r Record) I32(off int) int32    { return int32(r.order.Uint32(r.b[off:])) }
