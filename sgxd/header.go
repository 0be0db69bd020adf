// SPDX-License-Identifier: EPL-2.0

package sgxd

import (
	"encoding/binary"
	"fmt"

	"github.com/ik5/sgxd2sf2/chunk"
)

const (
	headerSize     = 0x10
	dataLengthMask = 0x7FFFFFFF
)

var (
	magicLE = chunk.NewTag("SGXD")
	magicBE = chunk.NewTag("DXGS")
)

// header is the 16 byte global header.
type header struct {
	order      binary.ByteOrder
	reversed   bool
	nameOffset uint32
	dataOffset uint32
	dataLength uint32
}

func parseHeader(buf []byte) (header, error) {
	if len(buf) < headerSize {
		return header{}, fmt.Errorf("%w: %d bytes, header needs %d", ErrFormat, len(buf), headerSize)
	}

	var h header

	switch magic := chunk.Tag(buf[0:4]); magic {
	case magicLE:
		h.order = binary.LittleEndian
	case magicBE:
		h.order = binary.BigEndian
		h.reversed = true
	default:
		return header{}, fmt.Errorf("%w: bad magic %q", ErrFormat, magic.String())
	}

	rec := chunk.NewRecord(buf[:headerSize], h.order)
	h.nameOffset = rec.U32(0x04)
	h.dataOffset = rec.U32(0x08)
	h.dataLength = rec.U32(0x0C) & dataLengthMask

	if h.nameOffset != 0 && h.inData(h.nameOffset) {
		return header{}, fmt.Errorf("%w: name offset 0x%x inside data segment 0x%x+0x%x",
			ErrFormat, h.nameOffset, h.dataOffset, h.dataLength)
	}

	return h, nil
}

func (h header) inData(off uint32) bool {
	return uint64(off) >= uint64(h.dataOffset) && uint64(off) < uint64(h.dataOffset)+uint64(h.dataLength)
}

// chunksEnd is where the sub-chunk area stops: the data segment start, or
// the end of the buffer when the data offset does not point inside it.
func (h header) chunksEnd(size int) int {
	if h.dataOffset <= headerSize || uint64(h.dataOffset) > uint64(size) {
		return size
	}

	return int(h.dataOffset)
}
