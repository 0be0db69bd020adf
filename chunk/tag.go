// SPDX-License-Identifier: EPL-2.0

package chunk

// Tag is a four character chunk code as it appears in the byte stream.
type Tag [4]byte

// NewTag builds a Tag from the first four bytes of s, space padded.
func NewTag(s string) Tag {
	t := Tag{' ', ' ', ' ', ' '}
	copy(t[:], s)

	return t
}

func (t Tag) String() string { return string(t[:]) }

// Reverse returns the tag with its bytes in the opposite order, the way a
// little-endian writer lays out a big-endian code.
func (t Tag) Reverse() Tag {
	return Tag{t[3], t[2], t[1], t[0]}
}
