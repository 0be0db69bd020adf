// SPDX-License-Identifier: EPL-2.0

// Package names converts the byte strings stored in sound banks into Go
// strings and back into the fixed-width ASCII fields SoundFont headers use.
package names

import (
	"strings"
	"unicode"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Decode returns raw as a string. Names holding bytes above 0x7F are
// Shift_JIS; if they do not decode as such the invalid bytes become U+FFFD.
func Decode(raw []byte) string {
	if isASCII(raw) {
		return string(raw)
	}

	s, err := japanese.ShiftJIS.NewDecoder().Bytes(raw)
	if err != nil {
		return strings.ToValidUTF8(string(raw), "�")
	}

	return string(s)
}

// Fixed returns s as a NUL padded field of width bytes. The text is folded to
// ASCII and cut so that at least one NUL terminates it.
func Fixed(s string, width int) []byte {
	field := make([]byte, width)
	if width == 0 {
		return field
	}

	copy(field[:width-1], ASCII(s))

	return field
}

// ASCII folds s to printable ASCII: compatibility forms are decomposed
// (full-width Ａ becomes A), accents dropped, and anything left outside
// ASCII replaced by '_'.
func ASCII(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder

	b.Grow(len(folded))

	for _, r := range folded {
		switch {
		case r == 0:
			return b.String()
		case r < 0x20 || r == 0x7F:
			// control characters are dropped
		case r < 0x80:
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	return b.String()
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}

	return true
}
