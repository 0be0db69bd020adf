// SPDX-License-Identifier: EPL-2.0

package memio

import (
	"errors"
	"io"
	"testing"
)

func TestBuffer_WriteSeekPatch(t *testing.T) {
	t.Parallel()

	b := NewBuffer(nil)

	if _, err := b.Write([]byte("RIFF\x00\x00\x00\x00WAVE")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if _, err := b.Seek(4, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}

	_, _ = b.Write([]byte{4, 0, 0, 0})

	if got := string(b.Bytes()); got != "RIFF\x04\x00\x00\x00WAVE" {
		t.Errorf("Bytes() = %q", got)
	}
}

func TestBuffer_WritePastEnd(t *testing.T) {
	t.Parallel()

	b := NewBuffer([]byte{1})

	if _, err := b.Seek(3, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}

	_, _ = b.Write([]byte{9})

	want := []byte{1, 0, 0, 9}
	got := b.Bytes()

	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("b[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestBuffer_Read(t *testing.T) {
	t.Parallel()

	b := NewBuffer([]byte("abcdef"))
	p := make([]byte, 4)

	n, err := b.Read(p)
	if n != 4 || err != nil || string(p) != "abcd" {
		t.Fatalf("Read() = %d, %v, %q", n, err, p)
	}

	if pos, _ := b.Seek(-1, io.SeekEnd); pos != 5 {
		t.Errorf("Seek(-1, end) = %d, want 5", pos)
	}

	n, _ = b.Read(p)
	if n != 1 || p[0] != 'f' {
		t.Errorf("Read() = %d, %q", n, p[:n])
	}

	if _, err := b.Read(p); err != io.EOF {
		t.Errorf("Read() at end error = %v, want EOF", err)
	}
}

func TestBuffer_SeekErrors(t *testing.T) {
	t.Parallel()

	b := NewBuffer(nil)

	if _, err := b.Seek(-1, io.SeekStart); !errors.Is(err, ErrNegativePosition) {
		t.Errorf("Seek(-1) error = %v, want ErrNegativePosition", err)
	}

	if _, err := b.Seek(0, 42); err == nil {
		t.Error("Seek(whence 42) error = nil")
	}
}
