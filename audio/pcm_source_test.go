// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"
)

func TestNewPCMSource_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := NewPCMSource(nil, 44100, 0); !errors.Is(err, ErrInvalidChannels) {
		t.Errorf("NewPCMSource(channels=0) error = %v, want ErrInvalidChannels", err)
	}

	if _, err := NewPCMSource(nil, 0, 1); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("NewPCMSource(rate=0) error = %v, want ErrInvalidRate", err)
	}
}

func TestPCMSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src, err := NewPCMSource([]int16{0, 16384, -16384, -32768}, 8000, 2)
	if err != nil {
		t.Fatalf("NewPCMSource() error = %v", err)
	}

	if src.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", src.Frames())
	}

	buf := make([]float32, 2)

	n, err := src.ReadSamples(buf)
	if err != nil || n != 2 {
		t.Fatalf("ReadSamples() = %d, %v", n, err)
	}

	if buf[0] != 0 || buf[1] != 0.5 {
		t.Errorf("first frame = %v, want [0 0.5]", buf)
	}

	n, err = src.ReadSamples(buf)
	if n != 2 || err != io.EOF {
		t.Fatalf("ReadSamples() = %d, %v, want 2, EOF", n, err)
	}

	if buf[0] != -0.5 || buf[1] != -1 {
		t.Errorf("second frame = %v, want [-0.5 -1]", buf)
	}

	if n, err := src.ReadSamples(buf); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after end = %d, %v", n, err)
	}
}

func TestPCMSource_MisalignedDst(t *testing.T) {
	t.Parallel()

	src, _ := NewPCMSource([]int16{1, 2}, 8000, 2)

	if _, err := src.ReadSamples(make([]float32, 3)); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}
