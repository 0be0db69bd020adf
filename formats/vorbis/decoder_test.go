// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// mockOggVorbisReader hands out interleaved values in whole frames, like
// oggvorbis.Reader.
type mockOggVorbisReader struct {
	sampleRate   int
	channels     int
	samples      []float32
	offset       int
	returnErrors bool
}

func (m *mockOggVorbisReader) SampleRate() int { return m.sampleRate }
func (m *mockOggVorbisReader) Channels() int   { return m.channels }

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	framesToRead := min(len(buf)/m.channels, (len(m.samples)-m.offset)/m.channels)
	samplesToRead := framesToRead * m.channels
	copy(buf, m.samples[m.offset:m.offset+samplesToRead])
	m.offset += samplesToRead

	if m.offset >= len(m.samples) {
		return samplesToRead, io.EOF
	}

	return samplesToRead, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not Ogg Vorbis data")))
	if !errors.Is(err, ErrNotVorbis) {
		t.Errorf("Decode() error = %v, want ErrNotVorbis", err)
	}
}

func TestPCMDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	if _, err := (PCMDecoder{}).Decode([]byte("OggS but not really"), 10, 1); err == nil {
		t.Error("Decode() error = nil, want error")
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	testSamples := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}
	src := newSource(&mockOggVorbisReader{sampleRate: 8000, channels: 2, samples: testSamples})

	dst := make([]float32, 4)

	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 4 {
		t.Errorf("ReadSamples() n = %d, want 4", n)
	}

	for i := range n {
		if dst[i] != testSamples[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], testSamples[i])
		}
	}

	n, err = src.ReadSamples(dst)
	if err != io.EOF || n != 2 {
		t.Errorf("second ReadSamples() = %d, %v, want 2, EOF", n, err)
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := newSource(&mockOggVorbisReader{sampleRate: 8000, channels: 1, samples: make([]float32, 10)})

	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v, want 0, nil", n, err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	src := newSource(&mockOggVorbisReader{sampleRate: 8000, channels: 1, returnErrors: true})

	if _, err := src.ReadSamples(make([]float32, 8)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want ErrUnexpectedEOF", err)
	}
}

func TestDecodePCM_PadsToDeclaredLength(t *testing.T) {
	t.Parallel()

	src := newSource(&mockOggVorbisReader{sampleRate: 48000, channels: 2, samples: []float32{0.5, -0.5, 0.25, -0.25}})

	pcm, err := decodePCM(src, 4, 2)
	if err != nil {
		t.Fatalf("decodePCM() error = %v", err)
	}

	want := []int16{16384, -16384, 8192, -8192, 0, 0, 0, 0}
	if len(pcm) != len(want) {
		t.Fatalf("len = %d, want %d", len(pcm), len(want))
	}

	for i := range want {
		if pcm[i] != want[i] {
			t.Errorf("pcm[%d] = %d, want %d", i, pcm[i], want[i])
		}
	}
}

func TestDecodePCM_Cuts(t *testing.T) {
	t.Parallel()

	src := newSource(&mockOggVorbisReader{sampleRate: 48000, channels: 1, samples: make([]float32, 100)})

	pcm, err := decodePCM(src, 10, 1)
	if err != nil {
		t.Fatalf("decodePCM() error = %v", err)
	}

	if len(pcm) != 10 {
		t.Errorf("len = %d, want 10", len(pcm))
	}
}

func TestDecodePCM_ChannelMismatch(t *testing.T) {
	t.Parallel()

	src := newSource(&mockOggVorbisReader{sampleRate: 48000, channels: 2, samples: make([]float32, 8)})

	if _, err := decodePCM(src, 4, 1); !errors.Is(err, ErrChannelMismatch) {
		t.Errorf("decodePCM() error = %v, want ErrChannelMismatch", err)
	}
}
