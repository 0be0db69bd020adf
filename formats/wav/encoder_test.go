// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/go-audio/wav"

	"github.com/ik5/sgxd2sf2/chunk"
	"github.com/ik5/sgxd2sf2/sgxd"
)

func looped() *sgxd.Waveform {
	return &sgxd.Waveform{
		Name: "loop", Channels: 2, SampleRate: 22050, SampleCount: 4,
		LoopBegin: 1, LoopEnd: 3,
		PCM: []int16{100, -100, 200, -200, 300, -300, 400, -400},
	}
}

func TestEncodeWaveform_DecodesWithGoAudio(t *testing.T) {
	t.Parallel()

	w := looped()

	out, err := EncodeWaveform(w)
	if err != nil {
		t.Fatalf("EncodeWaveform() error = %v", err)
	}

	dec := wav.NewDecoder(bytes.NewReader(out))
	if !dec.IsValidFile() {
		t.Fatal("output is not a valid WAV file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer() error = %v", err)
	}

	if buf.Format.NumChannels != 2 || buf.Format.SampleRate != 22050 {
		t.Errorf("format = %+v", buf.Format)
	}

	if len(buf.Data) != len(w.PCM) {
		t.Fatalf("len(Data) = %d, want %d", len(buf.Data), len(w.PCM))
	}

	for i, v := range w.PCM {
		if buf.Data[i] != int(v) {
			t.Errorf("Data[%d] = %d, want %d", i, buf.Data[i], v)
		}
	}
}

func TestEncodeWaveform_SamplerChunk(t *testing.T) {
	t.Parallel()

	out, err := EncodeWaveform(looped())
	if err != nil {
		t.Fatalf("EncodeWaveform() error = %v", err)
	}

	if size := binary.LittleEndian.Uint32(out[4:]); int(size) != len(out)-8 {
		t.Errorf("RIFF size = %d, want %d", size, len(out)-8)
	}

	r := chunk.NewReader(out[12:], nil)
	r.Padded = true

	var smpl []byte

	for r.Remaining() >= 8 {
		h, payload, err := r.ReadChunk()
		if err != nil {
			t.Fatalf("ReadChunk() error = %v", err)
		}

		if h.ID.String() == "smpl" {
			smpl = payload
		}
	}

	if len(smpl) != 60 {
		t.Fatalf("smpl = %d bytes, want 60", len(smpl))
	}

	rec := chunk.NewRecord(smpl, nil)
	if rec.U32(8) != 1_000_000_000/22050 || rec.U32(12) != 60 || rec.U32(28) != 1 {
		t.Errorf("smpl header = % x", smpl[:36])
	}

	if start, end := rec.U32(36+8), rec.U32(36+12); start != 1 || end != 2 {
		t.Errorf("loop = %d..%d, want 1..2", start, end)
	}
}

func TestEncodeWaveform_Unlooped(t *testing.T) {
	t.Parallel()

	w := looped()
	w.LoopBegin, w.LoopEnd = 4, 4

	out, err := EncodeWaveform(w)
	if err != nil {
		t.Fatalf("EncodeWaveform() error = %v", err)
	}

	if bytes.Contains(out, []byte("smpl")) {
		t.Error("unlooped waveform has a smpl chunk")
	}
}

func TestEncodeWaveform_Errors(t *testing.T) {
	t.Parallel()

	if _, err := EncodeWaveform(&sgxd.Waveform{Name: "silent"}); !errors.Is(err, ErrNoPCM) {
		t.Errorf("error = %v, want ErrNoPCM", err)
	}

	wide := &sgxd.Waveform{Channels: 12, PCM: make([]int16, 24)}
	if _, err := EncodeWaveform(wide); !errors.Is(err, ErrUnsupportedChannels) {
		t.Errorf("error = %v, want ErrUnsupportedChannels", err)
	}
}
