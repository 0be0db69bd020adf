// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type fakeExternal struct {
	calls int
	pcm   []int16
	err   error
}

func (f *fakeExternal) Decode(data []byte, samples, channels int) ([]int16, error) {
	f.calls++

	return f.pcm, f.err
}

func guidToWire(u uuid.UUID) []byte {
	b := make([]byte, 16)

	copy(b, u[:])
	b[0], b[1], b[2], b[3] = u[3], u[2], u[1], u[0]
	b[4], b[5] = u[5], u[4]
	b[6], b[7] = u[7], u[6]

	return b
}

// riffWave builds a RIFF WAVE file with an extensible fmt chunk carrying sub
// followed by a small data chunk.
func riffWave(form string, sub uuid.UUID) []byte {
	fmtChunk := make([]byte, 40)
	binary.LittleEndian.PutUint16(fmtChunk[0:], waveFormatExtensible)
	binary.LittleEndian.PutUint16(fmtChunk[2:], 2)
	binary.LittleEndian.PutUint32(fmtChunk[4:], 44100)
	binary.LittleEndian.PutUint16(fmtChunk[16:], 22)
	copy(fmtChunk[24:], guidToWire(sub))

	var body bytes.Buffer

	body.WriteString(form)
	body.WriteString("fact")
	_ = binary.Write(&body, binary.LittleEndian, uint32(4))
	body.Write([]byte{1, 2, 3, 4})
	body.WriteString("fmt ")
	_ = binary.Write(&body, binary.LittleEndian, uint32(len(fmtChunk)))
	body.Write(fmtChunk)
	body.WriteString("data")
	_ = binary.Write(&body, binary.LittleEndian, uint32(4))
	body.Write([]byte{9, 9, 9, 9})

	var out bytes.Buffer

	out.WriteString("RIFF")
	_ = binary.Write(&out, binary.LittleEndian, uint32(body.Len()))
	out.Write(body.Bytes())

	return out.Bytes()
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	d := PCM16(false)
	r.Register(PCM16LE, d)

	if _, ok := r.Get(PCM16LE); !ok {
		t.Fatal("Get() failed to retrieve registered decoder")
	}

	if _, ok := r.Get(ADPCM); ok {
		t.Error("Get() returned ok=true for unregistered codec")
	}
}

func TestRegistry_DecodeUnknown(t *testing.T) {
	t.Parallel()

	_, err := Default().Decode(ID(0x7F), []byte{1, 2}, 1, 1)
	if !errors.Is(err, ErrUnsupportedCodec) {
		t.Errorf("Decode() error = %v, want ErrUnsupportedCodec", err)
	}
}

func TestDefault_HasEveryCodec(t *testing.T) {
	t.Parallel()

	r := Default()

	for id := range idNames {
		if _, ok := r.Get(id); !ok {
			t.Errorf("Default() is missing %s", id)
		}
	}
}

func TestID_String(t *testing.T) {
	t.Parallel()

	if got := ADPCM.String(); got != "adpcm" {
		t.Errorf("ADPCM.String() = %q, want %q", got, "adpcm")
	}

	if got := ID(0x42).String(); got != "codec(0x42)" {
		t.Errorf("ID(0x42).String() = %q, want %q", got, "codec(0x42)")
	}
}

func TestPCM16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		big     bool
		data    []byte
		samples int
		want    []int16
	}{
		{"little endian", false, []byte{0x01, 0x00, 0xFF, 0xFF}, 2, []int16{1, -1}},
		{"big endian", true, []byte{0x00, 0x01, 0x80, 0x00}, 2, []int16{1, -32768}},
		{"pads short stream", false, []byte{0x02, 0x00}, 3, []int16{2, 0, 0}},
		{"cuts long stream", false, []byte{1, 0, 2, 0, 3, 0}, 1, []int16{1}},
		{"no declared count", false, []byte{1, 0, 2, 0, 3}, 0, []int16{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := PCM16(tt.big).Decode(tt.data, tt.samples, 1)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}

			if len(res.PCM) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(res.PCM), len(tt.want))
			}

			for i := range tt.want {
				if res.PCM[i] != tt.want[i] {
					t.Errorf("pcm[%d] = %d, want %d", i, res.PCM[i], tt.want[i])
				}
			}

			if res.LoopStart != -1 || res.LoopEnd != -1 {
				t.Errorf("loop = %d..%d, want -1..-1", res.LoopStart, res.LoopEnd)
			}
		})
	}
}

func TestPCM16_Stereo(t *testing.T) {
	t.Parallel()

	res, err := PCM16(false).Decode([]byte{1, 0, 2, 0, 3, 0, 4, 0}, 2, 2)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if len(res.PCM) != 4 || res.PCM[3] != 4 {
		t.Errorf("PCM = %v, want [1 2 3 4]", res.PCM)
	}
}

func TestADPCMDecoder_LoopMarkers(t *testing.T) {
	t.Parallel()

	data := make([]byte, 48)
	data[1] = 0x04 // loop start in block 0
	data[33] = 0x01

	res, err := Default().Decode(ADPCM, data, 84, 1)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if len(res.PCM) != 84 {
		t.Errorf("len = %d, want 84", len(res.PCM))
	}

	if res.LoopStart != 0 || res.LoopEnd != 84 {
		t.Errorf("loop = %d..%d, want 0..84", res.LoopStart, res.LoopEnd)
	}
}

func TestADPCMDecoder_InvalidChannels(t *testing.T) {
	t.Parallel()

	if _, err := Default().Decode(ADPCMShort, make([]byte, 8), 6, 0); err == nil {
		t.Error("Decode() error = nil, want error")
	}
}

func TestProbeATRAC3Plus(t *testing.T) {
	t.Parallel()

	if err := ProbeATRAC3Plus(riffWave("WAVE", ATRAC3PlusSubFormat)); err != nil {
		t.Errorf("ProbeATRAC3Plus() error = %v", err)
	}

	other := uuid.MustParse("00000001-0000-0010-8000-00aa00389b71")

	bad := map[string][]byte{
		"not riff":      []byte("this is not a riff file at all"),
		"wrong form":    riffWave("AVI ", ATRAC3PlusSubFormat),
		"wrong subtype": riffWave("WAVE", other),
	}

	for name, data := range bad {
		if err := ProbeATRAC3Plus(data); !errors.Is(err, ErrNotATRAC3Plus) {
			t.Errorf("%s: ProbeATRAC3Plus() error = %v, want ErrNotATRAC3Plus", name, err)
		}
	}
}

func TestATRAC3Plus_NeedsExternalDecoder(t *testing.T) {
	t.Parallel()

	data := riffWave("WAVE", ATRAC3PlusSubFormat)

	if _, err := Default().Decode(ATRAC3Plus, data, 4, 2); !errors.Is(err, ErrUnsupportedCodec) {
		t.Fatalf("Decode() error = %v, want ErrUnsupportedCodec", err)
	}

	ext := &fakeExternal{pcm: []int16{1, 2, 3, 4}}

	res, err := Default().WithATRAC3Plus(ext).Decode(ATRAC3Plus, data, 2, 2)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if ext.calls != 1 || len(res.PCM) != 4 {
		t.Errorf("calls = %d, pcm = %v", ext.calls, res.PCM)
	}
}

func TestATRAC3Plus_ProbeRunsFirst(t *testing.T) {
	t.Parallel()

	ext := &fakeExternal{}

	_, err := Default().WithATRAC3Plus(ext).Decode(ATRAC3Plus, []byte("garbage!"), 2, 2)
	if !errors.Is(err, ErrNotATRAC3Plus) {
		t.Errorf("Decode() error = %v, want ErrNotATRAC3Plus", err)
	}

	if ext.calls != 0 {
		t.Errorf("external decoder called %d times, want 0", ext.calls)
	}
}

func TestAC3(t *testing.T) {
	t.Parallel()

	if _, err := Default().Decode(AC3, []byte{0x0B, 0x77, 0, 0}, 4, 1); !errors.Is(err, ErrUnsupportedCodec) {
		t.Errorf("Decode() error = %v, want ErrUnsupportedCodec", err)
	}

	ext := &fakeExternal{pcm: []int16{7}}

	res, err := Default().WithAC3(ext).Decode(AC3, []byte{0x0B, 0x77, 0, 0}, 1, 1)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if len(res.PCM) != 1 || res.PCM[0] != 7 {
		t.Errorf("PCM = %v, want [7]", res.PCM)
	}
}

func TestAC3_OggGoesToVorbis(t *testing.T) {
	t.Parallel()

	ext := &fakeExternal{pcm: []int16{7}}

	// a truncated Ogg page: the Vorbis decoder rejects it, the AC-3 one is never asked
	_, err := Default().WithAC3(ext).Decode(AC3, []byte("OggS\x00\x02"), 1, 1)
	if err == nil {
		t.Error("Decode() error = nil, want vorbis error")
	}

	if ext.calls != 0 {
		t.Errorf("external decoder called %d times, want 0", ext.calls)
	}
}

func TestExternal_PropagatesError(t *testing.T) {
	t.Parallel()

	want := errors.New("boom")

	if _, err := External(&fakeExternal{err: want}).Decode(nil, 1, 1); !errors.Is(err, want) {
		t.Errorf("Decode() error = %v, want %v", err, want)
	}
}

func TestCapacity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id    ID
		n, ch int
		want  int
	}{
		{PCM16LE, 64, 2, 16},
		{PCM16BE, 7, 1, 3},
		{ADPCM, 64, 2, 56},
		{ADPCM, 47, 1, 56},
		{ADPCMShort, 16, 1, 24},
		{Vorbis, 100, 2, 3200},
		{PCM16LE, 64, 0, 0},
		{ADPCM, 0, 1, 0},
	}

	for _, tt := range tests {
		if got := Capacity(tt.id, tt.n, tt.ch); got != tt.want {
			t.Errorf("Capacity(%s, %d, %d) = %d, want %d", tt.id, tt.n, tt.ch, got, tt.want)
		}
	}
}
