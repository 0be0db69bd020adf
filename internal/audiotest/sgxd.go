// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"maps"
	"slices"
)

// ToneSpec describes one tone record for BankSpec.
type ToneSpec struct {
	Name           string
	Flag           uint32
	Priority       uint8
	ExclusiveGroup uint8
	BankMode       uint8
	BankID         uint8
	EffectLevel    uint32
	NoteLow        uint8
	NoteHigh       uint8
	RootKey        uint8
	FineTune       int8
	PitchBend      int16
	Volume1        int16
	Volume2        int16
	Wet            int16
	Dry            int16
	Decay          uint32
	Release        uint32
	Volume         uint8
	Pan            uint8
	BendLow        uint8
	BendHigh       uint8
	SampleID       uint32
	// RecordSize overrides the declared record size; records larger than
	// 0x38 bytes are zero filled.
	RecordSize uint32
}

// SequenceSpec describes one sequence record.
type SequenceSpec struct {
	Name        string
	Flag        uint32
	Format      uint8
	Division    uint16
	VolumeLeft  uint8
	VolumeRight uint8
	Data        []byte
}

// WaveSpec describes one waveform record and its stream.
type WaveSpec struct {
	Name         string
	Flag         uint32
	Codec        uint8
	Channels     uint8
	LoopCount    uint8
	SampleRate   uint32
	InfoType     uint32
	InfoValue    uint32
	VolumeLeft   int16
	VolumeRight  int16
	LoopPosition uint32
	SampleCount  uint32
	LoopBegin    int32
	LoopEnd      int32
	Stream       []byte
	// SizeInFullOnly stores the stream size in the padded size field and
	// leaves the plain one at zero.
	SizeInFullOnly bool
}

// BankSpec lays out a complete SGXD file. Chunks are written in the order
// NAME, RGND, SEQD, WAVE, followed by the data segment.
type BankSpec struct {
	// BigEndian writes the "DXGS" variant: big-endian integers and
	// reversed tags.
	BigEndian      bool
	Name           string
	Regions        [][]ToneSpec
	SequenceGroups [][]SequenceSpec
	Waves          []WaveSpec
	// TruncateWave makes the WAVE chunk declare a length running past the
	// end of the file.
	TruncateWave bool
	// Extra chunks written after WAVE, keyed by tag.
	Extra map[string][]byte
}

const (
	toneRecordSize = 0x38
	waveRecordSize = 0x38
	seqHeaderSize  = 20
)

type putter struct {
	order binary.AppendByteOrder
	b     []byte
}

func (p *putter) u8(v uint8)   { p.b = append(p.b, v) }
func (p *putter) u16(v uint16) { p.b = p.order.AppendUint16(p.b, v) }
func (p *putter) u32(v uint32) { p.b = p.order.AppendUint32(p.b, v) }
func (p *putter) i16(v int16)  { p.u16(uint16(v)) }
func (p *putter) i32(v int32)  { p.u32(uint32(v)) }

func (p *putter) align(n int) {
	for len(p.b)%n != 0 {
		p.b = append(p.b, 0)
	}
}

func (p *putter) tag(s string, reversed bool) {
	t := []byte(s)
	if reversed {
		t[0], t[1], t[2], t[3] = t[3], t[2], t[1], t[0]
	}

	p.b = append(p.b, t...)
}

// Bytes serializes the bank.
func (s BankSpec) Bytes() []byte {
	var order binary.AppendByteOrder = binary.LittleEndian
	if s.BigEndian {
		order = binary.BigEndian
	}

	out := &putter{order: order, b: make([]byte, 16, 4096)}

	// NAME: every string the records point at
	nameStart := len(out.b)
	names := &putter{order: order}
	nameOffsets := map[string]uint32{}

	addName := func(n string) {
		if _, ok := nameOffsets[n]; ok || n == "" {
			return
		}

		nameOffsets[n] = uint32(nameStart + 8 + len(names.b))
		names.b = append(names.b, n...)
		names.b = append(names.b, 0)
	}

	addName(s.Name)

	for _, region := range s.Regions {
		for _, tone := range region {
			addName(tone.Name)
		}
	}

	for _, group := range s.SequenceGroups {
		for _, seq := range group {
			addName(seq.Name)
		}
	}

	for _, w := range s.Waves {
		addName(w.Name)
	}

	names.align(4)
	s.chunk(out, "NAME", names.b, 0)

	s.chunk(out, "RGND", s.rgnd(order, len(out.b)+8, nameOffsets), 0)
	s.chunk(out, "SEQD", s.seqd(order, len(out.b)+8, nameOffsets), 0)

	// data segment layout is known before WAVE is written
	waveLen := 8 + len(s.Waves)*waveRecordSize
	extraLen := 0

	for _, data := range s.Extra {
		extraLen += 8 + len(data)
	}

	dataOffset := len(out.b) + 8 + waveLen + extraLen
	dataOffset = (dataOffset + 15) &^ 15

	streams := &putter{order: order}
	streamOffsets := make([]uint32, len(s.Waves))

	for i, w := range s.Waves {
		streamOffsets[i] = uint32(len(streams.b))
		streams.b = append(streams.b, w.Stream...)
		streams.align(16)
	}

	wave := s.wave(order, streamOffsets, nameOffsets)

	declared := uint32(0)
	if s.TruncateWave {
		declared = 0x7FFFFFF0
	}

	s.chunk(out, "WAVE", wave, declared)

	for _, tag := range slices.Sorted(maps.Keys(s.Extra)) {
		s.chunk(out, tag, s.Extra[tag], 0)
	}

	out.align(16)
	out.b = append(out.b, streams.b...)

	head := &putter{order: order}
	if s.BigEndian {
		head.tag("DXGS", false)
	} else {
		head.tag("SGXD", false)
	}

	head.u32(nameOffsets[s.Name])
	head.u32(uint32(dataOffset))
	head.u32(uint32(len(streams.b)) | 0x80000000)
	copy(out.b, head.b)

	return out.b
}

func (s BankSpec) chunk(out *putter, tag string, payload []byte, declared uint32) {
	out.tag(tag, s.BigEndian)

	if declared == 0 {
		declared = uint32(len(payload))
	}

	out.u32(declared)
	out.b = append(out.b, payload...)
}

func (s BankSpec) rgnd(order binary.AppendByteOrder, base int, names map[string]uint32) []byte {
	p := &putter{order: order}
	p.u32(0)
	p.u32(uint32(len(s.Regions)))

	recordsAt := 8 + 8*len(s.Regions)
	records := &putter{order: order}

	for _, region := range s.Regions {
		start := len(records.b)

		for _, tone := range region {
			writeTone(records, tone, names[tone.Name])
		}

		size := len(records.b) - start
		off := uint32(0)

		if len(region) > 0 {
			off = uint32(base + recordsAt + start)
		}

		p.u32(uint32(size))
		p.u32(off)
	}

	p.b = append(p.b, records.b...)

	return p.b
}

func writeTone(p *putter, t ToneSpec, name uint32) {
	start := len(p.b)
	size := t.RecordSize

	if size == 0 {
		size = toneRecordSize
	}

	p.u32(t.Flag)
	p.u32(name)
	p.u32(size)
	p.u8(t.Priority)
	p.u8(t.ExclusiveGroup)
	p.u8(t.BankMode)
	p.u8(t.BankID)
	p.u32(t.EffectLevel)
	p.u8(t.NoteLow)
	p.u8(t.NoteHigh)
	p.u8(t.RootKey)
	p.u8(uint8(t.FineTune))
	p.i16(t.PitchBend)
	p.i16(t.Volume1)
	p.i16(t.Volume2)
	p.i16(t.Wet)
	p.i16(t.Dry)
	p.u16(0)
	p.u32(t.Decay)
	p.u32(t.Release)
	p.u8(t.Volume)
	p.u8(t.Pan)
	p.u8(t.BendLow)
	p.u8(t.BendHigh)
	p.u32(t.SampleID)
	p.u32(0)

	written := max(int(size), toneRecordSize)
	for len(p.b)-start < written {
		p.b = append(p.b, 0)
	}
}

func (s BankSpec) seqd(order binary.AppendByteOrder, base int, names map[string]uint32) []byte {
	p := &putter{order: order}
	p.u32(0)
	p.u32(uint32(len(s.SequenceGroups)))

	groupsAt := 8 + 4*len(s.SequenceGroups)
	groups := &putter{order: order}
	offsets := make([]uint32, len(s.SequenceGroups))

	for g, group := range s.SequenceGroups {
		if len(group) == 0 {
			continue
		}

		offsets[g] = uint32(base + groupsAt + len(groups.b))

		groups.u32(0)
		groups.u32(uint32(len(group)))

		at := base + groupsAt + len(groups.b) + 4*len(group)
		for _, seq := range group {
			groups.u32(uint32(at))
			at += (seqHeaderSize + len(seq.Data) + 3) &^ 3
		}

		for _, seq := range group {
			groups.u32(seq.Flag)
			groups.u32(names[seq.Name])
			groups.u8(seq.Format)
			groups.u8(0)
			groups.u16(seq.Division)
			groups.u8(seq.VolumeLeft)
			groups.u8(seq.VolumeRight)
			groups.u16(0)
			groups.u32(uint32(len(seq.Data)))
			groups.b = append(groups.b, seq.Data...)
			groups.align(4)
		}
	}

	for _, off := range offsets {
		p.u32(off)
	}

	p.b = append(p.b, groups.b...)

	return p.b
}

func (s BankSpec) wave(order binary.AppendByteOrder, streamOffsets []uint32, names map[string]uint32) []byte {
	p := &putter{order: order}
	p.u32(0)
	p.u32(uint32(len(s.Waves)))

	for i, w := range s.Waves {
		p.u32(w.Flag)
		p.u32(names[w.Name])
		p.u8(w.Codec)
		p.u8(w.Channels)
		p.u8(w.LoopCount)
		p.u8(0)
		p.u32(w.SampleRate)
		p.u32(w.InfoType)
		p.u32(w.InfoValue)
		p.i16(w.VolumeLeft)
		p.i16(w.VolumeRight)
		p.u32(w.LoopPosition)
		p.u32(w.SampleCount)
		p.i32(w.LoopBegin)
		p.i32(w.LoopEnd)

		size := uint32(len(w.Stream))
		if w.SizeInFullOnly {
			p.u32(0)
		} else {
			p.u32(size)
		}

		p.u32(streamOffsets[i])
		p.u32((size + 15) &^ 15)
	}

	return p.b
}

// PCM16LE packs samples as little-endian 16-bit PCM.
func PCM16LE(samples ...int16) []byte {
	b := make([]byte, 0, 2*len(samples))
	for _, s := range samples {
		b = binary.LittleEndian.AppendUint16(b, uint16(s))
	}

	return b
}
