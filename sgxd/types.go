// SPDX-License-Identifier: EPL-2.0

package sgxd

import (
	"errors"

	"github.com/ik5/sgxd2sf2/codec"
)

// SoundBank is everything decoded from one SGXD file.
type SoundBank struct {
	Name           string
	Regions        []RegionGroup
	SequenceGroups []SequenceGroup
	Waveforms      []Waveform

	// Problems lists the non-fatal errors met while decoding. Each wraps
	// ErrTruncated, ErrUnresolvedReference or codec.ErrUnsupportedCodec.
	Problems []error
}

// Err joins Problems, or returns nil when the bank decoded cleanly.
func (b *SoundBank) Err() error {
	return errors.Join(b.Problems...)
}

// Waveform returns the waveform a tone's SampleID points at.
func (b *SoundBank) Waveform(id uint32) (*Waveform, bool) {
	if uint64(id) >= uint64(len(b.Waveforms)) {
		return nil, false
	}

	return &b.Waveforms[id], true
}

// ToneCount is the number of tones over all region groups.
func (b *SoundBank) ToneCount() int {
	n := 0
	for _, g := range b.Regions {
		n += len(g.Tones)
	}

	return n
}

// RegionGroup is one program slot. Groups missing from the file are kept
// empty so the position of every other group stays the same.
type RegionGroup struct {
	Flag  uint32
	Tones []Tone
}

// Tone maps a key range to a waveform with playback parameters.
type Tone struct {
	Flag           uint32
	Name           string
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
	WetLevel       int16
	DryLevel       int16
	// Decay and Release are the two envelope times, in hundredths of a
	// second.
	Decay    uint32
	Release  uint32
	Volume   uint8
	Pan      uint8
	BendLow  uint8
	BendHigh uint8
	SampleID uint32
}

// Format tells how a sequence payload is encoded.
type Format uint8

const (
	FormatRequest Format = 0
	FormatRawMIDI Format = 1
)

func (f Format) String() string {
	switch f {
	case FormatRequest:
		return "request"
	case FormatRawMIDI:
		return "rawmidi"
	default:
		return "unknown"
	}
}

type SequenceGroup struct {
	Flag      uint32
	Sequences []Sequence
}

type Sequence struct {
	Flag        uint32
	Name        string
	Format      Format
	Division    uint16
	VolumeLeft  uint8
	VolumeRight uint8
	Data        []byte
}

// Requests parses Data as REQUEST bytecode.
func (s *Sequence) Requests() ([]RequestNode, error) {
	return ParseRequest(s.Data)
}

// Waveform is one sample and its decoded PCM. Loop points are sample frames;
// LoopBegin == LoopEnd means the sample does not loop.
type Waveform struct {
	Flag           uint32
	Name           string
	Codec          codec.ID
	Channels       uint8
	LoopCount      uint8
	SampleRate     uint32
	InfoType       uint32
	InfoValue      uint32
	VolumeLeft     int16
	VolumeRight    int16
	LoopPosition   uint32
	// SampleCount is lowered to what the stream can hold when the record
	// declares more.
	SampleCount    uint32
	LoopBegin      int32
	LoopEnd        int32
	StreamSize     uint32
	StreamOffset   uint32
	StreamSizeFull uint32

	// PCM is interleaved 16-bit audio, nil when the stream could not be
	// decoded or was silent.
	PCM []int16
}

// Looped reports whether the waveform has a loop.
func (w *Waveform) Looped() bool {
	return w.LoopBegin != w.LoopEnd
}

// ChannelCount is Channels with 0 read as mono.
func (w *Waveform) ChannelCount() int {
	return max(int(w.Channels), 1)
}

// Frames is the number of decoded sample frames.
func (w *Waveform) Frames() int {
	return len(w.PCM) / w.ChannelCount()
}
