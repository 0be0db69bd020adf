// SPDX-License-Identifier: EPL-2.0

package sgxd

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/ik5/sgxd2sf2/chunk"
	"github.com/ik5/sgxd2sf2/codec"
	"github.com/ik5/sgxd2sf2/internal/names"
)

const (
	toneRecordSize     = 0x38
	waveRecordSize     = 0x38
	sequenceHeaderSize = 0x14
)

var (
	tagRGND = chunk.NewTag("RGND")
	tagSEQD = chunk.NewTag("SEQD")
	tagWAVE = chunk.NewTag("WAVE")
)

// Decoder turns SGXD bytes into a SoundBank. The zero value is ready to use:
// it decodes with codec.Default() and logs nothing.
type Decoder struct {
	// Codecs decodes waveform streams. nil means codec.Default().
	Codecs *codec.Registry
	// Log receives debug output for skipped data and a warning per problem.
	Log logrus.FieldLogger
}

// Decode decodes data with a zero Decoder.
func Decode(data []byte) (*SoundBank, error) {
	return (&Decoder{}).Decode(data)
}

// Decode parses a whole SGXD file held in data. An error is returned only
// for an unusable header (ErrFormat); damage further in is recorded in
// SoundBank.Problems and the rest of the bank is still returned.
func (d *Decoder) Decode(data []byte) (*SoundBank, error) {
	h, err := parseHeader(data)
	if err != nil {
		return nil, err
	}

	s := &decodeState{
		buf:    data,
		hdr:    h,
		codecs: d.Codecs,
		log:    d.Log,
		bank:   &SoundBank{},
	}

	if s.codecs == nil {
		s.codecs = codec.Default()
	}

	if s.log == nil {
		s.log = discardLogger()
	}

	s.log = s.log.WithField("component", "sgxd")
	s.bank.Name = s.name(h.nameOffset, "bank name")
	s.readChunks()

	return s.bank, nil
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

type decodeState struct {
	buf    []byte
	hdr    header
	codecs *codec.Registry
	log    logrus.FieldLogger
	bank   *SoundBank
}

func (s *decodeState) problem(err error) {
	s.log.WithError(err).Warn("decode problem")
	s.bank.Problems = append(s.bank.Problems, err)
}

// reader returns a cursor over the whole file at off.
func (s *decodeState) reader(off int) (*chunk.Reader, error) {
	r := chunk.NewReader(s.buf, s.hdr.order)
	r.Reversed = s.hdr.reversed

	if err := r.Seek(off); err != nil {
		return nil, err
	}

	return r, nil
}

// name resolves an absolute name offset. Offset 0 means no name.
func (s *decodeState) name(off uint32, what string) string {
	if off == 0 {
		return ""
	}

	r, _ := s.reader(0)

	raw, err := r.CString(int(off))
	if err != nil {
		s.problem(fmt.Errorf("%w: %s at 0x%x: %w", ErrUnresolvedReference, what, off, err))

		return ""
	}

	return names.Decode(raw)
}

func (s *decodeState) readChunks() {
	end := s.hdr.chunksEnd(len(s.buf))
	r, _ := s.reader(headerSize)

	for r.Pos()+8 <= end {
		h, payload, err := r.ReadChunk()
		if err != nil {
			s.problem(fmt.Errorf("%w: %w", ErrTruncated, err))

			return
		}

		log := s.log.WithFields(logrus.Fields{"chunk": h.ID.String(), "offset": h.Offset, "size": h.Size})

		switch h.ID {
		case tagRGND:
			log.Debug("reading regions")
			s.readRegions(payload)
		case tagSEQD:
			log.Debug("reading sequences")
			s.readSequences(payload)
		case tagWAVE:
			log.Debug("reading waveforms")
			s.readWaveforms(payload)
		default:
			log.Debug("skipping chunk")
		}
	}
}

func (s *decodeState) payloadReader(payload []byte) *chunk.Reader {
	return chunk.NewReader(payload, s.hdr.order)
}

func (s *decodeState) readRegions(payload []byte) {
	r := s.payloadReader(payload)

	flag, err := r.Uint32()
	if err != nil {
		s.problem(fmt.Errorf("RGND: %w: %w", ErrTruncated, err))

		return
	}

	count, err := r.Uint32()
	if err != nil {
		s.problem(fmt.Errorf("RGND: %w: %w", ErrTruncated, err))

		return
	}

	for i := range count {
		size, err1 := r.Uint32()
		off, err2 := r.Uint32()

		if err := errors.Join(err1, err2); err != nil {
			s.problem(fmt.Errorf("RGND region %d of %d: %w: %w", i, count, ErrTruncated, err))

			return
		}

		s.bank.Regions = append(s.bank.Regions, s.readRegion(int(i), flag, size, off))
	}
}

func (s *decodeState) readRegion(index int, flag, size, off uint32) RegionGroup {
	g := RegionGroup{Flag: flag}

	if size == 0 || off == 0 {
		return g
	}

	if uint64(off) >= uint64(len(s.buf)) {
		s.problem(fmt.Errorf("RGND region %d: %w: offset 0x%x", index, ErrUnresolvedReference, off))

		return g
	}

	r, _ := s.reader(int(off))

	for consumed := 0; consumed < int(size); {
		start := r.Pos()

		rec, err := r.Record(toneRecordSize)
		if err != nil {
			s.problem(fmt.Errorf("RGND region %d tone %d: %w: %w", index, len(g.Tones), ErrTruncated, err))

			break
		}

		g.Tones = append(g.Tones, s.tone(rec))

		step := int(rec.U32(0x08))
		if step < toneRecordSize {
			step = toneRecordSize
		}

		consumed += step

		if consumed < int(size) {
			if err := r.Seek(start + step); err != nil {
				s.problem(fmt.Errorf("RGND region %d: %w: %w", index, ErrTruncated, err))

				break
			}
		}
	}

	return g
}

func (s *decodeState) tone(rec chunk.Record) Tone {
	t := Tone{
		Flag:           rec.U32(0x00),
		Priority:       rec.U8(0x0C),
		ExclusiveGroup: rec.U8(0x0D),
		BankMode:       rec.U8(0x0E),
		BankID:         rec.U8(0x0F),
		EffectLevel:    rec.U32(0x10),
		NoteLow:        rec.U8(0x14),
		NoteHigh:       rec.U8(0x15),
		RootKey:        rec.U8(0x16),
		FineTune:       rec.I8(0x17),
		PitchBend:      rec.I16(0x18),
		Volume1:        rec.I16(0x1A),
		Volume2:        rec.I16(0x1C),
		WetLevel:       rec.I16(0x1E),
		DryLevel:       rec.I16(0x20),
		Decay:          rec.U32(0x24),
		Release:        rec.U32(0x28),
		Volume:         rec.U8(0x2C),
		Pan:            rec.U8(0x2D),
		BendLow:        rec.U8(0x2E),
		BendHigh:       rec.U8(0x2F),
		SampleID:       rec.U32(0x30),
	}

	if t.NoteLow > t.NoteHigh {
		t.NoteLow, t.NoteHigh = t.NoteHigh, t.NoteLow
	}

	t.Name = s.name(rec.U32(0x04), "tone name")

	return t
}

func (s *decodeState) readSequences(payload []byte) {
	r := s.payloadReader(payload)

	if err := r.Skip(4); err != nil {
		s.problem(fmt.Errorf("SEQD: %w: %w", ErrTruncated, err))

		return
	}

	count, err := r.Uint32()
	if err != nil {
		s.problem(fmt.Errorf("SEQD: %w: %w", ErrTruncated, err))

		return
	}

	for i := range count {
		off, err := r.Uint32()
		if err != nil {
			s.problem(fmt.Errorf("SEQD group %d of %d: %w: %w", i, count, ErrTruncated, err))

			return
		}

		s.bank.SequenceGroups = append(s.bank.SequenceGroups, s.readSequenceGroup(int(i), off))
	}
}

func (s *decodeState) readSequenceGroup(index int, off uint32) SequenceGroup {
	var g SequenceGroup

	if off == 0 {
		return g
	}

	r, err := s.reader(int(off))
	if err != nil || uint64(off) >= uint64(len(s.buf)) {
		s.problem(fmt.Errorf("SEQD group %d: %w: offset 0x%x", index, ErrUnresolvedReference, off))

		return g
	}

	flag, err1 := r.Uint32()
	count, err2 := r.Uint32()

	if err := errors.Join(err1, err2); err != nil {
		s.problem(fmt.Errorf("SEQD group %d: %w: %w", index, ErrTruncated, err))

		return g
	}

	g.Flag = flag

	for i := range count {
		seqOff, err := r.Uint32()
		if err != nil {
			s.problem(fmt.Errorf("SEQD group %d sequence %d of %d: %w: %w", index, i, count, ErrTruncated, err))

			break
		}

		if seqOff == 0 {
			continue
		}

		seq, err := s.sequence(seqOff)
		if err != nil {
			s.problem(fmt.Errorf("SEQD group %d sequence %d: %w", index, i, err))

			continue
		}

		g.Sequences = append(g.Sequences, seq)
	}

	return g
}

func (s *decodeState) sequence(off uint32) (Sequence, error) {
	if uint64(off) >= uint64(len(s.buf)) {
		return Sequence{}, fmt.Errorf("%w: offset 0x%x", ErrUnresolvedReference, off)
	}

	r, _ := s.reader(int(off))

	rec, err := r.Record(sequenceHeaderSize)
	if err != nil {
		return Sequence{}, fmt.Errorf("%w: %w", ErrTruncated, err)
	}

	data, err := r.Bytes(int(rec.U32(0x10)))
	if err != nil {
		return Sequence{}, fmt.Errorf("%w: payload: %w", ErrTruncated, err)
	}

	return Sequence{
		Flag:        rec.U32(0x00),
		Name:        s.name(rec.U32(0x04), "sequence name"),
		Format:      Format(rec.U8(0x08)),
		Division:    rec.U16(0x0A),
		VolumeLeft:  rec.U8(0x0C),
		VolumeRight: rec.U8(0x0D),
		Data:        bytes.Clone(data),
	}, nil
}

func (s *decodeState) readWaveforms(payload []byte) {
	r := s.payloadReader(payload)

	if err := r.Skip(4); err != nil {
		s.problem(fmt.Errorf("WAVE: %w: %w", ErrTruncated, err))

		return
	}

	count, err := r.Uint32()
	if err != nil {
		s.problem(fmt.Errorf("WAVE: %w: %w", ErrTruncated, err))

		return
	}

	// the whole table is read before any stream is decoded
	for i := range count {
		rec, err := r.Record(waveRecordSize)
		if err != nil {
			s.problem(fmt.Errorf("WAVE record %d of %d: %w: %w", i, count, ErrTruncated, err))

			break
		}

		s.bank.Waveforms = append(s.bank.Waveforms, s.waveform(rec))
	}

	for i := range s.bank.Waveforms {
		s.decodeStream(i, &s.bank.Waveforms[i])
	}
}

func (s *decodeState) waveform(rec chunk.Record) Waveform {
	return Waveform{
		Flag:           rec.U32(0x00),
		Name:           s.name(rec.U32(0x04), "waveform name"),
		Codec:          codec.ID(rec.U8(0x08)),
		Channels:       rec.U8(0x09),
		LoopCount:      rec.U8(0x0A),
		SampleRate:     rec.U32(0x0C),
		InfoType:       rec.U32(0x10),
		InfoValue:      rec.U32(0x14),
		VolumeLeft:     rec.I16(0x18),
		VolumeRight:    rec.I16(0x1A),
		LoopPosition:   rec.U32(0x1C),
		SampleCount:    rec.U32(0x20),
		LoopBegin:      rec.I32(0x24),
		LoopEnd:        rec.I32(0x28),
		StreamSize:     rec.U32(0x2C),
		StreamOffset:   rec.U32(0x30),
		StreamSizeFull: rec.U32(0x34),
	}
}

// stream locates a waveform's bytes in the data segment. A stream running
// past the end of the file is cut and reported.
func (s *decodeState) stream(index int, w *Waveform) ([]byte, bool) {
	size := uint64(w.StreamSize)
	if size == 0 {
		size = uint64(w.StreamSizeFull)
	}

	start := uint64(s.hdr.dataOffset) + uint64(w.StreamOffset)
	if start >= uint64(len(s.buf)) {
		s.problem(fmt.Errorf("WAVE %d: %w: stream at 0x%x", index, ErrUnresolvedReference, start))

		return nil, false
	}

	end := start + size
	if end > uint64(len(s.buf)) {
		s.problem(fmt.Errorf("WAVE %d: %w: stream 0x%x+0x%x runs past 0x%x",
			index, ErrTruncated, start, size, len(s.buf)))

		end = uint64(len(s.buf))
	}

	return s.buf[start:end], true
}

func (s *decodeState) decodeStream(index int, w *Waveform) {
	res, ok := s.decodePCM(index, w)
	if !ok {
		res = codec.Result{LoopStart: -1, LoopEnd: -1}
	}

	if !silent(res.PCM) {
		w.PCM = res.PCM
	}

	applyLoopDefaults(w, res.LoopStart, res.LoopEnd)
}

func (s *decodeState) decodePCM(index int, w *Waveform) (codec.Result, bool) {
	data, ok := s.stream(index, w)
	if !ok {
		return codec.Result{}, false
	}

	if limit := codec.Capacity(w.Codec, len(data), w.ChannelCount()); uint64(w.SampleCount) > uint64(limit) {
		s.problem(fmt.Errorf("WAVE %d: %w: %d samples declared, stream holds %d",
			index, ErrTruncated, w.SampleCount, limit))

		w.SampleCount = uint32(limit)
	}

	res, err := s.codecs.Decode(w.Codec, data, int(w.SampleCount), w.ChannelCount())
	if err != nil {
		s.problem(fmt.Errorf("WAVE %d: %w", index, err))

		return codec.Result{}, false
	}

	s.log.WithFields(logrus.Fields{
		"waveform": index,
		"codec":    w.Codec.String(),
		"samples":  len(res.PCM),
	}).Debug("decoded waveform")

	return res, true
}

// applyLoopDefaults fills unset (negative) loop points from the stream
// markers, then from the sample count.
func applyLoopDefaults(w *Waveform, markStart, markEnd int) {
	if w.LoopBegin < 0 {
		w.LoopBegin = int32(w.SampleCount)
		if markStart >= 0 {
			w.LoopBegin = int32(markStart)
		}
	}

	if w.LoopEnd < 0 {
		w.LoopEnd = int32(w.SampleCount)
		if markEnd >= 0 {
			w.LoopEnd = int32(markEnd)
		}
	}
}

func silent(pcm []int16) bool {
	for _, v := range pcm {
		if v != 0 {
			return false
		}
	}

	return true
}
