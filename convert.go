// SPDX-License-Identifier: EPL-2.0

package sgxd2sf2

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ik5/sgxd2sf2/codec"
	"github.com/ik5/sgxd2sf2/formats/aiff"
	"github.com/ik5/sgxd2sf2/formats/midi"
	"github.com/ik5/sgxd2sf2/formats/wav"
	"github.com/ik5/sgxd2sf2/sf2"
	"github.com/ik5/sgxd2sf2/sgxd"
)

// WaveformWriter serializes one decoded waveform.
type WaveformWriter func(w *sgxd.Waveform) ([]byte, error)

var waveformWriters = map[string]WaveformWriter{
	"wav":  wav.EncodeWaveform,
	"aiff": aiff.EncodeWaveform,
	"aif":  aiff.EncodeWaveform,
}

// WaveformFormats lists the names accepted by ExtractWaveform.
func WaveformFormats() []string {
	names := make([]string, 0, len(waveformWriters))
	for name := range waveformWriters {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Converter runs the decode and encode steps with shared settings. The zero
// value uses the default codecs, sf2.DefaultOptions and no logging.
type Converter struct {
	Codecs  *codec.Registry
	Options *sf2.Options
	Log     logrus.FieldLogger
}

// Decode parses data into a SoundBank.
func (c *Converter) Decode(data []byte) (*sgxd.SoundBank, error) {
	dec := sgxd.Decoder{Codecs: c.Codecs, Log: c.Log}

	bank, err := dec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	return bank, nil
}

// ConvertToSF2 decodes an SGXD bank and returns it as SoundFont 2 bytes.
func (c *Converter) ConvertToSF2(data []byte) ([]byte, error) {
	bank, err := c.Decode(data)
	if err != nil {
		return nil, err
	}

	opts := sf2.DefaultOptions()
	if c.Options != nil {
		opts = *c.Options
	}

	if opts.Log == nil {
		opts.Log = c.Log
	}

	out, err := sf2.Encode(bank, opts)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return out, nil
}

// ExtractWaveform decodes the bank and returns waveform index written in
// format, one of WaveformFormats. Names are case insensitive and may carry
// a leading dot, so a file extension can be passed as is.
func (c *Converter) ExtractWaveform(data []byte, index int, format string) ([]byte, error) {
	write, ok := waveformWriters[strings.ToLower(strings.TrimPrefix(format, "."))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	bank, err := c.Decode(data)
	if err != nil {
		return nil, err
	}

	w, ok := bank.Waveform(uint32(index))
	if index < 0 || !ok {
		return nil, fmt.Errorf("%w: %d of %d", ErrWaveformIndex, index, len(bank.Waveforms))
	}

	return write(w)
}

// ExtractSequence decodes the bank and returns one RAWMIDI sequence as a
// Standard MIDI File.
func (c *Converter) ExtractSequence(data []byte, group, index int) ([]byte, error) {
	bank, err := c.Decode(data)
	if err != nil {
		return nil, err
	}

	if group < 0 || group >= len(bank.SequenceGroups) {
		return nil, fmt.Errorf("%w: group %d of %d", ErrSequenceIndex, group, len(bank.SequenceGroups))
	}

	seqs := bank.SequenceGroups[group].Sequences
	if index < 0 || index >= len(seqs) {
		return nil, fmt.Errorf("%w: sequence %d of %d in group %d", ErrSequenceIndex, index, len(seqs), group)
	}

	return midi.Encode(&seqs[index])
}

// ConvertToSF2 converts with default codecs and the given options.
func ConvertToSF2(data []byte, opts sf2.Options) ([]byte, error) {
	return (&Converter{Options: &opts}).ConvertToSF2(data)
}

// ExtractWaveform extracts with the default codecs.
func ExtractWaveform(data []byte, index int, format string) ([]byte, error) {
	return (&Converter{}).ExtractWaveform(data, index, format)
}

// ExtractSequence extracts with the default codecs.
func ExtractSequence(data []byte, group, index int) ([]byte, error) {
	return (&Converter{}).ExtractSequence(data, group, index)
}
