// SPDX-License-Identifier: EPL-2.0

// Package sgxd2sf2 converts SGXD sound banks into SoundFont 2 files.
//
// SGXD is the sample bank container used by PlayStation 3 and PSP titles.
// A bank holds waveforms (raw PCM, PS-ADPCM, Ogg Vorbis and a few codecs
// that need external decoders), tones that map key ranges onto those
// waveforms, and optional MIDI sequences.
//
// # Quick Start
//
// The simplest way to convert a bank is ConvertToSF2:
//
//	data, _ := os.ReadFile("bgm.sgd")
//
//	sf, err := sgxd2sf2.ConvertToSF2(data, sf2.DefaultOptions())
//	if err != nil {
//		return err
//	}
//
//	os.WriteFile("bgm.sf2", sf, 0o644)
//
// Single waveforms and sequences can be pulled out the same way:
//
//	wavBytes, _ := sgxd2sf2.ExtractWaveform(data, 0, "wav")
//	midBytes, _ := sgxd2sf2.ExtractSequence(data, 0, 0)
//
// # Converter
//
// Converter shares settings between calls. Set Codecs to plug decoders for
// ATRAC3plus or AC-3 streams, and Log to see what was skipped:
//
//	reg := codec.Default().WithATRAC3Plus(myDecoder)
//	conv := &sgxd2sf2.Converter{Codecs: reg, Log: logrus.StandardLogger()}
//
// A bank with damaged chunks still converts; every skipped record is logged
// as a warning and listed in sgxd.SoundBank.Problems.
//
// # Packages
//
//   - sgxd: container decoder
//   - sf2: SoundFont builder and writer
//   - codec, codec/adpcm: waveform codecs
//   - formats/wav, formats/aiff: single waveform export
//   - formats/midi: RAWMIDI sequence export
//   - formats/vorbis: Ogg Vorbis stream decoding
//   - audio: downmixing and resampling
//   - chunk: tagged chunk reader and writer shared by all formats
package sgxd2sf2
