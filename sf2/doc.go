// SPDX-License-Identifier: EPL-2.0

// Package sf2 converts a decoded SGXD bank into a SoundFont 2 file.
//
// Conversion happens in two steps. Build turns the bank into a SoundFont
// graph:
//
//   - one Sample per waveform a tone references, shared by every tone using
//     it; multi-channel waveforms are downmixed to mono and optionally
//     resampled to Options.SampleRate
//   - one Instrument per tone with a single zone carrying key range, root
//     key, tuning, effect sends, envelope times, loop mode, exclusive class
//     and the sample; CC7 and CC10 modulators carry the tone's volume and pan
//   - one Preset per (bank id, region group) pair, with a zone per tone
//
// The bank does not store preset numbers. The program number is the region
// group position modulo 128; treat it as a naming choice of this package.
//
// WriteTo then serializes the graph:
//
//	RIFF sfbk
//	  LIST INFO  ifil isng INAM ISFT
//	  LIST sdta  smpl [sm24]
//	  LIST pdta  phdr pbag pmod pgen inst ibag imod igen shdr
//
// Every sample in smpl is followed by 46 zero samples. Header arrays end with
// the EOP, EOI and EOS records and every bag array with a terminal record
// pointing one past the last generator and modulator.
//
// Encode does both:
//
//	bank, _ := sgxd.Decode(data)
//	out, err := sf2.Encode(bank, sf2.DefaultOptions())
//	if errors.Is(err, sf2.ErrNothingToEncode) {
//	    // no tones, or every waveform was silent or undecodable
//	}
//
// Output only depends on the bank and the options, so encoding the same bank
// twice gives identical bytes.
//
// # Units
//
// Envelope times are stored by the engine in hundredths of a second and
// become timecents, 1200*log2(v/100), clamped to [-12000, 8000]. Wet and dry
// levels (0..127) become reverb and chorus sends in 0.1% units. Root keys
// above 127 are written as 127 with the difference moved into coarseTune.
//
// # Options
//
// Options can be loaded from YAML:
//
//	bank_name: Field Music
//	engine: EMU8000
//	software: my-tool
//	sample_rate: 44100
package sf2
