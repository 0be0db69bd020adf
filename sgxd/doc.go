// SPDX-License-Identifier: EPL-2.0

// Package sgxd decodes SGXD sound banks.
//
// An SGXD file starts with a 16 byte header:
//
//	0x00 magic        "SGXD" (little-endian) or "DXGS" (big-endian, tags reversed)
//	0x04 name offset  absolute offset of the bank name
//	0x08 data offset  start of the shared data segment
//	0x0C data length  top bit is a flag and is ignored
//
// Tagged sub-chunks ({tag}{u32 length}{payload}) follow until the data
// segment. Three of them are decoded, the rest are skipped:
//
//   - RGND: region groups, each a run of 0x38 byte tone records
//   - SEQD: sequence groups holding REQUEST or raw MIDI sequences
//   - WAVE: 0x38 byte waveform records; their streams live in the data
//     segment and are decoded through a codec.Registry
//
// # Decoding
//
//	bank, err := sgxd.Decode(data)
//	if err != nil {
//	    // header unusable, nothing was decoded
//	}
//	for _, p := range bank.Problems {
//	    // truncated chunks, dangling offsets, undecodable streams
//	}
//
// Only a broken header is fatal (ErrFormat). A chunk whose length runs past
// the end of the file stops sub-chunk parsing, but everything decoded before
// it is kept. Offsets pointing outside the file make the referenced entity
// absent. A waveform whose codec is unsupported keeps its record with nil PCM.
//
// Use a Decoder to supply a registry with external decoders or a logger:
//
//	dec := sgxd.Decoder{
//	    Codecs: codec.Default().WithATRAC3Plus(atrac),
//	    Log:    logrus.New(),
//	}
//	bank, err := dec.Decode(data)
//
// # Waveforms
//
// Loop points that are negative in the file are filled from loop markers in
// the ADPCM stream, and otherwise set to the sample count, which leaves the
// waveform unlooped (LoopBegin == LoopEnd). Streams that decode to silence
// get nil PCM.
//
// # Sequences
//
// Sequence payloads are kept as raw bytes. REQUEST payloads can be walked with
// ParseRequest, which builds a tree of delays, channel messages, opaque
// operations and nested groups without interpreting them; raw MIDI payloads
// are handled by package formats/midi.
package sgxd
