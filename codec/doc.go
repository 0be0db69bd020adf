// SPDX-License-Identifier: EPL-2.0

// Package codec decodes the waveform streams stored in a sound bank.
//
// Each waveform record names its codec with a one byte ID. A Registry maps
// those ids to Decoders at run time, so a codec without a decoder degrades
// to ErrUnsupportedCodec for that one waveform instead of failing the bank.
//
// Default returns a registry with everything this module can decode itself:
//
//   - PCM16LE / PCM16BE: raw 16-bit samples
//   - ADPCM / ADPCMShort: VAG/PS-ADPCM through package codec/adpcm
//   - Vorbis: Ogg Vorbis through package formats/vorbis
//   - AC3: only streams that are really Ogg (they start with "OggS")
//   - ATRAC3Plus: the RIFF wrapper is checked, decoding needs an external
//     decoder
//
// External decoders plug in through the ExternalDecoder contract:
//
//	reg := codec.Default().WithATRAC3Plus(myAtracDecoder)
//	res, err := reg.Decode(codec.ATRAC3Plus, stream, frames, channels)
//	if errors.Is(err, codec.ErrUnsupportedCodec) {
//	    // keep the waveform silent
//	}
//
// Result.LoopStart and Result.LoopEnd carry loop markers found inside the
// stream (ADPCM flags); they are -1 when the stream has none.
package codec
