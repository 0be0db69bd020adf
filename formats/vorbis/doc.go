// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes the Ogg Vorbis streams some sound banks embed.
//
// Decoding is delegated to github.com/jfreymuth/oggvorbis. Decoder exposes a
// stream as an audio.Source; PCMDecoder drains a whole stream into 16-bit PCM
// and is what the codec registry plugs in for Vorbis (and for AC-3 entries
// that actually hold an Ogg stream):
//
//	pcm, err := vorbis.PCMDecoder{}.Decode(stream, sampleCount, channels)
//
// The declared sample count comes from the container; the decoded stream is
// cut or zero padded to it so loop points stay valid.
package vorbis
