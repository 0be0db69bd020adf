// SPDX-License-Identifier: EPL-2.0

// Package aiff writes decoded waveforms as AIFF files.
//
// Audio is written by github.com/go-audio/aiff as big-endian 16-bit PCM:
//
//	out, err := aiff.EncodeWaveform(&bank.Waveforms[i])
//
// A looped waveform also gets a MARK chunk with "beg loop" and "end loop"
// markers and an INST chunk whose sustain loop plays forward between them,
// the way AIFF samplers expect loop points.
//
// AIFF vs. WAV: the same PCM ends up in both, AIFF stores it big-endian and
// keeps the sample rate as an 80-bit float. Use package formats/wav when the
// consumer prefers RIFF and smpl loops.
package aiff
