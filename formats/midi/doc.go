// SPDX-License-Identifier: EPL-2.0

// Package midi turns RAWMIDI sequences of a sound bank into MIDI data.
//
// SEQD RAWMIDI payloads are plain MIDI event streams. BuildTrack wraps one
// in an MThd/MTrk pair and hands it to gitlab.com/gomidi/midi/v2/smf, which
// resolves running status and meta events:
//
//	track, err := midi.BuildTrack(&bank.SequenceGroups[0].Sequences[0])
//
// Encode goes one step further and writes a format 0 Standard MIDI File.
// The sequence name becomes the track name and a zero division means 480
// ticks per quarter note. SMPTE timing, declared on the sequence or in an
// embedded MThd, is rejected with ErrInvalidSequence.
//
// REQUEST sequences are bytecode for the console sequencer; they return
// ErrUnsupportedFormat. Use sgxd.Sequence.Requests to inspect them.
package midi
