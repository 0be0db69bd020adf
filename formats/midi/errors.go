// SPDX-License-Identifier: EPL-2.0

package midi

import "errors"

var (
	// ErrUnsupportedFormat is returned for REQUEST sequences, which need a
	// sequencer model to be turned into MIDI.
	ErrUnsupportedFormat = errors.New("midi: unsupported sequence format")

	// ErrInvalidSequence wraps parse failures of RAWMIDI payloads.
	ErrInvalidSequence = errors.New("midi: invalid sequence")
)
