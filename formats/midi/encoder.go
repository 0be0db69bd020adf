// SPDX-License-Identifier: EPL-2.0

package midi

import (
	"bytes"
	"fmt"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/ik5/sgxd2sf2/sgxd"
)

// Encode returns seq as a format 0 Standard MIDI File.
func Encode(seq *sgxd.Sequence) ([]byte, error) {
	ticks, err := division(seq)
	if err != nil {
		return nil, err
	}

	track, err := BuildTrack(seq)
	if err != nil {
		return nil, err
	}

	file := smf.New()
	file.TimeFormat = smf.MetricTicks(ticks)

	if err := file.Add(track); err != nil {
		return nil, fmt.Errorf("midi: add track: %w", err)
	}

	var buf bytes.Buffer
	if _, err := file.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("midi: write: %w", err)
	}

	return buf.Bytes(), nil
}
