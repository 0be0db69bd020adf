// SPDX-License-Identifier: EPL-2.0

package sf2

import "errors"

var (
	// ErrNothingToEncode is returned for banks without tones or without a
	// single decoded sample. No output is produced.
	ErrNothingToEncode = errors.New("sf2: bank has no tones or no decoded samples")

	// ErrMissingSample marks a tone whose SampleID points past the
	// waveform table. The tone is left out.
	ErrMissingSample = errors.New("sf2: tone references a missing waveform")

	ErrTooLarge = errors.New("sf2: too many records for 16-bit indices")
)
