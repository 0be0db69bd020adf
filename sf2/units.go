// SPDX-License-Identifier: EPL-2.0

package sf2

import "math"

const (
	minTimecents = -12000
	maxTimecents = 8000

	maxSend        = 1000 // 100% in 0.1% units
	maxEngineLevel = 127

	maxPan         = 500
	maxAttenuation = 1440 // centibels
)

// Timecents converts an engine time in hundredths of a second to timecents,
// 1200*log2(v/100), clamped to the range SoundFont envelopes accept. Zero
// maps to the shortest time.
func Timecents(v uint32) int16 {
	if v == 0 {
		return minTimecents
	}

	tc := math.Round(1200 * math.Log2(float64(v)/100))

	return int16(max(minTimecents, min(maxTimecents, tc)))
}

// SendLevel scales an engine effect level (0..127) to a SoundFont send
// amount in 0.1% units. Negative levels send nothing.
func SendLevel(level int16) int16 {
	l := max(0, min(maxEngineLevel, int(level)))

	return int16(l * maxSend / maxEngineLevel)
}

// PanAmount maps an engine pan (0 left, 64 centre, 127 right) to the
// SoundFont pan range -500..500.
func PanAmount(pan uint8) int16 {
	p := (int(pan) - 64) * maxPan / 64

	return int16(max(-maxPan, min(maxPan, p)))
}

// Attenuation converts an engine volume (0..127) to centibels of
// attenuation: 0 for full volume, growing as the volume drops.
func Attenuation(volume uint8) int16 {
	v := min(int(volume), maxEngineLevel)
	if v == 0 {
		return maxAttenuation
	}

	cb := math.Round(-200 * math.Log10(float64(v)/maxEngineLevel))

	return int16(min(maxAttenuation, cb))
}
