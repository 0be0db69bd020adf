// SPDX-License-Identifier: EPL-2.0

package sgxd

import (
	"cmp"
	"slices"
)

// CompareTones orders tones by key range, then by waveform.
func CompareTones(a, b Tone) int {
	return cmp.Or(
		cmp.Compare(a.NoteLow, b.NoteLow),
		cmp.Compare(a.NoteHigh, b.NoteHigh),
		cmp.Compare(a.SampleID, b.SampleID),
	)
}

// SortedTones returns a copy of the group's tones ordered by CompareTones.
// Tones comparing equal keep their file order.
func (g RegionGroup) SortedTones() []Tone {
	tones := slices.Clone(g.Tones)
	slices.SortStableFunc(tones, CompareTones)

	return tones
}
