// SPDX-License-Identifier: EPL-2.0

package sgxd

import "testing"

func TestSortedTones(t *testing.T) {
	t.Parallel()

	g := RegionGroup{Tones: []Tone{
		{Name: "c", NoteLow: 60, NoteHigh: 72, SampleID: 0},
		{Name: "a", NoteLow: 0, NoteHigh: 59, SampleID: 2},
		{Name: "d", NoteLow: 60, NoteHigh: 72, SampleID: 0},
		{Name: "b", NoteLow: 60, NoteHigh: 64, SampleID: 1},
	}}

	got := g.SortedTones()

	want := []string{"a", "b", "c", "d"}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("SortedTones()[%d] = %q, want %q", i, got[i].Name, name)
		}
	}

	if g.Tones[0].Name != "c" {
		t.Error("SortedTones() reordered the group in place")
	}
}

func TestCompareTones(t *testing.T) {
	t.Parallel()

	a := Tone{NoteLow: 10, NoteHigh: 20, SampleID: 1}
	b := Tone{NoteLow: 10, NoteHigh: 20, SampleID: 2}

	if CompareTones(a, b) >= 0 || CompareTones(b, a) <= 0 || CompareTones(a, a) != 0 {
		t.Errorf("CompareTones ordering by SampleID broken")
	}
}
