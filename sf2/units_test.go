// SPDX-License-Identifier: EPL-2.0

package sf2

import "testing"

func TestTimecents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   uint32
		want int16
	}{
		{0, -12000},
		{1, -7973},
		{50, -1200},
		{100, 0},
		{200, 1200},
		{400, 2400},
		{1_000_000, 8000},
	}

	for _, tt := range tests {
		if got := Timecents(tt.in); got != tt.want {
			t.Errorf("Timecents(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSendLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int16
		want int16
	}{
		{-5, 0},
		{0, 0},
		{64, 503},
		{127, 1000},
		{300, 1000},
	}

	for _, tt := range tests {
		if got := SendLevel(tt.in); got != tt.want {
			t.Errorf("SendLevel(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPanAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   uint8
		want int16
	}{
		{0, -500},
		{32, -250},
		{64, 0},
		{127, 492},
		{255, 500},
	}

	for _, tt := range tests {
		if got := PanAmount(tt.in); got != tt.want {
			t.Errorf("PanAmount(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestAttenuation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   uint8
		want int16
	}{
		{0, 1440},
		{64, 60},
		{127, 0},
		{200, 0},
	}

	for _, tt := range tests {
		if got := Attenuation(tt.in); got != tt.want {
			t.Errorf("Attenuation(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRangeAmount(t *testing.T) {
	t.Parallel()

	g := RangeGen(GenKeyRange, 36, 96)
	if g.Amount != 0x6024 {
		t.Errorf("Amount = 0x%04x, want 0x6024", g.Amount)
	}

	if lo, hi := g.Range(); lo != 36 || hi != 96 {
		t.Errorf("Range() = %d, %d, want 36, 96", lo, hi)
	}

	if Gen(GenCoarseTune, -3).Signed() != -3 {
		t.Error("Signed() lost the sign")
	}
}
