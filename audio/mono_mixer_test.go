// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"testing"

	"github.com/ik5/sgxd2sf2/internal/audiotest"
)

func TestMonoMixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	src := audiotest.Constant(8000, 1, 100, 0.5)
	mixer := NewMonoMixer(src)

	if mixer.Channels() != 1 {
		t.Errorf("MonoMixer.Channels() = %d, want 1", mixer.Channels())
	}

	buf := make([]float32, 10)

	n, err := mixer.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 10 {
		t.Errorf("ReadSamples() n = %d, want 10", n)
	}

	for i := range n {
		if buf[i] != 0.5 {
			t.Errorf("buf[%d] = %v, want 0.5", i, buf[i])
		}
	}
}

func TestMonoMixer_StereoToMono(t *testing.T) {
	t.Parallel()

	src := audiotest.Stereo(8000, 100, 0.25, 0.75)

	mixer := NewMonoMixer(src)
	buf := make([]float32, 10)

	n, err := mixer.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 10 {
		t.Fatalf("ReadSamples() n = %d, want 10 frames", n)
	}

	for i := range n {
		if buf[i] != 0.5 {
			t.Errorf("buf[%d] = %v, want 0.5", i, buf[i])
		}
	}

	if mixer.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", mixer.SampleRate())
	}
}

func TestDownmix(t *testing.T) {
	t.Parallel()

	got, err := Downmix([]int16{100, 300, -200, -400, 0, 0}, 22050, 2)
	if err != nil {
		t.Fatalf("Downmix() error = %v", err)
	}

	want := []int16{200, -300, 0}
	if len(got) != len(want) {
		t.Fatalf("len(Downmix()) = %d, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Downmix()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestDownmix_MonoUnchanged(t *testing.T) {
	t.Parallel()

	in := []int16{1, -1, 32767, -32768}

	got, err := Downmix(in, 22050, 1)
	if err != nil {
		t.Fatalf("Downmix() error = %v", err)
	}

	if &got[0] != &in[0] {
		t.Error("Downmix() copied a mono buffer")
	}
}
