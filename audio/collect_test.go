// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"testing"

	"github.com/ik5/sgxd2sf2/internal/audiotest"
)

func TestReadAllInt16_Unlimited(t *testing.T) {
	t.Parallel()

	src := audiotest.Constant(8000, 1, 5000, 0.5)

	pcm, err := ReadAllInt16(src, 0)
	if err != nil {
		t.Fatalf("ReadAllInt16() error = %v", err)
	}

	if len(pcm) != 5000 {
		t.Fatalf("len = %d, want 5000", len(pcm))
	}

	if pcm[4999] != 16384 {
		t.Errorf("pcm[4999] = %d, want 16384", pcm[4999])
	}
}

func TestReadAllInt16_LimitCuts(t *testing.T) {
	t.Parallel()

	src := audiotest.Constant(8000, 2, 1000, -0.25)

	pcm, err := ReadAllInt16(src, 300)
	if err != nil {
		t.Fatalf("ReadAllInt16() error = %v", err)
	}

	if len(pcm) != 300 {
		t.Errorf("len = %d, want 300", len(pcm))
	}
}

func TestReadAllInt16_LimitPads(t *testing.T) {
	t.Parallel()

	src := audiotest.Constant(8000, 1, 10, 0.5)

	pcm, err := ReadAllInt16(src, 16)
	if err != nil {
		t.Fatalf("ReadAllInt16() error = %v", err)
	}

	if len(pcm) != 16 {
		t.Fatalf("len = %d, want 16", len(pcm))
	}

	if pcm[9] != 16384 || pcm[10] != 0 || pcm[15] != 0 {
		t.Errorf("pcm tail = %v", pcm[8:])
	}
}
