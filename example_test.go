// SPDX-License-Identifier: EPL-2.0

package sgxd2sf2_test

import (
	"fmt"

	"github.com/ik5/sgxd2sf2"
	"github.com/ik5/sgxd2sf2/internal/audiotest"
	"github.com/ik5/sgxd2sf2/sf2"
	"github.com/ik5/sgxd2sf2/sgxd"
)

func exampleBank() []byte {
	return audiotest.BankSpec{
		Name: "example",
		Regions: [][]audiotest.ToneSpec{{
			{Name: "bell", NoteLow: 48, NoteHigh: 84, RootKey: 72, Volume: 127, Pan: 64},
		}},
		Waves: []audiotest.WaveSpec{
			{Name: "bell", Channels: 1, SampleRate: 32000, SampleCount: 4,
				LoopBegin: -1, LoopEnd: -1, Stream: audiotest.PCM16LE(800, -800, 400, -400)},
		},
	}.Bytes()
}

// Example_convertToSF2 converts a whole bank.
func Example_convertToSF2() {
	out, err := sgxd2sf2.ConvertToSF2(exampleBank(), sf2.DefaultOptions())
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Printf("%s %s\n", out[:4], out[8:12])
	// Output: RIFF sfbk
}

// Example_extractWaveform writes the first waveform as WAV and AIFF.
func Example_extractWaveform() {
	data := exampleBank()

	for _, format := range []string{"wav", "aiff"} {
		out, err := sgxd2sf2.ExtractWaveform(data, 0, format)
		if err != nil {
			fmt.Println(err)

			return
		}

		fmt.Printf("%s: %s\n", format, out[:4])
	}

	// Output:
	// wav: RIFF
	// aiff: FORM
}

func ExampleResampleToMono16() {
	w := &sgxd.Waveform{Channels: 1, SampleRate: 8000, PCM: []int16{100, 200, 300, 400}}

	pcm, rate, err := sgxd2sf2.ResampleToMono16(w, 16000)
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println(len(pcm), rate)
	// Output: 8 16000
}
