// SPDX-License-Identifier: EPL-2.0

package sf2_test

import (
	"fmt"

	"github.com/ik5/sgxd2sf2/sf2"
	"github.com/ik5/sgxd2sf2/sgxd"
)

func Example_build() {
	pcm := make([]int16, 100)
	for i := range pcm {
		pcm[i] = int16(i * 100)
	}

	bank := &sgxd.SoundBank{
		Name: "example",
		Regions: []sgxd.RegionGroup{{Tones: []sgxd.Tone{
			{Name: "lead", BankID: 0, NoteLow: 48, NoteHigh: 84, RootKey: 60, SampleID: 0},
		}}},
		Waveforms: []sgxd.Waveform{
			{Name: "saw", Channels: 1, SampleRate: 32000, SampleCount: 100, LoopBegin: 10, LoopEnd: 90, PCM: pcm},
		},
	}

	sf, err := sf2.Build(bank, sf2.DefaultOptions())
	if err != nil {
		fmt.Println(err)

		return
	}

	zone := sf.Instruments[0].Zones[0]
	keys, _ := zone.Generator(sf2.GenKeyRange)
	lo, hi := keys.Range()

	fmt.Println(sf.Presets[0].Name, sf.Presets[0].Bank, sf.Presets[0].Program)
	fmt.Println(lo, hi, len(sf.Samples[0].PCM))

	// Output:
	// lead 0 0
	// 48 84 100
}

func ExampleTimecents() {
	fmt.Println(sf2.Timecents(100), sf2.Timecents(200), sf2.Timecents(25))

	// Output:
	// 0 1200 -2400
}
