// SPDX-License-Identifier: EPL-2.0

package sf2

// Info is the INFO list.
type Info struct {
	VersionMajor uint16
	VersionMinor uint16
	Engine       string
	Name         string
	Software     string
}

// Sample is one mono sample. Loop points are frames relative to the start
// of PCM.
type Sample struct {
	Name string
	PCM  []int16
	// Low holds the extra low byte per sample for 24-bit data, or nil.
	Low             []byte
	SampleRate      uint32
	OriginalPitch   uint8
	PitchCorrection int8
	LoopStart       uint32
	LoopEnd         uint32
}

// Zone is a bag: generators and modulators applied together.
type Zone struct {
	Generators []Generator
	Modulators []Modulator
}

// Generator returns the first generator of type t in the zone.
func (z *Zone) Generator(t GenType) (Generator, bool) {
	for _, g := range z.Generators {
		if g.Type == t {
			return g, true
		}
	}

	return Generator{}, false
}

type Instrument struct {
	Name  string
	Zones []Zone
}

type Preset struct {
	Name    string
	Program uint16
	Bank    uint16
	Zones   []Zone
}

// SoundFont is the complete graph written by WriteTo.
type SoundFont struct {
	Info        Info
	Samples     []Sample
	Instruments []Instrument
	Presets     []Preset

	// Problems lists tones left out while building.
	Problems []error
}
