// SPDX-License-Identifier: EPL-2.0

package sf2

import "fmt"

// GenType is a SoundFont generator operator.
type GenType uint16

const (
	GenStartAddrsOffset     GenType = 0
	GenEndAddrsOffset       GenType = 1
	GenStartloopAddrsOffset GenType = 2
	GenEndloopAddrsOffset   GenType = 3
	GenInitialFilterFc      GenType = 8
	GenInitialFilterQ       GenType = 9
	GenChorusEffectsSend    GenType = 15
	GenReverbEffectsSend    GenType = 16
	GenPan                  GenType = 17
	GenDelayVolEnv          GenType = 33
	GenAttackVolEnv         GenType = 34
	GenHoldVolEnv           GenType = 35
	GenDecayVolEnv          GenType = 36
	GenSustainVolEnv        GenType = 37
	GenReleaseVolEnv        GenType = 38
	GenInstrument           GenType = 41
	GenKeyRange             GenType = 43
	GenVelRange             GenType = 44
	GenInitialAttenuation   GenType = 48
	GenCoarseTune           GenType = 51
	GenFineTune             GenType = 52
	GenSampleID             GenType = 53
	GenSampleModes          GenType = 54
	GenScaleTuning          GenType = 56
	GenExclusiveClass       GenType = 57
	GenOverridingRootKey    GenType = 58
)

var genNames = map[GenType]string{
	GenStartAddrsOffset:     "startAddrsOffset",
	GenEndAddrsOffset:       "endAddrsOffset",
	GenStartloopAddrsOffset: "startloopAddrsOffset",
	GenEndloopAddrsOffset:   "endloopAddrsOffset",
	GenInitialFilterFc:      "initialFilterFc",
	GenInitialFilterQ:       "initialFilterQ",
	GenChorusEffectsSend:    "chorusEffectsSend",
	GenReverbEffectsSend:    "reverbEffectsSend",
	GenPan:                  "pan",
	GenDelayVolEnv:          "delayVolEnv",
	GenAttackVolEnv:         "attackVolEnv",
	GenHoldVolEnv:           "holdVolEnv",
	GenDecayVolEnv:          "decayVolEnv",
	GenSustainVolEnv:        "sustainVolEnv",
	GenReleaseVolEnv:        "releaseVolEnv",
	GenInstrument:           "instrument",
	GenKeyRange:             "keyRange",
	GenVelRange:             "velRange",
	GenInitialAttenuation:   "initialAttenuation",
	GenCoarseTune:           "coarseTune",
	GenFineTune:             "fineTune",
	GenSampleID:             "sampleID",
	GenSampleModes:          "sampleModes",
	GenScaleTuning:          "scaleTuning",
	GenExclusiveClass:       "exclusiveClass",
	GenOverridingRootKey:    "overridingRootKey",
}

func (g GenType) String() string {
	if name, ok := genNames[g]; ok {
		return name
	}

	return fmt.Sprintf("gen(%d)", uint16(g))
}

// Values of GenSampleModes.
const (
	NoLoop         = 0
	ContinuousLoop = 1
	LoopToRelease  = 3
)

// Modulator sources: a MIDI controller index with the CC flag set, linear,
// unipolar and increasing.
const (
	ccFlag = 0x0080

	SourceCC7  uint16 = ccFlag | 7
	SourceCC10 uint16 = ccFlag | 10
)

// Generator is one operator/amount pair. Signed amounts are stored as their
// two's complement; ranges hold the low key in the low byte.
type Generator struct {
	Type   GenType
	Amount uint16
}

// Gen returns a generator with a signed amount.
func Gen(t GenType, amount int16) Generator {
	return Generator{Type: t, Amount: uint16(amount)}
}

// RangeGen returns a key or velocity range generator.
func RangeGen(t GenType, lo, hi uint8) Generator {
	return Generator{Type: t, Amount: RangeAmount(lo, hi)}
}

func RangeAmount(lo, hi uint8) uint16 {
	return uint16(lo) | uint16(hi)<<8
}

// Signed returns Amount as a signed value.
func (g Generator) Signed() int16 { return int16(g.Amount) }

// Range splits a range amount into its low and high bytes.
func (g Generator) Range() (lo, hi uint8) {
	return uint8(g.Amount), uint8(g.Amount >> 8)
}

// Modulator routes a controller to a generator.
type Modulator struct {
	Source       uint16
	Dest         GenType
	Amount       int16
	AmountSource uint16
	Transform    uint16
}
