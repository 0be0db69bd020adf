// SPDX-License-Identifier: EPL-2.0

package sf2

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/ik5/sgxd2sf2/audio"
	"github.com/ik5/sgxd2sf2/sgxd"
)

const defaultSampleRate = 44100

// presetKey groups tones into presets. The container has no preset number,
// so the region group position stands in for one.
type presetKey struct {
	bank  uint16
	group int
}

func (k presetKey) program() uint16 { return uint16(k.group % 128) }

// comparePresetKeys orders presets by bank, then program, then group
// position for groups sharing a program number.
func comparePresetKeys(a, b presetKey) int {
	return cmp.Or(
		cmp.Compare(a.bank, b.bank),
		cmp.Compare(a.program(), b.program()),
		cmp.Compare(a.group, b.group),
	)
}

type presetTone struct {
	tone       sgxd.Tone
	instrument int
}

// builder holds the state of one Build call.
type builder struct {
	bank    *sgxd.SoundBank
	opts    Options
	log     logrus.FieldLogger
	sf      *SoundFont
	samples map[uint32]int // waveform index to sample index
	presets map[presetKey][]presetTone
	decoded int
}

// Build turns a decoded bank into a SoundFont graph: one sample per
// referenced waveform, one single-zone instrument per tone, and presets
// grouping tones by bank id and region group.
func Build(bank *sgxd.SoundBank, opts Options) (*SoundFont, error) {
	if bank == nil || bank.ToneCount() == 0 {
		return nil, fmt.Errorf("%w: no tones", ErrNothingToEncode)
	}

	b := &builder{
		bank:    bank,
		opts:    opts,
		log:     opts.logger().WithField("component", "sf2"),
		samples: map[uint32]int{},
		presets: map[presetKey][]presetTone{},
	}

	b.sf = &SoundFont{Info: b.info()}

	for g, region := range bank.Regions {
		for i := range region.Tones {
			if err := b.addTone(g, region.Tones[i]); err != nil {
				b.problem(fmt.Errorf("region %d tone %d: %w", g, i, err))
			}
		}
	}

	if b.decoded == 0 {
		return nil, fmt.Errorf("%w: no decoded samples", ErrNothingToEncode)
	}

	b.buildPresets()

	b.log.WithFields(logrus.Fields{
		"samples":     len(b.sf.Samples),
		"instruments": len(b.sf.Instruments),
		"presets":     len(b.sf.Presets),
	}).Debug("built soundfont")

	return b.sf, nil
}

// Encode builds and serializes bank in one step.
func Encode(bank *sgxd.SoundBank, opts Options) ([]byte, error) {
	sf, err := Build(bank, opts)
	if err != nil {
		return nil, err
	}

	return sf.Bytes()
}

func (b *builder) problem(err error) {
	b.log.WithError(err).Warn("tone skipped")
	b.sf.Problems = append(b.sf.Problems, err)
}

func (b *builder) info() Info {
	info := Info{
		VersionMajor: b.opts.VersionMajor,
		VersionMinor: b.opts.VersionMinor,
		Engine:       b.opts.Engine,
		Name:         b.bank.Name,
		Software:     b.opts.Software,
	}

	if info.VersionMajor == 0 {
		info.VersionMajor, info.VersionMinor = 2, 1
	}

	if info.Engine == "" {
		info.Engine = "EMU8000"
	}

	if b.opts.BankName != "" {
		info.Name = b.opts.BankName
	}

	if info.Name == "" {
		info.Name = "sgxd"
	}

	return info
}

func (b *builder) addTone(group int, t sgxd.Tone) error {
	sample, err := b.sample(t)
	if err != nil {
		return err
	}

	b.sf.Instruments = append(b.sf.Instruments, Instrument{
		Name:  b.toneName(t, len(b.sf.Instruments)),
		Zones: []Zone{b.instrumentZone(t, sample)},
	})

	key := presetKey{bank: uint16(t.BankID), group: group}
	b.presets[key] = append(b.presets[key], presetTone{tone: t, instrument: len(b.sf.Instruments) - 1})

	return nil
}

func (b *builder) toneName(t sgxd.Tone, index int) string {
	if t.Name != "" {
		return t.Name
	}

	return fmt.Sprintf("tone%04d", index)
}

// sample returns the sample index for the tone's waveform, converting the
// waveform the first time it is referenced.
func (b *builder) sample(t sgxd.Tone) (int, error) {
	if idx, ok := b.samples[t.SampleID]; ok {
		return idx, nil
	}

	w, ok := b.bank.Waveform(t.SampleID)
	if !ok {
		return 0, fmt.Errorf("%w: sample %d of %d", ErrMissingSample, t.SampleID, len(b.bank.Waveforms))
	}

	s, err := b.convert(w)
	if err != nil {
		return 0, err
	}

	s.OriginalPitch = min(t.RootKey, 127)

	if len(s.PCM) > 0 {
		b.decoded++
	}

	b.sf.Samples = append(b.sf.Samples, s)
	idx := len(b.sf.Samples) - 1
	b.samples[t.SampleID] = idx

	return idx, nil
}

// convert turns a waveform into a mono sample at the target rate. Waveforms
// without PCM become empty placeholders.
func (b *builder) convert(w *sgxd.Waveform) (Sample, error) {
	rate := int(w.SampleRate)
	if rate <= 0 {
		rate = defaultSampleRate
	}

	s := Sample{
		Name:       w.Name,
		SampleRate: uint32(rate),
	}

	if s.Name == "" {
		s.Name = fmt.Sprintf("wave%04d", len(b.sf.Samples))
	}

	if len(w.PCM) == 0 {
		return s, nil
	}

	pcm, err := audio.Downmix(w.PCM, rate, w.ChannelCount())
	if err != nil {
		return Sample{}, fmt.Errorf("downmix %q: %w", w.Name, err)
	}

	loopStart, loopEnd := max(int(w.LoopBegin), 0), max(int(w.LoopEnd), 0)

	if target := b.opts.SampleRate; target > 0 && target != rate {
		if pcm, err = audio.Resample(pcm, 1, rate, target); err != nil {
			return Sample{}, fmt.Errorf("resample %q: %w", w.Name, err)
		}

		loopStart = audio.ScaleFrames(loopStart, rate, target)
		loopEnd = audio.ScaleFrames(loopEnd, rate, target)
		s.SampleRate = uint32(target)
	}

	s.PCM = pcm
	s.LoopStart = uint32(min(loopStart, len(pcm)))
	s.LoopEnd = uint32(min(loopEnd, len(pcm)))

	return s, nil
}

func (b *builder) instrumentZone(t sgxd.Tone, sample int) Zone {
	root := int(t.RootKey)
	gens := []Generator{RangeGen(GenKeyRange, t.NoteLow, t.NoteHigh)}

	if root > 127 {
		gens = append(gens,
			Gen(GenOverridingRootKey, 127),
			Gen(GenCoarseTune, int16(127-root)),
		)
	} else {
		gens = append(gens, Gen(GenOverridingRootKey, int16(root)))
	}

	mode := int16(NoLoop)
	if w, ok := b.bank.Waveform(t.SampleID); ok && w.Looped() {
		mode = ContinuousLoop
	}

	gens = append(gens,
		Gen(GenFineTune, int16(t.FineTune)),
		Gen(GenReverbEffectsSend, SendLevel(t.WetLevel)),
		Gen(GenChorusEffectsSend, SendLevel(t.DryLevel)),
		Gen(GenDecayVolEnv, Timecents(t.Decay)),
		Gen(GenReleaseVolEnv, Timecents(t.Release)),
		Gen(GenSampleModes, mode),
		Gen(GenExclusiveClass, int16(t.ExclusiveGroup)),
		Generator{Type: GenSampleID, Amount: uint16(sample)},
	)

	return Zone{
		Generators: gens,
		Modulators: []Modulator{
			{Source: SourceCC7, Dest: GenInitialAttenuation, Amount: Attenuation(t.Volume)},
			{Source: SourceCC10, Dest: GenPan, Amount: PanAmount(t.Pan)},
		},
	}
}

func (b *builder) buildPresets() {
	keys := make([]presetKey, 0, len(b.presets))
	for k := range b.presets {
		keys = append(keys, k)
	}

	slices.SortFunc(keys, comparePresetKeys)

	for _, k := range keys {
		tones := slices.Clone(b.presets[k])
		slices.SortStableFunc(tones, func(x, y presetTone) int {
			return sgxd.CompareTones(x.tone, y.tone)
		})

		p := Preset{
			Name:    presetName(k, tones[0].tone),
			Program: k.program(),
			Bank:    k.bank,
		}

		for _, pt := range tones {
			p.Zones = append(p.Zones, Zone{Generators: []Generator{
				RangeGen(GenKeyRange, pt.tone.NoteLow, pt.tone.NoteHigh),
				{Type: GenInstrument, Amount: uint16(pt.instrument)},
			}})
		}

		b.sf.Presets = append(b.sf.Presets, p)
	}
}

func presetName(k presetKey, first sgxd.Tone) string {
	if first.Name != "" {
		return first.Name
	}

	return fmt.Sprintf("bank%03d prog%03d", k.bank, k.program())
}
