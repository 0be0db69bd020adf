// SPDX-License-Identifier: EPL-2.0

package sf2

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/sgxd2sf2/chunk"
	"github.com/ik5/sgxd2sf2/internal/names"
)

const (
	nameSize = 20

	phdrSize = 38
	bagSize  = 4
	modSize  = 10
	genSize  = 4
	instSize = 22
	shdrSize = 46

	// GuardSamples zero samples follow every sample in smpl.
	GuardSamples = 46

	sampleTypeMono = 1
)

// Bytes serializes the SoundFont.
func (sf *SoundFont) Bytes() ([]byte, error) {
	var buf bytes.Buffer

	if _, err := sf.WriteTo(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteTo writes the RIFF sfbk form to w. Nothing is written when the graph
// does not fit the 16-bit indices of the format.
func (sf *SoundFont) WriteTo(w io.Writer) (int64, error) {
	pdta, err := sf.pdta()
	if err != nil {
		return 0, err
	}

	riff := chunk.List("RIFF", "sfbk", sf.infoList(), sf.sdta(), pdta)

	return riff.WriteTo(w)
}

func (sf *SoundFont) infoList() *chunk.Chunk {
	ifil := make([]byte, 4)
	binary.LittleEndian.PutUint16(ifil[0:], sf.Info.VersionMajor)
	binary.LittleEndian.PutUint16(ifil[2:], sf.Info.VersionMinor)

	info := chunk.List("LIST", "INFO",
		chunk.New("ifil", ifil),
		chunk.Text("isng", sf.Info.Engine),
		chunk.Text("INAM", names.ASCII(sf.Info.Name)),
	)

	if sf.Info.Software != "" {
		info.Append(chunk.Text("ISFT", names.ASCII(sf.Info.Software)))
	}

	return info
}

// has24Bit reports whether any sample carries low bytes.
func (sf *SoundFont) has24Bit() bool {
	for _, s := range sf.Samples {
		if len(s.Low) > 0 {
			return true
		}
	}

	return false
}

func (sf *SoundFont) sdta() *chunk.Chunk {
	total := 0
	for _, s := range sf.Samples {
		total += len(s.PCM) + GuardSamples
	}

	smpl := make([]byte, 0, 2*total)
	for _, s := range sf.Samples {
		for _, v := range s.PCM {
			smpl = binary.LittleEndian.AppendUint16(smpl, uint16(v))
		}

		smpl = append(smpl, make([]byte, 2*GuardSamples)...)
	}

	list := chunk.List("LIST", "sdta", chunk.New("smpl", smpl))

	if sf.has24Bit() {
		sm24 := make([]byte, 0, total)
		for _, s := range sf.Samples {
			low := make([]byte, len(s.PCM)+GuardSamples)
			copy(low[:len(s.PCM)], s.Low)
			sm24 = append(sm24, low...)
		}

		list.Append(chunk.New("sm24", sm24))
	}

	return list
}

// hydra holds the nine pdta record arrays while they are being built.
type hydra struct {
	phdr, pbag, pmod, pgen []byte
	inst, ibag, imod, igen []byte
	shdr                   []byte
}

func (sf *SoundFont) pdta() (*chunk.Chunk, error) {
	h := &hydra{}

	if err := sf.presetRecords(h); err != nil {
		return nil, err
	}

	if err := sf.instrumentRecords(h); err != nil {
		return nil, err
	}

	if err := sf.sampleRecords(h); err != nil {
		return nil, err
	}

	return chunk.List("LIST", "pdta",
		chunk.New("phdr", h.phdr),
		chunk.New("pbag", h.pbag),
		chunk.New("pmod", h.pmod),
		chunk.New("pgen", h.pgen),
		chunk.New("inst", h.inst),
		chunk.New("ibag", h.ibag),
		chunk.New("imod", h.imod),
		chunk.New("igen", h.igen),
		chunk.New("shdr", h.shdr),
	), nil
}

// zoneCounts threads the running generator and modulator indices through
// zones, appending one bag record per zone plus their generator and
// modulator records.
type zoneCounts struct {
	bags, gens, mods int
}

func (c *zoneCounts) appendZones(zones []Zone, bag, gen, mod *[]byte) error {
	for _, z := range zones {
		if c.gens > math.MaxUint16 || c.mods > math.MaxUint16 {
			return fmt.Errorf("%w: %d generators, %d modulators", ErrTooLarge, c.gens, c.mods)
		}

		*bag = appendU16(*bag, uint16(c.gens), uint16(c.mods))

		for _, g := range orderGenerators(z.Generators) {
			*gen = appendU16(*gen, uint16(g.Type), g.Amount)
		}

		for _, m := range z.Modulators {
			*mod = appendU16(*mod, m.Source, uint16(m.Dest), uint16(m.Amount), m.AmountSource, m.Transform)
		}

		c.bags++
		c.gens += len(z.Generators)
		c.mods += len(z.Modulators)
	}

	return nil
}

// terminate writes the terminal bag, generator and modulator records.
func (c *zoneCounts) terminate(bag, gen, mod *[]byte) error {
	if c.bags > math.MaxUint16 || c.gens > math.MaxUint16 || c.mods > math.MaxUint16 {
		return fmt.Errorf("%w: %d zones", ErrTooLarge, c.bags)
	}

	*bag = appendU16(*bag, uint16(c.gens), uint16(c.mods))
	*gen = append(*gen, make([]byte, genSize)...)
	*mod = append(*mod, make([]byte, modSize)...)

	return nil
}

func (sf *SoundFont) presetRecords(h *hydra) error {
	var c zoneCounts

	for _, p := range sf.Presets {
		h.phdr = appendPresetHeader(h.phdr, p.Name, p.Program, p.Bank, uint16(c.bags))

		if err := c.appendZones(p.Zones, &h.pbag, &h.pgen, &h.pmod); err != nil {
			return err
		}
	}

	if err := c.terminate(&h.pbag, &h.pgen, &h.pmod); err != nil {
		return err
	}

	h.phdr = appendPresetHeader(h.phdr, "EOP", 0, 0, uint16(c.bags))

	return nil
}

func (sf *SoundFont) instrumentRecords(h *hydra) error {
	var c zoneCounts

	for _, inst := range sf.Instruments {
		h.inst = append(h.inst, names.Fixed(inst.Name, nameSize)...)
		h.inst = appendU16(h.inst, uint16(c.bags))

		if err := c.appendZones(inst.Zones, &h.ibag, &h.igen, &h.imod); err != nil {
			return err
		}
	}

	if err := c.terminate(&h.ibag, &h.igen, &h.imod); err != nil {
		return err
	}

	h.inst = append(h.inst, names.Fixed("EOI", nameSize)...)
	h.inst = appendU16(h.inst, uint16(c.bags))

	return nil
}

func (sf *SoundFont) sampleRecords(h *hydra) error {
	if len(sf.Samples) > math.MaxUint16 {
		return fmt.Errorf("%w: %d samples", ErrTooLarge, len(sf.Samples))
	}

	start := uint64(0)

	for _, s := range sf.Samples {
		end := start + uint64(len(s.PCM))
		if end > math.MaxUint32 {
			return fmt.Errorf("%w: sample data exceeds 32-bit offsets", ErrTooLarge)
		}

		h.shdr = append(h.shdr, names.Fixed(s.Name, nameSize)...)
		h.shdr = appendU32(h.shdr,
			uint32(start),
			uint32(end),
			uint32(start)+s.LoopStart,
			uint32(start)+s.LoopEnd,
			s.SampleRate,
		)
		h.shdr = append(h.shdr, s.OriginalPitch, byte(s.PitchCorrection))
		h.shdr = appendU16(h.shdr, 0, sampleTypeMono)

		start = end + GuardSamples
	}

	h.shdr = append(h.shdr, names.Fixed("EOS", nameSize)...)
	h.shdr = append(h.shdr, make([]byte, shdrSize-nameSize)...)

	return nil
}

func appendPresetHeader(b []byte, name string, program, bank, bag uint16) []byte {
	b = append(b, names.Fixed(name, nameSize)...)
	b = appendU16(b, program, bank, bag)

	// library, genre and morphology are reserved
	return append(b, make([]byte, 12)...)
}

// orderGenerators returns gens with keyRange first and sampleID or
// instrument last, as SoundFont readers require.
func orderGenerators(gens []Generator) []Generator {
	rank := func(g Generator) int {
		switch g.Type {
		case GenKeyRange:
			return 0
		case GenVelRange:
			return 1
		case GenSampleID, GenInstrument:
			return 3
		default:
			return 2
		}
	}

	out := make([]Generator, 0, len(gens))
	for r := range 4 {
		for _, g := range gens {
			if rank(g) == r {
				out = append(out, g)
			}
		}
	}

	return out
}

func appendU16(b []byte, vs ...uint16) []byte {
	for _, v := range vs {
		b = binary.LittleEndian.AppendUint16(b, v)
	}

	return b
}

func appendU32(b []byte, vs ...uint32) []byte {
	for _, v := range vs {
		b = binary.LittleEndian.AppendUint32(b, v)
	}

	return b
}
