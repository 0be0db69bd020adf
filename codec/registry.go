// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"fmt"
	"sync"

	"github.com/ik5/sgxd2sf2/codec/adpcm"
	"github.com/ik5/sgxd2sf2/formats/vorbis"
)

// Registry maps codec ids to decoders. It is safe for concurrent use.
type Registry struct {
	codecs map[ID]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[ID]Decoder),
		mtx:    &sync.Mutex{},
	}
}

// Default returns a new registry holding every decoder this module carries.
// ATRAC3+ streams are probed but stay unsupported until WithATRAC3Plus is
// called; AC-3 entries only decode when they actually hold an Ogg stream.
func Default() *Registry {
	r := NewRegistry()

	r.Register(PCM16LE, PCM16(false))
	r.Register(PCM16BE, PCM16(true))
	r.Register(ADPCM, ADPCMDecoder(false))
	r.Register(ADPCMShort, ADPCMDecoder(true))
	r.Register(Vorbis, External(vorbis.PCMDecoder{}))
	r.Register(ATRAC3Plus, &atrac3Plus{})
	r.Register(AC3, &ac3{ogg: External(vorbis.PCMDecoder{})})

	return r
}

func (r *Registry) Register(id ID, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[id] = d
}

func (r *Registry) Get(id ID) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[id]

	return d, ok
}

// Decode dispatches data to the decoder registered for id.
func (r *Registry) Decode(id ID, data []byte, samples, channels int) (Result, error) {
	d, ok := r.Get(id)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedCodec, id)
	}

	res, err := d.Decode(data, samples, channels)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", id, err)
	}

	return res, nil
}

// WithATRAC3Plus plugs an external ATRAC3+ decoder behind the RIFF probe.
func (r *Registry) WithATRAC3Plus(dec ExternalDecoder) *Registry {
	r.Register(ATRAC3Plus, &atrac3Plus{ext: dec})

	return r
}

// WithAC3 plugs an external AC-3 decoder. Ogg streams stored under the
// AC-3 id keep going to the Vorbis decoder.
func (r *Registry) WithAC3(dec ExternalDecoder) *Registry {
	r.Register(AC3, &ac3{ogg: External(vorbis.PCMDecoder{}), ext: dec})

	return r
}

// ADPCMDecoder decodes VAG/PS-ADPCM streams with the basic predictor table.
func ADPCMDecoder(short bool) Decoder {
	return DecoderFunc(func(data []byte, samples, channels int) (Result, error) {
		res, err := adpcm.Decode(data, adpcm.Options{
			Channels: channels,
			Samples:  samples,
			Short:    short,
		})
		if err != nil {
			return Result{}, fmt.Errorf("%w", err)
		}

		return Result{PCM: res.PCM, LoopStart: res.LoopStart, LoopEnd: res.LoopEnd}, nil
	})
}
