// SPDX-License-Identifier: EPL-2.0

// Package audio provides the float32 processing pipeline used when decoded
// waveforms need reshaping before export.
//
// # Source Interface
//
// The Source interface is shared by external decoders (see formats/vorbis)
// and in-memory buffers:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// NewPCMSource serves an interleaved []int16 buffer as a Source, and
// ReadAllInt16 drains any Source back into 16-bit PCM, cut or padded to a
// caller supplied length.
//
// # Channel Mixing
//
// SoundFont samples are mono, so multi-channel waveforms are averaged with
// MonoMixer (Downmix wraps the whole round trip):
//
//	mono, err := audio.Downmix(pcm, 44100, 2)
//
// # Resampling
//
// Resample changes the rate of a whole buffer with cubic interpolation.
// ScaleFrames maps loop points to the new rate.
//
// # Sample Format
//
// Samples inside the pipeline are float32 in [-1.0, 1.0). Conversion to and
// from int16 uses a 32768 scale, so PCM that is only passed through keeps
// its exact values.
package audio
