// SPDX-License-Identifier: EPL-2.0

// Package wav writes decoded waveforms as WAV files.
//
// The RIFF WAVE container is produced by github.com/go-audio/wav; waveforms
// are always written as 16-bit PCM with their own channel count and sample
// rate:
//
//	out, err := wav.EncodeWaveform(&bank.Waveforms[i])
//	if errors.Is(err, wav.ErrNoPCM) {
//	    // silent or undecodable waveform
//	}
//
// Encode streams into any io.WriteSeeker, such as an *os.File. A looped
// waveform also gets a smpl chunk after the audio data carrying one forward
// loop, so samplers pick up the loop points:
//
//	smpl
//	  manufacturer, product   0
//	  sample period           1e9 / rate (ns)
//	  unity note              60
//	  loops                   1
//	  loop                    type 0, start, end (inclusive), play count 0
package wav
