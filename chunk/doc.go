// SPDX-License-Identifier: EPL-2.0

// Package chunk implements the tagged, length-prefixed block primitive used
// both to read SGXD sound banks and to write RIFF files (SoundFont, WAVE).
//
// # Reading
//
// Reader is a cursor over an in-memory buffer. Integer reads follow the byte
// order given to NewReader and every read is bounds checked:
//
//	r := chunk.NewReader(data, binary.LittleEndian)
//	h, payload, err := r.ReadChunk()
//	if errors.Is(err, chunk.ErrTruncated) {
//	    // the declared length runs past the end of data
//	}
//
// # Writing
//
// Chunks are assembled bottom up; appending a child serializes it into the
// parent so lengths never need patching:
//
//	info := chunk.List("LIST", "INFO", chunk.Text("INAM", "My bank"))
//	riff := chunk.List("RIFF", "sfbk", info)
//	out := riff.Bytes()
//
// A payload of odd length is followed by one zero byte that is not counted
// in the declared length, unless NoPad is set.
package chunk
