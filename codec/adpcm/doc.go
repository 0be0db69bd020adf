// SPDX-License-Identifier: EPL-2.0

// Package adpcm decodes Sony VAG / PS-ADPCM streams.
//
// A standard block is 16 bytes: a header byte (high nibble selects the
// predictor row, low nibble the shift), a flag byte and 14 data bytes holding
// 28 four-bit residuals. The short variant packs a header byte and 3 data
// bytes into 4 bytes and carries no flags.
//
// Each residual is shifted into the top of a 16-bit word, scaled down by the
// block shift and added to a weighted sum of the two previous samples:
//
//	s = (r << 12 >> shift) + (s1*a + s2*b + 32) >> 6
//
// Flag 0x07 ends the stream; bit 2 marks the loop start block and bit 0 the
// loop end block.
package adpcm
