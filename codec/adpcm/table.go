// SPDX-License-Identifier: EPL-2.0

package adpcm

// Predictor rows are (weight of s[-1], weight of s[-2]) in 1/64 units.
type coefficient struct {
	a, b int32
}

var basicTable = [...]coefficient{
	{0, 0},
	{60, 0},
	{115, -52},
	{98, -55},
	{122, -60},
}

// Sony's extended table, as used by PSP firmware.
var extendedTable = [...]coefficient{
	{0, 0},
	{60, 0},
	{115, -52},
	{98, -55},
	{122, -60},
	{0, 0},
	{0, 0},
	{52, 0},
	{55, -2},
	{60, -125},
	{0, 0},
	{0, -91},
	{0, 0},
	{0, 0},
	{0, 0},
	{0, 0},
}

func lookup(row int, extended bool) coefficient {
	if extended {
		if row < len(extendedTable) {
			return extendedTable[row]
		}

		return extendedTable[0]
	}

	if row < len(basicTable) {
		return basicTable[row]
	}

	return basicTable[0]
}
