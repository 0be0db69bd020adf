// SPDX-License-Identifier: EPL-2.0

// Package utils holds small numeric helpers shared by the codec, audio and
// SoundFont packages.
package utils

import "math"

// ClampInt16 saturates v to the signed 16-bit range.
func ClampInt16(v int32) int16 {
	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	}

	return int16(v)
}

// Int16ToFloat32 maps a PCM sample to [-1, 1).
func Int16ToFloat32(s int16) float32 {
	return float32(s) / 32768.0
}

// Float32ToInt16 is the inverse of Int16ToFloat32. Values outside [-1, 1] are
// clamped and the result is rounded to the nearest integer, so a sample that
// went through Int16ToFloat32 comes back unchanged.
func Float32ToInt16(x float32) int16 {
	v := math.Round(float64(x) * 32768.0)

	return ClampInt16(int32(max(min(v, math.MaxInt16), math.MinInt16)))
}

// CubicInterpolate evaluates a Catmull-Rom spline through y0..y3 at x, where
// x in [0, 1] is the position between y1 and y2.
func CubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	a := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	b := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	c := -0.5*y0 + 0.5*y2

	return ((a*x+b)*x+c)*x + y1
}
