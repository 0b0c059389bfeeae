// Copyright 2026 The ProCern Authors
// SPDX-License-Identifier: Apache-2.0

package varbor

import "github.com/x448/float16"

// ReadFloat16 decodes an IEEE-754 binary16 bit pattern (as found in a
// MajorSpecialFloat header's ArmUint16 count) to its widened float32
// value. Subnormals, ±0, ±∞, and NaN all decode correctly; a signaling
// or quiet NaN payload decodes to some NaN — callers that need a
// canonical NaN should not rely on the specific bit pattern recovered.
func ReadFloat16(bits uint16) float32 {
	return float16.Frombits(bits).Float32()
}

// LosslessFloat16 returns the binary16 encoding of f and ok=true if and
// only if f round-trips through binary16 exactly. Zero (both signs),
// infinities (both signs), and NaN always compact; every other value
// compacts only when its exponent falls in binary16's range and the
// low 13 bits of its 23-bit mantissa are zero.
func LosslessFloat16(f float32) (bits uint16, ok bool) {
	if float16.PrecisionFromfloat32(f) != float16.PrecisionExact {
		return 0, false
	}
	return uint16(float16.Fromfloat32(f)), true
}
