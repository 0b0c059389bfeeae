// Copyright 2026 The ProCern Authors
// SPDX-License-Identifier: Apache-2.0

package varbor

import "math"

// Encode returns the canonical CBOR encoding of v. Encoding a
// well-formed Value cannot fail: the only way to provoke an error is
// out-of-memory, which Go reports as a runtime panic rather than an
// error value.
func Encode(v Value) []byte {
	return AppendEncode(nil, v)
}

// AppendEncode appends the CBOR encoding of v to dst and returns the
// grown slice, in the style of the standard library's Append*
// functions. This lets a caller assemble a larger protocol message
// around one or more encoded items without an intermediate allocation.
func AppendEncode(dst []byte, v Value) []byte {
	switch v.kind {
	case KindPositive:
		return writeHeader(dst, Header{Type: MajorPositiveInteger, Count: CountForUint(v.u)})
	case KindNegative:
		return writeHeader(dst, Header{Type: MajorNegativeInteger, Count: CountForUint(v.u)})
	case KindByteString:
		dst = writeHeader(dst, Header{Type: MajorByteString, Count: CountForUint(uint64(len(v.bytes)))})
		return append(dst, v.bytes...)
	case KindUtf8String:
		dst = writeHeader(dst, Header{Type: MajorUtf8String, Count: CountForUint(uint64(len(v.bytes)))})
		return append(dst, v.bytes...)
	case KindArray:
		dst = writeHeader(dst, Header{Type: MajorArray, Count: CountForUint(uint64(len(v.items)))})
		for _, item := range v.items {
			dst = AppendEncode(dst, item)
		}
		return dst
	case KindMap:
		dst = writeHeader(dst, Header{Type: MajorMap, Count: CountForUint(uint64(v.m.Len()))})
		for _, entry := range v.m.entries {
			dst = AppendEncode(dst, entry.Key)
			dst = AppendEncode(dst, entry.Value)
		}
		return dst
	case KindTag:
		dst = writeHeader(dst, Header{Type: MajorSemanticTag, Count: CountForUint(v.u)})
		return AppendEncode(dst, *v.tag)
	case KindBoolean:
		tiny := uint8(20)
		if v.u != 0 {
			tiny = 21
		}
		return writeHeader(dst, Header{Type: MajorSpecialFloat, Count: TinyCount(tiny)})
	case KindNull:
		return writeHeader(dst, Header{Type: MajorSpecialFloat, Count: TinyCount(22)})
	case KindUndefined:
		return writeHeader(dst, Header{Type: MajorSpecialFloat, Count: TinyCount(23)})
	case KindBreak:
		return writeHeader(dst, Header{Type: MajorSpecialFloat, Count: IndefiniteCount()})
	case KindFloat:
		return appendFloat(dst, v.f)
	default:
		panic("varbor: unknown Kind " + v.kind.String())
	}
}

// appendFloat runs the float compaction cascade: prefer binary16, then
// binary32, then binary64 — whichever is the smallest
// form that round-trips x exactly. NaN always takes the binary16 path
// and canonicalizes to 0xF9 0x7E 0x00, regardless of which NaN bit
// pattern x carried.
func appendFloat(dst []byte, x float64) []byte {
	if math.IsNaN(x) {
		return writeHeader(dst, Header{
			Type:  MajorSpecialFloat,
			Count: Count{Arm: ArmUint16, Bits: 0x7E00},
		})
	}
	f := float32(x)
	if float64(f) == x {
		if bits, ok := LosslessFloat16(f); ok {
			return writeHeader(dst, Header{
				Type:  MajorSpecialFloat,
				Count: Count{Arm: ArmUint16, Bits: uint64(bits)},
			})
		}
		return writeHeader(dst, Header{
			Type:  MajorSpecialFloat,
			Count: Count{Arm: ArmUint32, Bits: uint64(math.Float32bits(f))},
		})
	}
	return writeHeader(dst, Header{
		Type:  MajorSpecialFloat,
		Count: Count{Arm: ArmUint64, Bits: math.Float64bits(x)},
	})
}
