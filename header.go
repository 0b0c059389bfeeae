// Copyright 2026 The ProCern Authors
// SPDX-License-Identifier: Apache-2.0

package varbor

import "errors"

// MajorType is one of CBOR's eight top-level type tags. Its numeric
// value is wire-significant: it occupies the top three bits of a
// header's first byte.
type MajorType uint8

const (
	MajorPositiveInteger MajorType = 0
	MajorNegativeInteger MajorType = 1
	MajorByteString      MajorType = 2
	MajorUtf8String      MajorType = 3
	MajorArray           MajorType = 4
	MajorMap             MajorType = 5
	MajorSemanticTag     MajorType = 6
	MajorSpecialFloat    MajorType = 7
)

func (m MajorType) String() string {
	switch m {
	case MajorPositiveInteger:
		return "PositiveInteger"
	case MajorNegativeInteger:
		return "NegativeInteger"
	case MajorByteString:
		return "ByteString"
	case MajorUtf8String:
		return "Utf8String"
	case MajorArray:
		return "Array"
	case MajorMap:
		return "Map"
	case MajorSemanticTag:
		return "SemanticTag"
	case MajorSpecialFloat:
		return "SpecialFloat"
	default:
		return "Unknown"
	}
}

// CountArm selects how a Count is represented on the wire. The arm is
// semantically meaningful on its own: for MajorSpecialFloat it chooses
// the IEEE-754 layout (half/single/double), so it cannot be collapsed
// into a single 64-bit integer without losing information.
type CountArm uint8

const (
	// ArmTiny is a 5-bit count carried directly in the header byte:
	// 0-23 are literal, 31 means indefinite length. 24-30 are
	// reserved and are an error if normalized.
	ArmTiny CountArm = iota
	// ArmUint8 is a following 1-byte count.
	ArmUint8
	// ArmUint16 is a following 2-byte big-endian count.
	ArmUint16
	// ArmUint32 is a following 4-byte big-endian count.
	ArmUint32
	// ArmUint64 is a following 8-byte big-endian count.
	ArmUint64
)

// indefiniteTiny is the reserved tiny value meaning "length not stated
// in the header; read until BREAK".
const indefiniteTiny = 31

// Count is CBOR's variable-width header count, preserving which arm
// produced it. For every major type except MajorSpecialFloat this is
// just a 64-bit count; for MajorSpecialFloat the arm distinguishes a
// binary16, binary32, or binary64 bit pattern from a genuine count, so
// the arm must never be normalized away before the header is emitted.
type Count struct {
	Arm  CountArm
	// Tiny holds the 5-bit value when Arm is ArmTiny.
	Tiny uint8
	// Bits holds the raw big-endian value (a count for ArmUint8/16/32/64,
	// or an IEEE-754 bit pattern when the header's major type is
	// MajorSpecialFloat) for every arm other than ArmTiny.
	Bits uint64
}

// TinyCount builds a Count from a 5-bit value (0-23, or 31 for
// indefinite). Values 24-30 are reserved; TinyCount accepts them
// structurally, but NormalizedCount rejects them.
func TinyCount(v uint8) Count {
	return Count{Arm: ArmTiny, Tiny: v}
}

// IndefiniteCount returns the Count arm marking an indefinite-length
// container or string.
func IndefiniteCount() Count {
	return TinyCount(indefiniteTiny)
}

// CountForUint builds the Count with the smallest arm that represents
// v: arm 0 for values under 24, then the smallest of arm 1-4 whose
// width holds v. Use this to encode plain integer counts and lengths.
func CountForUint(v uint64) Count {
	switch {
	case v < 24:
		return TinyCount(uint8(v))
	case v < 1<<8:
		return Count{Arm: ArmUint8, Bits: v}
	case v < 1<<16:
		return Count{Arm: ArmUint16, Bits: v}
	case v < 1<<32:
		return Count{Arm: ArmUint32, Bits: v}
	default:
		return Count{Arm: ArmUint64, Bits: v}
	}
}

// NormalizedCount resolves a Count to a plain 64-bit integer when that
// is meaningful. For ArmUint8/16/32/64 it always succeeds. For ArmTiny
// it succeeds with the tiny value when that value is 0-23, reports
// "indefinite" (ok=false, err=nil) when the tiny value is 31, and fails
// with ErrorKindSpecialCount for the reserved values 24-30.
//
// Callers decoding a MajorSpecialFloat header must not call this: the
// arm there selects an IEEE-754 layout, not a count, and normalizing it
// would silently discard that distinction.
func (c Count) NormalizedCount() (value uint64, ok bool, err error) {
	switch c.Arm {
	case ArmTiny:
		switch {
		case c.Tiny < 24:
			return uint64(c.Tiny), true, nil
		case c.Tiny == indefiniteTiny:
			return 0, false, nil
		default:
			return 0, false, newError(ErrorKindSpecialCount, -1, "tiny count %d is reserved and cannot be normalized", c.Tiny)
		}
	default:
		return c.Bits, true, nil
	}
}

// Header is a CBOR item prefix: the major type plus its count.
type Header struct {
	Type  MajorType
	Count Count
}

// writeHeader appends the wire encoding of h to dst and returns the
// grown slice. The first byte is (major type << 5) | short count; arms
// other than ArmTiny append 1/2/4/8 big-endian bytes carrying Bits.
func writeHeader(dst []byte, h Header) []byte {
	typeByte := byte(h.Type) << 5

	switch h.Count.Arm {
	case ArmTiny:
		return append(dst, typeByte|h.Count.Tiny)
	case ArmUint8:
		dst = append(dst, typeByte|24)
		return appendUint8(dst, uint8(h.Count.Bits))
	case ArmUint16:
		dst = append(dst, typeByte|25)
		return appendUint16(dst, uint16(h.Count.Bits))
	case ArmUint32:
		dst = append(dst, typeByte|26)
		return appendUint32(dst, uint32(h.Count.Bits))
	default: // ArmUint64
		dst = append(dst, typeByte|27)
		return appendUint64(dst, h.Count.Bits)
	}
}

// readHeader consumes one item prefix from c.
func readHeader(c *cursor) (Header, error) {
	start := c.pos
	b, err := c.readByte()
	if err != nil {
		return Header{}, err
	}

	major := MajorType(b >> 5)
	tiny := b & 0b00011111

	switch tiny {
	case 24:
		v, err := c.readByte()
		if err != nil {
			return Header{}, wrapHeaderErr(err, start)
		}
		return Header{Type: major, Count: Count{Arm: ArmUint8, Bits: uint64(v)}}, nil
	case 25:
		v, err := c.readUint16()
		if err != nil {
			return Header{}, wrapHeaderErr(err, start)
		}
		return Header{Type: major, Count: Count{Arm: ArmUint16, Bits: uint64(v)}}, nil
	case 26:
		v, err := c.readUint32()
		if err != nil {
			return Header{}, wrapHeaderErr(err, start)
		}
		return Header{Type: major, Count: Count{Arm: ArmUint32, Bits: uint64(v)}}, nil
	case 27:
		v, err := c.readUint64()
		if err != nil {
			return Header{}, wrapHeaderErr(err, start)
		}
		return Header{Type: major, Count: Count{Arm: ArmUint64, Bits: v}}, nil
	default:
		return Header{Type: major, Count: TinyCount(tiny)}, nil
	}
}

// wrapHeaderErr re-anchors an EndOfInput error's offset to where the
// header that triggered it started, which is more useful to a caller
// than the offset of the specific missing byte.
func wrapHeaderErr(err error, headerStart int) error {
	var e *Error
	if errors.As(err, &e) {
		return newError(e.Kind, headerStart, "reading header starting at offset %d: %s", headerStart, e.Message)
	}
	return err
}
