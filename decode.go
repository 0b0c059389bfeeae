// Copyright 2026 The ProCern Authors
// SPDX-License-Identifier: Apache-2.0

package varbor

import "math"

// defaultMaxDepth bounds recursion depth for the convenience Decode
// and DecodeFrom entry points, defending against stack exhaustion from
// deeply nested hostile input.
const defaultMaxDepth = 1024

// DecodeOptions configures DecodeWithOptions and DecodeFromWithOptions.
type DecodeOptions struct {
	// MaxDepth bounds container/tag/chunked-string nesting depth. Zero
	// means unlimited. The zero value of DecodeOptions therefore means
	// unlimited — callers that want the library's usual protection
	// should use Decode or DecodeFrom, which default MaxDepth to 1024.
	MaxDepth int
}

// Decode parses a single CBOR item from the start of data. Unlike
// DecodeFrom, it does not report unconsumed trailing bytes as a
// result — if data contains more than one item, Decode still succeeds
// and silently ignores everything after the first. Use DecodeFrom to
// process a sequence of items.
func Decode(data []byte) (Value, error) {
	return DecodeWithOptions(data, DecodeOptions{MaxDepth: defaultMaxDepth})
}

// DecodeWithOptions is Decode with explicit options.
func DecodeWithOptions(data []byte, opts DecodeOptions) (Value, error) {
	v, _, err := DecodeFromWithOptions(data, opts)
	return v, err
}

// DecodeFrom parses a single CBOR item from the start of data and
// returns it along with the unconsumed remainder, so a caller can
// decode a sequence of back-to-back items without re-slicing by hand.
func DecodeFrom(data []byte) (Value, []byte, error) {
	return DecodeFromWithOptions(data, DecodeOptions{MaxDepth: defaultMaxDepth})
}

// DecodeFromWithOptions is DecodeFrom with explicit options.
func DecodeFromWithOptions(data []byte, opts DecodeOptions) (Value, []byte, error) {
	c := newCursor(data)
	v, err := decodeValue(c, 0, opts.MaxDepth)
	if err != nil {
		return Value{}, nil, err
	}
	return v, c.data[c.pos:], nil
}

// decodeValue is the single recursive decode entry point dispatching
// on major type. depth is the nesting level of the item being decoded
// (0 for the top-level item); maxDepth of 0 disables the check.
func decodeValue(c *cursor, depth, maxDepth int) (Value, error) {
	if maxDepth > 0 && depth > maxDepth {
		return Value{}, newError(ErrorKindDepthExceeded, c.pos, "nesting exceeds maximum depth %d", maxDepth)
	}

	header, err := readHeader(c)
	if err != nil {
		return Value{}, err
	}

	switch header.Type {
	case MajorPositiveInteger:
		n, definite, err := header.Count.NormalizedCount()
		if err != nil {
			return Value{}, err
		}
		if !definite {
			return Value{}, newError(ErrorKindInvalidType, c.pos, "indefinite-length count is illegal for PositiveInteger")
		}
		return Positive(n), nil

	case MajorNegativeInteger:
		n, definite, err := header.Count.NormalizedCount()
		if err != nil {
			return Value{}, err
		}
		if !definite {
			return Value{}, newError(ErrorKindInvalidType, c.pos, "indefinite-length count is illegal for NegativeInteger")
		}
		return Negative(n), nil

	case MajorByteString:
		b, err := decodeStringPayload(c, header, depth, maxDepth, MajorByteString)
		if err != nil {
			return Value{}, err
		}
		return Bytes(b), nil

	case MajorUtf8String:
		b, err := decodeStringPayload(c, header, depth, maxDepth, MajorUtf8String)
		if err != nil {
			return Value{}, err
		}
		return String(string(b)), nil

	case MajorArray:
		return decodeArray(c, header, depth, maxDepth)

	case MajorMap:
		return decodeMap(c, header, depth, maxDepth)

	case MajorSemanticTag:
		id, definite, err := header.Count.NormalizedCount()
		if err != nil {
			return Value{}, err
		}
		if !definite {
			return Value{}, newError(ErrorKindInvalidType, c.pos, "indefinite-length count is illegal for SemanticTag")
		}
		child, err := decodeValue(c, depth+1, maxDepth)
		if err != nil {
			return Value{}, err
		}
		return Tag(id, child), nil

	case MajorSpecialFloat:
		return decodeSpecial(c, header)

	default:
		return Value{}, newError(ErrorKindInvalidType, c.pos, "illegal major type %d", header.Type)
	}
}

// decodeStringPayload consumes a definite- or indefinite-length
// ByteString/Utf8String payload. major selects which kind of chunk is
// legal when the string is chunked: each chunk must match the
// parent's major type and must itself be definite-length.
func decodeStringPayload(c *cursor, header Header, depth, maxDepth int, major MajorType) ([]byte, error) {
	count, definite, err := header.Count.NormalizedCount()
	if err != nil {
		return nil, err
	}

	if definite {
		return c.readN(int(count))
	}

	var out []byte
	for {
		chunkHeader, err := readHeader(c)
		if err != nil {
			return nil, err
		}
		if chunkHeader.Type == MajorSpecialFloat {
			if isBreakHeader(chunkHeader) {
				return out, nil
			}
			return nil, newError(ErrorKindInvalidType, c.pos, "indefinite %s chunk: expected %s or BREAK, found SpecialFloat", major, major)
		}
		if chunkHeader.Type != major {
			return nil, newError(ErrorKindInvalidType, c.pos, "indefinite %s chunk: expected %s, found %s", major, major, chunkHeader.Type)
		}
		chunkCount, chunkDefinite, err := chunkHeader.Count.NormalizedCount()
		if err != nil {
			return nil, err
		}
		if !chunkDefinite {
			return nil, newError(ErrorKindIndefiniteNesting, c.pos, "indefinite %s chunk must itself be definite-length", major)
		}
		chunk, err := c.readN(int(chunkCount))
		if err != nil {
			return nil, err
		}
		out = append(out, chunk...)
	}
}

func decodeArray(c *cursor, header Header, depth, maxDepth int) (Value, error) {
	count, definite, err := header.Count.NormalizedCount()
	if err != nil {
		return Value{}, err
	}

	if definite {
		// Each element consumes at least one byte, so a count that
		// exceeds the remaining input is already malformed — reject it
		// before preallocating rather than trusting an attacker-controlled
		// 64-bit count as a slice capacity.
		if count > uint64(c.remaining()) {
			return Value{}, newError(ErrorKindEndOfInput, c.pos, "array count %d exceeds %d remaining bytes", count, c.remaining())
		}
		items := make([]Value, 0, count)
		for i := uint64(0); i < count; i++ {
			item, err := decodeValue(c, depth+1, maxDepth)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return Array(items), nil
	}

	var items []Value
	for {
		item, err := decodeValue(c, depth+1, maxDepth)
		if err != nil {
			return Value{}, err
		}
		if item.IsBreak() {
			return Array(items), nil
		}
		items = append(items, item)
	}
}

func decodeMap(c *cursor, header Header, depth, maxDepth int) (Value, error) {
	count, definite, err := header.Count.NormalizedCount()
	if err != nil {
		return Value{}, err
	}

	m := NewMap()
	if definite {
		for i := uint64(0); i < count; i++ {
			key, err := decodeValue(c, depth+1, maxDepth)
			if err != nil {
				return Value{}, err
			}
			val, err := decodeValue(c, depth+1, maxDepth)
			if err != nil {
				return Value{}, err
			}
			m.insertIfAbsent(key, val)
		}
		return m.Value(), nil
	}

	for {
		key, err := decodeValue(c, depth+1, maxDepth)
		if err != nil {
			return Value{}, err
		}
		if key.IsBreak() {
			return m.Value(), nil
		}
		val, err := decodeValue(c, depth+1, maxDepth)
		if err != nil {
			return Value{}, err
		}
		m.insertIfAbsent(key, val)
	}
}

// isBreakHeader reports whether header is the SpecialFloat/BREAK
// sentinel (tiny value 31).
func isBreakHeader(header Header) bool {
	return header.Count.Arm == ArmTiny && header.Count.Tiny == indefiniteTiny
}

// decodeSpecial materializes a MajorSpecialFloat header. Unlike every
// other major type, the Count arm here selects an IEEE-754 layout, not
// a count, so it must be dispatched on the arm directly rather than
// through NormalizedCount.
func decodeSpecial(c *cursor, header Header) (Value, error) {
	switch header.Count.Arm {
	case ArmTiny:
		switch header.Count.Tiny {
		case 20:
			return Bool(false), nil
		case 21:
			return Bool(true), nil
		case 22:
			return Null(), nil
		case 23:
			return Undefined(), nil
		case indefiniteTiny:
			return BreakValue(), nil
		default:
			return Value{}, newError(ErrorKindIllegalSpecialFloat, c.pos, "illegal special float tiny value %d", header.Count.Tiny)
		}
	case ArmUint8:
		return Value{}, newError(ErrorKindIllegalSpecialFloat, c.pos, "illegal special float simple value %d", header.Count.Bits)
	case ArmUint16:
		return Float64(float64(ReadFloat16(uint16(header.Count.Bits)))), nil
	case ArmUint32:
		return Float64(float64(math.Float32frombits(uint32(header.Count.Bits)))), nil
	case ArmUint64:
		return Float64(math.Float64frombits(header.Count.Bits)), nil
	default:
		return Value{}, newError(ErrorKindIllegalSpecialFloat, c.pos, "unknown count arm %d", header.Count.Arm)
	}
}
