// Copyright 2026 The ProCern Authors
// SPDX-License-Identifier: Apache-2.0

package varbor

import "encoding/binary"

// appendUint8 appends a single big-endian byte. CBOR's header format
// calls this the "1-byte extended count".
func appendUint8(dst []byte, v uint8) []byte {
	return append(dst, v)
}

// appendUint16 appends a 16-bit unsigned integer, big-endian.
func appendUint16(dst []byte, v uint16) []byte {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	return append(dst, buf[:]...)
}

// appendUint32 appends a 32-bit unsigned integer, big-endian.
func appendUint32(dst []byte, v uint32) []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return append(dst, buf[:]...)
}

// appendUint64 appends a 64-bit unsigned integer, big-endian.
func appendUint64(dst []byte, v uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return append(dst, buf[:]...)
}

// cursor is a read-only, forward-only view over a byte slice. It is the
// decoder's equivalent of the encoder's append-to-slice style: no
// copying, no interface dispatch, just an offset into the original
// buffer.
type cursor struct {
	data []byte
	pos  int
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data}
}

// remaining returns the number of unread bytes.
func (c *cursor) remaining() int {
	return len(c.data) - c.pos
}

// readByte consumes and returns one byte.
func (c *cursor) readByte() (byte, error) {
	if c.remaining() < 1 {
		return 0, newError(ErrorKindEndOfInput, c.pos, "expected 1 byte, found %d remaining", c.remaining())
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

// readN consumes and returns the next n bytes as a sub-slice of the
// original buffer (no copy — callers that retain the result past the
// lifetime of the source buffer must copy it themselves).
func (c *cursor) readN(n int) ([]byte, error) {
	if n < 0 || c.remaining() < n {
		return nil, newError(ErrorKindEndOfInput, c.pos, "expected %d bytes, found %d remaining", n, c.remaining())
	}
	out := c.data[c.pos : c.pos+n]
	c.pos += n
	return out, nil
}

func (c *cursor) readUint16() (uint16, error) {
	b, err := c.readN(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (c *cursor) readUint32() (uint32, error) {
	b, err := c.readN(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (c *cursor) readUint64() (uint64, error) {
	b, err := c.readN(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}
