// Copyright 2026 The ProCern Authors
// SPDX-License-Identifier: Apache-2.0

// Package varbor implements a CBOR (RFC 8949) value model, encoder, and
// decoder.
//
// varbor is a lossless, canonicalizing bridge between application data
// and the CBOR wire format. A [Value] is a recursive tree that can
// represent every CBOR major type, including maps keyed by arbitrary
// Values ordered by CBOR's canonical container comparison rule (shorter
// sorts first, then lexicographic by element).
//
// Construct values with the typed constructors:
//
//	v := varbor.Array([]varbor.Value{
//		varbor.String("1337"),
//		varbor.String("6969"),
//	})
//
// Encode and decode work on plain byte slices:
//
//	data := varbor.Encode(v)
//	decoded, err := varbor.Decode(data)
//
// Floats are compacted to the smallest of binary16, binary32, or
// binary64 that represents them losslessly — see [Float64] and
// the package-level float16 helpers.
//
// varbor does not perform I/O. Callers own buffering, framing, and
// timeouts; [AppendEncode] and [DecodeFrom] operate directly on byte
// slices so a caller can embed a CBOR item inside a larger protocol
// message without an intermediate copy.
package varbor
