// Copyright 2026 The ProCern Authors
// SPDX-License-Identifier: Apache-2.0

package varbor

import "github.com/fxamacker/cbor/v2"

// Diagnose renders v as RFC 8949 §8 diagnostic notation, a
// human-readable text form useful for logging and debugging. It
// delegates to cbor.Diagnose against v's own canonical encoding, so
// the diagnostic text always agrees with what Encode actually wrote.
//
// Diagnose returns no error. It panics if cbor.Diagnose rejects the
// encoding, which happens for a Value holding a Break (encoded as a
// BREAK byte outside any indefinite-length item).
func Diagnose(v Value) string {
	text, err := cbor.Diagnose(Encode(v))
	if err != nil {
		panic("varbor: cbor.Diagnose rejected our own encoding: " + err.Error())
	}
	return text
}
