// Copyright 2026 The ProCern Authors
// SPDX-License-Identifier: Apache-2.0

package varbor

import (
	"errors"
	"fmt"
)

// ErrorKind identifies the category of a decode or access failure.
type ErrorKind string

const (
	// ErrorKindEndOfInput means the cursor was exhausted while reading a
	// header or a fixed-length payload.
	ErrorKindEndOfInput ErrorKind = "end_of_input"

	// ErrorKindIllegalSpecialFloat means a SpecialFloat header carried a
	// tiny slot or single-byte count this core does not materialize
	// (an unassigned tiny value, or the simple-value range 32-255).
	ErrorKindIllegalSpecialFloat ErrorKind = "illegal_special_float"

	// ErrorKindSpecialCount means NormalizedCount was asked to resolve a
	// tiny slot in the reserved 24-30 range.
	ErrorKindSpecialCount ErrorKind = "special_count"

	// ErrorKindInvalidType means a typed accessor was required against a
	// Value of a different Kind, or that the decoder found a header of
	// the wrong type for its position: an indefinite-length count on a
	// PositiveInteger, NegativeInteger or SemanticTag, or a chunk of the
	// wrong major type inside an indefinite-length string.
	ErrorKindInvalidType ErrorKind = "invalid_type"

	// ErrorKindDepthExceeded means decoding recursed past the configured
	// maximum nesting depth.
	ErrorKindDepthExceeded ErrorKind = "depth_exceeded"

	// ErrorKindIndefiniteNesting means an indefinite-length byte or UTF-8
	// string chunk was itself indefinite-length, which RFC 8949
	// forbids.
	ErrorKindIndefiniteNesting ErrorKind = "indefinite_nesting"
)

// Error is the structured failure type returned by every decode and
// typed-accessor operation in this package. Callers that need to branch
// on failure kind should use errors.As and inspect Kind, or one of the
// Is* predicates below.
type Error struct {
	// Kind categorizes the failure.
	Kind ErrorKind
	// Message is a human-readable description of what went wrong.
	Message string
	// Offset is the byte offset into the input at which the failure
	// was detected, when known. -1 means not applicable (e.g. a
	// typed-accessor failure against an in-memory Value).
	Offset int
}

func (e *Error) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("varbor: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("varbor: %s: %s (at offset %d)", e.Kind, e.Message, e.Offset)
}

func newError(kind ErrorKind, offset int, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Offset: offset}
}

// IsEndOfInput reports whether err is a *Error of ErrorKindEndOfInput — the
// cursor ran out of bytes mid-header or mid-payload. A caller holding a
// growing buffer MAY retry decoding once more bytes arrive.
func IsEndOfInput(err error) bool {
	return hasKind(err, ErrorKindEndOfInput)
}

// IsIllegalSpecialFloat reports whether err is a *Error of
// ErrorKindIllegalSpecialFloat.
func IsIllegalSpecialFloat(err error) bool {
	return hasKind(err, ErrorKindIllegalSpecialFloat)
}

// IsSpecialCountError reports whether err is a *Error of
// ErrorKindSpecialCount.
func IsSpecialCountError(err error) bool {
	return hasKind(err, ErrorKindSpecialCount)
}

// IsInvalidType reports whether err is a *Error of ErrorKindInvalidType.
func IsInvalidType(err error) bool {
	return hasKind(err, ErrorKindInvalidType)
}

// IsDepthExceeded reports whether err is a *Error of ErrorKindDepthExceeded.
func IsDepthExceeded(err error) bool {
	return hasKind(err, ErrorKindDepthExceeded)
}

// IsIndefiniteNesting reports whether err is a *Error of
// ErrorKindIndefiniteNesting.
func IsIndefiniteNesting(err error) bool {
	return hasKind(err, ErrorKindIndefiniteNesting)
}

func hasKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
