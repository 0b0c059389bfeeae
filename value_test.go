// Copyright 2026 The ProCern Authors
// SPDX-License-Identifier: Apache-2.0

package varbor

import (
	"math"
	"strings"
	"testing"
)

func TestInt64Constructor(t *testing.T) {
	cases := []struct {
		in   int64
		kind Kind
		u    uint64
	}{
		{0, KindPositive, 0},
		{5, KindPositive, 5},
		{-1, KindNegative, 0},
		{-6, KindNegative, 5},
		{math.MinInt64, KindNegative, math.MaxInt64},
		{math.MaxInt64, KindPositive, math.MaxInt64},
	}
	for _, c := range cases {
		v := Int64(c.in)
		if v.Kind() != c.kind {
			t.Errorf("Int64(%d).Kind() = %v, want %v", c.in, v.Kind(), c.kind)
		}
		if v.u != c.u {
			t.Errorf("Int64(%d) internal u = %d, want %d", c.in, v.u, c.u)
		}
		got, ok := v.AsInt64()
		if !ok {
			t.Fatalf("Int64(%d).AsInt64() ok = false", c.in)
		}
		if got != c.in {
			t.Errorf("Int64(%d).AsInt64() = %d", c.in, got)
		}
	}
}

func TestAccessorsWrongKind(t *testing.T) {
	v := Positive(5)
	if _, ok := v.AsBytes(); ok {
		t.Errorf("AsBytes on Positive should fail")
	}
	if _, err := v.RequireBytes(); !IsInvalidType(err) {
		t.Errorf("RequireBytes on Positive: got %v, want ErrorKindInvalidType", err)
	}
}

func TestRequireInt64Messages(t *testing.T) {
	// Wrong kind entirely: message should name the actual kind, not
	// claim Positive was the sole kind expected.
	_, err := String("x").RequireInt64()
	if !IsInvalidType(err) {
		t.Fatalf("RequireInt64 on Utf8String: got %v, want ErrorKindInvalidType", err)
	}
	if !strings.Contains(err.Error(), "Utf8String") {
		t.Errorf("RequireInt64 on Utf8String error = %q, want it to mention Utf8String", err.Error())
	}

	// Negative but out of int64 range: message should say so rather
	// than claiming Positive was expected.
	outOfRange := Negative(math.MaxUint64)
	_, err = outOfRange.RequireInt64()
	if !IsInvalidType(err) {
		t.Fatalf("RequireInt64 on out-of-range Negative: got %v, want ErrorKindInvalidType", err)
	}
	if !strings.Contains(err.Error(), "Negative") {
		t.Errorf("RequireInt64 out-of-range error = %q, want it to mention Negative", err.Error())
	}
}

func TestEqualNaN(t *testing.T) {
	a := Float64(math.NaN())
	b := Float64(math.Float64frombits(0x7ff8000000000002)) // a different NaN payload
	if !a.Equal(b) {
		t.Errorf("NaN values should be Equal regardless of payload")
	}
}

func TestEqualSignedZero(t *testing.T) {
	pos := Float64(0.0)
	neg := Float64(math.Copysign(0, -1))
	if pos.Equal(neg) {
		t.Errorf("+0.0 and -0.0 should not be Equal")
	}
}

func TestCompareKindOrder(t *testing.T) {
	values := []Value{
		Positive(0),
		Negative(0),
		Bytes(nil),
		String(""),
		Array(nil),
		NewMap().Value(),
		Tag(0, Positive(0)),
		Bool(false),
		Null(),
		Undefined(),
		Float64(0),
		BreakValue(),
	}
	for i := 0; i < len(values); i++ {
		for j := i + 1; j < len(values); j++ {
			if Compare(values[i], values[j]) >= 0 {
				t.Errorf("Compare(%v, %v) = %d, want negative (kind order)",
					values[i].Kind(), values[j].Kind(), Compare(values[i], values[j]))
			}
		}
	}
}

func TestCompareContainerLengthDominates(t *testing.T) {
	// Shorter byte string sorts first even though its bytes are
	// lexicographically larger.
	shorter := Bytes([]byte{0xFF})
	longer := Bytes([]byte{0x00, 0x00})
	if Compare(shorter, longer) >= 0 {
		t.Errorf("Compare(%v, %v) = %d, want negative (shorter-first)", shorter, longer, Compare(shorter, longer))
	}
}

func TestCompareArrayLexicographic(t *testing.T) {
	a := Array([]Value{Positive(1), Positive(2)})
	b := Array([]Value{Positive(1), Positive(3)})
	if Compare(a, b) >= 0 {
		t.Errorf("Compare(a, b) = %d, want negative", Compare(a, b))
	}
}

func TestCompareTagOrdersByID(t *testing.T) {
	a := Tag(1, Positive(100))
	b := Tag(2, Positive(0))
	if Compare(a, b) >= 0 {
		t.Errorf("Compare(tag1, tag2) = %d, want negative", Compare(a, b))
	}
}
