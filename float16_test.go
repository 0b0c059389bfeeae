// Copyright 2026 The ProCern Authors
// SPDX-License-Identifier: Apache-2.0

package varbor

import (
	"math"
	"testing"
)

func TestLosslessFloat16(t *testing.T) {
	cases := []struct {
		name string
		f    float32
		want uint16
		ok   bool
	}{
		{"zero", 0.0, 0x0000, true},
		{"negative zero", float32(math.Copysign(0, -1)), 0x8000, true},
		{"positive infinity", float32(math.Inf(1)), 0x7C00, true},
		{"negative infinity", float32(math.Inf(-1)), 0xFC00, true},
		{"nan", float32(math.NaN()), 0x7E00, true},
		{"0.15625", 0.15625, 0x3100, true},
		{"one third does not compact", float32(1.0 / 3.0), 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			bits, ok := LosslessFloat16(c.f)
			if ok != c.ok {
				t.Fatalf("LosslessFloat16(%v) ok = %v, want %v", c.f, ok, c.ok)
			}
			if ok && bits != c.want {
				t.Errorf("LosslessFloat16(%v) = %#04x, want %#04x", c.f, bits, c.want)
			}
		})
	}
}

func TestReadFloat16RoundTrip(t *testing.T) {
	for _, bits := range []uint16{0x0000, 0x8000, 0x3D00, 0x7C00, 0xFC00} {
		f := ReadFloat16(bits)
		got, ok := LosslessFloat16(f)
		if !ok {
			t.Fatalf("ReadFloat16(%#04x) = %v, which does not compact back", bits, f)
		}
		if got != bits {
			t.Errorf("round-trip %#04x -> %v -> %#04x", bits, f, got)
		}
	}
}

func TestReadFloat16Subnormal(t *testing.T) {
	// Smallest positive subnormal: exponent 0, fraction 1.
	got := ReadFloat16(0x0001)
	want := float32(math.Pow(2, -24))
	if got != want {
		t.Errorf("ReadFloat16(0x0001) = %v, want %v", got, want)
	}
}
