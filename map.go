// Copyright 2026 The ProCern Authors
// SPDX-License-Identifier: Apache-2.0

package varbor

import "sort"

// MapEntry is one key/value pair of a Map, in canonical order.
type MapEntry struct {
	Key   Value
	Value Value
}

// Map is a CBOR map keyed by arbitrary Values, maintained in
// canonical key order (by Compare on the key). A hash map alone cannot
// serve this role because encoding order must be deterministic
// regardless of insertion order — see DESIGN.md.
type Map struct {
	entries []MapEntry
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{}
}

// NewMapOf returns a Map built from entries, which may be given in any
// order; the Map sorts them into canonical order. If the same key
// (compared with Equal) appears more than once, the first occurrence
// wins.
func NewMapOf(entries ...MapEntry) *Map {
	m := NewMap()
	for _, e := range entries {
		m.insertIfAbsent(e.Key, e.Value)
	}
	return m
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.entries)
}

// Entries returns a copy of the Map's entries in canonical order. The
// result is safe for the caller to retain and mutate.
func (m *Map) Entries() []MapEntry {
	out := make([]MapEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Get returns the value associated with key, if present.
func (m *Map) Get(key Value) (Value, bool) {
	i, found := m.search(key)
	if !found {
		return Value{}, false
	}
	return m.entries[i].Value, true
}

// Set inserts or overwrites the value associated with key, maintaining
// canonical order. Unlike the decoder's duplicate-key handling, Set is
// an upsert — the natural behavior for a caller building a Map by hand.
func (m *Map) Set(key, value Value) {
	i, found := m.search(key)
	if found {
		m.entries[i].Value = value
		return
	}
	m.entries = append(m.entries, MapEntry{})
	copy(m.entries[i+1:], m.entries[i:])
	m.entries[i] = MapEntry{Key: key, Value: value}
}

// insertIfAbsent inserts key/value only if key is not already present,
// used by the decoder so that the first occurrence of a duplicate wire
// key wins.
func (m *Map) insertIfAbsent(key, value Value) {
	i, found := m.search(key)
	if found {
		return
	}
	m.entries = append(m.entries, MapEntry{})
	copy(m.entries[i+1:], m.entries[i:])
	m.entries[i] = MapEntry{Key: key, Value: value}
}

// search returns the index at which key is found, or at which it
// should be inserted to preserve canonical order.
func (m *Map) search(key Value) (index int, found bool) {
	i := sort.Search(len(m.entries), func(i int) bool {
		return Compare(m.entries[i].Key, key) >= 0
	})
	if i < len(m.entries) && Compare(m.entries[i].Key, key) == 0 {
		return i, true
	}
	return i, false
}

// Value wraps m as a Map-kind Value.
func (m *Map) Value() Value {
	return Value{kind: KindMap, m: m}
}
