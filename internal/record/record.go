// Package record defines the generic wire value the conversion engines
// produce and consume: an ordered, string-keyed mapping whose values are
// JSON-like (nested records, lists, strings, numbers, booleans, null).
//
// Ordering matters on the way out — serialization emits keys in field
// declaration order — so Record is an insertion-ordered map rather than a
// plain Go map. Its JSON marshaling and unmarshaling both preserve key order.
package record

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Record is an insertion-ordered string-keyed mapping. Nested objects inside
// a JSON-unmarshaled Record are themselves *Record values.
type Record = orderedmap.OrderedMap[string, any]

// New returns an empty record.
func New() *Record {
	return orderedmap.New[string, any]()
}

// FromMap builds a record from a plain Go map. Iteration order of the source
// map is not deterministic, so FromMap is for inputs where ordering carries
// no meaning (deserialization looks keys up, it never iterates).
func FromMap(m map[string]any) *Record {
	r := orderedmap.New[string, any](len(m))
	for k, v := range m {
		r.Set(k, v)
	}
	return r
}

// Keys returns the record's keys in insertion order.
func Keys(r *Record) []string {
	keys := make([]string, 0, r.Len())
	for pair := r.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// AsRecord views a generic value as a record if it is one. It accepts both
// *Record (the engines' own output and JSON-decoded objects) and plain
// map[string]any (hand-built inputs), so callers keyed on capability rather
// than concrete type can stay agnostic.
func AsRecord(v any) (*Record, bool) {
	switch rec := v.(type) {
	case *Record:
		return rec, true
	case map[string]any:
		return FromMap(rec), true
	default:
		return nil, false
	}
}
