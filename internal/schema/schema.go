// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package schema

import (
	"fmt"

	"github.com/specialistvlad/resmap/internal/inflect"
)

// Schema is the immutable field table of one resource type: an ordered
// sequence of FieldSpec plus the resolved key-naming mode. It is built
// exactly once by Builder.Finalize and is safe for unsynchronized concurrent
// reads thereafter.
type Schema struct {
	name      string
	fields    []FieldSpec
	byName    map[string]int
	keys      []string
	mode      inflect.Mode
	finalized bool
}

// Name returns the resource type's name.
func (s *Schema) Name() string { return s.name }

// Len returns the number of declared fields.
func (s *Schema) Len() int {
	s.check()
	return len(s.fields)
}

// Fields returns the declared field names in declaration order.
func (s *Schema) Fields() []string {
	s.check()
	names := make([]string, len(s.fields))
	for i, fs := range s.fields {
		names[i] = fs.Name
	}
	return names
}

// Types returns the full field-name-to-declared-type table.
func (s *Schema) Types() map[string]Type {
	s.check()
	types := make(map[string]Type, len(s.fields))
	for _, fs := range s.fields {
		types[fs.Name] = fs.Type
	}
	return types
}

// TypeOf returns the declared type of a field. The second result is false
// for undeclared names; querying an unknown field is not an error.
func (s *Schema) TypeOf(name string) (Type, bool) {
	s.check()
	i, ok := s.byName[name]
	if !ok {
		return Type{}, false
	}
	return s.fields[i].Type, true
}

// Spec returns the full declaration of a field.
func (s *Schema) Spec(name string) (FieldSpec, bool) {
	s.check()
	i, ok := s.byName[name]
	if !ok {
		return FieldSpec{}, false
	}
	return s.fields[i], true
}

// SpecAt returns the i'th field declaration, in declaration order. The
// engines iterate with Len/SpecAt/KeyAt to avoid per-call allocations.
func (s *Schema) SpecAt(i int) FieldSpec {
	s.check()
	return s.fields[i]
}

// KeyAt returns the precomputed wire key of the i'th field.
func (s *Schema) KeyAt(i int) string {
	s.check()
	return s.keys[i]
}

// Key returns the precomputed wire key for a field name, equal to
// inflect.Convert(name, s.Inflect()).
func (s *Schema) Key(name string) (string, bool) {
	s.check()
	i, ok := s.byName[name]
	if !ok {
		return "", false
	}
	return s.keys[i], true
}

// Inflect returns the key-naming mode resolved at finalize time.
func (s *Schema) Inflect() inflect.Mode {
	s.check()
	return s.mode
}

// check guards against querying a schema whose declaration never closed,
// which would otherwise surface as silently empty field sets.
func (s *Schema) check() {
	if !s.finalized {
		panic(fmt.Sprintf("schema: resource %q used before Finalize", s.name))
	}
}
