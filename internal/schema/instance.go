// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package schema

import "fmt"

// Instance is a value of a declared resource type. It carries exactly the
// schema's field set: a fresh instance starts with every field at its
// declared default, so an absent value is an explicit nil, never a missing
// key. Instances are conversion-call-local and carry no synchronization.
type Instance struct {
	schema *Schema
	values map[string]any
}

// NewInstance creates a fully populated instance with every field at its
// declared default. Compound defaults (lists, maps) are shared with the
// FieldSpec; the engines treat values as read-only, and callers that mutate
// a compound default do so across all fresh instances.
func NewInstance(s *Schema) *Instance {
	s.check()
	values := make(map[string]any, len(s.fields))
	for _, fs := range s.fields {
		values[fs.Name] = fs.Default
	}
	return &Instance{schema: s, values: values}
}

// Schema returns the resource type this instance belongs to.
func (in *Instance) Schema() *Schema { return in.schema }

// Get returns the current value of a field. The second result is false for
// undeclared names.
func (in *Instance) Get(name string) (any, bool) {
	v, ok := in.values[name]
	return v, ok
}

// Set assigns a field's value. Assigning to an undeclared field is an error:
// the field set of an instance is fixed by its schema.
func (in *Instance) Set(name string, v any) error {
	if _, ok := in.values[name]; !ok {
		return fmt.Errorf("resource %q has no field %q", in.schema.name, name)
	}
	in.values[name] = v
	return nil
}

// Values returns a copy of the field-name-to-value mapping, in no particular
// order. Mutating the copy does not affect the instance.
func (in *Instance) Values() map[string]any {
	out := make(map[string]any, len(in.values))
	for k, v := range in.values {
		out[k] = v
	}
	return out
}
