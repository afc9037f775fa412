// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package schema

import (
	"fmt"

	"github.com/specialistvlad/resmap/internal/inflect"
)

// Builder accumulates field declarations for one resource type, in order,
// and finalizes them into an immutable Schema.
//
// The Schema pointer returned by Ref is allocated up front and stable, so a
// declaration block can reference a resource type (via Resource(b.Ref()))
// before that type's own declaration is finished. Finalize populates that
// same pointer in place.
type Builder struct {
	out    *Schema
	fields []FieldSpec
	byName map[string]int
	done   bool
}

// NewBuilder opens a new resource-type declaration.
func NewBuilder(name string) *Builder {
	return &Builder{
		out:    &Schema{name: name},
		byName: make(map[string]int),
	}
}

// Ref returns the schema under construction. The pointer is valid as a
// Resource type target immediately, but must not be queried or used in a
// conversion until Finalize has run.
func (b *Builder) Ref() *Schema { return b.out }

// Field appends one field declaration. It returns a *DuplicateFieldError if
// the name is already declared on this resource type; the duplicate
// declaration leaves the builder untouched.
func (b *Builder) Field(name string, t Type, opts ...FieldOption) error {
	if b.done {
		panic(fmt.Sprintf("schema: declaring field %q on finalized resource %q", name, b.out.name))
	}
	if _, exists := b.byName[name]; exists {
		return &DuplicateFieldError{Resource: b.out.name, Field: name}
	}

	fs := FieldSpec{Name: name, Type: t, Options: make(map[string]any)}
	for _, opt := range opts {
		opt(&fs)
	}

	b.byName[name] = len(b.fields)
	b.fields = append(b.fields, fs)
	return nil
}

// FinalizeOption configures schema finalization.
type FinalizeOption func(*finalizeConfig)

type finalizeConfig struct {
	override    inflect.Mode
	hasOverride bool
	processDef  inflect.Mode
}

// WithInflect sets an explicit per-type inflect mode, taking precedence over
// the process-wide default.
func WithInflect(mode inflect.Mode) FinalizeOption {
	return func(c *finalizeConfig) {
		c.override = mode
		c.hasOverride = true
	}
}

// WithDefaultInflect supplies the process-wide default mode, normally read
// once from configuration at startup. It applies only when the type declares
// no explicit override.
func WithDefaultInflect(mode inflect.Mode) FinalizeOption {
	return func(c *finalizeConfig) {
		c.processDef = mode
	}
}

// Finalize freezes the accumulated declarations into the Schema returned by
// Ref and resolves the inflect mode: explicit override, then the supplied
// process default, then identity. Each field's wire key is precomputed here
// so conversions never re-run the naming transform.
//
// A builder finalizes exactly once; declaring zero fields is legal and yields
// a schema that converts to and from an empty record.
func (b *Builder) Finalize(opts ...FinalizeOption) *Schema {
	if b.done {
		panic(fmt.Sprintf("schema: resource %q finalized twice", b.out.name))
	}
	b.done = true

	cfg := finalizeConfig{processDef: inflect.None}
	for _, opt := range opts {
		opt(&cfg)
	}

	mode := cfg.processDef
	if cfg.hasOverride {
		mode = cfg.override
	}

	s := b.out
	s.fields = b.fields
	s.byName = b.byName
	s.mode = mode
	s.keys = make([]string, len(b.fields))
	for i, fs := range b.fields {
		s.keys[i] = inflect.Convert(fs.Name, mode)
	}
	s.finalized = true
	return s
}
