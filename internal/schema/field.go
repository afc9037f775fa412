// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package schema

import "fmt"

// FieldSpec is the fully resolved declaration of a single field.
type FieldSpec struct {
	// Name is the field's identifier, unique within its resource type.
	Name string

	// Type is the field's declared type tag.
	Type Type

	// Default is the value a fresh instance starts with, and the serialized-
	// absent sentinel: a field whose value equals its default is omitted from
	// the wire record, and a missing wire key deserializes back to it.
	// A nil Default means the field is simply absent until assigned.
	Default any

	// Options is an open bag of per-field directives. "default" is stored
	// here too, so tooling that walks options sees the complete declaration.
	Options map[string]any
}

// FieldOption configures a single field declaration.
type FieldOption func(*FieldSpec)

// WithDefault declares the field's default value.
func WithDefault(v any) FieldOption {
	return func(fs *FieldSpec) {
		fs.Default = v
		fs.Options["default"] = v
	}
}

// WithOption attaches an arbitrary per-field directive.
func WithOption(name string, v any) FieldOption {
	return func(fs *FieldSpec) {
		fs.Options[name] = v
	}
}

// DuplicateFieldError reports an attempt to declare a field name that is
// already present on the same resource type. It is fatal at declaration time:
// the offending declaration has no effect on the builder.
type DuplicateFieldError struct {
	Resource string
	Field    string
}

// Error implements the error interface.
func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("resource %q: field %q already declared", e.Resource, e.Field)
}
