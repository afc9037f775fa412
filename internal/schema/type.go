// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package schema

import "fmt"

// Kind discriminates the Type variant.
type Kind int

const (
	// KindPrimitive marks an opaque wire value: strings, numbers, booleans,
	// or anything else the engines pass through unchanged.
	KindPrimitive Kind = iota
	// KindResource marks a reference to another resource schema.
	KindResource
	// KindList marks a homogeneous sequence of a declared element type.
	KindList
)

// Type is the declared type of a field: a tagged variant over primitives,
// resource references, and lists. The zero value is the "any" primitive.
type Type struct {
	kind Kind
	prim string
	ref  *Schema
	elem *Type
}

// Primitive returns a primitive type tag. The name ("string", "number",
// "bool", "any", ...) is descriptive only: the engines never interpret it,
// they pass primitive values through unchanged.
func Primitive(name string) Type {
	return Type{kind: KindPrimitive, prim: name}
}

// Resource returns a type tag referencing another resource schema. The
// referenced schema may still be under construction when the tag is created;
// it only has to be finalized before any value of this type is converted.
// That indirection is what makes mutually-recursive resource graphs legal.
func Resource(ref *Schema) Type {
	return Type{kind: KindResource, ref: ref}
}

// List returns a type tag for a homogeneous sequence of elem.
func List(elem Type) Type {
	return Type{kind: KindList, elem: &elem}
}

// Kind reports which variant this type is.
func (t Type) Kind() Kind { return t.kind }

// IsResource reports whether the type references a resource schema. This is
// the capability check the engines use to decide whether to recurse.
func (t Type) IsResource() bool { return t.kind == KindResource }

// Schema returns the referenced resource schema, or nil for non-resource types.
func (t Type) Schema() *Schema { return t.ref }

// Elem returns the element type of a list. It panics for non-list types,
// which would be a programming error in the engines.
func (t Type) Elem() Type {
	if t.kind != KindList {
		panic(fmt.Sprintf("schema: Elem called on %s type", t))
	}
	return *t.elem
}

// String renders a friendly name for diagnostics, e.g. "list(resource(person))".
func (t Type) String() string {
	switch t.kind {
	case KindResource:
		if t.ref == nil {
			return "resource(?)"
		}
		return fmt.Sprintf("resource(%s)", t.ref.Name())
	case KindList:
		return fmt.Sprintf("list(%s)", t.elem)
	default:
		if t.prim == "" {
			return "any"
		}
		return t.prim
	}
}
