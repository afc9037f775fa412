// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package schema implements the resource-type registry: the declaration-time
// model of a resource's fields, types, defaults, and key-naming mode.
//
// # Core Concepts
//
//   - Type: a tagged variant describing a field's declared type. It is one of
//     Primitive (an opaque wire scalar), Resource (a reference to another
//     schema), or List (a homogeneous sequence of a declared element type).
//     The conversion engines dispatch structurally on the tag, so arbitrary
//     nested resource types work without the engines knowing about them.
//
//   - FieldSpec: one declared field — name, declared Type, default value, and
//     an open options bag for future per-field directives.
//
//   - Builder: the ordered accumulator used during a declaration block. It
//     rejects duplicate field names outright and finalizes into a Schema.
//
//   - Schema: the immutable, write-once field table shared by every instance
//     of the resource type and by both conversion engines. After Finalize it
//     is safe for unsynchronized concurrent reads.
//
//   - Instance: a value of a declared resource type. An instance always
//     carries exactly the schema's field set; a fresh instance starts with
//     every field at its declared default, so absence is an explicit value,
//     never a missing key.
//
// Why resolve the inflect mode at finalize time?
//
// Both engines must agree on the wire key for every field. Resolving the
// naming mode once — explicit override, then the supplied process default,
// then identity — and precomputing each field's wire key keeps the agreement
// structural and keeps configuration lookups out of the conversion hot path.
package schema
