// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package manifest implements the file-based declaration surface: resource
// types declared in HCL manifests and loaded into the schema registry.
//
// A manifest declares one or more resource types:
//
//	resource "person" {
//	  inflect = "camel"
//
//	  field "first_name" {
//	    type = string
//	  }
//	  field "age" {
//	    type    = number
//	    default = 0
//	  }
//	  field "address" {
//	    type = resource("address")
//	  }
//	  field "tags" {
//	    type    = list(string)
//	    default = []
//	  }
//	}
//
// Loading is two-pass. The first pass creates a schema builder per resource
// block and registers each (still unfinalized) schema reference under its
// name. The second pass parses fields — resolving resource("...") type
// expressions through the registry — and finalizes each schema. Because
// references bind to stable schema pointers before any type is finalized,
// mutually-recursive resource graphs are legal.
//
// Field defaults must be literal values; they are evaluated with a nil HCL
// context and converted to native Go values.
package manifest
