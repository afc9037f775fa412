// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file parses HCL type expressions (e.g. `string`, `list(number)`,
// `resource("address")`) into schema type tags.

package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/specialistvlad/resmap/internal/ctxlog"
	"github.com/specialistvlad/resmap/internal/registry"
	"github.com/specialistvlad/resmap/internal/schema"
)

// typeExprToType converts an HCL type expression into a schema type tag.
// resource("name") references resolve through the registry, which already
// holds a schema pointer for every declared resource by the time fields are
// parsed.
func typeExprToType(ctx context.Context, expr hcl.Expression, reg *registry.Registry) (schema.Type, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx)
	var diags hcl.Diagnostics

	switch v := expr.(type) {
	case *hclsyntax.FunctionCallExpr:
		logger.Debug("Parsing type expression as a constructor call.", "call", v.Name)

		if len(v.Args) != 1 {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid type constructor",
				Detail:   fmt.Sprintf("The %s() type constructor requires exactly one argument, got %d.", v.Name, len(v.Args)),
				Subject:  expr.Range().Ptr(),
			})
			return schema.Type{}, diags
		}

		switch v.Name {
		case "list":
			elem, elemDiags := typeExprToType(ctx, v.Args[0], reg)
			diags = append(diags, elemDiags...)
			if elemDiags.HasErrors() {
				return schema.Type{}, diags
			}
			return schema.List(elem), diags

		case "resource":
			val, valDiags := v.Args[0].Value(nil)
			if valDiags.HasErrors() || !val.Type().Equals(cty.String) {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid resource reference",
					Detail:   "The argument to resource() must be a quoted resource-type name.",
					Subject:  v.Args[0].Range().Ptr(),
				})
				return schema.Type{}, diags
			}
			name := val.AsString()
			ref, ok := reg.Lookup(name)
			if !ok {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Unknown resource type",
					Detail:   fmt.Sprintf("No resource named '%s' is declared in the loaded manifests.", name),
					Subject:  v.Args[0].Range().Ptr(),
				})
				return schema.Type{}, diags
			}
			return schema.Resource(ref), diags

		default:
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unknown type constructor",
				Detail:   fmt.Sprintf("Unknown type constructor function %q; expected 'list' or 'resource'.", v.Name),
				Subject:  expr.Range().Ptr(),
			})
			return schema.Type{}, diags
		}

	case *hclsyntax.ScopeTraversalExpr:
		if len(v.Traversal) != 1 {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid type keyword",
				Detail:   "Type keywords must be single identifiers.",
				Subject:  expr.Range().Ptr(),
			})
			return schema.Type{}, diags
		}
		keyword := v.Traversal.RootName()
		logger.Debug("Parsing type expression as a primitive.", "keyword", keyword)
		switch keyword {
		case "string", "number", "bool", "any":
			return schema.Primitive(keyword), diags
		default:
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unknown primitive type",
				Detail:   fmt.Sprintf("Unknown primitive type %q; expected 'string', 'number', 'bool', or 'any'.", keyword),
				Subject:  expr.Range().Ptr(),
			})
			return schema.Type{}, diags
		}

	default:
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unsupported type expression",
			Detail:   fmt.Sprintf("Expression of type %T cannot be used as a type definition.", v),
			Subject:  expr.Range().Ptr(),
		})
		return schema.Type{}, diags
	}
}
