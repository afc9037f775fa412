// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file parses the body of a 'resource' block: its optional inflect
// attribute and its ordered 'field' blocks.

package manifest

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"

	"github.com/specialistvlad/resmap/internal/ctxlog"
	"github.com/specialistvlad/resmap/internal/inflect"
	"github.com/specialistvlad/resmap/internal/registry"
	"github.com/specialistvlad/resmap/internal/schema"
)

// resourceBodySchema is the HCL schema for the body of a 'resource' block.
var resourceBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "inflect"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "field", LabelNames: []string{"name"}},
	},
}

// fieldBodySchema is the HCL schema for the body of a 'field' block.
var fieldBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		// `type` is required, but its existence is checked manually to
		// produce a better error message.
		{Name: "type"},
		{Name: "default"},
	},
}

// resourceDecl is one resource block mid-declaration: the raw HCL body plus
// the schema builder accumulating its fields.
type resourceDecl struct {
	block   *hclResource
	builder *schema.Builder
}

func newResourceDecl(block *hclResource) *resourceDecl {
	return &resourceDecl{
		block:   block,
		builder: schema.NewBuilder(block.Name),
	}
}

// parse decodes the resource body, declares every field on the builder, and
// finalizes the schema. Field blocks are processed in source order, which
// becomes the schema's declaration order.
func (d *resourceDecl) parse(ctx context.Context, reg *registry.Registry, defaultMode inflect.Mode) hcl.Diagnostics {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing resource declaration.", "resource", d.block.Name)

	content, diags := d.block.Body.Content(resourceBodySchema)
	if diags.HasErrors() {
		return diags
	}

	var finalizeOpts []schema.FinalizeOption
	finalizeOpts = append(finalizeOpts, schema.WithDefaultInflect(defaultMode))

	if attr, exists := content.Attributes["inflect"]; exists {
		var modeStr string
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &modeStr)...)
		if !diags.HasErrors() {
			mode, err := inflect.ParseMode(modeStr)
			if err != nil {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid inflect mode",
					Detail:   err.Error(),
					Subject:  attr.Expr.Range().Ptr(),
				})
			} else {
				finalizeOpts = append(finalizeOpts, schema.WithInflect(mode))
			}
		}
	}

	for _, block := range content.Blocks.OfType("field") {
		diags = append(diags, d.parseField(ctx, reg, block)...)
	}

	if diags.HasErrors() {
		return diags
	}

	d.builder.Finalize(finalizeOpts...)
	logger.Debug("Resource declaration finalized.", "resource", d.block.Name)
	return diags
}

// parseField decodes one 'field' block and declares it on the builder.
func (d *resourceDecl) parseField(ctx context.Context, reg *registry.Registry, block *hcl.Block) hcl.Diagnostics {
	var diags hcl.Diagnostics

	// The schema guarantees one label.
	fieldName := block.Labels[0]

	content, contentDiags := block.Body.Content(fieldBodySchema)
	diags = append(diags, contentDiags...)
	if contentDiags.HasErrors() {
		return diags
	}

	typeAttr, exists := content.Attributes["type"]
	if !exists {
		missingItemRange := block.Body.MissingItemRange()
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing 'type' attribute",
			Detail:   "The 'type' attribute is required for all field blocks.",
			Subject:  &missingItemRange,
		})
		return diags
	}

	fieldType, typeDiags := typeExprToType(ctx, typeAttr.Expr, reg)
	diags = append(diags, typeDiags...)
	if typeDiags.HasErrors() {
		return diags
	}

	var opts []schema.FieldOption
	if defaultAttr, exists := content.Attributes["default"]; exists {
		// A nil eval context: defaults must be literal values.
		val, valDiags := defaultAttr.Expr.Value(nil)
		diags = append(diags, valDiags...)
		if valDiags.HasErrors() {
			return diags
		}

		native, err := ctyToNative(val)
		if err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid default value",
				Detail:   fmt.Sprintf("The default value for '%s' cannot be used: %s.", fieldName, err),
				Subject:  defaultAttr.Expr.Range().Ptr(),
			})
			return diags
		}
		opts = append(opts, schema.WithDefault(native))
	}

	if err := d.builder.Field(fieldName, fieldType, opts...); err != nil {
		var dup *schema.DuplicateFieldError
		if errors.As(err, &dup) {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate field definition",
				Detail:   fmt.Sprintf("A field named '%s' has already been defined on resource '%s'.", dup.Field, dup.Resource),
				Subject:  &block.DefRange,
			})
			return diags
		}
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid field definition",
			Detail:   err.Error(),
			Subject:  &block.DefRange,
		})
	}
	return diags
}
