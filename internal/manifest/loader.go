// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package manifest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/specialistvlad/resmap/internal/ctxlog"
	"github.com/specialistvlad/resmap/internal/inflect"
	"github.com/specialistvlad/resmap/internal/registry"
)

// Loader reads resource-type manifests from disk into a registry.
type Loader struct {
	// DefaultInflect is the process-wide default mode applied to resource
	// types that declare no inflect attribute. Zero value is identity.
	DefaultInflect inflect.Mode
}

// NewLoader creates a manifest loader carrying the process default mode.
func NewLoader(defaultMode inflect.Mode) *Loader {
	return &Loader{DefaultInflect: defaultMode}
}

// fileRoot decodes the top-level blocks of a manifest file.
type fileRoot struct {
	Resources []*hclResource `hcl:"resource,block"`
	Remain    hcl.Body       `hcl:",remain"`
}

// hclResource is a single 'resource' block, body left raw for staged parsing.
type hclResource struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// Load parses every .hcl manifest under the given paths, declares the
// resource types it finds, and registers their schemas. Paths may be files
// or directories; directories are walked recursively.
func (l *Loader) Load(ctx context.Context, reg *registry.Registry, paths ...string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Manifest loader started.", "path_count", len(paths))

	files, err := findManifestFiles(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		logger.Warn("No .hcl manifest files found.", "paths", paths)
		return nil
	}
	logger.Debug("Discovered manifest files.", "count", len(files))

	parser := hclparse.NewParser()

	var blocks []*hclResource
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return fmt.Errorf("failed to parse manifest %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return fmt.Errorf("failed to decode manifest %s: %w", file, diags)
		}
		blocks = append(blocks, root.Resources...)
	}

	if err := l.declare(ctx, reg, blocks); err != nil {
		return err
	}

	logger.Info("Manifests loaded.", "resource_types", len(blocks))
	return nil
}

// declare runs the two declaration passes over parsed resource blocks.
func (l *Loader) declare(ctx context.Context, reg *registry.Registry, blocks []*hclResource) error {
	var allDiags hcl.Diagnostics

	// Pass one: open a declaration per resource and register its schema
	// reference, so cross-references resolve regardless of file order.
	decls := make([]*resourceDecl, 0, len(blocks))
	for _, block := range blocks {
		if _, exists := reg.Lookup(block.Name); exists {
			allDiags = append(allDiags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate resource definition",
				Detail:   fmt.Sprintf("A resource named '%s' has already been declared.", block.Name),
			})
			continue
		}
		decl := newResourceDecl(block)
		reg.Register(block.Name, decl.builder.Ref())
		decls = append(decls, decl)
	}
	if allDiags.HasErrors() {
		return fmt.Errorf("manifest declaration failed: %w", allDiags)
	}

	// Pass two: parse fields against the fully populated registry and
	// finalize every schema.
	for _, decl := range decls {
		diags := decl.parse(ctx, reg, l.DefaultInflect)
		allDiags = append(allDiags, diags...)
	}
	if allDiags.HasErrors() {
		return fmt.Errorf("manifest declaration failed: %w", allDiags)
	}
	return nil
}

// findManifestFiles walks the given paths and returns every .hcl file found,
// deduplicated, in walk order.
func findManifestFiles(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})

	add := func(p string) {
		if _, dup := seen[p]; !dup {
			files = append(files, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue // a configured path that does not exist is not an error
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if !info.IsDir() {
			if filepath.Ext(path) == ".hcl" {
				add(path)
			}
			continue
		}

		err = filepath.Walk(path, func(p string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !fi.IsDir() && filepath.Ext(p) == ".hcl" {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}
