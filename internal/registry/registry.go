package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/specialistvlad/resmap/internal/schema"
)

// Registry holds the named resource schemas for a single application
// instance.
type Registry struct {
	schemas map[string]*schema.Schema
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		schemas: make(map[string]*schema.Schema),
	}
}

// Register binds a resource-type name to its schema. Registering a name
// twice is a programming or declaration error and panics.
func (r *Registry) Register(name string, s *schema.Schema) {
	if _, exists := r.schemas[name]; exists {
		panic(fmt.Sprintf("resource type '%s' already registered", name))
	}
	slog.Debug("Registering resource schema.", "name", name)
	r.schemas[name] = s
}

// Lookup returns the schema registered under a resource-type name.
func (r *Registry) Lookup(name string) (*schema.Schema, bool) {
	s, ok := r.schemas[name]
	return s, ok
}

// Names returns all registered resource-type names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
