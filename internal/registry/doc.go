// Package registry provides the central lookup between resource-type names
// used in manifests (e.g., `resource("address")`) and the schemas that
// implement them.
//
// During application startup the registry is populated from declarations and
// then frozen by convention: registration panics on a duplicate name so a
// type can never silently rebind, and every later lookup is a read-only map
// access. The conversion engines themselves never consult the registry —
// schemas reference each other directly — so it stays off the hot path.
package registry
