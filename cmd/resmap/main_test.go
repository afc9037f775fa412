package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeManifest puts a person/address manifest in a temp dir and returns its path.
func writeManifest(t *testing.T) string {
	t.Helper()
	src := `
	resource "person" {
		inflect = "camel"

		field "first_name" {
			type = string
		}
		field "age" {
			type    = number
			default = 0
		}
		field "home_address" {
			type = resource("address")
		}
	}

	resource "address" {
		inflect = "camel"

		field "street_name" {
			type = string
		}
		field "city" {
			type = string
		}
	}`

	dir := t.TempDir()
	path := filepath.Join(dir, "types.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0600))
	return dir
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}
	err := run(strings.NewReader(""), out, out, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_Normalize(t *testing.T) {
	t.Parallel()

	t.Run("Success: Backfills defaults, elides them, and re-inflects keys", func(t *testing.T) {
		t.Parallel()
		dir := writeManifest(t)

		in := strings.NewReader(`{"firstName": "Ada", "age": 0, "homeAddress": {"streetName": "Dover St", "city": "London"}}`)
		out := &bytes.Buffer{}
		logs := &bytes.Buffer{}

		err := run(in, out, logs, []string{"-type", "person", dir})
		require.NoError(t, err)

		got := out.String()
		require.Contains(t, got, `"firstName": "Ada"`)
		require.Contains(t, got, `"streetName": "Dover St"`)
		require.NotContains(t, got, `"age"`, "a value equal to its default must be elided")
	})

	t.Run("Success: Array input maps element-wise", func(t *testing.T) {
		t.Parallel()
		dir := writeManifest(t)

		in := strings.NewReader(`[{"firstName": "Ada"}, {"firstName": "Grace", "age": 36}]`)
		out := &bytes.Buffer{}

		err := run(in, out, out, []string{"-type", "person", dir})
		require.NoError(t, err)
		require.Contains(t, out.String(), `"firstName": "Grace"`)
		require.Contains(t, out.String(), `"age": 36`)
	})

	t.Run("Failure: Unknown resource type", func(t *testing.T) {
		t.Parallel()
		dir := writeManifest(t)

		err := run(strings.NewReader("{}"), &bytes.Buffer{}, &bytes.Buffer{}, []string{"-type", "ghost", dir})
		require.Error(t, err)
		require.Contains(t, err.Error(), `unknown resource type "ghost"`)
	})

	t.Run("Failure: Malformed manifest", func(t *testing.T) {
		t.Parallel()
		invalidHCL := `
		resource "person" {
			field "name" {
		// Missing closing braces here
		`
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "types.hcl"), []byte(invalidHCL), 0600))

		err := run(strings.NewReader("{}"), &bytes.Buffer{}, &bytes.Buffer{}, []string{"-type", "person", dir})
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to load manifests")
	})
}

func TestRun_Fields(t *testing.T) {
	t.Parallel()

	dir := writeManifest(t)
	out := &bytes.Buffer{}

	err := run(strings.NewReader(""), out, out, []string{"-type", "person", "-mode", "fields", dir})
	require.NoError(t, err)

	got := out.String()
	require.Contains(t, got, `resource "person"`)
	require.Contains(t, got, `first_name`)
	require.Contains(t, got, `key="firstName"`)
	require.Contains(t, got, `resource(address)`)
}
