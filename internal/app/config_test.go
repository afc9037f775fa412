package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	t.Run("Success: Valid config passes through", func(t *testing.T) {
		t.Parallel()
		cfg, err := NewConfig(Config{
			ManifestsPath: "manifests",
			TypeName:      "person",
			Mode:          ModeNormalize,
		})
		require.NoError(t, err)
		require.Equal(t, "person", cfg.TypeName)
	})

	t.Run("Failure: Missing manifests path", func(t *testing.T) {
		t.Parallel()
		_, err := NewConfig(Config{TypeName: "person", Mode: ModeNormalize})
		require.Error(t, err)
		require.Contains(t, err.Error(), "ManifestsPath")
	})

	t.Run("Failure: Missing type name", func(t *testing.T) {
		t.Parallel()
		_, err := NewConfig(Config{ManifestsPath: "manifests", Mode: ModeFields})
		require.Error(t, err)
		require.Contains(t, err.Error(), "TypeName")
	})

	t.Run("Failure: Invalid mode", func(t *testing.T) {
		t.Parallel()
		_, err := NewConfig(Config{ManifestsPath: "m", TypeName: "t", Mode: "export"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid mode")
	})
}
