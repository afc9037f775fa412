package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/resmap/internal/schema"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("Success: Register and lookup", func(t *testing.T) {
		t.Parallel()
		r := New()
		s := schema.NewBuilder("person").Finalize()
		r.Register("person", s)

		got, ok := r.Lookup("person")
		require.True(t, ok)
		require.Same(t, s, got)
	})

	t.Run("Success: Lookup of unknown name reports absence", func(t *testing.T) {
		t.Parallel()
		r := New()
		_, ok := r.Lookup("ghost")
		require.False(t, ok)
	})

	t.Run("Failure: Duplicate registration panics", func(t *testing.T) {
		t.Parallel()
		r := New()
		r.Register("person", schema.NewBuilder("person").Finalize())
		require.Panics(t, func() {
			r.Register("person", schema.NewBuilder("person").Finalize())
		})
	})

	t.Run("Success: Names are sorted", func(t *testing.T) {
		t.Parallel()
		r := New()
		r.Register("zeta", schema.NewBuilder("zeta").Finalize())
		r.Register("alpha", schema.NewBuilder("alpha").Finalize())
		require.Equal(t, []string{"alpha", "zeta"}, r.Names())
	})
}
