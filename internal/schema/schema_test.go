package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/resmap/internal/inflect"
)

func TestBuilder_Field(t *testing.T) {
	t.Parallel()

	t.Run("Success: Declares fields in order", func(t *testing.T) {
		t.Parallel()
		b := NewBuilder("person")
		require.NoError(t, b.Field("first_name", Primitive("string")))
		require.NoError(t, b.Field("age", Primitive("number"), WithDefault(0.0)))
		s := b.Finalize()

		require.Equal(t, []string{"first_name", "age"}, s.Fields())

		ageSpec, ok := s.Spec("age")
		require.True(t, ok)
		require.Equal(t, 0.0, ageSpec.Default)
		require.Equal(t, 0.0, ageSpec.Options["default"])
	})

	t.Run("Failure: Duplicate field name is rejected and has no effect", func(t *testing.T) {
		t.Parallel()
		b := NewBuilder("person")
		require.NoError(t, b.Field("id", Primitive("string")))

		err := b.Field("id", Primitive("number"))
		require.Error(t, err)

		var dup *DuplicateFieldError
		require.True(t, errors.As(err, &dup))
		require.Equal(t, "person", dup.Resource)
		require.Equal(t, "id", dup.Field)

		s := b.Finalize()
		require.Equal(t, []string{"id"}, s.Fields())

		// The first declaration survives untouched.
		ty, ok := s.TypeOf("id")
		require.True(t, ok)
		require.Equal(t, KindPrimitive, ty.Kind())
		require.Equal(t, "string", ty.String())
	})

	t.Run("Success: Zero fields is a legal schema", func(t *testing.T) {
		t.Parallel()
		s := NewBuilder("empty").Finalize()
		require.Equal(t, 0, s.Len())
		require.Empty(t, s.Fields())
	})
}

func TestBuilder_Finalize_InflectResolution(t *testing.T) {
	t.Parallel()

	t.Run("Explicit override wins over process default", func(t *testing.T) {
		t.Parallel()
		s := NewBuilder("a").Finalize(WithInflect(inflect.Kebab), WithDefaultInflect(inflect.Camel))
		require.Equal(t, inflect.Kebab, s.Inflect())
	})

	t.Run("Process default applies without override", func(t *testing.T) {
		t.Parallel()
		s := NewBuilder("b").Finalize(WithDefaultInflect(inflect.Camel))
		require.Equal(t, inflect.Camel, s.Inflect())
	})

	t.Run("Falls back to identity", func(t *testing.T) {
		t.Parallel()
		s := NewBuilder("c").Finalize()
		require.Equal(t, inflect.None, s.Inflect())
	})

	t.Run("Wire keys are precomputed with the resolved mode", func(t *testing.T) {
		t.Parallel()
		b := NewBuilder("person")
		require.NoError(t, b.Field("first_name", Primitive("string")))
		s := b.Finalize(WithInflect(inflect.Camel))

		key, ok := s.Key("first_name")
		require.True(t, ok)
		require.Equal(t, inflect.Convert("first_name", inflect.Camel), key)
		require.Equal(t, "firstName", s.KeyAt(0))
	})
}

func TestSchema_Queries(t *testing.T) {
	t.Parallel()

	b := NewBuilder("person")
	require.NoError(t, b.Field("name", Primitive("string")))
	require.NoError(t, b.Field("tags", List(Primitive("string"))))
	s := b.Finalize()

	t.Run("TypeOf returns an absent marker for unknown fields", func(t *testing.T) {
		t.Parallel()
		_, ok := s.TypeOf("nope")
		require.False(t, ok)
	})

	t.Run("Types returns the full table", func(t *testing.T) {
		t.Parallel()
		types := s.Types()
		require.Len(t, types, 2)
		require.Equal(t, KindList, types["tags"].Kind())
		require.Equal(t, KindPrimitive, types["tags"].Elem().Kind())
	})

	t.Run("Unfinalized schema queries panic", func(t *testing.T) {
		t.Parallel()
		ref := NewBuilder("pending").Ref()
		require.Panics(t, func() { ref.Fields() })
	})

	t.Run("Finalizing twice panics", func(t *testing.T) {
		t.Parallel()
		b := NewBuilder("twice")
		b.Finalize()
		require.Panics(t, func() { b.Finalize() })
	})
}

func TestType_Variant(t *testing.T) {
	t.Parallel()

	t.Run("Resource reference is a capability check", func(t *testing.T) {
		t.Parallel()
		b := NewBuilder("address")
		addr := b.Finalize()

		ty := Resource(addr)
		require.True(t, ty.IsResource())
		require.Same(t, addr, ty.Schema())
		require.Equal(t, "resource(address)", ty.String())

		require.False(t, Primitive("string").IsResource())
		require.False(t, List(Resource(addr)).IsResource())
	})

	t.Run("Resource references bind before finalize", func(t *testing.T) {
		t.Parallel()
		// Mutually-recursive declaration: each side references the other's
		// schema pointer before either is finalized.
		aB := NewBuilder("a")
		bB := NewBuilder("b")
		require.NoError(t, aB.Field("b", Resource(bB.Ref())))
		require.NoError(t, bB.Field("a", Resource(aB.Ref())))
		a := aB.Finalize()
		b := bB.Finalize()

		tyA, ok := a.TypeOf("b")
		require.True(t, ok)
		require.Same(t, b, tyA.Schema())

		tyB, ok := b.TypeOf("a")
		require.True(t, ok)
		require.Same(t, a, tyB.Schema())
	})

	t.Run("Elem panics on non-list types", func(t *testing.T) {
		t.Parallel()
		require.Panics(t, func() { Primitive("string").Elem() })
	})
}

func TestInstance(t *testing.T) {
	t.Parallel()

	newPerson := func(t *testing.T) *Schema {
		t.Helper()
		b := NewBuilder("person")
		require.NoError(t, b.Field("first_name", Primitive("string")))
		require.NoError(t, b.Field("age", Primitive("number"), WithDefault(0.0)))
		return b.Finalize()
	}

	t.Run("Fresh instance is fully populated from defaults", func(t *testing.T) {
		t.Parallel()
		in := NewInstance(newPerson(t))

		v, ok := in.Get("first_name")
		require.True(t, ok, "absent must be an explicit nil value, not a missing key")
		require.Nil(t, v)

		age, ok := in.Get("age")
		require.True(t, ok)
		require.Equal(t, 0.0, age)
	})

	t.Run("Set rejects undeclared fields", func(t *testing.T) {
		t.Parallel()
		in := NewInstance(newPerson(t))
		err := in.Set("nickname", "x")
		require.Error(t, err)
		require.Contains(t, err.Error(), "no field")
	})

	t.Run("Values returns a detached copy", func(t *testing.T) {
		t.Parallel()
		in := NewInstance(newPerson(t))
		require.NoError(t, in.Set("first_name", "Ada"))

		vals := in.Values()
		vals["first_name"] = "mutated"

		v, _ := in.Get("first_name")
		require.Equal(t, "Ada", v)
	})
}
