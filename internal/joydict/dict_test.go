package joydict

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joy-lang/joy/internal/joyvalue"
)

func TestDefineUserThenLookup(t *testing.T) {
	d := New()
	body := []joyvalue.Value{joyvalue.Int(1), joyvalue.Symbol("+")}
	d.DefineUser("inc", body)

	w, ok := d.Lookup("inc")
	require.True(t, ok)
	require.False(t, w.IsPrimitive())
	require.Equal(t, body, w.Body)
}

func TestDefinePrimitiveThenLookup(t *testing.T) {
	d := New()
	called := false
	d.DefinePrimitive("noop", func(ctx Context) { called = true })

	w, ok := d.Lookup("noop")
	require.True(t, ok)
	require.True(t, w.IsPrimitive())
	w.Primitive(nil)
	require.True(t, called)
}

func TestRedefinitionLastWins(t *testing.T) {
	d := New()
	d.DefineUser("f", []joyvalue.Value{joyvalue.Int(1)})
	d.DefineUser("f", []joyvalue.Value{joyvalue.Int(2)})

	w, ok := d.Lookup("f")
	require.True(t, ok)
	require.Equal(t, int64(2), w.Body[0].AsInt())
}

func TestLookupUndefined(t *testing.T) {
	d := New()
	_, ok := d.Lookup("nope")
	require.False(t, ok)
}
