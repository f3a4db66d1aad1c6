package prims

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joy-lang/joy/internal/joyvalue"
)

func TestNameOnSymbolReturnsOwnText(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Symbol("foo"))
	run(ctx, "name")
	require.Equal(t, "foo", ctx.Stack().Pop("t").AsSymbol())
}

func TestNameOnOtherKindsReturnsKindTag(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Int(1))
	run(ctx, "name")
	require.Equal(t, "integer", ctx.Stack().Pop("t").AsSymbol())
}

func TestInternBuildsSymbolFromString(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Str("dup"))
	run(ctx, "intern")
	v := ctx.Stack().Pop("t")
	require.Equal(t, joyvalue.KindSymbol, v.Kind())
	require.Equal(t, "dup", v.AsSymbol())
}

func TestInternRequiresString(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Int(1))
	require.Panics(t, func() { run(ctx, "intern") })
}

func TestBodyOnPrimitiveIsEmptyQuotation(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Symbol("dup"))
	run(ctx, "body")
	v := ctx.Stack().Pop("t")
	require.Equal(t, joyvalue.KindQuotation, v.Kind())
	require.Empty(t, v.Items())
}

func TestBodyOnUserWordReturnsItsDefinition(t *testing.T) {
	ctx := newTestContext()
	ctx.Dict().DefineUser("square", []joyvalue.Value{joyvalue.Symbol("dup"), joyvalue.Symbol("*")})
	ctx.Stack().Push(joyvalue.Symbol("square"))
	run(ctx, "body")
	v := ctx.Stack().Pop("t")
	require.Equal(t, []joyvalue.Value{joyvalue.Symbol("dup"), joyvalue.Symbol("*")}, v.Items())
}

func TestBodyOnUndefinedWordRaises(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Symbol("nosuchword"))
	require.Panics(t, func() { run(ctx, "body") })
}
