package prims

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joy-lang/joy/internal/joyvalue"
)

func TestRestOfAList(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.List([]joyvalue.Value{joyvalue.Int(1), joyvalue.Int(2), joyvalue.Int(3)}))
	run(ctx, "rest")
	rest := ctx.Stack().Pop("t")
	require.Equal(t, []joyvalue.Value{joyvalue.Int(2), joyvalue.Int(3)}, rest.Items())
}

func TestFirstEmptyRaisesDomain(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.List(nil))
	require.Panics(t, func() { run(ctx, "first") })
}

func TestConsPrepends(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Int(0))
	ctx.Stack().Push(joyvalue.List([]joyvalue.Value{joyvalue.Int(1)}))
	run(ctx, "cons")
	v := ctx.Stack().Pop("t")
	require.Equal(t, int64(0), v.Items()[0].AsInt())
	require.Equal(t, int64(1), v.Items()[1].AsInt())
}

func TestConsOntoSetInsertsMember(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Int(5))
	ctx.Stack().Push(joyvalue.Set(0))
	run(ctx, "cons")
	v := ctx.Stack().Pop("t")
	require.True(t, joyvalue.SetHas(v.AsSet(), 5))
}

func TestConcatLists(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.List([]joyvalue.Value{joyvalue.Int(1)}))
	ctx.Stack().Push(joyvalue.List([]joyvalue.Value{joyvalue.Int(2)}))
	run(ctx, "concat")
	v := ctx.Stack().Pop("t")
	require.Len(t, v.Items(), 2)
}

func TestSizeAcrossKinds(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Str("abc"))
	run(ctx, "size")
	require.Equal(t, int64(3), ctx.Stack().Pop("t").AsInt())

	ctx.Stack().Push(joyvalue.Set(joyvalue.SetInsert(joyvalue.SetInsert(0, 1), 2)))
	run(ctx, "size")
	require.Equal(t, int64(2), ctx.Stack().Pop("t").AsInt())
}

func TestAtAndOfAreReversedArgOrder(t *testing.T) {
	ctx := newTestContext()
	lst := joyvalue.List([]joyvalue.Value{joyvalue.Int(10), joyvalue.Int(20)})

	ctx.Stack().Push(lst)
	ctx.Stack().Push(joyvalue.Int(1))
	run(ctx, "at")
	require.Equal(t, int64(20), ctx.Stack().Pop("t").AsInt())

	ctx.Stack().Push(joyvalue.Int(1))
	ctx.Stack().Push(lst)
	run(ctx, "of")
	require.Equal(t, int64(20), ctx.Stack().Pop("t").AsInt())
}

func TestTakeDropOnString(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Str("hello"))
	ctx.Stack().Push(joyvalue.Int(2))
	run(ctx, "take")
	require.Equal(t, "he", ctx.Stack().Pop("t").AsString())

	ctx.Stack().Push(joyvalue.Str("hello"))
	ctx.Stack().Push(joyvalue.Int(2))
	run(ctx, "drop")
	require.Equal(t, "llo", ctx.Stack().Pop("t").AsString())
}

func TestNullAndSmall(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.List(nil))
	run(ctx, "null")
	require.True(t, ctx.Stack().Pop("t").AsBool())

	ctx.Stack().Push(joyvalue.Int(1))
	run(ctx, "small")
	require.True(t, ctx.Stack().Pop("t").AsBool())
}

func TestInAcrossKinds(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Int(2))
	ctx.Stack().Push(joyvalue.List([]joyvalue.Value{joyvalue.Int(1), joyvalue.Int(2)}))
	run(ctx, "in")
	require.True(t, ctx.Stack().Pop("t").AsBool())
}
