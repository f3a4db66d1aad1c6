package prims

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joy-lang/joy/internal/engine"
	"github.com/joy-lang/joy/internal/joyvalue"
)

func TestDupCopiesTop(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Int(5))
	engine.ExecuteValue(ctx, joyvalue.Symbol("dup"))
	require.Equal(t, 2, ctx.Stack().Depth())
	require.Equal(t, int64(5), ctx.Stack().Pop("t").AsInt())
	require.Equal(t, int64(5), ctx.Stack().Pop("t").AsInt())
}

func TestSwap(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Int(1))
	ctx.Stack().Push(joyvalue.Int(2))
	engine.ExecuteValue(ctx, joyvalue.Symbol("swap"))
	require.Equal(t, int64(1), ctx.Stack().Pop("t").AsInt())
	require.Equal(t, int64(2), ctx.Stack().Pop("t").AsInt())
}

func TestRollupRolldownAreInverses(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Int(1))
	ctx.Stack().Push(joyvalue.Int(2))
	ctx.Stack().Push(joyvalue.Int(3))
	engine.ExecuteValue(ctx, joyvalue.Symbol("rollup"))
	engine.ExecuteValue(ctx, joyvalue.Symbol("rolldown"))
	require.Equal(t, int64(3), ctx.Stack().Pop("t").AsInt())
	require.Equal(t, int64(2), ctx.Stack().Pop("t").AsInt())
	require.Equal(t, int64(1), ctx.Stack().Pop("t").AsInt())
}

func TestPopdKeepsTopDropsSecond(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Int(1))
	ctx.Stack().Push(joyvalue.Int(2))
	engine.ExecuteValue(ctx, joyvalue.Symbol("popd"))
	require.Equal(t, 1, ctx.Stack().Depth())
	require.Equal(t, int64(2), ctx.Stack().Pop("t").AsInt())
}

func TestStackUnstackRoundTrip(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Int(1))
	ctx.Stack().Push(joyvalue.Int(2))
	ctx.Stack().Push(joyvalue.Int(3))
	engine.ExecuteValue(ctx, joyvalue.Symbol("stack"))
	listed := ctx.Stack().Pop("t")
	require.Equal(t, joyvalue.KindList, listed.Kind())
	require.Equal(t, int64(3), listed.Items()[0].AsInt())

	ctx.Stack().Push(listed)
	engine.ExecuteValue(ctx, joyvalue.Symbol("unstack"))
	require.Equal(t, 3, ctx.Stack().Depth())
	require.Equal(t, int64(3), ctx.Stack().Peek("t").AsInt())
}

func TestId(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Int(7))
	engine.ExecuteValue(ctx, joyvalue.Symbol("id"))
	require.Equal(t, int64(7), ctx.Stack().Pop("t").AsInt())
}
