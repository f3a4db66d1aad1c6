package prims

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joy-lang/joy/internal/joyvalue"
)

func TestEqualsNumericCrossType(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Int(2))
	ctx.Stack().Push(joyvalue.Float(2.0))
	run(ctx, "=")
	require.True(t, ctx.Stack().Pop("t").AsBool())
}

func TestNotEquals(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Int(2))
	ctx.Stack().Push(joyvalue.Int(3))
	run(ctx, "!=")
	require.True(t, ctx.Stack().Pop("t").AsBool())
}

func TestOrderedComparisons(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Int(1))
	ctx.Stack().Push(joyvalue.Int(2))
	run(ctx, "<")
	require.True(t, ctx.Stack().Pop("t").AsBool())

	ctx.Stack().Push(joyvalue.Str("a"))
	ctx.Stack().Push(joyvalue.Str("b"))
	run(ctx, "<")
	require.True(t, ctx.Stack().Pop("t").AsBool())
}

func TestOrderedMismatchedAggregateIsFalseNotError(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Str("a"))
	ctx.Stack().Push(joyvalue.Int(1))
	run(ctx, "<")
	require.False(t, ctx.Stack().Pop("t").AsBool())
}
