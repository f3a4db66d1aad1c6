package prims

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joy-lang/joy/internal/engine"
	"github.com/joy-lang/joy/internal/joyerr"
	"github.com/joy-lang/joy/internal/joyvalue"
)

func run(ctx *engine.Context, word string) {
	engine.ExecuteValue(ctx, joyvalue.Symbol(word))
}

func TestAddKeepsIntWhenBothInt(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Int(2))
	ctx.Stack().Push(joyvalue.Int(3))
	run(ctx, "+")
	v := ctx.Stack().Pop("t")
	require.Equal(t, joyvalue.KindInt, v.Kind())
	require.Equal(t, int64(5), v.AsInt())
}

func TestAddWidensToFloat(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Int(2))
	ctx.Stack().Push(joyvalue.Float(3.5))
	run(ctx, "+")
	v := ctx.Stack().Pop("t")
	require.Equal(t, joyvalue.KindFloat, v.Kind())
	require.Equal(t, 5.5, v.AsFloat())
}

func TestIntDivisionTruncates(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Int(7))
	ctx.Stack().Push(joyvalue.Int(2))
	run(ctx, "/")
	require.Equal(t, int64(3), ctx.Stack().Pop("t").AsInt())
}

func TestDivisionByZeroRaisesDomain(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Int(1))
	ctx.Stack().Push(joyvalue.Int(0))
	require.PanicsWithValue(t, joyerr.Domain("/", "division by zero"), func() {
		run(ctx, "/")
	})
}

func TestRemRequiresIntegers(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Float(1))
	ctx.Stack().Push(joyvalue.Int(2))
	require.Panics(t, func() { run(ctx, "rem") })
}

func TestSuccPred(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Int(4))
	run(ctx, "succ")
	run(ctx, "pred")
	run(ctx, "pred")
	require.Equal(t, int64(3), ctx.Stack().Pop("t").AsInt())
}

func TestAbsNeg(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Int(-5))
	run(ctx, "abs")
	require.Equal(t, int64(5), ctx.Stack().Pop("t").AsInt())

	ctx.Stack().Push(joyvalue.Int(5))
	run(ctx, "neg")
	require.Equal(t, int64(-5), ctx.Stack().Pop("t").AsInt())
}

func TestSign(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Int(-9))
	run(ctx, "sign")
	require.Equal(t, int64(-1), ctx.Stack().Pop("t").AsInt())
}

func TestMaxWidening(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Int(2))
	ctx.Stack().Push(joyvalue.Float(3.0))
	run(ctx, "max")
	v := ctx.Stack().Pop("t")
	require.Equal(t, joyvalue.KindFloat, v.Kind())
	require.Equal(t, 3.0, v.AsFloat())
}
