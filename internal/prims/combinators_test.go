package prims

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joy-lang/joy/internal/joyvalue"
)

func q(terms ...joyvalue.Value) joyvalue.Value { return joyvalue.Quotation(terms) }

func TestIExecutesQuotation(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Int(1))
	ctx.Stack().Push(q(joyvalue.Int(2), joyvalue.Symbol("+")))
	run(ctx, "i")
	require.Equal(t, int64(3), ctx.Stack().Pop("t").AsInt())
}

func TestDipRunsUnderTopAndRestoresIt(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Int(1))
	ctx.Stack().Push(joyvalue.Int(99)) // the value dipped under
	ctx.Stack().Push(q(joyvalue.Int(2), joyvalue.Symbol("+")))
	run(ctx, "dip")
	require.Equal(t, int64(99), ctx.Stack().Pop("t").AsInt())
	require.Equal(t, int64(3), ctx.Stack().Pop("t").AsInt())
}

func TestIfteTakesTrueBranch(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(q(joyvalue.Bool(true)))
	ctx.Stack().Push(q(joyvalue.Int(1)))
	ctx.Stack().Push(q(joyvalue.Int(2)))
	run(ctx, "ifte")
	require.Equal(t, int64(1), ctx.Stack().Pop("t").AsInt())
}

func TestIfteProbeDoesNotLeakState(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Int(7))
	ctx.Stack().Push(q(joyvalue.Symbol("dup"), joyvalue.Int(0), joyvalue.Symbol(">")))
	ctx.Stack().Push(q(joyvalue.Int(1)))
	ctx.Stack().Push(q(joyvalue.Int(2)))
	run(ctx, "ifte")
	require.Equal(t, int64(1), ctx.Stack().Pop("t").AsInt())
	// the 7 underneath must survive untouched by the probe
	require.Equal(t, int64(7), ctx.Stack().Pop("t").AsInt())
}

func TestTimesRepeats(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Int(0))
	ctx.Stack().Push(joyvalue.Int(3))
	ctx.Stack().Push(q(joyvalue.Int(1), joyvalue.Symbol("+")))
	run(ctx, "times")
	require.Equal(t, int64(3), ctx.Stack().Pop("t").AsInt())
}

func TestWhileLoopsUntilFalse(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Int(0))
	ctx.Stack().Push(q(joyvalue.Symbol("dup"), joyvalue.Int(5), joyvalue.Symbol("<")))
	ctx.Stack().Push(q(joyvalue.Int(1), joyvalue.Symbol("+")))
	run(ctx, "while")
	require.Equal(t, int64(5), ctx.Stack().Pop("t").AsInt())
}

func TestMapAppliesToEachElement(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.List([]joyvalue.Value{joyvalue.Int(1), joyvalue.Int(2), joyvalue.Int(3)}))
	ctx.Stack().Push(q(joyvalue.Int(10), joyvalue.Symbol("+")))
	run(ctx, "map")
	v := ctx.Stack().Pop("t")
	require.Equal(t, []int64{11, 12, 13}, intsOf(v))
}

func TestFoldAccumulates(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.List([]joyvalue.Value{joyvalue.Int(1), joyvalue.Int(2), joyvalue.Int(3)}))
	ctx.Stack().Push(joyvalue.Int(0))
	ctx.Stack().Push(q(joyvalue.Symbol("+")))
	run(ctx, "fold")
	require.Equal(t, int64(6), ctx.Stack().Pop("t").AsInt())
}

func TestFilterKeepsTruthy(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.List([]joyvalue.Value{joyvalue.Int(1), joyvalue.Int(2), joyvalue.Int(3), joyvalue.Int(4)}))
	ctx.Stack().Push(q(joyvalue.Int(2), joyvalue.Symbol(">")))
	run(ctx, "filter")
	require.Equal(t, []int64{3, 4}, intsOf(ctx.Stack().Pop("t")))
}

func TestSomeAllShortCircuit(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.List([]joyvalue.Value{joyvalue.Int(1), joyvalue.Int(2)}))
	ctx.Stack().Push(q(joyvalue.Int(1), joyvalue.Symbol(">")))
	run(ctx, "some")
	require.True(t, ctx.Stack().Pop("t").AsBool())

	ctx.Stack().Push(joyvalue.List([]joyvalue.Value{joyvalue.Int(1), joyvalue.Int(2)}))
	ctx.Stack().Push(q(joyvalue.Int(0), joyvalue.Symbol(">")))
	run(ctx, "all")
	require.True(t, ctx.Stack().Pop("t").AsBool())
}

func TestCondFirstMatchWins(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Int(5))
	clauses := q(
		q(q(joyvalue.Symbol("dup"), joyvalue.Int(0), joyvalue.Symbol("<")), joyvalue.Int(-1)),
		q(q(joyvalue.Symbol("dup"), joyvalue.Int(10), joyvalue.Symbol("<")), joyvalue.Int(1)),
		q(joyvalue.Int(0)),
	)
	ctx.Stack().Push(clauses)
	run(ctx, "cond")
	require.Equal(t, int64(1), ctx.Stack().Pop("t").AsInt())
}

func TestCondDefaultWhenNoneMatch(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Int(100))
	clauses := q(
		q(q(joyvalue.Symbol("dup"), joyvalue.Int(0), joyvalue.Symbol("<")), joyvalue.Int(-1)),
		q(joyvalue.Int(0)),
	)
	ctx.Stack().Push(clauses)
	run(ctx, "cond")
	require.Equal(t, int64(0), ctx.Stack().Pop("t").AsInt())
}

func TestUnaryArityWrapperReplacesArgWithResult(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Int(4))
	ctx.Stack().Push(q(joyvalue.Symbol("dup"), joyvalue.Symbol("*")))
	run(ctx, "unary")
	require.Equal(t, int64(16), ctx.Stack().Pop("t").AsInt())
}

func TestApp12RunsBothOverFreshCopies(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Int(3))
	ctx.Stack().Push(q(joyvalue.Int(1), joyvalue.Symbol("+")))
	ctx.Stack().Push(q(joyvalue.Int(1), joyvalue.Symbol("-")))
	run(ctx, "app12")
	require.Equal(t, int64(2), ctx.Stack().Pop("t").AsInt())
	require.Equal(t, int64(4), ctx.Stack().Pop("t").AsInt())
}

func intsOf(v joyvalue.Value) []int64 {
	out := make([]int64, len(v.Items()))
	for i, e := range v.Items() {
		out[i] = e.AsInt()
	}
	return out
}
