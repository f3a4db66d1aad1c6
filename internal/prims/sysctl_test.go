package prims

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joy-lang/joy/internal/joyvalue"
)

func TestGetenvReadsProcessEnvironment(t *testing.T) {
	os.Setenv("JOY_TEST_SYSCTL_VAR", "xyz")
	defer os.Unsetenv("JOY_TEST_SYSCTL_VAR")
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Str("JOY_TEST_SYSCTL_VAR"))
	run(ctx, "getenv")
	require.Equal(t, "xyz", ctx.Stack().Pop("t").AsString())
}

func TestArgcArgvReflectFlagsCarrier(t *testing.T) {
	ctx := newTestContext()
	ctx.Flags().SetArgs([]string{"a", "b", "c"})
	run(ctx, "argc")
	require.Equal(t, int64(3), ctx.Stack().Pop("t").AsInt())

	ctx.Stack().Push(joyvalue.Int(1))
	run(ctx, "argv")
	require.Equal(t, "b", ctx.Stack().Pop("t").AsString())
}

func TestArgvOutOfRangeReturnsEmptyString(t *testing.T) {
	ctx := newTestContext()
	ctx.Flags().SetArgs([]string{"a"})
	ctx.Stack().Push(joyvalue.Int(5))
	run(ctx, "argv")
	require.Equal(t, "", ctx.Stack().Pop("t").AsString())
}

func TestAbortAndQuitPanicToUnwind(t *testing.T) {
	ctx := newTestContext()
	require.Panics(t, func() { run(ctx, "quit") })

	ctx2 := newTestContext()
	require.Panics(t, func() { run(ctx2, "abort") })
}

func TestFlagTogglesRoundTrip(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Bool(true))
	run(ctx, "setautoput")
	run(ctx, "autoput")
	require.True(t, ctx.Stack().Pop("t").AsBool())

	ctx.Stack().Push(joyvalue.Bool(true))
	run(ctx, "setundeferror")
	run(ctx, "undeferror")
	require.True(t, ctx.Stack().Pop("t").AsBool())

	run(ctx, "echo")
	require.False(t, ctx.Stack().Pop("t").AsBool())
}

func TestOpcaseTogglesLetterCase(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Char('a'))
	run(ctx, "opcase")
	require.Equal(t, byte('A'), ctx.Stack().Pop("t").AsChar())

	ctx.Stack().Push(joyvalue.Char('Z'))
	run(ctx, "opcase")
	require.Equal(t, byte('z'), ctx.Stack().Pop("t").AsChar())

	ctx.Stack().Push(joyvalue.Char('3'))
	run(ctx, "opcase")
	require.Equal(t, byte('3'), ctx.Stack().Pop("t").AsChar())
}

func TestFormatRendersNumbersAndFallsBackToDisplay(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Int(42))
	run(ctx, "format")
	require.Equal(t, "42", ctx.Stack().Pop("t").AsString())

	ctx.Stack().Push(joyvalue.List([]joyvalue.Value{joyvalue.Int(1), joyvalue.Int(2)}))
	run(ctx, "format")
	require.Equal(t, "[1 2]", ctx.Stack().Pop("t").AsString())
}

func TestFormatfUsesRequestedPrecision(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Float(1234.5))
	ctx.Stack().Push(joyvalue.Int(2))
	run(ctx, "formatf")
	require.Equal(t, "1,234.50", ctx.Stack().Pop("t").AsString())
}

func TestGmtimeMktimeRoundTripsUnixEpoch(t *testing.T) {
	ctx := newTestContext()
	const epoch = int64(1700000000)
	ctx.Stack().Push(joyvalue.Int(epoch))
	run(ctx, "gmtime")
	broken := ctx.Stack().Pop("t")
	require.Len(t, broken.Items(), 8)

	ctx.Stack().Push(broken)
	run(ctx, "mktime")
	require.Equal(t, epoch, ctx.Stack().Pop("t").AsInt())
}

func TestStrftimeFormatsUTCEpoch(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Str("%Y-%m-%d"))
	ctx.Stack().Push(joyvalue.Int(1700000000))
	run(ctx, "strftime")
	require.Equal(t, "2023-11-14", ctx.Stack().Pop("t").AsString())
}

func TestCaseDispatchesOnEqualityWithDefault(t *testing.T) {
	ctx := newTestContext()
	ctx.Stack().Push(joyvalue.Int(2))
	clauses := q(
		q(joyvalue.Int(1), joyvalue.Int(100)),
		q(joyvalue.Int(2), joyvalue.Int(200)),
		q(joyvalue.Int(999)),
	)
	ctx.Stack().Push(clauses)
	run(ctx, "case")
	require.Equal(t, int64(200), ctx.Stack().Pop("t").AsInt())

	ctx.Stack().Push(joyvalue.Int(77))
	ctx.Stack().Push(clauses)
	run(ctx, "case")
	require.Equal(t, int64(999), ctx.Stack().Pop("t").AsInt())
}
