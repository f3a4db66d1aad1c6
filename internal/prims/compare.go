// Comparison family (§4.6): structural equality (numeric cross-type
// equality permitted) and the ordering over numbers/chars/strings, with
// mismatched aggregate types reported false rather than erroring.
package prims

import (
	"github.com/joy-lang/joy/internal/joydict"
	"github.com/joy-lang/joy/internal/joyvalue"
)

func registerCompare(d *joydict.Dictionary) {
	d.DefinePrimitive("=", func(ctx joydict.Context) { eqOp(ctx, "=", true) })
	d.DefinePrimitive("!=", func(ctx joydict.Context) { eqOp(ctx, "!=", false) })

	orderedOp(d, "<", func(c int) bool { return c < 0 })
	orderedOp(d, ">", func(c int) bool { return c > 0 })
	orderedOp(d, "<=", func(c int) bool { return c <= 0 })
	orderedOp(d, ">=", func(c int) bool { return c >= 0 })
}

func eqOp(ctx joydict.Context, name string, want bool) {
	ab := ctx.Stack().Require(name, 2)
	a, b := ab[0], ab[1]
	ctx.Stack().Pop(name)
	ctx.Stack().Pop(name)
	eq := joyvalue.Equal(a, b)
	ctx.Stack().Push(joyvalue.Bool(eq == want))
}

func orderedOp(d *joydict.Dictionary, name string, test func(int) bool) {
	d.DefinePrimitive(name, func(ctx joydict.Context) {
		ab := ctx.Stack().Require(name, 2)
		a, b := ab[0], ab[1]
		ctx.Stack().Pop(name)
		ctx.Stack().Pop(name)
		cmp, ok := joyvalue.OrderedCompare(a, b)
		if !ok {
			ctx.Stack().Push(joyvalue.Bool(false))
			return
		}
		ctx.Stack().Push(joyvalue.Bool(test(cmp)))
	})
}
