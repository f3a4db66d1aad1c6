// Logic family (§4.6): and/or/not/xor operate bitwise when both operands
// are Sets, otherwise via truthiness; choice is a non-destructive ternary
// select.
package prims

import (
	"github.com/joy-lang/joy/internal/joydict"
	"github.com/joy-lang/joy/internal/joyvalue"
)

func registerLogic(d *joydict.Dictionary) {
	d.DefinePrimitive("and", func(ctx joydict.Context) {
		binLogic(ctx, "and", joyvalue.SetIntersect, func(a, b bool) bool { return a && b })
	})
	d.DefinePrimitive("or", func(ctx joydict.Context) {
		binLogic(ctx, "or", joyvalue.SetUnion, func(a, b bool) bool { return a || b })
	})
	d.DefinePrimitive("xor", func(ctx joydict.Context) {
		binLogic(ctx, "xor", joyvalue.SetSymmetric, func(a, b bool) bool { return a != b })
	})
	d.DefinePrimitive("not", func(ctx joydict.Context) {
		v := ctx.Stack().Pop("not")
		if v.Kind() == joyvalue.KindSet {
			ctx.Stack().Push(joyvalue.Set(joyvalue.SetComplement(v.AsSet())))
			return
		}
		ctx.Stack().Push(joyvalue.Bool(!joyvalue.Truthy(v)))
	})
	d.DefinePrimitive("choice", func(ctx joydict.Context) {
		fts := ctx.Stack().Require("choice", 3)
		b, t, f := fts[0], fts[1], fts[2]
		ctx.Stack().Pop("choice")
		ctx.Stack().Pop("choice")
		ctx.Stack().Pop("choice")
		if joyvalue.Truthy(b) {
			ctx.Stack().Push(t)
		} else {
			ctx.Stack().Push(f)
		}
	})
}

func binLogic(ctx joydict.Context, name string, setOp func(a, b uint64) uint64, boolOp func(a, b bool) bool) {
	ab := ctx.Stack().Require(name, 2)
	a, b := ab[0], ab[1]
	ctx.Stack().Pop(name)
	ctx.Stack().Pop(name)
	if a.Kind() == joyvalue.KindSet && b.Kind() == joyvalue.KindSet {
		ctx.Stack().Push(joyvalue.Set(setOp(a.AsSet(), b.AsSet())))
		return
	}
	ctx.Stack().Push(joyvalue.Bool(boolOp(joyvalue.Truthy(a), joyvalue.Truthy(b))))
}
