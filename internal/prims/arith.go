// Arithmetic family (§4.6). Grounded on joy_primitives.c's prim_add et al.
// (original_source) for the exact integer/float widening and truncating
// integer division rules, expressed in the same plain-function style as
// evaluator/object_primitives.go, which has no AST node per operator
// either — just a Go function per operation.
package prims

import (
	"github.com/joy-lang/joy/internal/joydict"
	"github.com/joy-lang/joy/internal/joyerr"
	"github.com/joy-lang/joy/internal/joyvalue"
)

func registerArith(d *joydict.Dictionary) {
	binNumeric(d, "+", func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b })
	binNumeric(d, "-", func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b })
	binNumeric(d, "*", func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b })

	d.DefinePrimitive("/", func(ctx joydict.Context) {
		ab := ctx.Stack().Require("/", 2)
		a, b := requireNumeric("/", ab[0]), requireNumeric("/", ab[1])
		ctx.Stack().Pop("/")
		ctx.Stack().Pop("/")
		if a.Kind() == joyvalue.KindInt && b.Kind() == joyvalue.KindInt {
			if b.AsInt() == 0 {
				joyerr.Raise(joyerr.Domain("/", "division by zero"))
			}
			ctx.Stack().Push(joyvalue.Int(a.AsInt() / b.AsInt()))
			return
		}
		bf := b.AsFloat64()
		if bf == 0 {
			joyerr.Raise(joyerr.Domain("/", "division by zero"))
		}
		ctx.Stack().Push(joyvalue.Float(a.AsFloat64() / bf))
	})

	d.DefinePrimitive("rem", func(ctx joydict.Context) {
		ab := ctx.Stack().Require("rem", 2)
		a, b := requireKind("rem", ab[0], joyvalue.KindInt), requireKind("rem", ab[1], joyvalue.KindInt)
		ctx.Stack().Pop("rem")
		ctx.Stack().Pop("rem")
		if b.AsInt() == 0 {
			joyerr.Raise(joyerr.Domain("rem", "division by zero"))
		}
		ctx.Stack().Push(joyvalue.Int(a.AsInt() % b.AsInt()))
	})

	d.DefinePrimitive("succ", unaryIntOp("succ", func(n int64) int64 { return n + 1 }))
	d.DefinePrimitive("pred", unaryIntOp("pred", func(n int64) int64 { return n - 1 }))

	d.DefinePrimitive("abs", func(ctx joydict.Context) {
		v := requireNumeric("abs", ctx.Stack().Pop("abs"))
		if v.Kind() == joyvalue.KindInt {
			n := v.AsInt()
			if n < 0 {
				n = -n
			}
			ctx.Stack().Push(joyvalue.Int(n))
			return
		}
		f := v.AsFloat()
		if f < 0 {
			f = -f
		}
		ctx.Stack().Push(joyvalue.Float(f))
	})

	d.DefinePrimitive("neg", func(ctx joydict.Context) {
		v := requireNumeric("neg", ctx.Stack().Pop("neg"))
		if v.Kind() == joyvalue.KindInt {
			ctx.Stack().Push(joyvalue.Int(-v.AsInt()))
			return
		}
		ctx.Stack().Push(joyvalue.Float(-v.AsFloat()))
	})

	d.DefinePrimitive("sign", func(ctx joydict.Context) {
		v := requireNumeric("sign", ctx.Stack().Pop("sign"))
		f := v.AsFloat64()
		switch {
		case f > 0:
			ctx.Stack().Push(joyvalue.Int(1))
		case f < 0:
			ctx.Stack().Push(joyvalue.Int(-1))
		default:
			ctx.Stack().Push(joyvalue.Int(0))
		}
	})

	d.DefinePrimitive("max", func(ctx joydict.Context) { minmax(ctx, "max", true) })
	d.DefinePrimitive("min", func(ctx joydict.Context) { minmax(ctx, "min", false) })
}

func binNumeric(d *joydict.Dictionary, name string, iop func(a, b int64) int64, fop func(a, b float64) float64) {
	d.DefinePrimitive(name, func(ctx joydict.Context) {
		ab := ctx.Stack().Require(name, 2)
		a, b := requireNumeric(name, ab[0]), requireNumeric(name, ab[1])
		ctx.Stack().Pop(name)
		ctx.Stack().Pop(name)
		if a.Kind() == joyvalue.KindInt && b.Kind() == joyvalue.KindInt {
			ctx.Stack().Push(joyvalue.Int(iop(a.AsInt(), b.AsInt())))
			return
		}
		ctx.Stack().Push(joyvalue.Float(fop(a.AsFloat64(), b.AsFloat64())))
	})
}

func unaryIntOp(name string, f func(int64) int64) joydict.PrimitiveFunc {
	return func(ctx joydict.Context) {
		v := requireKind(name, ctx.Stack().Pop(name), joyvalue.KindInt)
		ctx.Stack().Push(joyvalue.Int(f(v.AsInt())))
	}
}

func minmax(ctx joydict.Context, name string, wantMax bool) {
	ab := ctx.Stack().Require(name, 2)
	a, b := requireNumeric(name, ab[0]), requireNumeric(name, ab[1])
	ctx.Stack().Pop(name)
	ctx.Stack().Pop(name)
	af, bf := a.AsFloat64(), b.AsFloat64()
	winner := a
	if (wantMax && bf > af) || (!wantMax && bf < af) {
		winner = b
	}
	if a.Kind() == joyvalue.KindInt && b.Kind() == joyvalue.KindInt {
		ctx.Stack().Push(winner)
		return
	}
	// widening rule: if either operand is float, the result is float.
	ctx.Stack().Push(joyvalue.Float(winner.AsFloat64()))
}
