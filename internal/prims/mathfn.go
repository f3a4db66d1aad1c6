// Math function family (§4.6): the C-library-equivalent transcendental and
// rounding operators. Grounded on the original C runtime's primitive style
// (thin wrappers over <math.h>), mapped here onto Go's math package — the
// codebase itself reaches for stdlib math in object_primitives.go, so no
// third-party numeric library is warranted here (see DESIGN.md).
package prims

import (
	"math"

	"github.com/joy-lang/joy/internal/joydict"
	"github.com/joy-lang/joy/internal/joyvalue"
)

func registerMath(d *joydict.Dictionary) {
	unaryFloat(d, "sin", math.Sin)
	unaryFloat(d, "cos", math.Cos)
	unaryFloat(d, "tan", math.Tan)
	unaryFloat(d, "sqrt", math.Sqrt)
	unaryFloat(d, "exp", math.Exp)
	unaryFloat(d, "log", math.Log)
	unaryFloat(d, "log10", math.Log10)
	unaryFloat(d, "acos", math.Acos)
	unaryFloat(d, "asin", math.Asin)
	unaryFloat(d, "atan", math.Atan)
	unaryFloat(d, "cosh", math.Cosh)
	unaryFloat(d, "sinh", math.Sinh)
	unaryFloat(d, "tanh", math.Tanh)

	d.DefinePrimitive("pow", func(ctx joydict.Context) {
		ab := ctx.Stack().Require("pow", 2)
		a, b := requireNumeric("pow", ab[0]), requireNumeric("pow", ab[1])
		ctx.Stack().Pop("pow")
		ctx.Stack().Pop("pow")
		ctx.Stack().Push(joyvalue.Float(math.Pow(a.AsFloat64(), b.AsFloat64())))
	})

	d.DefinePrimitive("atan2", func(ctx joydict.Context) {
		ab := ctx.Stack().Require("atan2", 2)
		a, b := requireNumeric("atan2", ab[0]), requireNumeric("atan2", ab[1])
		ctx.Stack().Pop("atan2")
		ctx.Stack().Pop("atan2")
		ctx.Stack().Push(joyvalue.Float(math.Atan2(a.AsFloat64(), b.AsFloat64())))
	})

	d.DefinePrimitive("floor", func(ctx joydict.Context) {
		v := requireNumeric("floor", ctx.Stack().Pop("floor"))
		ctx.Stack().Push(joyvalue.Int(int64(math.Floor(v.AsFloat64()))))
	})
	d.DefinePrimitive("ceil", func(ctx joydict.Context) {
		v := requireNumeric("ceil", ctx.Stack().Pop("ceil"))
		ctx.Stack().Push(joyvalue.Int(int64(math.Ceil(v.AsFloat64()))))
	})
	d.DefinePrimitive("trunc", func(ctx joydict.Context) {
		v := requireNumeric("trunc", ctx.Stack().Pop("trunc"))
		ctx.Stack().Push(joyvalue.Int(int64(math.Trunc(v.AsFloat64()))))
	})

	d.DefinePrimitive("frexp", func(ctx joydict.Context) {
		v := requireNumeric("frexp", ctx.Stack().Pop("frexp"))
		frac, exp := math.Frexp(v.AsFloat64())
		ctx.Stack().Push(joyvalue.Float(frac))
		ctx.Stack().Push(joyvalue.Int(int64(exp)))
	})
	d.DefinePrimitive("ldexp", func(ctx joydict.Context) {
		ab := ctx.Stack().Require("ldexp", 2)
		frac, exp := requireNumeric("ldexp", ab[0]), requireKind("ldexp", ab[1], joyvalue.KindInt)
		ctx.Stack().Pop("ldexp")
		ctx.Stack().Pop("ldexp")
		ctx.Stack().Push(joyvalue.Float(math.Ldexp(frac.AsFloat64(), int(exp.AsInt()))))
	})
	d.DefinePrimitive("modf", func(ctx joydict.Context) {
		v := requireNumeric("modf", ctx.Stack().Pop("modf"))
		ip, fp := math.Modf(v.AsFloat64())
		ctx.Stack().Push(joyvalue.Float(ip))
		ctx.Stack().Push(joyvalue.Float(fp))
	})
}

func unaryFloat(d *joydict.Dictionary, name string, f func(float64) float64) {
	d.DefinePrimitive(name, func(ctx joydict.Context) {
		v := requireNumeric(name, ctx.Stack().Pop(name))
		ctx.Stack().Push(joyvalue.Float(f(v.AsFloat64())))
	})
}
