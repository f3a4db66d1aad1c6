// Type-predicate and conditional-dispatch family (§4.6): integer/float/
// logical/char/string/list/set/leaf/file/user classify the Kind of the top
// value; ifinteger/ifchar/iflogical/ifset/ifstring/iflist/iffloat/iffile
// each consume a type-specific branch pair and dispatch on whether the
// probed value matches, without disturbing the value itself.
package prims

import (
	"github.com/joy-lang/joy/internal/joydict"
	"github.com/joy-lang/joy/internal/joyvalue"
)

func registerTypePred(d *joydict.Dictionary) {
	typePred(d, "integer", joyvalue.KindInt)
	typePred(d, "float", joyvalue.KindFloat)
	typePred(d, "char", joyvalue.KindChar)
	typePred(d, "string", joyvalue.KindString)
	typePred(d, "set", joyvalue.KindSet)
	typePred(d, "file", joyvalue.KindFile)

	d.DefinePrimitive("logical", func(ctx joydict.Context) {
		v := ctx.Stack().Pop("logical")
		ctx.Stack().Push(joyvalue.Bool(v.Kind() == joyvalue.KindBool))
	})
	d.DefinePrimitive("list", func(ctx joydict.Context) {
		v := ctx.Stack().Pop("list")
		k := v.Kind()
		ctx.Stack().Push(joyvalue.Bool(k == joyvalue.KindList || k == joyvalue.KindQuotation))
	})
	d.DefinePrimitive("leaf", func(ctx joydict.Context) {
		v := ctx.Stack().Pop("leaf")
		ctx.Stack().Push(joyvalue.Bool(!v.IsAggregate()))
	})
	d.DefinePrimitive("user", func(ctx joydict.Context) {
		v := ctx.Stack().Pop("user")
		ctx.Stack().Push(joyvalue.Bool(v.Kind() == joyvalue.KindSymbol))
	})

	ifPred(d, "ifinteger", func(v joyvalue.Value) bool { return v.Kind() == joyvalue.KindInt })
	ifPred(d, "iffloat", func(v joyvalue.Value) bool { return v.Kind() == joyvalue.KindFloat })
	ifPred(d, "ifchar", func(v joyvalue.Value) bool { return v.Kind() == joyvalue.KindChar })
	ifPred(d, "iflogical", func(v joyvalue.Value) bool { return v.Kind() == joyvalue.KindBool })
	ifPred(d, "ifset", func(v joyvalue.Value) bool { return v.Kind() == joyvalue.KindSet })
	ifPred(d, "ifstring", func(v joyvalue.Value) bool { return v.Kind() == joyvalue.KindString })
	ifPred(d, "iffile", func(v joyvalue.Value) bool { return v.Kind() == joyvalue.KindFile })
	ifPred(d, "iflist", func(v joyvalue.Value) bool {
		k := v.Kind()
		return k == joyvalue.KindList || k == joyvalue.KindQuotation
	})
}

func typePred(d *joydict.Dictionary, name string, k joyvalue.Kind) {
	d.DefinePrimitive(name, func(ctx joydict.Context) {
		v := ctx.Stack().Pop(name)
		ctx.Stack().Push(joyvalue.Bool(v.Kind() == k))
	})
}

// ifPred implements the `ifKIND X T F` family: peek the value beneath the
// two branch quotations, classify it, pop everything, push the original
// value back and run the matching branch, which receives that value as
// its argument.
func ifPred(d *joydict.Dictionary, name string, matches func(joyvalue.Value) bool) {
	d.DefinePrimitive(name, func(ctx joydict.Context) {
		args := ctx.Stack().Require(name, 3)
		x, t, f := args[0], args[1], args[2]
		ctx.Stack().Pop(name)
		ctx.Stack().Pop(name)
		ctx.Stack().Pop(name)
		ctx.Stack().Push(x.Copy())
		if matches(x) {
			execAsBody(ctx, name, t)
		} else {
			execAsBody(ctx, name, f)
		}
	})
}
