// Reflection family (§4.6): name/intern/body expose the dictionary and the
// symbol/quotation distinction to running programs themselves.
package prims

import (
	"github.com/joy-lang/joy/internal/joydict"
	"github.com/joy-lang/joy/internal/joyerr"
	"github.com/joy-lang/joy/internal/joyvalue"
)

func registerReflection(d *joydict.Dictionary) {
	d.DefinePrimitive("name", func(ctx joydict.Context) {
		v := ctx.Stack().Pop("name")
		ctx.Stack().Push(joyvalue.Symbol(joyvalue.Name(v)))
	})

	d.DefinePrimitive("intern", func(ctx joydict.Context) {
		v := ctx.Stack().Pop("intern")
		if v.Kind() != joyvalue.KindString {
			joyerr.Raise(joyerr.TypeMismatch("intern", "string", v.Kind().String()))
		}
		ctx.Stack().Push(joyvalue.Symbol(v.AsString()))
	})

	d.DefinePrimitive("body", func(ctx joydict.Context) {
		v := ctx.Stack().Pop("body")
		if v.Kind() != joyvalue.KindSymbol {
			joyerr.Raise(joyerr.TypeMismatch("body", "symbol", v.Kind().String()))
		}
		w, ok := ctx.Dict().Lookup(v.AsSymbol())
		if !ok {
			joyerr.Raise(joyerr.Undefined(v.AsSymbol()))
		}
		if w.IsPrimitive() {
			ctx.Stack().Push(joyvalue.Quotation(nil))
			return
		}
		body := make([]joyvalue.Value, len(w.Body))
		for i, t := range w.Body {
			body[i] = t.Copy()
		}
		ctx.Stack().Push(joyvalue.Quotation(body))
	})
}
