// Aggregate family (§4.6): first/rest/cons/swons/uncons/unswons/concat/
// swoncat/size/at/of/drop/take/null/small/has/in, spanning list, quotation,
// string and set operands. Grounded on joy_primitives.c's per-type switch
// style (original_source), reusing the shared helpers in joyvalue.
package prims

import (
	"strings"

	"github.com/joy-lang/joy/internal/joydict"
	"github.com/joy-lang/joy/internal/joyerr"
	"github.com/joy-lang/joy/internal/joyvalue"
)

func registerAggregate(d *joydict.Dictionary) {
	d.DefinePrimitive("first", func(ctx joydict.Context) {
		v := requireAggregate("first", ctx.Stack().Pop("first"))
		item, ok := joyvalue.At(v, 0)
		if !ok {
			joyerr.Raise(joyerr.Domain("first", "empty aggregate"))
		}
		ctx.Stack().Push(item.Copy())
	})

	d.DefinePrimitive("rest", func(ctx joydict.Context) {
		v := ctx.Stack().Pop("rest")
		switch v.Kind() {
		case joyvalue.KindList, joyvalue.KindQuotation:
			ctx.Stack().Push(joyvalue.Rest(v))
		case joyvalue.KindString:
			ctx.Stack().Push(joyvalue.Str(joyvalue.StringRest(v.AsString())))
		default:
			joyerr.Raise(joyerr.TypeMismatch("rest", "aggregate", v.Kind().String()))
		}
	})

	d.DefinePrimitive("cons", func(ctx joydict.Context) {
		ab := ctx.Stack().Require("cons", 2)
		x, agg := ab[0], ab[1]
		ctx.Stack().Pop("cons")
		ctx.Stack().Pop("cons")
		ctx.Stack().Push(consOnto(x, agg))
	})

	d.DefinePrimitive("swons", func(ctx joydict.Context) {
		ab := ctx.Stack().Require("swons", 2)
		agg, x := ab[0], ab[1]
		ctx.Stack().Pop("swons")
		ctx.Stack().Pop("swons")
		ctx.Stack().Push(consOnto(x, agg))
	})

	d.DefinePrimitive("uncons", func(ctx joydict.Context) {
		v := requireAggregate("uncons", ctx.Stack().Pop("uncons"))
		item, ok := joyvalue.At(v, 0)
		if !ok {
			joyerr.Raise(joyerr.Domain("uncons", "empty aggregate"))
		}
		ctx.Stack().Push(item.Copy())
		ctx.Stack().Push(joyvalue.Rest(v))
	})

	d.DefinePrimitive("unswons", func(ctx joydict.Context) {
		v := requireAggregate("unswons", ctx.Stack().Pop("unswons"))
		item, ok := joyvalue.At(v, 0)
		if !ok {
			joyerr.Raise(joyerr.Domain("unswons", "empty aggregate"))
		}
		ctx.Stack().Push(joyvalue.Rest(v))
		ctx.Stack().Push(item.Copy())
	})

	d.DefinePrimitive("concat", func(ctx joydict.Context) {
		ab := ctx.Stack().Require("concat", 2)
		a, b := ab[0], ab[1]
		ctx.Stack().Pop("concat")
		ctx.Stack().Pop("concat")
		ctx.Stack().Push(concatValues("concat", a, b))
	})

	d.DefinePrimitive("swoncat", func(ctx joydict.Context) {
		ab := ctx.Stack().Require("swoncat", 2)
		b, a := ab[0], ab[1]
		ctx.Stack().Pop("swoncat")
		ctx.Stack().Pop("swoncat")
		ctx.Stack().Push(concatValues("swoncat", a, b))
	})

	d.DefinePrimitive("size", func(ctx joydict.Context) {
		v := ctx.Stack().Pop("size")
		switch v.Kind() {
		case joyvalue.KindList, joyvalue.KindQuotation:
			ctx.Stack().Push(joyvalue.Int(int64(joyvalue.Length(v))))
		case joyvalue.KindString:
			ctx.Stack().Push(joyvalue.Int(int64(len(v.AsString()))))
		case joyvalue.KindSet:
			ctx.Stack().Push(joyvalue.Int(int64(joyvalue.SetPopcount(v.AsSet()))))
		default:
			joyerr.Raise(joyerr.TypeMismatch("size", "aggregate", v.Kind().String()))
		}
	})

	d.DefinePrimitive("at", func(ctx joydict.Context) { atOp(ctx, "at", 0, 1) })
	d.DefinePrimitive("of", func(ctx joydict.Context) { atOp(ctx, "of", 1, 0) })

	d.DefinePrimitive("drop", func(ctx joydict.Context) { takeDrop(ctx, "drop", false) })
	d.DefinePrimitive("take", func(ctx joydict.Context) { takeDrop(ctx, "take", true) })

	d.DefinePrimitive("null", func(ctx joydict.Context) {
		v := ctx.Stack().Pop("null")
		switch v.Kind() {
		case joyvalue.KindList, joyvalue.KindQuotation:
			ctx.Stack().Push(joyvalue.Bool(joyvalue.Length(v) == 0))
		case joyvalue.KindString:
			ctx.Stack().Push(joyvalue.Bool(v.AsString() == ""))
		case joyvalue.KindSet:
			ctx.Stack().Push(joyvalue.Bool(v.AsSet() == 0))
		case joyvalue.KindInt:
			ctx.Stack().Push(joyvalue.Bool(v.AsInt() == 0))
		default:
			ctx.Stack().Push(joyvalue.Bool(!joyvalue.Truthy(v)))
		}
	})

	d.DefinePrimitive("small", func(ctx joydict.Context) {
		v := ctx.Stack().Pop("small")
		switch v.Kind() {
		case joyvalue.KindList, joyvalue.KindQuotation:
			ctx.Stack().Push(joyvalue.Bool(joyvalue.Length(v) <= 1))
		case joyvalue.KindString:
			ctx.Stack().Push(joyvalue.Bool(len(v.AsString()) <= 1))
		case joyvalue.KindInt:
			n := v.AsInt()
			ctx.Stack().Push(joyvalue.Bool(n >= -1 && n <= 1))
		default:
			joyerr.Raise(joyerr.TypeMismatch("small", "aggregate or integer", v.Kind().String()))
		}
	})

	d.DefinePrimitive("has", func(ctx joydict.Context) {
		ab := ctx.Stack().Require("has", 2)
		s, i := requireKind("has", ab[0], joyvalue.KindSet), requireKind("has", ab[1], joyvalue.KindInt)
		ctx.Stack().Pop("has")
		ctx.Stack().Pop("has")
		ctx.Stack().Push(joyvalue.Bool(joyvalue.SetHas(s.AsSet(), i.AsInt())))
	})

	d.DefinePrimitive("in", func(ctx joydict.Context) {
		ab := ctx.Stack().Require("in", 2)
		x, agg := ab[0], ab[1]
		ctx.Stack().Pop("in")
		ctx.Stack().Pop("in")
		ctx.Stack().Push(joyvalue.Bool(inAggregate(x, agg)))
	})
}

func consOnto(x, agg joyvalue.Value) joyvalue.Value {
	if agg.Kind() == joyvalue.KindSet {
		if x.Kind() != joyvalue.KindInt || x.AsInt() < 0 || x.AsInt() > 63 {
			joyerr.Raise(joyerr.Domain("cons", "set element must be an integer in 0..63"))
		}
		return joyvalue.Set(joyvalue.SetInsert(agg.AsSet(), x.AsInt()))
	}
	if !agg.IsAggregate() {
		joyerr.Raise(joyerr.TypeMismatch("cons", "aggregate or set", agg.Kind().String()))
	}
	return joyvalue.Cons(x, agg)
}

func concatValues(op string, a, b joyvalue.Value) joyvalue.Value {
	if a.Kind() == joyvalue.KindString && b.Kind() == joyvalue.KindString {
		return joyvalue.Str(joyvalue.StringConcat(a.AsString(), b.AsString()))
	}
	if a.IsAggregate() && b.IsAggregate() {
		return joyvalue.Concat(a, b)
	}
	joyerr.Raise(joyerr.TypeMismatch(op, "matching aggregates", a.Kind().String()+"/"+b.Kind().String()))
	return joyvalue.Value{}
}

func atOp(ctx joydict.Context, op string, aggIdx, idxIdx int) {
	vals := ctx.Stack().Require(op, 2)
	agg, idx := vals[aggIdx], vals[idxIdx]
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	i := requireInt(op, idx)
	switch agg.Kind() {
	case joyvalue.KindList, joyvalue.KindQuotation:
		item, ok := joyvalue.At(agg, int(i))
		if !ok {
			joyerr.Raise(joyerr.Domain(op, "index out of bounds"))
		}
		ctx.Stack().Push(item.Copy())
	case joyvalue.KindString:
		c, ok := joyvalue.StringAt(agg.AsString(), int(i))
		if !ok {
			joyerr.Raise(joyerr.Domain(op, "index out of bounds"))
		}
		ctx.Stack().Push(c)
	default:
		joyerr.Raise(joyerr.TypeMismatch(op, "aggregate", agg.Kind().String()))
	}
}

func takeDrop(ctx joydict.Context, op string, take bool) {
	vals := ctx.Stack().Require(op, 2)
	agg, nv := vals[0], vals[1]
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	n := requireInt(op, nv)
	if n < 0 {
		joyerr.Raise(joyerr.Domain(op, "negative count"))
	}
	switch agg.Kind() {
	case joyvalue.KindList, joyvalue.KindQuotation:
		if take {
			ctx.Stack().Push(joyvalue.Take(agg, int(n)))
		} else {
			ctx.Stack().Push(joyvalue.Drop(agg, int(n)))
		}
	case joyvalue.KindString:
		s := agg.AsString()
		if int(n) > len(s) {
			n = int64(len(s))
		}
		if take {
			ctx.Stack().Push(joyvalue.Str(s[:n]))
		} else {
			ctx.Stack().Push(joyvalue.Str(s[n:]))
		}
	case joyvalue.KindSet:
		if take {
			ctx.Stack().Push(joyvalue.Set(joyvalue.SetTake(agg.AsSet(), int(n))))
		} else {
			ctx.Stack().Push(joyvalue.Set(joyvalue.SetDrop(agg.AsSet(), int(n))))
		}
	default:
		joyerr.Raise(joyerr.TypeMismatch(op, "aggregate", agg.Kind().String()))
	}
}

func inAggregate(x, agg joyvalue.Value) bool {
	switch agg.Kind() {
	case joyvalue.KindList, joyvalue.KindQuotation:
		for _, e := range agg.Items() {
			if joyvalue.Equal(x, e) {
				return true
			}
		}
		return false
	case joyvalue.KindString:
		if x.Kind() != joyvalue.KindString {
			return false
		}
		return strings.Contains(agg.AsString(), x.AsString())
	case joyvalue.KindSet:
		if x.Kind() != joyvalue.KindInt {
			return false
		}
		return joyvalue.SetHas(agg.AsSet(), x.AsInt())
	default:
		return false
	}
}
