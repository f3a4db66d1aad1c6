// Combinator family (§4.6): the control-flow operators that direct the
// engine to run one or more quotations according to a fixed schema.
// Grounded on joy_primitives.c's prim_i/prim_dip/prim_ifte/prim_map/etc.
// (original_source) for i/x/dip/ifte/branch/times/while/map/step/fold/
// filter/split/infra, and on spec.md §4.6 directly for the combinators the
// C backend never implemented (some/all/cond/arity wrappers/app1-4/cleave/
// construct) — expressed in the same save/restore idiom as their siblings.
package prims

import (
	"github.com/joy-lang/joy/internal/joydict"
	"github.com/joy-lang/joy/internal/joyerr"
	"github.com/joy-lang/joy/internal/joyvalue"
)

func registerCombinators(d *joydict.Dictionary) {
	d.DefinePrimitive("i", func(ctx joydict.Context) {
		q := ctx.Stack().Pop("i")
		execAsBody(ctx, "i", q)
	})

	d.DefinePrimitive("x", func(ctx joydict.Context) {
		q := ctx.Stack().Peek("x")
		terms(ctx, "x", q) // type-check before the dup
		ctx.Stack().Push(q.Copy())
		execAsBody(ctx, "x", ctx.Stack().Pop("x"))
	})

	d.DefinePrimitive("dip", func(ctx joydict.Context) {
		xq := ctx.Stack().Require("dip", 2)
		x, q := xq[0], xq[1]
		ctx.Stack().Pop("dip")
		ctx.Stack().Pop("dip")
		execAsBody(ctx, "dip", q)
		ctx.Stack().Push(x)
	})

	d.DefinePrimitive("ifte", func(ctx joydict.Context) {
		ctq := ctx.Stack().Require("ifte", 3)
		c, t, f := ctq[0], ctq[1], ctq[2]
		ctx.Stack().Pop("ifte")
		ctx.Stack().Pop("ifte")
		ctx.Stack().Pop("ifte")
		if runProbe(ctx, "ifte", c) {
			execAsBody(ctx, "ifte", t)
		} else {
			execAsBody(ctx, "ifte", f)
		}
	})

	d.DefinePrimitive("branch", func(ctx joydict.Context) {
		btf := ctx.Stack().Require("branch", 3)
		b, t, f := btf[0], btf[1], btf[2]
		ctx.Stack().Pop("branch")
		ctx.Stack().Pop("branch")
		ctx.Stack().Pop("branch")
		if joyvalue.Truthy(b) {
			execAsBody(ctx, "branch", t)
		} else {
			execAsBody(ctx, "branch", f)
		}
	})

	d.DefinePrimitive("times", func(ctx joydict.Context) {
		nq := ctx.Stack().Require("times", 2)
		n, q := requireInt("times", nq[0]), nq[1]
		ctx.Stack().Pop("times")
		ctx.Stack().Pop("times")
		for i := int64(0); i < n; i++ {
			execAsBody(ctx, "times", q)
		}
	})

	d.DefinePrimitive("while", func(ctx joydict.Context) {
		cb := ctx.Stack().Require("while", 2)
		c, b := cb[0], cb[1]
		ctx.Stack().Pop("while")
		ctx.Stack().Pop("while")
		for runProbe(ctx, "while", c) {
			execAsBody(ctx, "while", b)
		}
	})

	d.DefinePrimitive("map", func(ctx joydict.Context) { mapLike(ctx, "map") })
	d.DefinePrimitive("step", func(ctx joydict.Context) { stepOp(ctx) })
	d.DefinePrimitive("filter", func(ctx joydict.Context) { filterLike(ctx, "filter", true, false) })
	d.DefinePrimitive("fold", func(ctx joydict.Context) { foldOp(ctx) })
	d.DefinePrimitive("split", func(ctx joydict.Context) { splitOp(ctx) })
	d.DefinePrimitive("some", func(ctx joydict.Context) { someAll(ctx, "some", false) })
	d.DefinePrimitive("all", func(ctx joydict.Context) { someAll(ctx, "all", true) })

	d.DefinePrimitive("cond", func(ctx joydict.Context) { condOp(ctx) })
	d.DefinePrimitive("infra", func(ctx joydict.Context) { infraOp(ctx) })

	d.DefinePrimitive("nullary", func(ctx joydict.Context) { arityOp(ctx, "nullary", 0) })
	d.DefinePrimitive("unary", func(ctx joydict.Context) { arityOp(ctx, "unary", 1) })
	d.DefinePrimitive("binary", func(ctx joydict.Context) { arityOp(ctx, "binary", 2) })
	d.DefinePrimitive("ternary", func(ctx joydict.Context) { arityOp(ctx, "ternary", 3) })
	d.DefinePrimitive("unary2", func(ctx joydict.Context) { unaryN(ctx, "unary2", 2) })
	d.DefinePrimitive("unary3", func(ctx joydict.Context) { unaryN(ctx, "unary3", 3) })
	d.DefinePrimitive("unary4", func(ctx joydict.Context) { unaryN(ctx, "unary4", 4) })

	d.DefinePrimitive("app1", func(ctx joydict.Context) { appN(ctx, "app1", 1) })
	d.DefinePrimitive("app2", func(ctx joydict.Context) { appN(ctx, "app2", 2) })
	d.DefinePrimitive("app3", func(ctx joydict.Context) { appN(ctx, "app3", 3) })
	d.DefinePrimitive("app4", func(ctx joydict.Context) { appN(ctx, "app4", 4) })
	d.DefinePrimitive("app11", func(ctx joydict.Context) { app11(ctx) })
	d.DefinePrimitive("app12", func(ctx joydict.Context) { app12(ctx) })
	d.DefinePrimitive("cleave", func(ctx joydict.Context) { app12(ctx) })
	d.DefinePrimitive("construct", func(ctx joydict.Context) { constructOp(ctx) })
}

// mapLike implements `map A Q`: run Q over every element of A, collecting
// the per-element results into a new List in order.
func mapLike(ctx joydict.Context, op string) {
	aq := ctx.Stack().Require(op, 2)
	agg, q := requireAggregate(op, aq[0]), aq[1]
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	items := agg.Items()
	out := make([]joyvalue.Value, len(items))
	for i, e := range items {
		ctx.Stack().Push(e.Copy())
		execAsBody(ctx, op, q)
		out[i] = ctx.Stack().Pop(op)
	}
	ctx.Stack().Push(joyvalue.List(out))
}

// stepOp implements `step A Q`: run Q over every element, discarding
// per-element results (Q is expected to consume them via side effects on
// the stack below, e.g. accumulating into a running value already there).
func stepOp(ctx joydict.Context) {
	const op = "step"
	aq := ctx.Stack().Require(op, 2)
	agg, q := requireAggregate(op, aq[0]), aq[1]
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	for _, e := range agg.Items() {
		ctx.Stack().Push(e.Copy())
		execAsBody(ctx, op, q)
	}
}

// foldOp implements `fold A I Q`: seed the stack with I, then run Q once
// per element of A with that element pushed on top, leaving the
// accumulator (Q's result) on the stack.
func foldOp(ctx joydict.Context) {
	const op = "fold"
	aiq := ctx.Stack().Require(op, 3)
	agg, init, q := requireAggregate(op, aiq[0]), aiq[1], aiq[2]
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	ctx.Stack().Push(init)
	for _, e := range agg.Items() {
		ctx.Stack().Push(e.Copy())
		execAsBody(ctx, op, q)
	}
}

func filterLike(ctx joydict.Context, op string, _ bool, _ bool) {
	aq := ctx.Stack().Require(op, 2)
	agg, q := requireAggregate(op, aq[0]), aq[1]
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	var out []joyvalue.Value
	for _, e := range agg.Items() {
		item := e.Copy()
		ctx.Stack().Push(item.Copy())
		execAsBody(ctx, op, q)
		if joyvalue.Truthy(ctx.Stack().Pop(op)) {
			out = append(out, item)
		}
	}
	ctx.Stack().Push(joyvalue.List(out))
}

// splitOp implements `split A Q`: partition A's elements by Q's truthiness,
// pushing the passing sublist then the failing sublist (failing ends up on
// top), matching the original runtime's push order.
func splitOp(ctx joydict.Context) {
	const op = "split"
	aq := ctx.Stack().Require(op, 2)
	agg, q := requireAggregate(op, aq[0]), aq[1]
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	var pass, fail []joyvalue.Value
	for _, e := range agg.Items() {
		item := e.Copy()
		ctx.Stack().Push(item.Copy())
		execAsBody(ctx, op, q)
		if joyvalue.Truthy(ctx.Stack().Pop(op)) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	ctx.Stack().Push(joyvalue.List(pass))
	ctx.Stack().Push(joyvalue.List(fail))
}

// someAll implements `some A Q` / `all A Q`: short-circuit on the first
// truthy (some) or falsy (all) Q-result.
func someAll(ctx joydict.Context, op string, wantAll bool) {
	aq := ctx.Stack().Require(op, 2)
	agg, q := requireAggregate(op, aq[0]), aq[1]
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	result := !wantAll
	for _, e := range agg.Items() {
		ctx.Stack().Push(e.Copy())
		execAsBody(ctx, op, q)
		ok := joyvalue.Truthy(ctx.Stack().Pop(op))
		if wantAll && !ok {
			result = false
			break
		}
		if !wantAll && ok {
			result = true
			break
		}
	}
	ctx.Stack().Push(joyvalue.Bool(result))
}

// condOp implements `cond [[B1 T1…] … [D]]` (§4.6, §9(a)): scan clauses in
// order, snapshot-testing each non-last clause's first element as B; on
// the first truthy B, restore and run the remaining elements as the body.
// If none match, run the last clause's elements as the default body. A
// clause with an empty body silently returns (§9(a) — the source's
// documented, pinned behavior).
func condOp(ctx joydict.Context) {
	const op = "cond"
	clauses := requireAggregate(op, ctx.Stack().Pop(op))
	items := clauses.Items()
	if len(items) == 0 {
		return
	}
	saved := ctx.Stack().Snapshot()
	matchedIdx := len(items) - 1
	matched := false
	for i := 0; i < len(items)-1; i++ {
		clause := items[i]
		if !clause.IsAggregate() {
			continue
		}
		parts := clause.Items()
		if len(parts) == 0 {
			continue
		}
		ctx.Stack().Restore(saved)
		execAsBody(ctx, op, parts[0])
		if joyvalue.Truthy(ctx.Stack().Pop(op)) {
			matched = true
			matchedIdx = i
			break
		}
	}
	ctx.Stack().Restore(saved)
	clause := items[matchedIdx]
	if !clause.IsAggregate() {
		return
	}
	parts := clause.Items()
	start := 0
	if matched {
		start = 1
	}
	ctx.ExecBody(parts[start:])
}

// infraOp implements `infra L Q`: swap the stack for L's elements, run Q,
// collect the resulting stack into a list, restore the outer stack and
// push that list.
func infraOp(ctx joydict.Context) {
	const op = "infra"
	lq := ctx.Stack().Require(op, 2)
	l, q := requireAggregate(op, lq[0]), lq[1]
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	saved := ctx.Stack().Snapshot()
	inner := make([]joyvalue.Value, len(l.Items()))
	for i, e := range l.Items() {
		inner[i] = e.Copy()
	}
	ctx.Stack().Clear()
	ctx.Stack().SetSlice(inner)
	execAsBody(ctx, op, q)
	result := make([]joyvalue.Value, len(ctx.Stack().ToSlice()))
	copy(result, ctx.Stack().ToSlice())
	ctx.Stack().Restore(saved)
	ctx.Stack().Push(joyvalue.List(result))
}

// arityOp implements nullary/unary/binary/ternary Q: snapshot, run Q over
// the whole stack (nothing is hidden from it), keep its single top result,
// restore the snapshot, then drop the top n arguments and push that result
// in their place.
func arityOp(ctx joydict.Context, op string, n int) {
	q := ctx.Stack().Pop(op)
	saved := ctx.Stack().Snapshot()
	if ctx.Stack().Depth() < n {
		joyerr.Raise(joyerr.Underflow(op, n, ctx.Stack().Depth()))
	}
	execAsBody(ctx, op, q)
	result := ctx.Stack().Pop(op)
	ctx.Stack().Restore(saved)
	for i := 0; i < n; i++ {
		ctx.Stack().Pop(op)
	}
	ctx.Stack().Push(result)
}

// unaryN implements unary2..unary4: apply Q separately to each of the top n
// values (each run sees only that one value, via the same save/restore
// discipline as unary), preserving every result in original order.
func unaryN(ctx joydict.Context, op string, n int) {
	q := ctx.Stack().Pop(op)
	args := ctx.Stack().Require(op, n)
	argsCopy := make([]joyvalue.Value, n)
	copy(argsCopy, args)
	for i := 0; i < n; i++ {
		ctx.Stack().Pop(op)
	}
	saved := ctx.Stack().Snapshot()
	results := make([]joyvalue.Value, n)
	for i, a := range argsCopy {
		ctx.Stack().Restore(saved)
		ctx.Stack().Push(a.Copy())
		execAsBody(ctx, op, q)
		results[i] = ctx.Stack().Pop(op)
	}
	ctx.Stack().Restore(saved)
	for _, r := range results {
		ctx.Stack().Push(r)
	}
}

// appN implements app1..app4 with the same save/restore discipline as the
// arity wrappers: app1 behaves as unary, and app2..app4 as unary2..unary4
// (Q applied separately to each of the top n values, results kept in
// original order).
func appN(ctx joydict.Context, op string, n int) {
	if n == 1 {
		arityOp(ctx, op, 1)
		return
	}
	unaryN(ctx, op, n)
}

// app11 runs two quotations, each over its own single top value (like
// unary2 but keeping both quotations distinct rather than identical): Q1
// on X, Q2 on Y, each seeing only its own argument.
func app11(ctx joydict.Context) {
	const op = "app11"
	xyqq := ctx.Stack().Require(op, 4)
	x, y, q1, q2 := xyqq[0], xyqq[1], xyqq[2], xyqq[3]
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	saved := ctx.Stack().Snapshot()
	ctx.Stack().Push(x.Copy())
	execAsBody(ctx, op, q1)
	r1 := ctx.Stack().Pop(op)
	ctx.Stack().Restore(saved)
	ctx.Stack().Push(y.Copy())
	execAsBody(ctx, op, q2)
	r2 := ctx.Stack().Pop(op)
	ctx.Stack().Restore(saved)
	ctx.Stack().Push(r1)
	ctx.Stack().Push(r2)
}

// app12/cleave: one value X, two quotations Q1 Q2, each applied to a fresh
// copy of X, both results kept in order.
func app12(ctx joydict.Context) {
	const op = "app12"
	xqq := ctx.Stack().Require(op, 3)
	x, q1, q2 := xqq[0], xqq[1], xqq[2]
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	saved := ctx.Stack().Snapshot()
	ctx.Stack().Push(x.Copy())
	execAsBody(ctx, op, q1)
	r1 := ctx.Stack().Pop(op)
	ctx.Stack().Restore(saved)
	ctx.Stack().Push(x.Copy())
	execAsBody(ctx, op, q2)
	r2 := ctx.Stack().Pop(op)
	ctx.Stack().Restore(saved)
	ctx.Stack().Push(r1)
	ctx.Stack().Push(r2)
}

// constructOp implements `construct [P] [[Q1]…[Qn]]`: run P, snapshot the
// resulting stack, then run each Qi independently over that post-P stack,
// collecting all of their top results in order.
func constructOp(ctx joydict.Context) {
	const op = "construct"
	pqs := ctx.Stack().Require(op, 2)
	p, qs := pqs[0], requireAggregate(op, pqs[1])
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	execAsBody(ctx, op, p)
	saved := ctx.Stack().Snapshot()
	results := make([]joyvalue.Value, 0, len(qs.Items()))
	for _, qi := range qs.Items() {
		ctx.Stack().Restore(saved)
		execAsBody(ctx, op, qi)
		results = append(results, ctx.Stack().Pop(op))
	}
	ctx.Stack().Restore(saved)
	for _, r := range results {
		ctx.Stack().Push(r)
	}
}
