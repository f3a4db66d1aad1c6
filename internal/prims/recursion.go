// Recursion-scheme family (§4.6): linrec/binrec/tailrec/primrec/genrec/
// condlinrec/condnestrec are grounded on joy_primitives.c's prim_genrec and
// friends (original_source), which all bottom out in the same pattern: test
// P, either run T or recurse via R with a combinator standing in for the
// recursive call itself. treestep/treerec/treegenrec have no original_source
// analogue and are built directly from spec.md's prose; they walk the tree
// without taking a stack snapshot.
package prims

import (
	"github.com/joy-lang/joy/internal/joydict"
	"github.com/joy-lang/joy/internal/joyvalue"
)

func registerRecursion(d *joydict.Dictionary) {
	d.DefinePrimitive("linrec", func(ctx joydict.Context) { linrec(ctx) })
	d.DefinePrimitive("binrec", func(ctx joydict.Context) { binrec(ctx) })
	d.DefinePrimitive("tailrec", func(ctx joydict.Context) { tailrec(ctx) })
	d.DefinePrimitive("primrec", func(ctx joydict.Context) { primrec(ctx) })
	d.DefinePrimitive("genrec", func(ctx joydict.Context) { genrec(ctx) })
	d.DefinePrimitive("condlinrec", func(ctx joydict.Context) { condlinrec(ctx) })
	d.DefinePrimitive("condnestrec", func(ctx joydict.Context) { condnestrec(ctx) })
	d.DefinePrimitive("treestep", func(ctx joydict.Context) { treestep(ctx) })
	d.DefinePrimitive("treerec", func(ctx joydict.Context) { treerec(ctx) })
	d.DefinePrimitive("treegenrec", func(ctx joydict.Context) { treegenrec(ctx) })
}

// linrec `P [T] [R1] [R2]`: if P then T, else run R1, recurse, then R2.
// R2 runs "after" the recursive call, giving linrec its characteristic
// linear-unwind shape (like a single recursive function with pre/post work).
func linrec(ctx joydict.Context) {
	const op = "linrec"
	args := ctx.Stack().Require(op, 4)
	p, t, r1, r2 := args[0], args[1], args[2], args[3]
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	linrecStep(ctx, p, t, r1, r2)
}

func linrecStep(ctx joydict.Context, p, t, r1, r2 joyvalue.Value) {
	if runProbe(ctx, "linrec", p) {
		execAsBody(ctx, "linrec", t)
		return
	}
	execAsBody(ctx, "linrec", r1)
	linrecStep(ctx, p, t, r1, r2)
	execAsBody(ctx, "linrec", r2)
}

// binrec `P [T] [R1] [R2]`: like linrec, but R1 is expected to split the
// problem into two independent subproblems (leaving two values on the
// stack) and R2 recombines the two recursive results.
func binrec(ctx joydict.Context) {
	const op = "binrec"
	args := ctx.Stack().Require(op, 4)
	p, t, r1, r2 := args[0], args[1], args[2], args[3]
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	binrecStep(ctx, p, t, r1, r2)
}

func binrecStep(ctx joydict.Context, p, t, r1, r2 joyvalue.Value) {
	if runProbe(ctx, "binrec", p) {
		execAsBody(ctx, "binrec", t)
		return
	}
	execAsBody(ctx, "binrec", r1)
	b := ctx.Stack().Pop("binrec")
	binrecStep(ctx, p, t, r1, r2)
	ctx.Stack().Push(b)
	binrecStep(ctx, p, t, r1, r2)
	execAsBody(ctx, "binrec", r2)
}

// tailrec `P [T] [R]`: if P then T, else R then recurse — tail position, no
// work after the recursive call, so it runs as a plain loop (§8 "recursion
// termination": this is the scheme that must not grow the native Go stack).
func tailrec(ctx joydict.Context) {
	const op = "tailrec"
	args := ctx.Stack().Require(op, 3)
	p, t, r := args[0], args[1], args[2]
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	for {
		if runProbe(ctx, op, p) {
			execAsBody(ctx, op, t)
			return
		}
		execAsBody(ctx, op, r)
	}
}

// primrec `X0 [B] [R]`: primitive recursion over a non-negative integer or
// a list/quotation/string counted down by its rest. B computes the base
// case from the seed; R combines the current element with the recursive
// result (mirroring Joy's canonical factorial/length definitions).
func primrec(ctx joydict.Context) {
	const op = "primrec"
	args := ctx.Stack().Require(op, 3)
	x0, b, r := args[0], args[1], args[2]
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	ctx.Stack().Push(x0)
	primrecStep(ctx, b, r)
}

func primrecStep(ctx joydict.Context, b, r joyvalue.Value) {
	x := ctx.Stack().Pop("primrec")
	if isZeroOrEmpty(x) {
		ctx.Stack().Push(x)
		execAsBody(ctx, "primrec", b)
		return
	}
	ctx.Stack().Push(predecessor(x))
	primrecStep(ctx, b, r)
	ctx.Stack().Push(x)
	execAsBody(ctx, "primrec", r)
}

func isZeroOrEmpty(v joyvalue.Value) bool {
	switch v.Kind() {
	case joyvalue.KindInt:
		return v.AsInt() == 0
	case joyvalue.KindList, joyvalue.KindQuotation:
		return joyvalue.Length(v) == 0
	case joyvalue.KindString:
		return v.AsString() == ""
	default:
		return !joyvalue.Truthy(v)
	}
}

func predecessor(v joyvalue.Value) joyvalue.Value {
	switch v.Kind() {
	case joyvalue.KindInt:
		return joyvalue.Int(v.AsInt() - 1)
	case joyvalue.KindList, joyvalue.KindQuotation:
		return joyvalue.Rest(v)
	case joyvalue.KindString:
		return joyvalue.Str(joyvalue.StringRest(v.AsString()))
	default:
		return v
	}
}

// genrec `P [T] [R1] [R2]`: the general form linrec is specialized from.
// R2 receives, as its recursive call, the literal quotation
// `[P [T] [R1] [R2] genrec]` pushed for it to invoke via `i` — letting R2
// decide whether and how to recurse rather than genrec doing it
// unconditionally, matching the original runtime's construction.
func genrec(ctx joydict.Context) {
	const op = "genrec"
	args := ctx.Stack().Require(op, 4)
	p, t, r1, r2 := args[0], args[1], args[2], args[3]
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	genrecStep(ctx, p, t, r1, r2)
}

func genrecStep(ctx joydict.Context, p, t, r1, r2 joyvalue.Value) {
	if runProbe(ctx, "genrec", p) {
		execAsBody(ctx, "genrec", t)
		return
	}
	execAsBody(ctx, "genrec", r1)
	recur := joyvalue.Quotation([]joyvalue.Value{
		p, t, r1, r2, joyvalue.Symbol("genrec"),
	})
	ctx.Stack().Push(recur)
	execAsBody(ctx, "genrec", r2)
}

// condlinrec `[[B1 R11 R12 ...] [B2 R21 R22 ...] ... [Rn...]]`: scan clauses
// like cond for the first true B, then run that clause's remaining parts
// in sequence, recursing on the *whole, unchanged* clause list between each
// pair of parts — matching condnestrecaux's shared traversal in
// joy_primitives.c (prim_condlinrec and prim_condnestrec both call it
// unmodified; the two words differ only in name, not behavior).
func condlinrec(ctx joydict.Context) {
	const op = "condlinrec"
	clauses := requireAggregate(op, ctx.Stack().Pop(op))
	condRecAux(ctx, op, clauses.Items())
}

// condnestrec: see condlinrec — condnestrecaux is the one traversal both
// primitives share in the original runtime.
func condnestrec(ctx joydict.Context) {
	const op = "condnestrec"
	clauses := requireAggregate(op, ctx.Stack().Pop(op))
	condRecAux(ctx, op, clauses.Items())
}

// condRecAux ports condnestrecaux: test each clause's B (except the last,
// the unconditional default) against a snapshot of the stack; on the first
// match, or falling through to the default, execute that clause's first
// remaining part, then for every subsequent part recurse on the *same*
// clauses slice before running it. The recursive call sees the original,
// full clause list every time — not a shrinking suffix — so each
// recursion re-runs the whole B-scan from clause zero.
func condRecAux(ctx joydict.Context, op string, clauses []joyvalue.Value) {
	if len(clauses) == 0 {
		return
	}
	saved := ctx.Stack().Snapshot()
	matched := false
	matchedIdx := len(clauses) - 1
	for i := 0; i < len(clauses)-1; i++ {
		clause := requireAggregate(op, clauses[i])
		parts := clause.Items()
		if len(parts) < 2 {
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
	clause := requireAggregate(op, clauses[matchedIdx])
	parts := clause.Items()
	start := 0
	if matched {
		start = 1
	}
	if start >= len(parts) {
		return
	}
	execAsBody(ctx, op, parts[start])
	for j := start + 1; j < len(parts); j++ {
		condRecAux(ctx, op, clauses)
		execAsBody(ctx, op, parts[j])
	}
}

// treestep `Leaf [Q]`: apply Q to every leaf of the tree encoded as nested
// Lists/Quotations (a non-aggregate value is a leaf), discarding results
// like step — pure traversal for side effects.
func treestep(ctx joydict.Context) {
	const op = "treestep"
	tq := ctx.Stack().Require(op, 2)
	tree, q := tq[0], tq[1]
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	treestepNode(ctx, tree, q)
}

func treestepNode(ctx joydict.Context, node, q joyvalue.Value) {
	if !node.IsAggregate() {
		ctx.Stack().Push(node.Copy())
		execAsBody(ctx, "treestep", q)
		return
	}
	for _, child := range node.Items() {
		treestepNode(ctx, child, q)
	}
}

// treerec `Tree [T] [R]`: if Tree is a leaf, run T; else run R once per
// child (passing that child as the new Tree) and leave all child results
// on the stack in order, mirroring treestep's traversal but in
// recursion-scheme form so R can combine results itself.
func treerec(ctx joydict.Context) {
	const op = "treerec"
	args := ctx.Stack().Require(op, 3)
	tree, t, r := args[0], args[1], args[2]
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	treerecNode(ctx, tree, t, r)
}

func treerecNode(ctx joydict.Context, node, t, r joyvalue.Value) {
	if !node.IsAggregate() {
		ctx.Stack().Push(node.Copy())
		execAsBody(ctx, "treerec", t)
		return
	}
	for _, child := range node.Items() {
		treerecNode(ctx, child, t, r)
		execAsBody(ctx, "treerec", r)
	}
}

// treegenrec `Tree [T] [R1] [R2]`: like treerec, but brackets the descent
// into an aggregate node's children with R1 (run once before the first
// child) and R2 (run once after the last), rather than combining a result
// after every child in turn — a prologue/epilogue around the fan-out
// instead of a per-child fold.
func treegenrec(ctx joydict.Context) {
	const op = "treegenrec"
	args := ctx.Stack().Require(op, 4)
	tree, t, r1, r2 := args[0], args[1], args[2], args[3]
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	treegenrecNode(ctx, tree, t, r1, r2)
}

func treegenrecNode(ctx joydict.Context, node, t, r1, r2 joyvalue.Value) {
	if !node.IsAggregate() {
		ctx.Stack().Push(node.Copy())
		execAsBody(ctx, "treegenrec", t)
		return
	}
	execAsBody(ctx, "treegenrec", r1)
	for _, child := range node.Items() {
		treegenrecNode(ctx, child, t, r1, r2)
	}
	execAsBody(ctx, "treegenrec", r2)
}
