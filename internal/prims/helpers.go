// Package prims implements the full primitive operator set: every
// built-in word, organized into families (stack shuffling, arithmetic,
// math, comparison, logic, aggregates, combinators, recursion schemes,
// type predicates/conditionals, reflection, I/O, system/control).
// Organized family-by-family the way evaluator/builtins_*.go splits its
// own builtins — each file here names its source file or library in its
// doc comment.
package prims

import (
	"github.com/joy-lang/joy/internal/joydict"
	"github.com/joy-lang/joy/internal/joyerr"
	"github.com/joy-lang/joy/internal/joyvalue"
)

// terms returns the executable term slice of a value that must be a List or
// Quotation (§4.5: both are accepted wherever a combinator expects an
// executable argument).
func terms(ctx joydict.Context, op string, v joyvalue.Value) []joyvalue.Value {
	if !v.IsAggregate() {
		joyerr.Raise(joyerr.TypeMismatch(op, "quotation", v.Kind().String()))
	}
	return v.Items()
}

// execAsBody runs v (List or Quotation) as a combinator argument.
func execAsBody(ctx joydict.Context, op string, v joyvalue.Value) {
	ctx.ExecBody(terms(ctx, op, v))
}

func requireInt(op string, v joyvalue.Value) int64 {
	if v.Kind() != joyvalue.KindInt {
		joyerr.Raise(joyerr.TypeMismatch(op, "integer", v.Kind().String()))
	}
	return v.AsInt()
}

func requireNumeric(op string, v joyvalue.Value) joyvalue.Value {
	if !v.IsNumeric() {
		joyerr.Raise(joyerr.TypeMismatch(op, "number", v.Kind().String()))
	}
	return v
}

func requireAggregate(op string, v joyvalue.Value) joyvalue.Value {
	if !v.IsAggregate() {
		joyerr.Raise(joyerr.TypeMismatch(op, "aggregate", v.Kind().String()))
	}
	return v
}

func requireKind(op string, v joyvalue.Value, k joyvalue.Kind) joyvalue.Value {
	if v.Kind() != k {
		joyerr.Raise(joyerr.TypeMismatch(op, k.String(), v.Kind().String()))
	}
	return v
}

// runProbe snapshots the stack, runs q, pops its single boolean-ish result
// and restores the snapshot — the save/restore pattern shared by
// ifte/while/cond and the recursion schemes' predicate tests (§4.6, §8
// "snapshot idempotence").
func runProbe(ctx joydict.Context, op string, q joyvalue.Value) bool {
	saved := ctx.Stack().Snapshot()
	execAsBody(ctx, op, q)
	result := ctx.Stack().Pop(op)
	ctx.Stack().Restore(saved)
	return joyvalue.Truthy(result)
}
