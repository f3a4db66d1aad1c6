// Package joystack implements the operand stack (§4.3): a LIFO of values
// with depth tracking, deep-copy snapshots and structural access at
// arbitrary offsets from the top, used by every primitive and by the
// combinators that must save and restore context.
package joystack

import (
	"fmt"
	"io"

	"github.com/joy-lang/joy/internal/joyerr"
	"github.com/joy-lang/joy/internal/joyvalue"
)

// Stack is the runtime operand stack. Index 0 is the bottom; the top is the
// last element, matching the push/pop direction of every primitive's stack
// effect comment in §4.6.
type Stack struct {
	items []joyvalue.Value
}

// New returns an empty stack.
func New() *Stack { return &Stack{} }

// Push places v on top of the stack.
func (s *Stack) Push(v joyvalue.Value) { s.items = append(s.items, v) }

// Pop removes and returns the top value, failing with Underflow if the
// stack is empty. op names the caller for the error message.
func (s *Stack) Pop(op string) joyvalue.Value {
	v := s.Require(op, 1)[0]
	s.items = s.items[:len(s.items)-1]
	return v
}

// Peek returns the top value without removing it.
func (s *Stack) Peek(op string) joyvalue.Value {
	return s.Require(op, 1)[0]
}

// PeekN returns the value at offset i from the top (0 = top).
func (s *Stack) PeekN(op string, i int) joyvalue.Value {
	s.guard(op, i+1)
	return s.items[len(s.items)-1-i]
}

// Require checks depth n is available and returns the top n values in
// bottom-to-top order (so Require("x", 2)[0] is the second-from-top, [1] is
// the top) — the shape every multi-arg primitive pops in sequence.
func (s *Stack) Require(op string, n int) []joyvalue.Value {
	s.guard(op, n)
	return s.items[len(s.items)-n:]
}

func (s *Stack) guard(op string, n int) {
	if len(s.items) < n {
		panic(joyerr.Underflow(op, n, len(s.items)))
	}
}

// Depth returns the number of items currently on the stack.
func (s *Stack) Depth() int { return len(s.items) }

// Clear empties the stack.
func (s *Stack) Clear() { s.items = nil }

// Dup, Swap and friends are implemented by the stack-shuffling primitives
// directly against Pop/Push/PeekN; Stack itself stays a minimal LIFO.

// Snapshot deep-copies every item on the stack (§4.3), the operation
// combinators like ifte/while/cond rely on to probe a condition without
// disturbing the real stack.
func (s *Stack) Snapshot() []joyvalue.Value {
	out := make([]joyvalue.Value, len(s.items))
	for i, v := range s.items {
		out[i] = v.Copy()
	}
	return out
}

// Restore replaces the stack's contents with a previously taken snapshot.
func (s *Stack) Restore(snapshot []joyvalue.Value) {
	out := make([]joyvalue.Value, len(snapshot))
	for i, v := range snapshot {
		out[i] = v.Copy()
	}
	s.items = out
}

// ToSlice returns the live backing items top-last; used by `stack`/`unstack`
// and by infra's swap-in/collect dance. Callers must not retain it past the
// next mutation.
func (s *Stack) ToSlice() []joyvalue.Value { return s.items }

// SetSlice replaces the stack wholesale (used by `unstack` and by infra).
func (s *Stack) SetSlice(items []joyvalue.Value) { s.items = items }

// Print writes a debug rendering of the stack, top first, one per line.
func (s *Stack) Print(w io.Writer) {
	for i := len(s.items) - 1; i >= 0; i-- {
		fmt.Fprintln(w, s.items[i].String())
	}
}

// Dump is an alias for Print kept for readability at call sites that treat
// it as a named debug hook rather than a stack-effect primitive.
func (s *Stack) Dump(w io.Writer) { s.Print(w) }
