// Package joydict implements the dictionary (§4.4): a name-to-word mapping
// where a word is either a native primitive or an owned user-defined
// quotation body. Shaped after evaluator.Environment's get/set over a map
// with RWMutex-guarded access, generalized from
// string→Object to string→Word so both primitive and user bindings share
// one lookup path.
package joydict

import (
	"os"
	"sync"

	"github.com/joy-lang/joy/internal/joyflags"
	"github.com/joy-lang/joy/internal/joystack"
	"github.com/joy-lang/joy/internal/joyvalue"
)

// Context is the surface a primitive needs from the execution context
// (§3's "Context bundles stack, dictionary and flags"). It is expressed as
// an interface here, implemented by *engine.Context, so that joydict never
// needs to import the engine package that in turn needs *Dictionary — the
// standard way to let two mutually-referential concerns share one
// compilation unit boundary without an import cycle.
type Context interface {
	Stack() *joystack.Stack
	Dict() *Dictionary
	Flags() *joyflags.Flags
	// Exec dispatches a single value: a Symbol resolves through the
	// dictionary and runs, anything else is pushed as a deep copy
	// (§4.5 execute_value).
	Exec(v joyvalue.Value)
	// ExecBody walks a quotation's terms left to right, applying Exec to
	// each (§4.5 execute_quotation).
	ExecBody(terms []joyvalue.Value)

	// Stdin/Stdout/Stderr expose the three standard streams the `stdin`,
	// `stdout`, `stderr`, `put` and friends primitives read and write.
	Stdin() *os.File
	Stdout() *os.File
	Stderr() *os.File
}

// PrimitiveFunc is the signature every native word implements.
type PrimitiveFunc func(ctx Context)

// Word is a dictionary binding: exactly one of Primitive or Body is set.
type Word struct {
	Name      string
	Primitive PrimitiveFunc
	Body      []joyvalue.Value // nil for primitives
}

// IsPrimitive reports whether w is a native word.
func (w *Word) IsPrimitive() bool { return w.Primitive != nil }

// Dictionary maps names to words. Lookups are O(1) (a plain map), and
// redefinition replaces a binding atomically — last definition wins (§3),
// and quotations that merely *name* the old word dispatch to the new
// binding on their next call (§9).
type Dictionary struct {
	mu    sync.RWMutex
	words map[string]*Word
}

// New returns an empty dictionary.
func New() *Dictionary {
	return &Dictionary{words: make(map[string]*Word)}
}

// DefinePrimitive binds name to a native function, replacing any existing
// binding.
func (d *Dictionary) DefinePrimitive(name string, fn PrimitiveFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.words[name] = &Word{Name: name, Primitive: fn}
}

// DefineUser binds name to a quotation body, replacing any existing binding.
// The previous body (if any) simply becomes unreachable and is released by
// the garbage collector.
func (d *Dictionary) DefineUser(name string, body []joyvalue.Value) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.words[name] = &Word{Name: name, Body: body}
}

// Lookup resolves name to its current word, reporting ok=false if
// undefined.
func (d *Dictionary) Lookup(name string) (*Word, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	w, ok := d.words[name]
	return w, ok
}

// Names returns every currently-bound name, for introspection tooling (the
// REPL's listing support and tests); order is unspecified.
func (d *Dictionary) Names() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]string, 0, len(d.words))
	for n := range d.words {
		out = append(out, n)
	}
	return out
}
