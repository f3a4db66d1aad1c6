// Package engine implements the execution engine (§4.5) and the Context
// that bundles the operand stack, dictionary and flag set (§3). The engine
// has exactly two entry points — execute a single value, walk a quotation
// — deliberately unlike a bytecode VM's opcode switch: concatenative
// languages fold "compile" and "run" into the same left-to-right pass,
// shaped after vm/vm_exec.go's dispatch loop but reduced to its two cases.
package engine

import (
	"os"

	"github.com/joy-lang/joy/internal/joydict"
	"github.com/joy-lang/joy/internal/joyflags"
	"github.com/joy-lang/joy/internal/joystack"
	"github.com/joy-lang/joy/internal/joyvalue"
)

// Context is the concrete runtime state: stack, dictionary and flags
// (§3). It implements joydict.Context so primitives registered against
// that interface can run without this package or joydict importing each
// other's concrete types.
type Context struct {
	stack *joystack.Stack
	dict  *joydict.Dictionary
	flags *joyflags.Flags

	// stdin/stdout/stderr are the three standard handles pushed by the
	// `stdin`/`stdout`/`stderr` primitives (§4.6 I/O family). They are
	// shared with the host process and never closed by the runtime (§5).
	stdin  *os.File
	stdout *os.File
	stderr *os.File
}

// New returns a Context with a fresh stack and dictionary, flags at their
// zero defaults, and the process's real standard streams wired in.
func New() *Context {
	return &Context{
		stack:  joystack.New(),
		dict:   joydict.New(),
		flags:  joyflags.New(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// NewWithStreams returns a Context wired to the given streams instead of
// the process defaults — used by the REPL/test harnesses to redirect I/O.
func NewWithStreams(stdin, stdout, stderr *os.File) *Context {
	c := New()
	c.stdin, c.stdout, c.stderr = stdin, stdout, stderr
	return c
}

func (c *Context) Stack() *joystack.Stack    { return c.stack }
func (c *Context) Dict() *joydict.Dictionary { return c.dict }
func (c *Context) Flags() *joyflags.Flags    { return c.flags }
func (c *Context) Stdin() *os.File           { return c.stdin }
func (c *Context) Stdout() *os.File          { return c.stdout }
func (c *Context) Stderr() *os.File          { return c.stderr }

// Exec implements joydict.Context.Exec: execute_value (§4.5).
func (c *Context) Exec(v joyvalue.Value) { ExecuteValue(c, v) }

// ExecBody implements joydict.Context.ExecBody: execute_quotation (§4.5).
func (c *Context) ExecBody(terms []joyvalue.Value) { ExecuteQuotation(c, terms) }
