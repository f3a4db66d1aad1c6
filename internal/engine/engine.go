package engine

import (
	"fmt"
	"os"

	"github.com/joy-lang/joy/internal/joydict"
	"github.com/joy-lang/joy/internal/joyerr"
	"github.com/joy-lang/joy/internal/joyvalue"
)

// ExecuteValue is execute_value (§4.5): if v is a Symbol, dispatch through
// the dictionary (failure raises Undefined); otherwise push a deep copy of
// v onto the stack. This is the entire "interpreter loop" — there is no
// separate compile step and no opcode switch.
func ExecuteValue(ctx joydict.Context, v joyvalue.Value) {
	if v.Kind() != joyvalue.KindSymbol {
		ctx.Stack().Push(v.Copy())
		return
	}
	name := v.AsSymbol()
	word, ok := ctx.Dict().Lookup(name)
	if !ok {
		joyerr.Raise(joyerr.Undefined(name))
	}
	if word.IsPrimitive() {
		word.Primitive(ctx)
		return
	}
	ExecuteQuotation(ctx, word.Body)
}

// ExecuteQuotation is execute_quotation (§4.5): iterate the terms of a
// quotation left to right, applying ExecuteValue to each. Both List and
// Quotation values are accepted wherever a combinator expects an
// executable argument — callers hand this function the raw term slice
// regardless of which Kind the value carried, since §4.5 treats that
// aliasing as the canonical code-is-data surface.
func ExecuteQuotation(ctx joydict.Context, terms []joyvalue.Value) {
	for _, t := range terms {
		ExecuteValue(ctx, t)
	}
}

// Run executes a top-level program (a sequence of terms, e.g. a parsed
// file body) against ctx, recovering any *joyerr.JoyError raised by a
// primitive and turning it into the one-line diagnostic and exit-status
// split specified by §7: quit exits 0, abort and every raised error exit
// non-zero. Run is the boundary between the core (fatal-and-local,
// process-terminating errors) and a host that wants to keep running after
// one program — tests call ExecuteQuotation directly and recover
// themselves instead, since recovering here would hide the error from
// `testify`'s assertions.
func Run(ctx *Context, program []joyvalue.Value) (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case quitSignal:
				exitCode = int(e)
			case *joyerr.JoyError:
				fmt.Fprintln(ctx.Stderr(), e.Error())
				exitCode = 1
			default:
				panic(r)
			}
		}
	}()
	ExecuteQuotation(ctx, program)
	return 0
}

// quitSignal is panicked by the `quit`/`abort` primitives to unwind to
// Run's recover without being mistaken for a JoyError; it carries the
// process exit status.
type quitSignal int

// Quit panics with quitSignal(code), unwinding execution back to Run. This
// is the only non-error control-flow escape in the runtime (§4.7: "abort
// and quit are the controlled exits").
func Quit(code int) { panic(quitSignal(code)) }

// ExitNow terminates the process directly via os.Exit, without unwinding
// back to Run the way Quit does.
func ExitNow(code int) { os.Exit(code) }
