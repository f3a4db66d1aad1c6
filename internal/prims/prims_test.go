package prims

import (
	"github.com/joy-lang/joy/internal/engine"
)

// newTestContext returns a fresh engine.Context with every primitive
// family registered, the shared fixture every _test.go file in this
// package builds on.
func newTestContext() *engine.Context {
	ctx := engine.New()
	RegisterAll(ctx.Dict())
	return ctx
}
