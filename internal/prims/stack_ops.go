// Stack shuffling family (§4.6). Arranged the way vm/vm_ops.go arranges
// small single-purpose stack mutators, generalized from a bytecode VM's
// operand array to joy's Stack type.
package prims

import (
	"github.com/joy-lang/joy/internal/joydict"
	"github.com/joy-lang/joy/internal/joyvalue"
)

func registerStackOps(d *joydict.Dictionary) {
	d.DefinePrimitive("dup", func(ctx joydict.Context) {
		v := ctx.Stack().Peek("dup")
		ctx.Stack().Push(v.Copy())
	})
	d.DefinePrimitive("pop", func(ctx joydict.Context) {
		ctx.Stack().Pop("pop")
	})
	d.DefinePrimitive("swap", func(ctx joydict.Context) {
		xy := ctx.Stack().Require("swap", 2)
		x, y := xy[0], xy[1]
		ctx.Stack().Pop("swap")
		ctx.Stack().Pop("swap")
		ctx.Stack().Push(y)
		ctx.Stack().Push(x)
	})
	d.DefinePrimitive("rollup", func(ctx joydict.Context) {
		x, y, z := pop3(ctx, "rollup")
		ctx.Stack().Push(z)
		ctx.Stack().Push(x)
		ctx.Stack().Push(y)
	})
	d.DefinePrimitive("rolldown", func(ctx joydict.Context) {
		x, y, z := pop3(ctx, "rolldown")
		ctx.Stack().Push(y)
		ctx.Stack().Push(z)
		ctx.Stack().Push(x)
	})
	d.DefinePrimitive("rotate", func(ctx joydict.Context) {
		x, y, z := pop3(ctx, "rotate")
		ctx.Stack().Push(z)
		ctx.Stack().Push(y)
		ctx.Stack().Push(x)
	})
	d.DefinePrimitive("over", func(ctx joydict.Context) {
		xy := ctx.Stack().Require("over", 2)
		x, y := xy[0], xy[1]
		ctx.Stack().Push(x.Copy())
		_ = y
	})
	d.DefinePrimitive("dup2", func(ctx joydict.Context) {
		xy := ctx.Stack().Require("dup2", 2)
		x, y := xy[0].Copy(), xy[1].Copy()
		ctx.Stack().Push(x)
		ctx.Stack().Push(y)
	})
	d.DefinePrimitive("dupd", func(ctx joydict.Context) {
		xy := ctx.Stack().Require("dupd", 2)
		x, y := xy[0], xy[1]
		ctx.Stack().Pop("dupd")
		ctx.Stack().Pop("dupd")
		ctx.Stack().Push(x.Copy())
		ctx.Stack().Push(x)
		ctx.Stack().Push(y)
	})
	d.DefinePrimitive("swapd", func(ctx joydict.Context) {
		x, y, z := pop3(ctx, "swapd")
		ctx.Stack().Push(y)
		ctx.Stack().Push(x)
		ctx.Stack().Push(z)
	})
	d.DefinePrimitive("popd", func(ctx joydict.Context) {
		xy := ctx.Stack().Require("popd", 2)
		y := xy[1]
		ctx.Stack().Pop("popd")
		ctx.Stack().Pop("popd")
		ctx.Stack().Push(y)
	})
	d.DefinePrimitive("rollupd", func(ctx joydict.Context) {
		w, x, y, z := pop4(ctx, "rollupd")
		ctx.Stack().Push(y)
		ctx.Stack().Push(w)
		ctx.Stack().Push(x)
		ctx.Stack().Push(z)
	})
	d.DefinePrimitive("rolldownd", func(ctx joydict.Context) {
		w, x, y, z := pop4(ctx, "rolldownd")
		ctx.Stack().Push(x)
		ctx.Stack().Push(y)
		ctx.Stack().Push(w)
		ctx.Stack().Push(z)
	})
	d.DefinePrimitive("rotated", func(ctx joydict.Context) {
		w, x, y, z := pop4(ctx, "rotated")
		ctx.Stack().Push(y)
		ctx.Stack().Push(x)
		ctx.Stack().Push(w)
		ctx.Stack().Push(z)
	})
	d.DefinePrimitive("id", func(ctx joydict.Context) {})
	d.DefinePrimitive("stack", func(ctx joydict.Context) {
		src := ctx.Stack().ToSlice() // bottom..top
		out := make([]joyvalue.Value, len(src))
		for i, v := range src {
			out[len(src)-1-i] = v.Copy() // reverse -> top..bottom
		}
		ctx.Stack().Push(joyvalue.List(out))
	})
	d.DefinePrimitive("unstack", func(ctx joydict.Context) {
		v := requireAggregate("unstack", ctx.Stack().Pop("unstack"))
		topToBottom := v.Items()
		out := make([]joyvalue.Value, len(topToBottom))
		for i, e := range topToBottom {
			out[len(topToBottom)-1-i] = e.Copy() // reverse -> bottom..top
		}
		ctx.Stack().Clear()
		ctx.Stack().SetSlice(out)
	})
}

func pop3(ctx joydict.Context, op string) (x, y, z joyvalue.Value) {
	xyz := ctx.Stack().Require(op, 3)
	x, y, z = xyz[0], xyz[1], xyz[2]
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	return
}

func pop4(ctx joydict.Context, op string) (w, x, y, z joyvalue.Value) {
	wxyz := ctx.Stack().Require(op, 4)
	w, x, y, z = wxyz[0], wxyz[1], wxyz[2], wxyz[3]
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	return
}
