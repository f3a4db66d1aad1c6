// System/control family (§4.6): process environment, the runtime control
// flags of §3/§4.7, and date/time/formatting helpers. time/clock/rand/srand
// are grounded on joy_primitives.c's prim_time/prim_clock/prim_rand/
// prim_srand (original_source); the remaining names have no original_source
// analogue and are built directly using github.com/ncruces/go-strftime and
// github.com/dustin/go-humanize for date/number formatting.
package prims

import (
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ncruces/go-strftime"

	"github.com/joy-lang/joy/internal/engine"
	"github.com/joy-lang/joy/internal/joydict"
	"github.com/joy-lang/joy/internal/joyerr"
	"github.com/joy-lang/joy/internal/joyvalue"
)

func registerSysctl(d *joydict.Dictionary) {
	d.DefinePrimitive("system", func(ctx joydict.Context) {
		v := requireKind("system", ctx.Stack().Pop("system"), joyvalue.KindString)
		cmd := exec.Command("/bin/sh", "-c", v.AsString())
		cmd.Stdout = stdout(ctx)
		cmd.Stderr = stderrFile(ctx)
		err := cmd.Run()
		code := 0
		if exitErr, ok := err.(*exec.ExitError); ok {
			code = exitErr.ExitCode()
		} else if err != nil {
			code = -1
		}
		ctx.Stack().Push(joyvalue.Int(int64(code)))
	})

	d.DefinePrimitive("getenv", func(ctx joydict.Context) {
		v := requireKind("getenv", ctx.Stack().Pop("getenv"), joyvalue.KindString)
		ctx.Stack().Push(joyvalue.Str(os.Getenv(v.AsString())))
	})

	d.DefinePrimitive("argc", func(ctx joydict.Context) {
		ctx.Stack().Push(joyvalue.Int(int64(ctx.Flags().Argc())))
	})
	d.DefinePrimitive("argv", func(ctx joydict.Context) {
		i := requireInt("argv", ctx.Stack().Pop("argv"))
		ctx.Stack().Push(joyvalue.Str(ctx.Flags().Argv(int(i))))
	})

	d.DefinePrimitive("abort", func(ctx joydict.Context) {
		engine.Quit(1)
	})
	d.DefinePrimitive("quit", func(ctx joydict.Context) {
		engine.Quit(0)
	})

	d.DefinePrimitive("gc", func(ctx joydict.Context) {})

	d.DefinePrimitive("setautoput", func(ctx joydict.Context) {
		v := requireKind("setautoput", ctx.Stack().Pop("setautoput"), joyvalue.KindBool)
		ctx.Flags().Autoput = v.AsBool()
	})
	d.DefinePrimitive("setundeferror", func(ctx joydict.Context) {
		v := requireKind("setundeferror", ctx.Stack().Pop("setundeferror"), joyvalue.KindBool)
		ctx.Flags().Undeferror = v.AsBool()
	})
	d.DefinePrimitive("autoput", func(ctx joydict.Context) {
		ctx.Stack().Push(joyvalue.Bool(ctx.Flags().Autoput))
	})
	d.DefinePrimitive("undeferror", func(ctx joydict.Context) {
		ctx.Stack().Push(joyvalue.Bool(ctx.Flags().Undeferror))
	})
	d.DefinePrimitive("echo", func(ctx joydict.Context) {
		ctx.Stack().Push(joyvalue.Bool(ctx.Flags().Echo))
	})

	d.DefinePrimitive("time", func(ctx joydict.Context) {
		ctx.Stack().Push(joyvalue.Int(time.Now().Unix()))
	})
	d.DefinePrimitive("clock", func(ctx joydict.Context) {
		ctx.Stack().Push(joyvalue.Int(int64(time.Now().UnixNano())))
	})
	d.DefinePrimitive("rand", func(ctx joydict.Context) {
		ctx.Stack().Push(joyvalue.Int(int64(rand.Int31())))
	})
	d.DefinePrimitive("srand", func(ctx joydict.Context) {
		v := requireInt("srand", ctx.Stack().Pop("srand"))
		rand.Seed(v)
	})

	d.DefinePrimitive("localtime", func(ctx joydict.Context) {
		v := requireInt("localtime", ctx.Stack().Pop("localtime"))
		ctx.Stack().Push(brokenDownTime(time.Unix(v, 0).Local()))
	})
	d.DefinePrimitive("gmtime", func(ctx joydict.Context) {
		v := requireInt("gmtime", ctx.Stack().Pop("gmtime"))
		ctx.Stack().Push(brokenDownTime(time.Unix(v, 0).UTC()))
	})
	d.DefinePrimitive("mktime", func(ctx joydict.Context) {
		v := requireAggregate("mktime", ctx.Stack().Pop("mktime"))
		t, err := fromBrokenDownTime(v)
		if err != nil {
			joyerr.Raise(joyerr.Domain("mktime", err.Error()))
		}
		ctx.Stack().Push(joyvalue.Int(t.Unix()))
	})

	d.DefinePrimitive("strftime", func(ctx joydict.Context) {
		ab := ctx.Stack().Require("strftime", 2)
		fmtStr, epoch := requireKind("strftime", ab[0], joyvalue.KindString), requireInt("strftime", ab[1])
		ctx.Stack().Pop("strftime")
		ctx.Stack().Pop("strftime")
		out := strftime.Format(fmtStr.AsString(), time.Unix(epoch, 0).UTC())
		ctx.Stack().Push(joyvalue.Str(out))
	})

	d.DefinePrimitive("format", func(ctx joydict.Context) {
		v := ctx.Stack().Pop("format")
		ctx.Stack().Push(joyvalue.Str(formatValue(v)))
	})
	d.DefinePrimitive("formatf", func(ctx joydict.Context) {
		ab := ctx.Stack().Require("formatf", 2)
		v, prec := ab[0], requireInt("formatf", ab[1])
		ctx.Stack().Pop("formatf")
		ctx.Stack().Pop("formatf")
		f := requireNumeric("formatf", v).AsFloat64()
		s := humanize.CommafWithDigits(f, int(prec))
		if prec > 0 {
			dot := strings.IndexByte(s, '.')
			if dot < 0 {
				s += "."
				dot = len(s) - 1
			}
			if missing := int(prec) - (len(s) - dot - 1); missing > 0 {
				s += strings.Repeat("0", missing)
			}
		}
		ctx.Stack().Push(joyvalue.Str(s))
	})

	d.DefinePrimitive("opcase", func(ctx joydict.Context) {
		v := requireKind("opcase", ctx.Stack().Pop("opcase"), joyvalue.KindChar)
		c := v.AsChar()
		switch {
		case c >= 'a' && c <= 'z':
			ctx.Stack().Push(joyvalue.Char(c - 'a' + 'A'))
		case c >= 'A' && c <= 'Z':
			ctx.Stack().Push(joyvalue.Char(c - 'A' + 'a'))
		default:
			ctx.Stack().Push(v)
		}
	})

	d.DefinePrimitive("case", func(ctx joydict.Context) { caseOp(ctx) })
}

// brokenDownTime packs a time.Time into the List-of-ints layout spec.md's
// localtime/gmtime describe: [sec min hour mday mon year wday yday].
func brokenDownTime(t time.Time) joyvalue.Value {
	return joyvalue.List([]joyvalue.Value{
		joyvalue.Int(int64(t.Second())),
		joyvalue.Int(int64(t.Minute())),
		joyvalue.Int(int64(t.Hour())),
		joyvalue.Int(int64(t.Day())),
		joyvalue.Int(int64(t.Month()) - 1),
		joyvalue.Int(int64(t.Year())),
		joyvalue.Int(int64(t.Weekday())),
		joyvalue.Int(int64(t.YearDay() - 1)),
	})
}

func fromBrokenDownTime(v joyvalue.Value) (time.Time, error) {
	items := v.Items()
	if len(items) < 6 {
		return time.Time{}, fmt.Errorf("mktime requires [sec min hour mday mon year]")
	}
	ints := make([]int, 6)
	for i := 0; i < 6; i++ {
		if items[i].Kind() != joyvalue.KindInt {
			return time.Time{}, fmt.Errorf("mktime requires integer fields")
		}
		ints[i] = int(items[i].AsInt())
	}
	return time.Date(ints[5], time.Month(ints[4]+1), ints[3], ints[2], ints[1], ints[0], 0, time.UTC), nil
}

// formatValue is a generic to-string conversion for `format`: numbers
// render in decimal, everything else falls back to the canonical Display
// rendering (§6).
func formatValue(v joyvalue.Value) string {
	switch v.Kind() {
	case joyvalue.KindInt:
		return strconv.FormatInt(v.AsInt(), 10)
	case joyvalue.KindFloat:
		return strconv.FormatFloat(v.AsFloat(), 'g', -1, 64)
	case joyvalue.KindString:
		return v.AsString()
	default:
		return joyvalue.Display(v)
	}
}

// caseOp implements `case Key [[K1 V1] [K2 V2] ... [Default]]`: dispatch on
// structural equality against each clause's key, falling through to the
// unconditional last clause (default) like cond's (§9(a)).
func caseOp(ctx joydict.Context) {
	const op = "case"
	kc := ctx.Stack().Require(op, 2)
	key, clauses := kc[0], requireAggregate(op, kc[1])
	ctx.Stack().Pop(op)
	ctx.Stack().Pop(op)
	items := clauses.Items()
	for i, clause := range items {
		parts := requireAggregate(op, clause).Items()
		last := i == len(items)-1
		if last && len(parts) == 1 {
			ctx.ExecBody(parts)
			return
		}
		if len(parts) < 2 {
			continue
		}
		if joyvalue.Equal(key, parts[0]) {
			ctx.ExecBody(parts[1:])
			return
		}
	}
}
