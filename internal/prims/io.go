// I/O family (§4.6, §5): stream output/input and file-handle management.
// fopen/fclose/fread/fwrite etc. wrap *joyvalue.FileHandle (the one
// non-owning value variant); fremove/frename push a boolean rather than
// raising on failure — a deliberate exception from every other raising
// primitive in this package, since filesystem errors here are routine
// and expected to be handled by the calling program, not fatal.
package prims

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/joy-lang/joy/internal/joydict"
	"github.com/joy-lang/joy/internal/joyerr"
	"github.com/joy-lang/joy/internal/joyvalue"
)

func registerIO(d *joydict.Dictionary) {
	d.DefinePrimitive("put", func(ctx joydict.Context) {
		v := ctx.Stack().Pop("put")
		fmt.Fprint(stdout(ctx), joyvalue.Display(v))
	})
	d.DefinePrimitive("putln", func(ctx joydict.Context) {
		v := ctx.Stack().Pop("putln")
		fmt.Fprintln(stdout(ctx), joyvalue.Display(v))
	})
	d.DefinePrimitive(".", func(ctx joydict.Context) {
		v := ctx.Stack().Pop(".")
		fmt.Fprintln(stdout(ctx), joyvalue.Display(v))
	})
	d.DefinePrimitive("putch", func(ctx joydict.Context) {
		v := requireKind("putch", ctx.Stack().Pop("putch"), joyvalue.KindChar)
		fmt.Fprintf(stdout(ctx), "%c", v.AsChar())
	})
	d.DefinePrimitive("putchars", func(ctx joydict.Context) {
		v := requireKind("putchars", ctx.Stack().Pop("putchars"), joyvalue.KindString)
		fmt.Fprint(stdout(ctx), v.AsString())
	})
	d.DefinePrimitive("newline", func(ctx joydict.Context) {
		fmt.Fprintln(stdout(ctx))
	})

	d.DefinePrimitive("stdin", func(ctx joydict.Context) {
		ctx.Stack().Push(joyvalue.NewFileHandleValue(stdinFile(ctx)))
	})
	d.DefinePrimitive("stdout", func(ctx joydict.Context) {
		ctx.Stack().Push(joyvalue.NewFileHandleValue(stdout(ctx)))
	})
	d.DefinePrimitive("stderr", func(ctx joydict.Context) {
		ctx.Stack().Push(joyvalue.NewFileHandleValue(stderrFile(ctx)))
	})

	d.DefinePrimitive("fopen", func(ctx joydict.Context) {
		ab := ctx.Stack().Require("fopen", 2)
		path, mode := requireKind("fopen", ab[0], joyvalue.KindString), requireKind("fopen", ab[1], joyvalue.KindString)
		ctx.Stack().Pop("fopen")
		ctx.Stack().Pop("fopen")
		f, err := openWithMode(path.AsString(), mode.AsString())
		if err != nil {
			joyerr.Raise(joyerr.Domain("fopen", err.Error()))
		}
		ctx.Stack().Push(joyvalue.NewFileHandleValue(f))
	})

	d.DefinePrimitive("fclose", func(ctx joydict.Context) {
		h := requireFile("fclose", ctx.Stack().Pop("fclose"))
		if h.Writer != nil {
			h.Writer.Flush()
		}
		h.File.Close()
		h.Closed = true
	})

	d.DefinePrimitive("fflush", func(ctx joydict.Context) {
		h := requireFile("fflush", ctx.Stack().Pop("fflush"))
		if h.Writer != nil {
			h.Writer.Flush()
		}
	})

	d.DefinePrimitive("feof", func(ctx joydict.Context) {
		h := requireFile("feof", ctx.Stack().Peek("feof"))
		ctx.Stack().Push(joyvalue.Bool(h.EOF))
	})
	d.DefinePrimitive("ferror", func(ctx joydict.Context) {
		h := requireFile("ferror", ctx.Stack().Peek("ferror"))
		ctx.Stack().Push(joyvalue.Bool(h.Err))
	})

	d.DefinePrimitive("fgetch", func(ctx joydict.Context) {
		h := requireFile("fgetch", ctx.Stack().Peek("fgetch"))
		b, err := h.Reader.ReadByte()
		if err != nil {
			h.EOF = true
			ctx.Stack().Push(joyvalue.Char(0))
			return
		}
		ctx.Stack().Push(joyvalue.Char(b))
	})

	d.DefinePrimitive("fgets", func(ctx joydict.Context) {
		h := requireFile("fgets", ctx.Stack().Peek("fgets"))
		line, err := h.Reader.ReadString('\n')
		if err != nil && line == "" {
			h.EOF = true
			ctx.Stack().Push(joyvalue.Str(""))
			return
		}
		ctx.Stack().Push(joyvalue.Str(line))
	})

	d.DefinePrimitive("fread", func(ctx joydict.Context) {
		hn := ctx.Stack().Require("fread", 2)
		h, n := requireFile("fread", hn[0]), requireInt("fread", hn[1])
		ctx.Stack().Pop("fread")
		ctx.Stack().Pop("fread")
		buf := make([]byte, n)
		read, err := h.Reader.Read(buf)
		if err == io.EOF {
			h.EOF = true
		} else if err != nil {
			h.Err = true
			joyerr.Raise(joyerr.Domain("fread", fmt.Sprintf(
				"short read: got %s of %s requested", humanize.Bytes(uint64(read)), humanize.Bytes(uint64(n)))))
		}
		ctx.Stack().Push(joyvalue.Str(string(buf[:read])))
	})

	d.DefinePrimitive("fput", func(ctx joydict.Context) {
		hv := ctx.Stack().Require("fput", 2)
		h, v := requireFile("fput", hv[0]), hv[1]
		ctx.Stack().Pop("fput")
		ctx.Stack().Pop("fput")
		fmt.Fprint(h.Writer, joyvalue.Display(v))
	})
	d.DefinePrimitive("fputch", func(ctx joydict.Context) {
		hc := ctx.Stack().Require("fputch", 2)
		h, c := requireFile("fputch", hc[0]), requireKind("fputch", hc[1], joyvalue.KindChar)
		ctx.Stack().Pop("fputch")
		ctx.Stack().Pop("fputch")
		h.Writer.WriteByte(c.AsChar())
	})
	d.DefinePrimitive("fputchars", func(ctx joydict.Context) {
		hs := ctx.Stack().Require("fputchars", 2)
		h, s := requireFile("fputchars", hs[0]), requireKind("fputchars", hs[1], joyvalue.KindString)
		ctx.Stack().Pop("fputchars")
		ctx.Stack().Pop("fputchars")
		h.Writer.WriteString(s.AsString())
	})
	d.DefinePrimitive("fputstring", func(ctx joydict.Context) {
		hs := ctx.Stack().Require("fputstring", 2)
		h, s := requireFile("fputstring", hs[0]), requireKind("fputstring", hs[1], joyvalue.KindString)
		ctx.Stack().Pop("fputstring")
		ctx.Stack().Pop("fputstring")
		h.Writer.WriteString(s.AsString())
	})
	d.DefinePrimitive("fwrite", func(ctx joydict.Context) {
		hs := ctx.Stack().Require("fwrite", 2)
		h, s := requireFile("fwrite", hs[0]), requireKind("fwrite", hs[1], joyvalue.KindString)
		ctx.Stack().Pop("fwrite")
		ctx.Stack().Pop("fwrite")
		h.Writer.WriteString(s.AsString())
	})

	d.DefinePrimitive("fseek", func(ctx joydict.Context) {
		hw := ctx.Stack().Require("fseek", 2)
		h, off := requireFile("fseek", hw[0]), requireInt("fseek", hw[1])
		ctx.Stack().Pop("fseek")
		ctx.Stack().Pop("fseek")
		if h.Writer != nil {
			h.Writer.Flush()
		}
		if _, err := h.File.Seek(off, 0); err != nil {
			h.Err = true
		}
		h.Reader = bufio.NewReader(h.File)
	})
	d.DefinePrimitive("ftell", func(ctx joydict.Context) {
		h := requireFile("ftell", ctx.Stack().Peek("ftell"))
		pos, err := h.File.Seek(0, 1)
		if err != nil {
			h.Err = true
		}
		ctx.Stack().Push(joyvalue.Int(pos))
	})

	d.DefinePrimitive("fremove", func(ctx joydict.Context) {
		v := requireKind("fremove", ctx.Stack().Pop("fremove"), joyvalue.KindString)
		ctx.Stack().Push(joyvalue.Bool(os.Remove(v.AsString()) == nil))
	})
	d.DefinePrimitive("frename", func(ctx joydict.Context) {
		ab := ctx.Stack().Require("frename", 2)
		from, to := requireKind("frename", ab[0], joyvalue.KindString), requireKind("frename", ab[1], joyvalue.KindString)
		ctx.Stack().Pop("frename")
		ctx.Stack().Pop("frename")
		ctx.Stack().Push(joyvalue.Bool(os.Rename(from.AsString(), to.AsString()) == nil))
	})
}

func stdout(ctx joydict.Context) *os.File     { return ctx.Stdout() }
func stdinFile(ctx joydict.Context) *os.File  { return ctx.Stdin() }
func stderrFile(ctx joydict.Context) *os.File { return ctx.Stderr() }

func requireFile(op string, v joyvalue.Value) *joyvalue.FileHandle {
	h := requireKind(op, v, joyvalue.KindFile).AsFile()
	if h.Closed {
		joyerr.Raise(joyerr.Domain(op, "file handle is closed"))
	}
	return h
}

func openWithMode(path, mode string) (*os.File, error) {
	switch mode {
	case "r":
		return os.Open(path)
	case "w":
		return os.Create(path)
	case "a":
		return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	default:
		return os.Open(path)
	}
}
