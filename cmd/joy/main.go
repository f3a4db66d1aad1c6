// Command joy is the reference host for the runtime: it wires the
// dictionary with every primitive family, applies runtime control flags
// from an optional startup config and from command-line switches, reads a
// program via joyreader, and hands it to the execution engine. Argument
// handling follows cmd/funxy/main.go's idiom: no flag package,
// a hand-rolled scan over os.Args, subcommands recognized by their leading
// argument, and a top-level recover that turns a panic into a one-line
// "Internal error" diagnostic instead of a Go stack trace.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/joy-lang/joy/internal/engine"
	"github.com/joy-lang/joy/internal/joyconfig"
	"github.com/joy-lang/joy/internal/joyerr"
	"github.com/joy-lang/joy/internal/joyreader"
	"github.com/joy-lang/joy/internal/prims"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	args := os.Args[1:]
	if len(args) == 0 || args[0] == "-help" || args[0] == "--help" || args[0] == "help" {
		printUsage()
		return
	}
	if args[0] == "--version" || args[0] == "-version" {
		fmt.Println(joyconfig.Version)
		return
	}

	switch args[0] {
	case "repl":
		runRepl(args[1:])
	case "run":
		runScript(args[1:])
	default:
		// Bare invocation: `joy path/to/program.joy [args...]` — same as
		// `joy run path/to/program.joy [args...]`.
		runScript(args)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  %s run <file> [--echo] [--autoput] [--undeferror] [--trace] [-- args...]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s repl [--echo] [--autoput] [--undeferror] [--trace]\n", os.Args[0])
}

// runScript loads a program file, installs it, and runs it to completion.
func runScript(args []string) {
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	path, flagArgs, progArgs := splitArgs(args)
	if path == "" {
		printUsage()
		os.Exit(1)
	}

	ctx := engine.New()
	prims.RegisterAll(ctx.Dict())
	applyConfig(ctx, filepath.Dir(path))
	applyFlagArgs(ctx, flagArgs)
	ctx.Flags().SetArgs(append([]string{path}, progArgs...))

	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[0], err)
		os.Exit(1)
	}

	prog, err := joyreader.Read(string(src))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: parse error: %v\n", os.Args[0], err)
		os.Exit(1)
	}
	for _, def := range prog.Definitions {
		ctx.Dict().DefineUser(def.Name, def.Body)
	}

	code := engine.Run(ctx, prog.Terms)
	if ctx.Flags().Autoput && ctx.Stack().Depth() > 0 {
		ctx.Stack().Print(ctx.Stdout())
	}
	os.Exit(code)
}

// runRepl implements a read-eval-print loop over stdin: each line is read
// via joyreader.ReadTerms and executed immediately against one persistent
// context, mirroring the always-on Context of §3 rather than per-line
// isolation.
func runRepl(args []string) {
	ctx := engine.New()
	prims.RegisterAll(ctx.Dict())
	applyConfig(ctx, ".")
	applyFlagArgs(ctx, args)

	interactive := isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
	if !ctx.Flags().Echo {
		ctx.Flags().Echo = interactive
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Fprint(ctx.Stdout(), "joy> ")
		}
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		runLine(ctx, line)
	}
}

func runLine(ctx *engine.Context, line string) {
	defer func() {
		if r := recover(); r != nil {
			if je, ok := r.(*joyerr.JoyError); ok {
				fmt.Fprintln(ctx.Stderr(), je.Error())
				return
			}
			panic(r)
		}
	}()
	terms, err := joyreader.ReadTerms(line)
	if err != nil {
		fmt.Fprintf(ctx.Stderr(), "parse error: %v\n", err)
		return
	}
	engine.ExecuteQuotation(ctx, terms)
	if ctx.Flags().Autoput {
		ctx.Stack().Print(ctx.Stdout())
	}
}

// splitArgs separates the script path, joy's own `--flag` switches, and the
// user program's own arguments (after a literal `--`).
func splitArgs(args []string) (path string, flagArgs, progArgs []string) {
	seenDashDash := false
	for _, a := range args {
		switch {
		case seenDashDash:
			progArgs = append(progArgs, a)
		case a == "--":
			seenDashDash = true
		case strings.HasPrefix(a, "--"):
			flagArgs = append(flagArgs, a)
		case path == "":
			path = a
		default:
			progArgs = append(progArgs, a)
		}
	}
	return path, flagArgs, progArgs
}

func applyFlagArgs(ctx *engine.Context, flagArgs []string) {
	for _, a := range flagArgs {
		switch a {
		case "--echo":
			ctx.Flags().Echo = true
		case "--autoput":
			ctx.Flags().Autoput = true
		case "--undeferror":
			ctx.Flags().Undeferror = true
		case "--trace":
			ctx.Flags().Trace = true
		}
	}
}

// applyConfig seeds flags from an optional joy.yaml found at or above dir,
// and preloads any listed quotation files into the dictionary, before any
// command-line flag or the program itself runs (§4.8).
func applyConfig(ctx *engine.Context, dir string) {
	path, err := joyconfig.FindConfig(dir)
	if err != nil || path == "" {
		return
	}
	cfg, err := joyconfig.LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[0], err)
		return
	}
	ctx.Flags().Echo = joyconfig.BoolOr(cfg.Echo, ctx.Flags().Echo)
	ctx.Flags().Autoput = joyconfig.BoolOr(cfg.Autoput, ctx.Flags().Autoput)
	ctx.Flags().Undeferror = joyconfig.BoolOr(cfg.Undeferror, ctx.Flags().Undeferror)
	ctx.Flags().Trace = joyconfig.BoolOr(cfg.Trace, ctx.Flags().Trace)

	configDir := filepath.Dir(path)
	for _, rel := range cfg.Preload {
		p := rel
		if !filepath.IsAbs(p) {
			p = filepath.Join(configDir, rel)
		}
		src, err := os.ReadFile(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: preload %s: %v\n", os.Args[0], rel, err)
			continue
		}
		prog, err := joyreader.Read(string(src))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: preload %s: %v\n", os.Args[0], rel, err)
			continue
		}
		for _, def := range prog.Definitions {
			ctx.Dict().DefineUser(def.Name, def.Body)
		}
		engine.ExecuteQuotation(ctx, prog.Terms)
	}
}
