// Package joyreader implements a minimal literal/symbol reader for the
// runtime's surface notation: integers, floats, booleans, chars, strings,
// sets, nested quotations and bare symbols. This is deliberately NOT the
// source-language parser the overview places out of scope (§1) — there is
// no AST, no analyzer, no code generation; it is the small convenience
// surface a host needs to turn program text into the literal-push/
// symbol-dispatch term sequence that §6 says is the only interface the
// core actually requires. Tokenizing style follows the lexer package's
// approach in spirit (rune-at-a-time scanner, hand-written, no
// regexp/parser-generator dependency) but covers a tiny fraction of its
// grammar.
package joyreader

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/joy-lang/joy/internal/joyvalue"
)

// Definition is a top-level `name == body ;` user word binding (§4.4
// define_user), as opposed to a term meant to run immediately.
type Definition struct {
	Name string
	Body []joyvalue.Value
}

// Program is the result of reading a source file: the definitions to
// install in the dictionary (in file order) followed by the terms to
// execute as the main body.
type Program struct {
	Definitions []Definition
	Terms       []joyvalue.Value
}

// Read tokenizes and parses src into a Program. Bracketed `[ ... ]` groups
// become nested Quotation values (the literal code form); `{ ... }` groups
// become Set values (members must be integers 0..63); `name == body ;`
// sequences become Definitions rather than terms to execute immediately.
func Read(src string) (Program, error) {
	toks, err := tokenize(src)
	if err != nil {
		return Program{}, err
	}
	p := &parser{toks: toks}
	return p.parseProgram()
}

func (p *parser) parseProgram() (Program, error) {
	var prog Program
	for p.pos < len(p.toks) {
		if p.isDefinitionStart() {
			def, err := p.parseDefinition()
			if err != nil {
				return Program{}, err
			}
			prog.Definitions = append(prog.Definitions, def)
			continue
		}
		v, err := p.parseOne()
		if err != nil {
			return Program{}, err
		}
		prog.Terms = append(prog.Terms, v)
	}
	return prog, nil
}

// isDefinitionStart reports whether the parser is positioned at
// `NAME == ...`.
func (p *parser) isDefinitionStart() bool {
	return p.pos+1 < len(p.toks) &&
		p.toks[p.pos].kind == tokAtom &&
		p.toks[p.pos+1].kind == tokAtom &&
		p.toks[p.pos+1].text == "=="
}

func (p *parser) parseDefinition() (Definition, error) {
	name := p.toks[p.pos].text
	p.pos += 2 // name, "=="
	var body []joyvalue.Value
	for p.pos < len(p.toks) {
		if p.toks[p.pos].kind == tokAtom && p.toks[p.pos].text == ";" {
			p.pos++
			return Definition{Name: name, Body: body}, nil
		}
		v, err := p.parseOne()
		if err != nil {
			return Definition{}, err
		}
		body = append(body, v)
	}
	return Definition{}, fmt.Errorf("unterminated definition of %q (missing ;)", name)
}

// ReadTerms parses src as a bare term sequence with no definitions — used
// by the REPL, where every line is executed immediately.
func ReadTerms(src string) ([]joyvalue.Value, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	terms, err := p.parseTerms(false)
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("unexpected trailing token %q", p.toks[p.pos].text)
	}
	return terms, nil
}

type tokKind int

const (
	tokLBracket tokKind = iota
	tokRBracket
	tokLBrace
	tokRBrace
	tokAtom
	tokString
	tokChar
)

type token struct {
	kind tokKind
	text string
}

func tokenize(src string) ([]token, error) {
	var toks []token
	r := []rune(src)
	i := 0
	for i < len(r) {
		c := r[i]
		switch {
		case unicode.IsSpace(c):
			i++
		case c == '#':
			for i < len(r) && r[i] != '\n' {
				i++
			}
		case c == '[':
			toks = append(toks, token{tokLBracket, "["})
			i++
		case c == ']':
			toks = append(toks, token{tokRBracket, "]"})
			i++
		case c == '{':
			toks = append(toks, token{tokLBrace, "{"})
			i++
		case c == '}':
			toks = append(toks, token{tokRBrace, "}"})
			i++
		case c == '"':
			start := i
			i++
			var sb strings.Builder
			for i < len(r) && r[i] != '"' {
				if r[i] == '\\' && i+1 < len(r) {
					i++
					sb.WriteRune(unescape(r[i]))
				} else {
					sb.WriteRune(r[i])
				}
				i++
			}
			if i >= len(r) {
				return nil, fmt.Errorf("unterminated string starting at %d", start)
			}
			i++
			toks = append(toks, token{tokString, sb.String()})
		case c == '\'':
			i++
			if i >= len(r) {
				return nil, fmt.Errorf("unterminated char literal")
			}
			ch := r[i]
			if ch == '\\' && i+1 < len(r) {
				i++
				ch = unescape(r[i])
			}
			i++
			toks = append(toks, token{tokChar, string(ch)})
		default:
			start := i
			for i < len(r) && !unicode.IsSpace(r[i]) && r[i] != '[' && r[i] != ']' && r[i] != '{' && r[i] != '}' {
				i++
			}
			toks = append(toks, token{tokAtom, string(r[start:i])})
		}
	}
	return toks, nil
}

func unescape(c rune) rune {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	default:
		return c
	}
}

type parser struct {
	toks []token
	pos  int
}

// parseTerms consumes terms until the matching close bracket (if inGroup)
// or end of input.
func (p *parser) parseTerms(inGroup bool) ([]joyvalue.Value, error) {
	var out []joyvalue.Value
	for p.pos < len(p.toks) {
		t := p.toks[p.pos]
		if t.kind == tokRBracket || t.kind == tokRBrace {
			if inGroup {
				return out, nil
			}
			return nil, fmt.Errorf("unexpected %q with no matching opener", t.text)
		}
		v, err := p.parseOne()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if inGroup {
		return nil, fmt.Errorf("unterminated group")
	}
	return out, nil
}

func (p *parser) parseOne() (joyvalue.Value, error) {
	t := p.toks[p.pos]
	switch t.kind {
	case tokLBracket:
		p.pos++
		terms, err := p.parseTerms(true)
		if err != nil {
			return joyvalue.Value{}, err
		}
		if p.pos >= len(p.toks) || p.toks[p.pos].kind != tokRBracket {
			return joyvalue.Value{}, fmt.Errorf("expected ]")
		}
		p.pos++
		return joyvalue.Quotation(terms), nil
	case tokLBrace:
		p.pos++
		var bits uint64
		for p.pos < len(p.toks) && p.toks[p.pos].kind != tokRBrace {
			mt := p.toks[p.pos]
			if mt.kind != tokAtom {
				return joyvalue.Value{}, fmt.Errorf("set members must be integers, got %q", mt.text)
			}
			n, err := strconv.ParseInt(mt.text, 10, 64)
			if err != nil || n < 0 || n > 63 {
				return joyvalue.Value{}, fmt.Errorf("set member %q out of range 0..63", mt.text)
			}
			bits |= 1 << uint(n)
			p.pos++
		}
		if p.pos >= len(p.toks) || p.toks[p.pos].kind != tokRBrace {
			return joyvalue.Value{}, fmt.Errorf("expected }")
		}
		p.pos++
		return joyvalue.Set(bits), nil
	case tokString:
		p.pos++
		return joyvalue.Str(t.text), nil
	case tokChar:
		p.pos++
		return joyvalue.Char(byte(t.text[0])), nil
	case tokAtom:
		p.pos++
		return atomValue(t.text), nil
	default:
		return joyvalue.Value{}, fmt.Errorf("unexpected token %q", t.text)
	}
}

func atomValue(s string) joyvalue.Value {
	if s == "true" {
		return joyvalue.Bool(true)
	}
	if s == "false" {
		return joyvalue.Bool(false)
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return joyvalue.Int(n)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && strings.ContainsAny(s, ".eE") {
		return joyvalue.Float(f)
	}
	return joyvalue.Symbol(s)
}
