package joyvalue

import (
	"strconv"
	"strings"
)

// Display renders v using the canonical textual form fixed by §6: decimal
// integers, general-form floats, true/false booleans, single-quoted chars,
// double-quoted strings, space-separated bracketed lists/quotations, and
// brace-delimited sets with members in ascending order.
func Display(v Value) string {
	var b strings.Builder
	writeValue(&b, v)
	return b.String()
}

func writeValue(b *strings.Builder, v Value) {
	switch v.k {
	case KindInt:
		b.WriteString(strconv.FormatInt(v.AsInt(), 10))
	case KindFloat:
		b.WriteString(strconv.FormatFloat(v.AsFloat(), 'g', -1, 64))
	case KindBool:
		if v.AsBool() {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindChar:
		b.WriteByte('\'')
		b.WriteByte(v.AsChar())
	case KindString:
		b.WriteByte('"')
		b.WriteString(v.AsString())
		b.WriteByte('"')
	case KindList:
		writeAggregate(b, v.Items(), '[', ']')
	case KindQuotation:
		writeAggregate(b, v.Items(), '[', ']')
	case KindSet:
		writeSet(b, v.AsSet())
	case KindSymbol:
		b.WriteString(v.AsSymbol())
	case KindFile:
		b.WriteString("<file:")
		b.WriteString(v.AsFile().ShortID())
		b.WriteByte('>')
	}
}

func writeAggregate(b *strings.Builder, items []Value, open, close byte) {
	b.WriteByte(open)
	for i, e := range items {
		if i > 0 {
			b.WriteByte(' ')
		}
		writeValue(b, e)
	}
	b.WriteByte(close)
}

func writeSet(b *strings.Builder, bits uint64) {
	b.WriteByte('{')
	first := true
	for i := 0; i < 64; i++ {
		if bits&(1<<uint(i)) != 0 {
			if !first {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(i))
			first = false
		}
	}
	b.WriteByte('}')
}

// Name returns the printable type tag used by the `name` reflection
// primitive: for symbols it is the symbol's own text, for every other
// variant it is the Kind's name.
func Name(v Value) string {
	if v.k == KindSymbol {
		return v.AsSymbol()
	}
	return v.k.String()
}
