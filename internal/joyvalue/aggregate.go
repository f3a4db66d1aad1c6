package joyvalue

// This file implements the shared aggregate primitives of §4.2: length,
// positional read, push_back, concat, cons, rest, take/drop. List and
// Quotation share these verbatim; callers pick the Kind of the result to
// preserve code/data identity (e.g. consing onto a Quotation yields a
// Quotation).

// Length returns the element count of a List or Quotation.
func Length(v Value) int { return len(v.Items()) }

// At returns the 0-based element at index i (§4.2 positional read).
func At(v Value, i int) (Value, bool) {
	items := v.Items()
	if i < 0 || i >= len(items) {
		return Value{}, false
	}
	return items[i], true
}

// PushBack appends x to v, returning a new aggregate of the same Kind.
func PushBack(v Value, x Value) Value {
	items := v.Items()
	out := make([]Value, len(items)+1)
	copy(out, items)
	out[len(items)] = x.Copy()
	return newAggregateLike(v, out)
}

// Concat allocates a new aggregate holding a's elements followed by b's.
// Either operand may be a List or a Quotation; the result takes a's Kind.
func Concat(a, b Value) Value {
	ai, bi := a.Items(), b.Items()
	out := make([]Value, 0, len(ai)+len(bi))
	for _, e := range ai {
		out = append(out, e.Copy())
	}
	for _, e := range bi {
		out = append(out, e.Copy())
	}
	return newAggregateLike(a, out)
}

// Cons prepends x to v (new allocation), returning the same Kind as v.
func Cons(x Value, v Value) Value {
	items := v.Items()
	out := make([]Value, len(items)+1)
	out[0] = x.Copy()
	for i, e := range items {
		out[i+1] = e.Copy()
	}
	return newAggregateLike(v, out)
}

// Rest returns a copy of v's tail (every element but the first).
func Rest(v Value) Value {
	items := v.Items()
	if len(items) == 0 {
		return newAggregateLike(v, nil)
	}
	out := make([]Value, len(items)-1)
	for i, e := range items[1:] {
		out[i] = e.Copy()
	}
	return newAggregateLike(v, out)
}

// Take returns the prefix of min(n, length) elements; n must be >= 0.
func Take(v Value, n int) Value {
	items := v.Items()
	if n > len(items) {
		n = len(items)
	}
	out := make([]Value, n)
	for i := 0; i < n; i++ {
		out[i] = items[i].Copy()
	}
	return newAggregateLike(v, out)
}

// Drop returns the suffix after dropping min(n, length) elements.
func Drop(v Value, n int) Value {
	items := v.Items()
	if n > len(items) {
		n = len(items)
	}
	out := make([]Value, len(items)-n)
	for i, e := range items[n:] {
		out[i] = e.Copy()
	}
	return newAggregateLike(v, out)
}

func newAggregateLike(v Value, items []Value) Value {
	if v.k == KindQuotation {
		return Quotation(items)
	}
	return List(items)
}

// --- string aggregate ops (byte-level, §4.2) ---

func StringConcat(a, b string) string { return a + b }

// StringRest advances a string by one byte (its "rest"); empty input stays
// empty.
func StringRest(s string) string {
	if len(s) == 0 {
		return s
	}
	return s[1:]
}

// StringAt returns the byte at index i as a Char value.
func StringAt(s string, i int) (Value, bool) {
	if i < 0 || i >= len(s) {
		return Value{}, false
	}
	return Char(s[i]), true
}
