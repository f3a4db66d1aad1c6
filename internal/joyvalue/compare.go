package joyvalue

import "strings"

// OrderedCompare implements the ordering used by `< > <= >=` (§4.6): numbers
// (with integer/float widening), characters and strings (lexicographic)
// compare; every other pairing — including mismatched aggregate types — is
// reported as incomparable (ok=false) so the caller returns false without
// raising an error, per spec.
func OrderedCompare(a, b Value) (cmp int, ok bool) {
	switch {
	case a.IsNumeric() && b.IsNumeric():
		af, bf := a.AsFloat64(), b.AsFloat64()
		switch {
		case af < bf:
			return -1, true
		case af > bf:
			return 1, true
		default:
			return 0, true
		}
	case a.k == KindChar && b.k == KindChar:
		ac, bc := a.AsChar(), b.AsChar()
		switch {
		case ac < bc:
			return -1, true
		case ac > bc:
			return 1, true
		default:
			return 0, true
		}
	case a.k == KindString && b.k == KindString:
		return strings.Compare(a.AsString(), b.AsString()), true
	default:
		return 0, false
	}
}

// Compare is the total order over values required by §4.1: ties break by
// variant tag first (Kind's numeric value), then by payload, except that
// numeric variants compare across kinds by value (integer 2 and float 2.0
// tie). It underlies no primitive directly — no operator in §4.6 sorts
// mixed-kind aggregates — but is part of the value model's documented API.
func Compare(a, b Value) int {
	if a.IsNumeric() && b.IsNumeric() {
		af, bf := a.AsFloat64(), b.AsFloat64()
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	if a.k != b.k {
		if a.k < b.k {
			return -1
		}
		return 1
	}
	switch a.k {
	case KindBool:
		return boolCompare(a.AsBool(), b.AsBool())
	case KindChar:
		return intCompare(int(a.AsChar()), int(b.AsChar()))
	case KindString:
		return strings.Compare(a.AsString(), b.AsString())
	case KindSymbol:
		return strings.Compare(a.AsSymbol(), b.AsSymbol())
	case KindSet:
		return uint64Compare(a.AsSet(), b.AsSet())
	case KindList, KindQuotation:
		ai, bi := a.Items(), b.Items()
		for i := 0; i < len(ai) && i < len(bi); i++ {
			if c := Compare(ai[i], bi[i]); c != 0 {
				return c
			}
		}
		return intCompare(len(ai), len(bi))
	default:
		return 0
	}
}

func boolCompare(a, b bool) int {
	if a == b {
		return 0
	}
	if !a {
		return -1
	}
	return 1
}

func intCompare(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func uint64Compare(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
