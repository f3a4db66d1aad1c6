package joyvalue

// Equal implements structural equality (§3): payloads compare recursively,
// list/quotation pairs compare equal when elements match in order under the
// same rule, and integer/float compare equal across variants when their
// numeric values match. Every other cross-kind pair is unequal.
func Equal(a, b Value) bool {
	if a.IsNumeric() && b.IsNumeric() {
		return a.AsFloat64() == b.AsFloat64()
	}
	if a.k != b.k {
		return false
	}
	switch a.k {
	case KindBool:
		return a.AsBool() == b.AsBool()
	case KindChar:
		return a.AsChar() == b.AsChar()
	case KindString:
		return a.AsString() == b.AsString()
	case KindSymbol:
		return a.AsSymbol() == b.AsSymbol()
	case KindSet:
		return a.AsSet() == b.AsSet()
	case KindList, KindQuotation:
		ai, bi := a.Items(), b.Items()
		if len(ai) != len(bi) {
			return false
		}
		for i := range ai {
			if !Equal(ai[i], bi[i]) {
				return false
			}
		}
		return true
	case KindFile:
		return a.AsFile() == b.AsFile()
	default:
		return false
	}
}

// Truthy implements §3's truthiness table: false, zero integer, zero float,
// empty string, empty list, empty quotation and empty set are false;
// everything else (including symbols and files) is true.
func Truthy(v Value) bool {
	switch v.k {
	case KindBool:
		return v.AsBool()
	case KindInt:
		return v.AsInt() != 0
	case KindFloat:
		return v.AsFloat() != 0
	case KindChar:
		return true
	case KindString:
		return v.AsString() != ""
	case KindList, KindQuotation:
		return len(v.Items()) != 0
	case KindSet:
		return v.AsSet() != 0
	default:
		return true
	}
}
