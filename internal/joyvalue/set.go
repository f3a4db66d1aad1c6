package joyvalue

import "math/bits"

// This file implements the 64-bit bitmap Set family of §3/§4.2: membership
// only for integers 0..63. The helpers here treat integers outside that
// domain as non-members rather than erroring (SetHas reports false,
// SetInsert/SetRemove leave the set unchanged); the `cons` primitive checks
// the range itself and raises a Domain error.

// SetHas reports whether n is a member of the set bits; out-of-range n is
// simply not a member.
func SetHas(bits uint64, n int64) bool {
	if n < 0 || n > 63 {
		return false
	}
	return bits&(1<<uint(n)) != 0
}

// SetInsert returns bits with n added; out-of-range n leaves bits unchanged.
func SetInsert(set uint64, n int64) uint64 {
	if n < 0 || n > 63 {
		return set
	}
	return set | (1 << uint(n))
}

// SetRemove returns bits with n removed; out-of-range n leaves bits
// unchanged.
func SetRemove(set uint64, n int64) uint64 {
	if n < 0 || n > 63 {
		return set
	}
	return set &^ (1 << uint(n))
}

func SetUnion(a, b uint64) uint64        { return a | b }
func SetIntersect(a, b uint64) uint64    { return a & b }
func SetDifference(a, b uint64) uint64   { return a &^ b }
func SetSymmetric(a, b uint64) uint64    { return a ^ b }
func SetComplement(a uint64) uint64      { return ^a }
func SetPopcount(a uint64) int           { return bits.OnesCount64(a) }

// SetTake returns the first n members in ascending bit order (§9(c)).
func SetTake(set uint64, n int) uint64 {
	var out uint64
	count := 0
	for i := 0; i < 64 && count < n; i++ {
		if set&(1<<uint(i)) != 0 {
			out |= 1 << uint(i)
			count++
		}
	}
	return out
}

// SetDrop removes the n lowest-indexed members (§9(c)): an ordering detail
// easy to get backwards, pinned here and asserted in tests.
func SetDrop(set uint64, n int) uint64 {
	var out uint64
	count := 0
	for i := 0; i < 64; i++ {
		if set&(1<<uint(i)) != 0 {
			if count >= n {
				out |= 1 << uint(i)
			}
			count++
		}
	}
	return out
}
