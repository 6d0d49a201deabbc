package core

import "math/bits"

// ValueSet is a bitmask over {1..16}. Bit i (0-indexed) denotes presence of
// the value i+1. It is deliberately a distinct type from any raw integer
// so that set algebra can't be confused with a cell value.
type ValueSet uint16

// Singleton returns the set containing only v. v outside 1..16 yields the
// empty set.
func Singleton(v int) ValueSet {
	if v < 1 || v > 16 {
		return 0
	}
	return ValueSet(1) << uint(v-1)
}

// ValueRange returns the set {lo..hi} inclusive, with the bounds clamped
// to 1..16. A span left empty after clamping yields the empty set.
func ValueRange(lo, hi int) ValueSet {
	var s ValueSet
	if lo < 1 {
		lo = 1
	}
	if hi > 16 {
		hi = 16
	}
	for v := lo; v <= hi; v++ {
		s |= Singleton(v)
	}
	return s
}

// AllValues returns {1..n}, the full Latin-square alphabet for dimension n.
func AllValues(n int) ValueSet {
	if n <= 0 {
		return 0
	}
	if n >= 16 {
		return ^ValueSet(0)
	}
	return ValueSet(1)<<uint(n) - 1
}

// Has reports whether v is a member.
func (s ValueSet) Has(v int) bool {
	if v < 1 || v > 16 {
		return false
	}
	return s&Singleton(v) != 0
}

// With returns s with v added.
func (s ValueSet) With(v int) ValueSet {
	return s | Singleton(v)
}

// Without returns s with v removed.
func (s ValueSet) Without(v int) ValueSet {
	return s &^ Singleton(v)
}

// Union returns the union of s and o.
func (s ValueSet) Union(o ValueSet) ValueSet {
	return s | o
}

// Intersect returns the intersection of s and o.
func (s ValueSet) Intersect(o ValueSet) ValueSet {
	return s & o
}

// Complement returns the values of {1..n} not in s. n is required (not a
// machine-word complement) so that values above n are never spuriously
// admitted.
func (s ValueSet) Complement(n int) ValueSet {
	return AllValues(n) &^ s
}

// Count returns the population count of s.
func (s ValueSet) Count() int {
	return bits.OnesCount16(uint16(s))
}

// IsEmpty reports whether s has no members.
func (s ValueSet) IsEmpty() bool {
	return s == 0
}

// Only returns the single member of s if |s| == 1, else (0, false).
func (s ValueSet) Only() (int, bool) {
	if s.Count() != 1 {
		return 0, false
	}
	return bits.TrailingZeros16(uint16(s)) + 1, true
}

// Values returns the members of s in ascending order.
func (s ValueSet) Values() []int {
	vals := make([]int, 0, s.Count())
	for v := 1; v <= 16; v++ {
		if s.Has(v) {
			vals = append(vals, v)
		}
	}
	return vals
}
