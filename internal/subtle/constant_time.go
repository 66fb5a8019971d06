// Package subtle implements the branch-free byte predicates used
// by the codec to classify Base64 characters.
//
// Every predicate returns 1 for true and 0 for false so results
// can be combined with & and | instead of control flow.
package subtle

import "crypto/subtle"

// ConstantTimeByteEq returns 1 if x == y and 0 otherwise.
func ConstantTimeByteEq(x, y uint8) int {
	return subtle.ConstantTimeByteEq(x, y)
}

// ConstantTimeSelect returns x if v == 1 and y if v == 0.
// Its behavior is undefined if v takes any other value.
func ConstantTimeSelect(v, x, y int) int {
	return subtle.ConstantTimeSelect(v, x, y)
}

// ConstantTimeLessOrEq returns 1 if x <= y and 0 otherwise.
// Its behavior is undefined if x or y are negative or > 2**31 - 1.
func ConstantTimeLessOrEq(x, y int) int {
	return subtle.ConstantTimeLessOrEq(x, y)
}

// ConstantTimeByteLessOrEq returns 1 if x <= y and 0 otherwise.
func ConstantTimeByteLessOrEq(x, y uint8) int {
	return ConstantTimeLessOrEq(int(x), int(y))
}

// ConstantTimeByteInRange returns 1 if lo <= c <= hi and 0
// otherwise.
func ConstantTimeByteInRange(c, lo, hi uint8) int {
	return ConstantTimeByteLessOrEq(lo, c) & ConstantTimeByteLessOrEq(c, hi)
}
