package base64

import "github.com/thesimj/jBase64/internal/subtle"

// Validate reports whether s matches the canonical pattern of
// the alphabet a (see Alphabet.Pattern).
//
// Validate returns false if a is not a valid Alphabet.
func Validate(s string, a Alphabet) bool {
	if !a.valid() {
		return false
	}
	return matches(s, a)
}

// matches implements Validate for any kind of text.
//
// a must be valid.
func matches[T text](s T, a Alphabet) bool {
	n := len(s)
	if n < 4 {
		return false
	}
	pad := trailingPad(s)

	// Every character before the padding must be a symbol. A
	// third PadChar lands here and fails.
	ok := 1
	for i := 0; i < n-pad; i++ {
		ok &= a.isSymbol(s[i])
	}

	// Padded text is made of whole quanta. Unpadded text may end
	// with a partial quantum of two or three symbols, never one.
	padded := subtle.ConstantTimeByteEq(uint8(n%4), 0)
	unpadded := subtle.ConstantTimeByteEq(uint8(n%4), 1) ^ 1
	hasPad := subtle.ConstantTimeByteEq(uint8(pad), 0) ^ 1
	ok &= subtle.ConstantTimeSelect(hasPad, padded, unpadded)
	return ok == 1
}
