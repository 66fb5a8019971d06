package base64

import (
	"strconv"

	"github.com/thesimj/jBase64/internal/subtle"
)

// PadChar is the padding character shared by both alphabets.
const PadChar = '='

// invalid is the reverse lookup value for characters outside
// both alphabets.
const invalid = 0xff

// Alphabet selects one of the two Base64 alphabets.
//
// The zero value is not an alphabet. Passing it (or any value
// other than Standard and URLSafe) to Encode, Decode or
// DecodeString results in ErrMissingArgument.
type Alphabet uint8

const (
	// Standard is the alphabet from Table 1 of RFC 4648.
	//
	// It uses the following table:
	//
	//    ABCDEFGHIJKLMNOPQRSTUVWXYZ
	//    abcdefghijklmnopqrstuvwxyz
	//    0123456789
	//    +/
	//    =
	//
	Standard Alphabet = iota + 1

	// URLSafe is the URL and filename safe alphabet from Table 2
	// of RFC 4648.
	//
	// It uses the following table:
	//
	//    ABCDEFGHIJKLMNOPQRSTUVWXYZ
	//    abcdefghijklmnopqrstuvwxyz
	//    0123456789
	//    -_
	//    =
	//
	URLSafe
)

const (
	stdTable = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"abcdefghijklmnopqrstuvwxyz" +
		"0123456789" +
		"+/" +
		string(PadChar)

	urlTable = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"abcdefghijklmnopqrstuvwxyz" +
		"0123456789" +
		"-_" +
		string(PadChar)
)

// Canonical patterns. See Pattern.
const (
	stdPattern = `^(?:(?:[0-9A-Za-z+/]{4})+(?:[0-9A-Za-z+/]{2}(?:==)?|[0-9A-Za-z+/]{3}=?)?` +
		`|[0-9A-Za-z+/]{2}==|[0-9A-Za-z+/]{3}=)$`

	urlPattern = `^(?:(?:[0-9A-Za-z\-_]{4})+(?:[0-9A-Za-z\-_]{2}(?:==)?|[0-9A-Za-z\-_]{3}=?)?` +
		`|[0-9A-Za-z\-_]{2}==|[0-9A-Za-z\-_]{3}=)$`
)

// revTable maps a character of either alphabet to its 6-bit
// value. Everything else, including PadChar, maps to invalid.
var revTable = func() (t [256]byte) {
	for i := range t {
		t[i] = invalid
	}
	for _, table := range [...]string{stdTable, urlTable} {
		for i := 0; i < 64; i++ {
			t[table[i]] = byte(i)
		}
	}
	return t
}()

func (a Alphabet) valid() bool {
	return a == Standard || a == URLSafe
}

// Table returns the 65 characters of the alphabet: the symbols
// for the values 0 through 63 followed by PadChar.
//
// Table returns the empty string if a is not a valid Alphabet.
func (a Alphabet) Table() string {
	switch a {
	case Standard:
		return stdTable
	case URLSafe:
		return urlTable
	default:
		return ""
	}
}

// Pattern returns the canonical shape of encoded text for the
// alphabet as an RE2 regular expression.
//
// Text matches the pattern when it is at least four characters
// long, contains only the alphabet's 64 symbols followed by at
// most two PadChar, and either
//
//   - is padded and its length is a multiple of four, or
//   - is unpadded and its length modulo four is 0, 2 or 3.
//
// Validate accepts exactly the same language. Pattern returns
// the empty string if a is not a valid Alphabet.
func (a Alphabet) Pattern() string {
	switch a {
	case Standard:
		return stdPattern
	case URLSafe:
		return urlPattern
	default:
		return ""
	}
}

func (a Alphabet) String() string {
	switch a {
	case Standard:
		return "Standard"
	case URLSafe:
		return "URLSafe"
	default:
		return "Alphabet(" + strconv.Itoa(int(a)) + ")"
	}
}

// isSymbol returns 1 if c is one of the 64 symbols of a and 0
// otherwise.
//
// a must be valid.
func (a Alphabet) isSymbol(c byte) int {
	table := a.Table()
	return subtle.ConstantTimeByteInRange(c, 'A', 'Z') |
		subtle.ConstantTimeByteInRange(c, 'a', 'z') |
		subtle.ConstantTimeByteInRange(c, '0', '9') |
		subtle.ConstantTimeByteEq(c, table[62]) |
		subtle.ConstantTimeByteEq(c, table[63])
}
