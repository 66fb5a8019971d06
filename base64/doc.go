// Package base64 implements Base64 encoding and decoding as
// specified by RFC 4648, using either the standard alphabet or
// the URL and filename safe alphabet.
//
// Comparison to encoding/base64
//
// This package is not a drop-in replacement for encoding/base64.
//
// Encode always pads its output and rejects empty input with
// ErrEmptyInput instead of returning the empty string.
//
// Decode optionally validates its input against the alphabet's
// canonical pattern before decoding it. Validation accepts
// padded text and text with the padding omitted:
//
//    DecodeString("YW55IGNhcm5hbCBwbGVhc3U=", Standard, true) // "any carnal pleasu"
//    DecodeString("YW55IGNhcm5hbCBwbGVhc3U", Standard, true)  // "any carnal pleasu"
//    DecodeString("YW55IGNhcm5hbCBwbGVhcw=x", Standard, true) // ErrValidation
//
// Without validation, padding is only recognized when the input
// has even length, and the characters of both alphabets are
// accepted interchangeably.
//
// Decode never returns partially decoded data.
package base64
