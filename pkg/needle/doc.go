// Package needle defines the pattern capability used by stream scanning:
// given a haystack of bytes, find the first occurrence of a pattern.
//
// A needle is any value implementing the single-method Needle interface.
// The package ships needles for the common pattern kinds:
//
//	needle.Bytes("\r\n\r\n")          // exact byte sequence
//	needle.String("boundary")         // exact string, matched as raw bytes
//	needle.Regexp(re)                 // compiled regular expression
//
// Regexp accepts any engine exposing the stdlib-compatible
// FindIndex([]byte) []int method, so both *regexp.Regexp and
// *coregex.Regex work unmodified.
//
// All needles report the leftmost occurrence as a half-open byte range.
// A zero-length match is a valid result, distinct from "no match":
//
//	r, ok := needle.Bytes(nil).FindIn([]byte("abc")) // r == Range{0, 0}, ok == true
//
// Needles operate purely on the byte extent they are given; they never
// assume a terminator or any framing around the haystack.
package needle
