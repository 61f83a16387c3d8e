package needle

import (
	"github.com/coregx/coregex/simd"
)

// Range is a half-open [Start, End) pair of byte offsets into a haystack.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes the range covers.
func (r Range) Len() int { return r.End - r.Start }

// Needle locates the first occurrence of a pattern in a haystack.
//
// FindIn returns the leftmost occurrence as a half-open byte range into
// haystack, or ok == false when the pattern does not occur. A zero-length
// match (Start == End) is a valid result and must not be conflated with
// "no match".
type Needle interface {
	FindIn(haystack []byte) (Range, bool)
}

// Bytes is an exact byte-sequence needle. Fixed-size arrays are used
// by slicing: Bytes(arr[:]).
type Bytes []byte

// FindIn returns the range of the first occurrence of b in haystack.
// An empty needle matches at offset 0 of any haystack.
func (b Bytes) FindIn(haystack []byte) (Range, bool) {
	if len(b) == 0 {
		return Range{}, true
	}
	pos := simd.Memmem(haystack, b)
	if pos < 0 {
		return Range{}, false
	}
	return Range{Start: pos, End: pos + len(b)}, true
}

// String is an exact string needle, matched as raw bytes. It is not
// codepoint-aware: a match is a byte-for-byte occurrence of the string's
// UTF-8 encoding.
type String string

// FindIn returns the range of the first occurrence of s in haystack.
func (s String) FindIn(haystack []byte) (Range, bool) {
	return Bytes(s).FindIn(haystack)
}
