package needle

// Finder is the match-index surface of a compiled regular expression:
// FindIndex returns the [start, end) offsets of the leftmost match, or
// nil when there is none. It is satisfied by *regexp.Regexp from the
// standard library and by *coregex.Regex.
type Finder interface {
	FindIndex(b []byte) []int
}

// Regexp adapts a compiled regular expression to the Needle interface.
// The expression is matched against raw bytes; leftmost-match semantics
// are the engine's own.
func Regexp(re Finder) Needle {
	return regexpNeedle{re: re}
}

type regexpNeedle struct {
	re Finder
}

func (n regexpNeedle) FindIn(haystack []byte) (Range, bool) {
	loc := n.re.FindIndex(haystack)
	if loc == nil {
		return Range{}, false
	}
	return Range{Start: loc[0], End: loc[1]}, true
}
