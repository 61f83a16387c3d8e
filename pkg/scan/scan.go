package scan

import (
	"bytes"

	"github.com/needleread/needleread/pkg/needle"
)

// Scan is the in-progress state of one read-until operation: the bytes
// retained for matching, how many of them the source's current window
// still exposes, and the running count of bytes consumed. Both drivers
// advance this same state machine; they differ only in how they perform
// the fill step. Driving a Scan directly suits callers that own their
// fill loop (or need Found to disambiguate a zero-length needle).
//
// A Scan serves a single operation and is not safe for concurrent use.
type Scan struct {
	needle  needle.Needle
	before  *bytes.Buffer
	matched *bytes.Buffer

	acc     []byte // retained stream prefix not yet attributed to before/matched
	pending int    // leading bytes of the source's window already in acc
	total   int
	max     int

	done  bool
	found bool
}

// NewScan prepares a scan for one read-until operation. Bytes preceding
// the match are appended to before; the matched bytes to matched. The
// scan never resets either buffer.
func NewScan(n needle.Needle, before, matched *bytes.Buffer, opts ...Option) *Scan {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Scan{
		needle:  n,
		before:  before,
		matched: matched,
		max:     cfg.maxBuffered,
	}
}

// Step advances the scan with the source's current window of available,
// unconsumed bytes. The caller must consume exactly the returned count
// from the source before the next fill. done reports a terminal state:
// the needle was matched, the stream ended, or err is non-nil.
//
// A window holding no bytes beyond those already retained from earlier
// steps signals end of stream: the retained bytes are flushed to
// before, matched is left untouched, and whatever the source still
// exposes is consumed.
func (s *Scan) Step(window []byte) (consume int, done bool, err error) {
	if s.done {
		return 0, true, nil
	}

	var fresh []byte
	if s.pending < len(window) {
		fresh = window[s.pending:]
	}

	if len(fresh) == 0 {
		// End of stream. Everything retained becomes the before
		// segment; matched stays exactly as the caller left it.
		s.before.Write(s.acc)
		consume = len(window)
		s.total += consume
		s.pending = 0
		s.acc = nil
		s.done = true
		return consume, true, nil
	}

	s.acc = append(s.acc, fresh...)
	s.pending = len(window)

	if r, ok := s.needle.FindIn(s.acc); ok {
		s.before.Write(s.acc[:r.Start])
		s.matched.Write(s.acc[r.Start:r.End])
		// Consume up through the match end. The window is the tail of
		// acc, so bytes past the match end stay unconsumed at the
		// source.
		consume = r.End - (len(s.acc) - s.pending)
		if consume < 0 {
			consume = 0
		}
		s.total += consume
		s.pending -= consume
		s.acc = nil
		s.done = true
		s.found = true
		return consume, true, nil
	}

	if s.max > 0 && len(s.acc) > s.max {
		s.done = true
		return 0, true, ErrTooLong
	}

	// No match yet. Release the whole window at the source; the bytes
	// stay retained in acc because a match may straddle the next fill.
	consume = len(window)
	s.total += consume
	s.pending = 0
	return consume, false, nil
}

// Total returns the number of bytes consumed from the source so far.
func (s *Scan) Total() int { return s.total }

// Found reports whether the needle was located. Meaningful once Step
// has reported a terminal state.
func (s *Scan) Found() bool { return s.found }
