package scan

import (
	"bytes"
	"fmt"

	"github.com/needleread/needleread/pkg/needle"
)

// ReadUntil reads from src until n is found or the stream ends.
//
// Bytes preceding the match are appended to before and the matched
// bytes to matched. If the stream ends first, all remaining bytes go to
// before and matched is left untouched, so callers detect "no match" by
// matched not having grown. Neither buffer is ever reset by this call;
// repeated calls with the same buffers accumulate.
//
// The return value is the total number of bytes consumed from src,
// counted identically for the match and end-of-stream outcomes and
// including the match itself. Bytes the source had buffered past the
// match end are left unconsumed and remain readable from src.
//
// Transient interruptions from Fill (see ErrInterrupted) are retried
// without state changes. Any other fill error is returned immediately
// along with the count consumed so far; before and matched may already
// hold partial data from earlier iterations.
func ReadUntil(src Source, n needle.Needle, before, matched *bytes.Buffer, opts ...Option) (int, error) {
	s := NewScan(n, before, matched, opts...)
	for {
		window, err := src.Fill()
		if err != nil {
			if interrupted(err) {
				continue
			}
			return s.Total(), fmt.Errorf("scan: fill: %w", err)
		}

		consume, done, err := s.Step(window)
		src.Consume(consume)
		if err != nil {
			return s.Total(), err
		}
		if done {
			return s.Total(), nil
		}
	}
}
