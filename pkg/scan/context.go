package scan

import (
	"bytes"
	"context"
	"fmt"

	"github.com/needleread/needleread/pkg/needle"
)

// ReadUntilContext is ReadUntil for suspending sources. The fill step
// is the only point at which the operation waits: it parks on
// src.Fill(ctx) and resumes with its accumulated state intact when
// data, end of stream, or an error arrives.
//
// Cancellation surfaces as the context's error from Fill. The scan then
// stops with whatever partial consumption was already committed to the
// source; before and matched may hold partial data from earlier
// iterations and must be treated as such by the caller.
func ReadUntilContext(ctx context.Context, src ContextSource, n needle.Needle, before, matched *bytes.Buffer, opts ...Option) (int, error) {
	s := NewScan(n, before, matched, opts...)
	for {
		window, err := src.Fill(ctx)
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
