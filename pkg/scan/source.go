package scan

import (
	"bufio"
	"context"
	"io"
)

// Source is the blocking buffered-source capability the scan drivers
// read from.
//
// Fill returns a view of the currently available, unconsumed bytes,
// blocking until at least one byte, end of stream, or an error is
// known. An empty view with a nil error signals end of stream. Consume
// marks the first n bytes of the view as permanently read; n never
// exceeds the length of the last view Fill returned.
//
// A source is exclusively owned by an in-flight scan and must not be
// touched concurrently.
type Source interface {
	Fill() ([]byte, error)
	Consume(n int)
}

// ContextSource is the suspending flavor of Source: Fill waits under
// the given context instead of blocking unconditionally, returning the
// context's error if it is done first.
type ContextSource interface {
	Fill(ctx context.Context) ([]byte, error)
	Consume(n int)
}

// Buffered adapts a *bufio.Reader to the Source interface using its
// Peek/Buffered/Discard surface.
type Buffered struct {
	br *bufio.Reader
}

// NewBuffered wraps r in a bufio.Reader and adapts it to Source.
func NewBuffered(r io.Reader) *Buffered {
	return &Buffered{br: bufio.NewReader(r)}
}

// WrapBuffered adapts an existing *bufio.Reader, preserving any bytes
// it has already buffered. Bytes a scan leaves unconsumed stay in br
// and are seen by whoever reads it next.
func WrapBuffered(br *bufio.Reader) *Buffered {
	return &Buffered{br: br}
}

// Fill returns the reader's buffered bytes, reading from the underlying
// source only when the buffer is empty.
func (b *Buffered) Fill() ([]byte, error) {
	if b.br.Buffered() == 0 {
		if _, err := b.br.Peek(1); err != nil {
			if err == io.EOF {
				return nil, nil
			}
			return nil, err
		}
	}
	return b.br.Peek(b.br.Buffered())
}

// Consume discards the first n buffered bytes.
func (b *Buffered) Consume(n int) {
	// n is at most what Fill exposed, so Discard cannot come up short.
	_, _ = b.br.Discard(n)
}

// ChanSource is a ContextSource fed by a channel of byte chunks; a
// closed channel signals end of stream. It is the suspending analog of
// NewBuffered: Fill suspends on the channel and the context rather than
// blocking the calling goroutine on I/O.
type ChanSource struct {
	ch  <-chan []byte
	buf []byte
	eof bool
}

// NewChanSource returns a ChanSource reading chunks from ch.
func NewChanSource(ch <-chan []byte) *ChanSource {
	return &ChanSource{ch: ch}
}

// Fill returns the unconsumed bytes received so far, waiting on the
// channel only when none are buffered. A nil result with a nil error
// means the channel was closed and everything consumed.
func (s *ChanSource) Fill(ctx context.Context) ([]byte, error) {
	if len(s.buf) > 0 || s.eof {
		return s.buf, nil
	}
	select {
	case chunk, ok := <-s.ch:
		if !ok {
			s.eof = true
			return nil, nil
		}
		s.buf = append(s.buf, chunk...)
		return s.buf, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Consume drops the first n unconsumed bytes.
func (s *ChanSource) Consume(n int) {
	if n > len(s.buf) {
		n = len(s.buf)
	}
	s.buf = s.buf[n:]
}
