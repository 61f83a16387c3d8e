package scan

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/needleread/needleread/pkg/needle"
)

func chanOf(chunks ...string) chan []byte {
	ch := make(chan []byte, len(chunks))
	for _, c := range chunks {
		ch <- []byte(c)
	}
	close(ch)
	return ch
}

func TestReadUntilContext_AcrossChunks(t *testing.T) {
	ctx := t.Context()
	src := NewChanSource(chanOf("hello", " wo", "rld!!"))
	var before, matched bytes.Buffer

	n, err := ReadUntilContext(ctx, src, needle.Bytes("world"), &before, &matched)
	require.NoError(t, err)
	require.Equal(t, 11, n)
	require.Equal(t, "hello ", before.String())
	require.Equal(t, "world", matched.String())

	// The bytes past the match end are still exposed by the source.
	window, err := src.Fill(ctx)
	require.NoError(t, err)
	require.Equal(t, "!!", string(window))
}

func TestReadUntilContext_EOFWithoutMatch(t *testing.T) {
	ctx := t.Context()
	src := NewChanSource(chanOf("hel", "lo"))
	var before, matched bytes.Buffer
	matched.WriteString("sentinel")

	n, err := ReadUntilContext(ctx, src, needle.Bytes("world"), &before, &matched)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, "hello", before.String())
	require.Equal(t, "sentinel", matched.String())
}

func TestReadUntilContext_MatchesBlockingDriver(t *testing.T) {
	ctx := t.Context()
	chunks := []string{"xxw", "orw", "orld", "tail"}

	var bBefore, bMatched bytes.Buffer
	bn, err := ReadUntil(newChunkSource(chunks...), needle.Bytes("world"), &bBefore, &bMatched)
	require.NoError(t, err)

	var cBefore, cMatched bytes.Buffer
	cn, err := ReadUntilContext(ctx, NewChanSource(chanOf(chunks...)), needle.Bytes("world"), &cBefore, &cMatched)
	require.NoError(t, err)

	require.Equal(t, bn, cn)
	require.Equal(t, bBefore.String(), cBefore.String())
	require.Equal(t, bMatched.String(), cMatched.String())
}

// stallSource yields one window, then parks on the context.
type stallSource struct {
	window []byte
}

func (s *stallSource) Fill(ctx context.Context) ([]byte, error) {
	if len(s.window) > 0 {
		return s.window, nil
	}
	<-ctx.Done()
	return nil, ctx.Err()
}

func (s *stallSource) Consume(n int) {
	s.window = s.window[n:]
}

func TestReadUntilContext_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	src := &stallSource{window: []byte("hel")}
	var before, matched bytes.Buffer

	n, err := ReadUntilContext(ctx, src, needle.Bytes("world"), &before, &matched)
	require.ErrorIs(t, err, context.Canceled)

	// The first window was already committed before the scan parked.
	require.Equal(t, 3, n)
	require.Zero(t, matched.Len())
}

func TestReadUntilContext_CancelledBeforeData(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	src := NewChanSource(make(chan []byte))
	var before, matched bytes.Buffer

	n, err := ReadUntilContext(ctx, src, needle.Bytes("x"), &before, &matched)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, n)
	require.Zero(t, before.Len())
	require.Zero(t, matched.Len())
}

// interruptContextSource reports transient interruptions before
// delegating.
type interruptContextSource struct {
	ContextSource
	interrupts int
}

func (s *interruptContextSource) Fill(ctx context.Context) ([]byte, error) {
	if s.interrupts > 0 {
		s.interrupts--
		return nil, ErrInterrupted
	}
	return s.ContextSource.Fill(ctx)
}

func TestReadUntilContext_InterruptedIsRetried(t *testing.T) {
	ctx := t.Context()
	src := &interruptContextSource{
		ContextSource: NewChanSource(chanOf("hello", " world")),
		interrupts:    2,
	}
	var before, matched bytes.Buffer

	n, err := ReadUntilContext(ctx, src, needle.Bytes("world"), &before, &matched)
	require.NoError(t, err)
	require.Equal(t, 11, n)
	require.Equal(t, "hello ", before.String())
	require.Equal(t, "world", matched.String())
}

func TestReadUntilContext_FatalErrorPropagates(t *testing.T) {
	broken := errors.New("stream torn down")
	var before, matched bytes.Buffer

	_, err := ReadUntilContext(t.Context(), &failContextSource{err: broken}, needle.Bytes("x"), &before, &matched)
	require.ErrorIs(t, err, broken)
}

type failContextSource struct {
	err error
}

func (s *failContextSource) Fill(context.Context) ([]byte, error) { return nil, s.err }
func (s *failContextSource) Consume(int)                          {}
