// Package scan reads from a buffered byte source until a needle is found,
// splitting the consumed bytes into the segment before the match and the
// match itself. It generalizes "read until delimiter" to multi-byte and
// regular-expression delimiters.
//
// # Basic Usage
//
// Blocking, over any io.Reader:
//
//	src := scan.NewBuffered(conn)
//	var before, matched bytes.Buffer
//	n, err := scan.ReadUntil(src, needle.Bytes("\r\n\r\n"), &before, &matched)
//
// Suspending, under a context:
//
//	n, err := scan.ReadUntilContext(ctx, src, needle.String("--boundary"), &before, &matched)
//
// Both drivers have identical semantics. The return value is the total
// number of bytes consumed from the source, including the match. Bytes
// the source had buffered past the match end are left unconsumed and
// remain readable.
//
// If the stream ends before the needle appears, all remaining bytes are
// appended to before and matched is left exactly as the caller left it;
// callers detect "no match" by matched not having grown. The one
// ambiguity — a zero-length needle, which matches without growing
// matched — is resolved by driving a Scan directly and checking Found.
//
// # Design Principles
//
//   - No internal I/O: drivers speak only the Fill/Consume source
//     capability. Wrap readers with NewBuffered, or bring your own
//     Source.
//   - Caller-owned output: before and matched are appended to, never
//     reset. Repeated calls with the same buffers accumulate.
//   - One algorithm, two drivers: the match/consume decisions live in
//     Scan; ReadUntil and ReadUntilContext differ only in how they
//     perform the fill step.
//
// # Retained Bytes
//
// While searching, a scan retains every byte it has consumed but not
// yet attributed, because a match may straddle a fill boundary. The
// retained buffer is unbounded by default; MaxBuffered caps it for
// sources that may trickle forever without producing a match.
package scan
