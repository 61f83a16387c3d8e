package main

import (
	"bytes"
	"io"
	"log/slog"

	"github.com/needleread/needleread/pkg/needle"
	"github.com/needleread/needleread/pkg/scan"
)

// cut scans src for up to count occurrences of n, writing each before
// segment (and, when keep is set, the matched bytes) to w. It returns
// how many occurrences were found; the stream ending early is not an
// error, the remaining bytes are written out and cut stops.
func cut(w io.Writer, src scan.Source, n needle.Needle, count int, keep bool, logger *slog.Logger) (int, error) {
	found := 0
	for i := 0; i < count; i++ {
		var before, matched bytes.Buffer
		consumed, err := scan.ReadUntil(src, n, &before, &matched)
		if err != nil {
			return found, err
		}
		if _, err := w.Write(before.Bytes()); err != nil {
			return found, err
		}
		if matched.Len() == 0 {
			logger.Debug("end of stream", "consumed", consumed, "occurrences", found)
			return found, nil
		}
		found++
		logger.Debug("needle found", "consumed", consumed, "matched", matched.String())
		if keep {
			if _, err := w.Write(matched.Bytes()); err != nil {
				return found, err
			}
		}
	}
	return found, nil
}
