package scan

import (
	"errors"
	"syscall"
)

// Sentinel errors
var (
	// ErrInterrupted marks a transient fill failure. Drivers retry the
	// fill without touching any scan state; the error never reaches the
	// caller. Sources built on raw system calls can return syscall.EINTR
	// (wrapped or not) for the same effect.
	ErrInterrupted = errors.New("scan: interrupted")

	// ErrTooLong indicates a scan retained more bytes than the cap set
	// with MaxBuffered without finding the needle.
	ErrTooLong = errors.New("scan: retained bytes exceed maximum")
)

// interrupted reports whether a fill error is transient and should be
// retried rather than surfaced.
func interrupted(err error) bool {
	return errors.Is(err, ErrInterrupted) || errors.Is(err, syscall.EINTR)
}
