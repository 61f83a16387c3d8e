package scan

// config holds scan configuration.
type config struct {
	maxBuffered int
}

// Option configures a scan.
type Option func(*config)

// MaxBuffered caps how many bytes a scan may retain while searching for
// the needle. A scan that exceeds the cap without a match fails with
// ErrTooLong.
//
// This bounds memory against sources that trickle data forever without
// the needle ever appearing.
//
// Default: 0, meaning no cap — the scan retains as many bytes as the
// search requires.
func MaxBuffered(n int) Option {
	return func(c *config) {
		c.maxBuffered = n
	}
}
