package state

import (
	"github.com/jpillora/backoff"
	log "github.com/sirupsen/logrus"
)

type CellOption func(*Cell)

// WithInitBackoff stops a failed initialization from being retried until
// the next backoff interval has passed. Calls inside the window return the
// last initialization error.
func WithInitBackoff(b *backoff.Backoff) CellOption {
	return func(c *Cell) {
		c.backoff = b
	}
}

func WithLogger(logger *log.Logger) CellOption {
	return func(c *Cell) {
		c.logger = logger
	}
}
