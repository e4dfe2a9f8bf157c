package state

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/flow-hydraulics/launcher-settings/errors"
	"github.com/jpillora/backoff"
	log "github.com/sirupsen/logrus"
)

// Initializer constructs the application state.
type Initializer func(ctx context.Context) (*State, error)

// Cell holds a lazily constructed State. The first successful initializer
// result is published and returned to every later caller. Failures are not
// cached as success.
type Cell struct {
	init    Initializer
	value   atomic.Value // *State
	sem     chan struct{}
	backoff *backoff.Backoff
	logger  *log.Logger

	// guarded by sem
	lastErr error
	retryAt time.Time
	inits   int
}

func NewCell(init Initializer, opts ...CellOption) *Cell {
	c := &Cell{
		init:   init,
		sem:    make(chan struct{}, 1),
		logger: log.StandardLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get returns the state, initializing it on first use. Concurrent callers
// wait for a running initialization instead of starting their own. A
// caller whose context ends while waiting gets an InitializationError
// wrapping the context error.
func (c *Cell) Get(ctx context.Context) (*State, error) {
	if s := c.load(); s != nil {
		return s, nil
	}

	select {
	case c.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, &errors.InitializationError{Err: ctx.Err()}
	}
	defer func() { <-c.sem }()

	if s := c.load(); s != nil {
		return s, nil
	}

	if c.backoff != nil && c.lastErr != nil && time.Now().Before(c.retryAt) {
		return nil, c.lastErr
	}

	c.inits++
	entry := c.logger.WithFields(log.Fields{"attempt": c.inits})
	entry.Debug("Initializing application state")

	s, err := c.init(ctx)
	if err == nil && s == nil {
		err = errors.New("initializer returned no state")
	}
	if err != nil {
		initErr := &errors.InitializationError{Err: err}
		if c.backoff != nil {
			c.lastErr = initErr
			c.retryAt = time.Now().Add(c.backoff.Duration())
		}
		entry.WithFields(log.Fields{"error": err}).Warn("Application state initialization failed")
		return nil, initErr
	}

	if c.backoff != nil {
		c.backoff.Reset()
	}
	c.lastErr = nil
	c.value.Store(s)

	entry.WithFields(log.Fields{"id": s.ID}).Info("Application state initialized")

	return s, nil
}

// Initialized reports whether a state has been published.
func (c *Cell) Initialized() bool {
	return c.load() != nil
}

func (c *Cell) load() *State {
	s, _ := c.value.Load().(*State)
	return s
}
