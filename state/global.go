package state

import (
	"context"
	"sync"
	"time"

	"github.com/flow-hydraulics/launcher-settings/configs"
	"github.com/jpillora/backoff"
)

var (
	cfgMu     sync.Mutex
	globalCfg *configs.Config

	global     *Cell
	globalOnce sync.Once
)

// Configure sets the config the global state is built from. It has no
// effect once the global state is initialized.
func Configure(cfg *configs.Config) {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	globalCfg = cfg
}

// Global returns the process-wide state cell.
func Global() *Cell {
	globalOnce.Do(func() {
		global = NewCell(initGlobal)
	})
	return global
}

// Get returns the process-wide state, initializing it on first use.
func Get(ctx context.Context) (*State, error) {
	return Global().Get(ctx)
}

func initGlobal(ctx context.Context) (*State, error) {
	cfg, err := currentConfig()
	if err != nil {
		return nil, err
	}

	if cfg.InitRetryMin > 0 {
		setBackoff(cfg.InitRetryMin, cfg.InitRetryMax)
	}

	return New(ctx, cfg)
}

func currentConfig() (*configs.Config, error) {
	cfgMu.Lock()
	cfg := globalCfg
	cfgMu.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	return configs.Parse()
}

// setBackoff installs retry gating on the global cell. It runs inside an
// initializer, which holds the cell's semaphore.
func setBackoff(min, max time.Duration) {
	if global.backoff != nil {
		return
	}
	global.backoff = &backoff.Backoff{
		Min:    min,
		Max:    max,
		Factor: 2,
		Jitter: true,
	}
}
