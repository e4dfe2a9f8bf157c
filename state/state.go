// Package state owns the process-wide application state: the settings store
// handle and the shared subsystems opened alongside it.
package state

import (
	"context"
	"fmt"

	"github.com/flow-hydraulics/launcher-settings/configs"
	"github.com/flow-hydraulics/launcher-settings/datastore/gorm"
	"github.com/flow-hydraulics/launcher-settings/launcher"
	"github.com/flow-hydraulics/launcher-settings/settings"
	"github.com/gomodule/redigo/redis"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	gormio "gorm.io/gorm"
)

const (
	StoreTypeShared = "shared"
	StoreTypeRedis  = "redis"
	StoreTypeLocal  = "local"
)

type State struct {
	ID       uuid.UUID
	Settings *settings.Service
	Launcher *launcher.Descriptor

	// DB is nil unless the settings live in the shared database.
	DB *gormio.DB

	closers []func() error
}

// New opens the configured settings store and seeds the default settings
// record when none exists.
func New(ctx context.Context, cfg *configs.Config) (*State, error) {
	d, err := launcher.Read()
	if err != nil {
		return nil, err
	}

	s := &State{
		ID:       uuid.New(),
		Launcher: d,
	}

	var store settings.Store

	switch cfg.SettingsStoreType {
	default:
		return nil, fmt.Errorf("settings store type '%s' not supported", cfg.SettingsStoreType)
	case StoreTypeShared:
		db, err := gorm.New(cfg)
		if err != nil {
			return nil, err
		}
		s.DB = db
		s.closers = append(s.closers, func() error {
			gorm.Close(db)
			return nil
		})
		store = settings.NewGormStore(db)
	case StoreTypeRedis:
		if cfg.SettingsRedisURL == "" {
			return nil, fmt.Errorf("settings store set to redis but Redis URL is empty")
		}
		pool := newRedisPool(cfg.SettingsRedisURL)
		if err := ping(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		s.closers = append(s.closers, pool.Close)
		store = settings.NewRedisStore(pool, cfg.SettingsRedisKey)
	case StoreTypeLocal:
		store = settings.NewMemoryStore()
	}

	s.Settings = settings.NewService(store)

	if err := s.Settings.EnsureDefaults(ctx, settings.Default()); err != nil {
		s.Close()
		return nil, err
	}

	log.WithFields(log.Fields{
		"store":   cfg.SettingsStoreType,
		"version": d.Version,
	}).Debug("Opened application state")

	return s, nil
}

// Close releases the handles owned by s. The global state is never closed.
func (s *State) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			log.Warnf("error while closing state: %s", err)
		}
	}
	s.closers = nil
}

func newRedisPool(url string) *redis.Pool {
	return &redis.Pool{
		MaxIdle:   8,
		MaxActive: 64,
		Dial: func() (redis.Conn, error) {
			return redis.DialURL(url)
		},
	}
}

func ping(ctx context.Context, pool *redis.Pool) error {
	conn, err := pool.GetContext(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()
	_, err = conn.Do("PING")
	return err
}
