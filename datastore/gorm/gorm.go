// Package gorm opens the relational database backing the settings store.
package gorm

import (
	"fmt"

	"github.com/flow-hydraulics/launcher-settings/configs"
	"github.com/flow-hydraulics/launcher-settings/migrations"
	"github.com/go-gormigrate/gormigrate/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// New opens the configured database and applies all pending migrations.
func New(cfg *configs.Config) (*gorm.DB, error) {
	gormCfg, err := ParseConfig(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(gormCfg.Dialector, gormCfg.Options)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.DatabaseType, err)
	}

	if db.Dialector.Name() == dbTypeSqlite {
		// sqlite allows a single writer, queue writers in the pool instead
		// of failing them with "database is locked"
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	m := gormigrate.New(db, gormigrate.DefaultOptions, migrations.List())
	if err := m.Migrate(); err != nil {
		Close(db)
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	log.WithFields(log.Fields{"type": cfg.DatabaseType}).Debug("Database opened")

	return db, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Warnf("unable to close database: %s", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warnf("unable to close database: %s", err)
	}
}
