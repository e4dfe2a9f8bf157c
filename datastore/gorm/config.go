package gorm

import (
	"fmt"

	"github.com/flow-hydraulics/launcher-settings/configs"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	dbTypePostgresql = "psql"
	dbTypeMysql      = "mysql"
	dbTypeSqlite     = "sqlite"
)

// Config struct for gorm data store.
type Config struct {
	Dialector gorm.Dialector
	Options   *gorm.Config
}

// ParseConfig turns the application config into a gorm dialector.
func ParseConfig(cfg *configs.Config) (Config, error) {
	var d gorm.Dialector
	switch cfg.DatabaseType {
	default:
		return Config{}, fmt.Errorf("database type '%s' not supported", cfg.DatabaseType)
	case dbTypePostgresql:
		d = postgres.Open(cfg.DatabaseDSN)
	case dbTypeMysql:
		d = mysql.Open(cfg.DatabaseDSN)
	case dbTypeSqlite:
		d = sqlite.Open(cfg.DatabaseDSN)
	}

	return Config{
		Dialector: d,
		Options: &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		},
	}, nil
}
