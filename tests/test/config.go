package test

import (
	"path"
	"testing"

	"github.com/flow-hydraulics/launcher-settings/configs"
)

// LoadConfig parses the environment into a config for tests.
//
// DatabaseType is always `sqlite` and the settings live in the shared
// database. Configured database DSN points to a file in tempdir created for
// given test and it's automatically cleaned up by t.Cleanup() in the end of
// test run.
func LoadConfig(t *testing.T) *configs.Config {
	t.Helper()

	cfg, err := configs.ParseConfig(nil)
	if err != nil {
		t.Fatal(err)
	}

	cfg.DatabaseDSN = path.Join(t.TempDir(), "test.db")
	cfg.DatabaseType = "sqlite"
	cfg.SettingsStoreType = "shared"
	cfg.InitRetryMin = 0

	return cfg
}
