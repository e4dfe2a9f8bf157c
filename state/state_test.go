package state_test

import (
	"context"
	"path"
	"testing"

	"github.com/flow-hydraulics/launcher-settings/errors"
	"github.com/flow-hydraulics/launcher-settings/settings"
	"github.com/flow-hydraulics/launcher-settings/state"
	"github.com/flow-hydraulics/launcher-settings/tests/test"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestNewShared(t *testing.T) {
	test.VerifyNoLeaks(t)

	cfg := test.LoadConfig(t)
	st := test.GetState(t, cfg)

	if st.DB == nil {
		t.Fatal("expected the shared store to expose its database")
	}

	if st.ID == uuid.Nil {
		t.Error("expected the state to carry an instance ID")
	}

	if st.Launcher == nil || st.Launcher.Version == "" {
		t.Error("expected the launcher descriptor to be loaded")
	}

	got, err := st.Settings.Get(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(settings.Default(), got); diff != "" {
		t.Errorf("expected seeded defaults (-want +got):\n%s", diff)
	}
}

func TestNewKeepsExistingSettings(t *testing.T) {
	ctx := context.Background()
	cfg := test.LoadConfig(t)

	st, err := state.New(ctx, cfg)
	if err != nil {
		t.Fatal(err)
	}

	custom := test.Settings()
	if err := st.Settings.Set(ctx, custom); err != nil {
		t.Fatal(err)
	}
	st.Close()

	// Reopening the same database must not reseed
	st = test.GetState(t, cfg)

	got, err := st.Settings.Get(ctx)
	if err != nil {
		t.Fatal(err)
	}

	custom.Telemetry = true
	if diff := cmp.Diff(custom, got); diff != "" {
		t.Errorf("expected the persisted settings (-want +got):\n%s", diff)
	}
}

func TestNewLocal(t *testing.T) {
	cfg := test.LoadConfig(t)
	cfg.SettingsStoreType = state.StoreTypeLocal

	st := test.GetState(t, cfg)

	if st.DB != nil {
		t.Error("expected no database for the local store")
	}

	if _, err := st.Settings.Get(context.Background()); err != nil {
		t.Fatal(err)
	}
}

func TestNewFailures(t *testing.T) {
	t.Run("unsupported store", func(t *testing.T) {
		cfg := test.LoadConfig(t)
		cfg.SettingsStoreType = "etcd"
		if _, err := state.New(context.Background(), cfg); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("unsupported database", func(t *testing.T) {
		cfg := test.LoadConfig(t)
		cfg.DatabaseType = "oracle"
		if _, err := state.New(context.Background(), cfg); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("redis without url", func(t *testing.T) {
		cfg := test.LoadConfig(t)
		cfg.SettingsStoreType = state.StoreTypeRedis
		cfg.SettingsRedisURL = ""
		if _, err := state.New(context.Background(), cfg); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("invalid database path", func(t *testing.T) {
		cfg := test.LoadConfig(t)
		cfg.DatabaseDSN = path.Join(t.TempDir(), "missing", "dir", "test.db")
		if _, err := state.New(context.Background(), cfg); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestCellOverInvalidStore(t *testing.T) {
	cfg := test.LoadConfig(t)
	cfg.DatabaseDSN = path.Join(t.TempDir(), "missing", "dir", "test.db")

	cell := test.NewCell(t, cfg)

	if _, err := cell.Get(context.Background()); !errors.Is(err, errors.ErrStateUnavailable) {
		t.Fatalf("expected the state to be unavailable, got %v", err)
	}
}
