package test

import (
	"context"
	"testing"

	"github.com/flow-hydraulics/launcher-settings/configs"
	"github.com/flow-hydraulics/launcher-settings/datastore/gorm"
	"github.com/flow-hydraulics/launcher-settings/state"
	"go.uber.org/goleak"
	gormio "gorm.io/gorm"
)

// GetDatabase opens and migrates the database configured in cfg. The
// database is closed when the test ends.
func GetDatabase(t *testing.T, cfg *configs.Config) *gormio.DB {
	t.Helper()

	db, err := gorm.New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() { gorm.Close(db) })

	return db
}

// GetState builds an application state from cfg and closes it when the
// test ends.
func GetState(t *testing.T, cfg *configs.Config) *state.State {
	t.Helper()

	st, err := state.New(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(st.Close)

	return st
}

// NewCell returns a cell initializing a fresh state from cfg. The state, if
// any, is closed when the test ends.
func NewCell(t *testing.T, cfg *configs.Config, opts ...state.CellOption) *state.Cell {
	t.Helper()

	var st *state.State
	t.Cleanup(func() {
		if st != nil {
			st.Close()
		}
	})

	return state.NewCell(func(ctx context.Context) (*state.State, error) {
		s, err := state.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		st = s
		return s, nil
	}, opts...)
}

// VerifyNoLeaks fails the test if goroutines are still running when it
// ends. Register it before any resource so it runs after their cleanups.
func VerifyNoLeaks(t *testing.T) {
	t.Helper()

	t.Cleanup(func() {
		goleak.VerifyNone(t,
			goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"),
			goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
		)
	})
}
