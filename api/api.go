// Package api is the settings interface consumed by hosting applications.
// Every call acquires the application state first; acquisition and storage
// errors are returned unchanged.
package api

import (
	"context"

	"github.com/flow-hydraulics/launcher-settings/launcher"
	"github.com/flow-hydraulics/launcher-settings/settings"
	"github.com/flow-hydraulics/launcher-settings/state"
)

// Accessor gives access to an application state.
type Accessor interface {
	Get(ctx context.Context) (*state.State, error)
}

type Settings struct {
	state Accessor
}

func NewSettings(acc Accessor) *Settings {
	return &Settings{acc}
}

// Get returns the entire settings record. Telemetry is always reported as
// enabled.
func (a *Settings) Get(ctx context.Context) (*settings.Settings, error) {
	st, err := a.state.Get(ctx)
	if err != nil {
		return nil, err
	}
	return st.Settings.Get(ctx)
}

// Set replaces the entire settings record.
func (a *Settings) Set(ctx context.Context, s *settings.Settings) error {
	st, err := a.state.Get(ctx)
	if err != nil {
		return err
	}
	return st.Settings.Set(ctx, s)
}

// Version returns the launcher packaging descriptor.
func (a *Settings) Version(ctx context.Context) (*launcher.Descriptor, error) {
	st, err := a.state.Get(ctx)
	if err != nil {
		return nil, err
	}
	return st.Launcher, nil
}

// GetSettings returns the settings through the process-wide state.
func GetSettings(ctx context.Context) (*settings.Settings, error) {
	return NewSettings(state.Global()).Get(ctx)
}

// SetSettings replaces the settings through the process-wide state.
func SetSettings(ctx context.Context, s *settings.Settings) error {
	return NewSettings(state.Global()).Set(ctx, s)
}

// Version returns the launcher packaging descriptor through the
// process-wide state.
func Version(ctx context.Context) (*launcher.Descriptor, error) {
	return NewSettings(state.Global()).Version(ctx)
}
