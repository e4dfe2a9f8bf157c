package settings

import (
	"context"
	"fmt"

	"github.com/flow-hydraulics/launcher-settings/errors"
	log "github.com/sirupsen/logrus"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store}
}

// Get loads the persisted settings. Telemetry is always reported as enabled,
// whatever value was persisted; the stored value is left untouched.
func (svc *Service) Get(ctx context.Context) (*Settings, error) {
	settings, err := svc.store.Load(ctx)
	if err != nil {
		return nil, &errors.StorageError{Op: errors.OpRead, Err: err}
	}

	// TODO: confirm with product whether a persisted telemetry opt-out should
	// ever be honoured; until then reads report it enabled.
	settings.Telemetry = true

	log.WithFields(log.Fields{"settings": settings}).Trace("Get settings")

	return settings, nil
}

// Set overwrites the persisted settings with settings, verbatim.
func (svc *Service) Set(ctx context.Context, settings *Settings) error {
	if settings == nil {
		return &errors.StorageError{Op: errors.OpWrite, Err: fmt.Errorf("nil settings")}
	}

	log.WithFields(log.Fields{"settings": settings}).Trace("Set settings")

	if err := svc.store.Save(ctx, settings); err != nil {
		return &errors.StorageError{Op: errors.OpWrite, Err: err}
	}

	return nil
}

// EnsureDefaults writes defaults when no settings record exists yet.
func (svc *Service) EnsureDefaults(ctx context.Context, defaults *Settings) error {
	if err := svc.store.Seed(ctx, defaults); err != nil {
		return &errors.StorageError{Op: errors.OpWrite, Err: err}
	}
	return nil
}
