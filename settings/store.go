package settings

import "context"

// Store persists the single settings record of an installation. There is no
// key: every implementation addresses one implicit record. Load returns
// errors.ErrNotFound when the record does not exist.
type Store interface {
	Load(ctx context.Context) (*Settings, error)
	// Save overwrites the record in full.
	Save(ctx context.Context, settings *Settings) error
	// Seed writes settings only when no record exists yet.
	Seed(ctx context.Context, settings *Settings) error
}
