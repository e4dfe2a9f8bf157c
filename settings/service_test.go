package settings_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/flow-hydraulics/launcher-settings/errors"
	"github.com/flow-hydraulics/launcher-settings/settings"
	"github.com/flow-hydraulics/launcher-settings/tests/test"
	"github.com/google/go-cmp/cmp"
)

type storeFactory struct {
	name string
	new  func(t *testing.T) settings.Store
}

func stores() []storeFactory {
	return []storeFactory{
		{
			name: "gorm",
			new: func(t *testing.T) settings.Store {
				return settings.NewGormStore(test.GetDatabase(t, test.LoadConfig(t)))
			},
		},
		{
			name: "redis",
			new: func(t *testing.T) settings.Store {
				return settings.NewRedisStore(newFakeRedis().pool(), "")
			},
		},
		{
			name: "memory",
			new: func(t *testing.T) settings.Store {
				return settings.NewMemoryStore()
			},
		},
	}
}

// Every field written must come back, except telemetry which reads as
// enabled.
func TestSetThenGet(t *testing.T) {
	for _, sf := range stores() {
		t.Run(sf.name, func(t *testing.T) {
			ctx := context.Background()
			store := sf.new(t)
			svc := settings.NewService(store)

			want := test.Settings()
			if err := svc.Set(ctx, want); err != nil {
				t.Fatal(err)
			}

			got, err := svc.Get(ctx)
			if err != nil {
				t.Fatal(err)
			}

			if !got.Telemetry {
				t.Error("expected telemetry to be reported as enabled")
			}

			want.Telemetry = true
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("unexpected settings (-want +got):\n%s", diff)
			}

			// The override is not written back
			persisted, err := store.Load(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if persisted.Telemetry {
				t.Error("expected the persisted telemetry value to remain false")
			}
		})
	}
}

func TestGetIsIdempotent(t *testing.T) {
	for _, sf := range stores() {
		t.Run(sf.name, func(t *testing.T) {
			ctx := context.Background()
			svc := settings.NewService(sf.new(t))

			if err := svc.Set(ctx, test.Settings()); err != nil {
				t.Fatal(err)
			}

			first, err := svc.Get(ctx)
			if err != nil {
				t.Fatal(err)
			}

			second, err := svc.Get(ctx)
			if err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("consecutive reads differ (-first +second):\n%s", diff)
			}
		})
	}
}

func TestGetMissingRecord(t *testing.T) {
	for _, sf := range stores() {
		t.Run(sf.name, func(t *testing.T) {
			svc := settings.NewService(sf.new(t))

			_, err := svc.Get(context.Background())

			if !errors.Is(err, errors.ErrStorageRead) {
				t.Fatalf("expected a storage read error, got %v", err)
			}

			if !errors.Is(err, errors.ErrNotFound) {
				t.Errorf("expected the error to wrap ErrNotFound, got %v", err)
			}
		})
	}
}

func TestEnsureDefaults(t *testing.T) {
	for _, sf := range stores() {
		t.Run(sf.name, func(t *testing.T) {
			ctx := context.Background()
			svc := settings.NewService(sf.new(t))

			if err := svc.EnsureDefaults(ctx, settings.Default()); err != nil {
				t.Fatal(err)
			}

			got, err := svc.Get(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(settings.Default(), got); diff != "" {
				t.Fatalf("expected defaults (-want +got):\n%s", diff)
			}

			custom := test.Settings()
			if err := svc.Set(ctx, custom); err != nil {
				t.Fatal(err)
			}

			// Seeding again must not overwrite an existing record
			if err := svc.EnsureDefaults(ctx, settings.Default()); err != nil {
				t.Fatal(err)
			}

			got, err = svc.Get(ctx)
			if err != nil {
				t.Fatal(err)
			}
			custom.Telemetry = true
			if diff := cmp.Diff(custom, got); diff != "" {
				t.Errorf("seeding overwrote the record (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSetOverwritesInFull(t *testing.T) {
	for _, sf := range stores() {
		t.Run(sf.name, func(t *testing.T) {
			ctx := context.Background()
			svc := settings.NewService(sf.new(t))

			if err := svc.Set(ctx, test.Settings()); err != nil {
				t.Fatal(err)
			}

			next := settings.Default()
			next.GameResolution = settings.WindowSize{Width: 800, Height: 600}
			next.Telemetry = false
			if err := svc.Set(ctx, next); err != nil {
				t.Fatal(err)
			}

			got, err := svc.Get(ctx)
			if err != nil {
				t.Fatal(err)
			}

			next.Telemetry = true
			if diff := cmp.Diff(next, got); diff != "" {
				t.Errorf("expected a full overwrite (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSetNil(t *testing.T) {
	svc := settings.NewService(settings.NewMemoryStore())

	if err := svc.Set(context.Background(), nil); !errors.Is(err, errors.ErrStorageWrite) {
		t.Fatalf("expected a storage write error, got %v", err)
	}
}

func TestStoreFailures(t *testing.T) {
	ctx := context.Background()
	srv := newFakeRedis()
	svc := settings.NewService(settings.NewRedisStore(srv.pool(), "test"))

	if err := svc.Set(ctx, test.Settings()); err != nil {
		t.Fatal(err)
	}

	srv.fail = fmt.Errorf("connection reset by peer")

	if _, err := svc.Get(ctx); !errors.Is(err, errors.ErrStorageRead) {
		t.Errorf("expected a storage read error, got %v", err)
	}

	if err := svc.Set(ctx, settings.Default()); !errors.Is(err, errors.ErrStorageWrite) {
		t.Errorf("expected a storage write error, got %v", err)
	}
}

func TestCorruptRedisDocument(t *testing.T) {
	srv := newFakeRedis()
	srv.keys[settings.DefaultRedisKey] = []byte("{not json")
	svc := settings.NewService(settings.NewRedisStore(srv.pool(), ""))

	_, err := svc.Get(context.Background())

	if !errors.Is(err, errors.ErrStorageRead) || !errors.Is(err, errors.ErrDeserialization) {
		t.Fatalf("expected a deserialization read error, got %v", err)
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := settings.NewMemoryStore()
	svc := settings.NewService(store)

	if err := svc.Set(ctx, test.Settings()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected a cancelled write, got %v", err)
	}

	// Nothing was written
	if _, err := store.Load(context.Background()); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("expected no record after a cancelled write, got %v", err)
	}
}

// Concurrent writers race at whole record granularity; the result is one
// of the inputs, never a mix.
func TestConcurrentSet(t *testing.T) {
	for _, sf := range stores() {
		t.Run(sf.name, func(t *testing.T) {
			ctx := context.Background()
			svc := settings.NewService(sf.new(t))

			a := settings.Default()
			a.GameResolution = settings.WindowSize{Width: 800, Height: 600}
			a.Memory.Maximum = 1024
			a.ExtraLaunchArgs = []string{"-a"}

			b := test.Settings()
			b.GameResolution = settings.WindowSize{Width: 2560, Height: 1440}

			for i := 0; i < 10; i++ {
				var wg sync.WaitGroup
				errs := make(chan error, 2)
				for _, s := range []*settings.Settings{a, b} {
					wg.Add(1)
					go func(s *settings.Settings) {
						defer wg.Done()
						errs <- svc.Set(ctx, s)
					}(s)
				}
				wg.Wait()
				close(errs)

				for err := range errs {
					if err != nil {
						t.Fatal(err)
					}
				}

				got, err := svc.Get(ctx)
				if err != nil {
					t.Fatal(err)
				}

				wantA, wantB := a.Clone(), b.Clone()
				wantA.Telemetry, wantB.Telemetry = true, true
				if !cmp.Equal(wantA, got) && !cmp.Equal(wantB, got) {
					t.Fatalf("final record matches neither input:\n%s", cmp.Diff(wantA, got))
				}
			}
		})
	}
}
