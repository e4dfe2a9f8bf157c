package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/flow-hydraulics/launcher-settings/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// The settings table holds exactly one row.
const settingsRowID = 1

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) Store {
	return &GormStore{db}
}

func (s *GormStore) Load(ctx context.Context) (*Settings, error) {
	r := &row{}
	if err := s.db.WithContext(ctx).First(r, settingsRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrNotFound
		}
		return nil, err
	}
	return r.toSettings()
}

func (s *GormStore) Save(ctx context.Context, settings *Settings) error {
	r, err := newRow(settings)
	if err != nil {
		return err
	}
	// A single upsert statement, concurrent writers never interleave fields
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(r).Error
}

func (s *GormStore) Seed(ctx context.Context, settings *Settings) error {
	r, err := newRow(settings)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(r).Error
}

// row is the database model of Settings.
type row struct {
	ID                     uint           `gorm:"column:id;primaryKey"`
	Theme                  string         `gorm:"column:theme"`
	Language               string         `gorm:"column:language"`
	DefaultPage            string         `gorm:"column:default_page"`
	CollapsedNavigation    bool           `gorm:"column:collapsed_navigation"`
	AdvancedRendering      bool           `gorm:"column:advanced_rendering"`
	NativeDecorations      bool           `gorm:"column:native_decorations"`
	Telemetry              bool           `gorm:"column:telemetry"`
	DiscordRPC             bool           `gorm:"column:discord_rpc"`
	DeveloperMode          bool           `gorm:"column:developer_mode"`
	PersonalizedAds        bool           `gorm:"column:personalized_ads"`
	Onboarded              bool           `gorm:"column:onboarded"`
	MaxConcurrentDownloads int            `gorm:"column:max_concurrent_downloads"`
	MaxConcurrentWrites    int            `gorm:"column:max_concurrent_writes"`
	ExtraLaunchArgs        datatypes.JSON `gorm:"column:extra_launch_args"`
	CustomEnvVars          datatypes.JSON `gorm:"column:custom_env_vars"`
	MemoryMaximum          uint32         `gorm:"column:mc_memory_max"`
	ForceFullscreen        bool           `gorm:"column:mc_force_fullscreen"`
	GameResolutionWidth    uint16         `gorm:"column:mc_game_resolution_x"`
	GameResolutionHeight   uint16         `gorm:"column:mc_game_resolution_y"`
	HideOnProcessStart     bool           `gorm:"column:hide_on_process_start"`
	HookPreLaunch          *string        `gorm:"column:hook_pre_launch"`
	HookWrapper            *string        `gorm:"column:hook_wrapper"`
	HookPostExit           *string        `gorm:"column:hook_post_exit"`
	CustomDir              *string        `gorm:"column:custom_dir"`
	PrevCustomDir          *string        `gorm:"column:prev_custom_dir"`
	Migrated               bool           `gorm:"column:migrated"`
	UpdatedAt              time.Time      `gorm:"column:updated_at"`
}

func (row) TableName() string {
	return "launcher_settings"
}

func newRow(s *Settings) (*row, error) {
	if s == nil {
		return nil, fmt.Errorf("nil settings")
	}

	args, err := json.Marshal(s.ExtraLaunchArgs)
	if err != nil {
		return nil, err
	}

	envs, err := json.Marshal(s.CustomEnvVars)
	if err != nil {
		return nil, err
	}

	return &row{
		ID:                     settingsRowID,
		Theme:                  s.Theme,
		Language:               s.Language,
		DefaultPage:            s.DefaultPage,
		CollapsedNavigation:    s.CollapsedNavigation,
		AdvancedRendering:      s.AdvancedRendering,
		NativeDecorations:      s.NativeDecorations,
		Telemetry:              s.Telemetry,
		DiscordRPC:             s.DiscordRPC,
		DeveloperMode:          s.DeveloperMode,
		PersonalizedAds:        s.PersonalizedAds,
		Onboarded:              s.Onboarded,
		MaxConcurrentDownloads: s.MaxConcurrentDownloads,
		MaxConcurrentWrites:    s.MaxConcurrentWrites,
		ExtraLaunchArgs:        datatypes.JSON(args),
		CustomEnvVars:          datatypes.JSON(envs),
		MemoryMaximum:          s.Memory.Maximum,
		ForceFullscreen:        s.ForceFullscreen,
		GameResolutionWidth:    s.GameResolution.Width,
		GameResolutionHeight:   s.GameResolution.Height,
		HideOnProcessStart:     s.HideOnProcessStart,
		HookPreLaunch:          s.Hooks.PreLaunch,
		HookWrapper:            s.Hooks.Wrapper,
		HookPostExit:           s.Hooks.PostExit,
		CustomDir:              s.CustomDir,
		PrevCustomDir:          s.PrevCustomDir,
		Migrated:               s.Migrated,
	}, nil
}

func (r *row) toSettings() (*Settings, error) {
	s := &Settings{
		Theme:                  r.Theme,
		Language:               r.Language,
		DefaultPage:            r.DefaultPage,
		CollapsedNavigation:    r.CollapsedNavigation,
		AdvancedRendering:      r.AdvancedRendering,
		NativeDecorations:      r.NativeDecorations,
		Telemetry:              r.Telemetry,
		DiscordRPC:             r.DiscordRPC,
		DeveloperMode:          r.DeveloperMode,
		PersonalizedAds:        r.PersonalizedAds,
		Onboarded:              r.Onboarded,
		MaxConcurrentDownloads: r.MaxConcurrentDownloads,
		MaxConcurrentWrites:    r.MaxConcurrentWrites,
		Memory:                 MemorySettings{Maximum: r.MemoryMaximum},
		ForceFullscreen:        r.ForceFullscreen,
		GameResolution:         WindowSize{Width: r.GameResolutionWidth, Height: r.GameResolutionHeight},
		HideOnProcessStart:     r.HideOnProcessStart,
		Hooks: Hooks{
			PreLaunch: r.HookPreLaunch,
			Wrapper:   r.HookWrapper,
			PostExit:  r.HookPostExit,
		},
		CustomDir:     r.CustomDir,
		PrevCustomDir: r.PrevCustomDir,
		Migrated:      r.Migrated,
	}

	if len(r.ExtraLaunchArgs) > 0 {
		if err := json.Unmarshal(r.ExtraLaunchArgs, &s.ExtraLaunchArgs); err != nil {
			return nil, fmt.Errorf("%w: extra_launch_args: %s", errors.ErrDeserialization, err)
		}
	}

	if len(r.CustomEnvVars) > 0 {
		if err := json.Unmarshal(r.CustomEnvVars, &s.CustomEnvVars); err != nil {
			return nil, fmt.Errorf("%w: custom_env_vars: %s", errors.ErrDeserialization, err)
		}
	}

	return s, nil
}
