package m20260902

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const ID = "20260902"

// Settings database model
type Settings struct {
	ID                     uint           `gorm:"column:id;primaryKey"`
	Theme                  string         `gorm:"column:theme"`
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

func (Settings) TableName() string {
	return "launcher_settings"
}

func Migrate(tx *gorm.DB) error {
	if err := tx.AutoMigrate(&Settings{}); err != nil {
		return err
	}

	return nil
}

func Rollback(tx *gorm.DB) error {
	if err := tx.Migrator().DropTable("launcher_settings"); err != nil {
		return err
	}

	return nil
}
