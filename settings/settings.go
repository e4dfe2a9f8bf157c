package settings

import (
	"fmt"
	"strings"
)

const (
	DefaultTheme                  = "dark"
	DefaultLanguage               = "english"
	DefaultPage                   = "home"
	DefaultMaxConcurrentDownloads = 10
	DefaultMaxConcurrentWrites    = 10
	DefaultMemoryMaximum          = 2048
	DefaultResolutionWidth        = 854
	DefaultResolutionHeight       = 480
)

// Languages the launcher ships translations for.
var Languages = []string{"russian", "english"}

// Settings is the single configuration record of a launcher installation.
type Settings struct {
	Theme               string `json:"theme"`
	Language            string `json:"language"`
	DefaultPage         string `json:"default_page"`
	CollapsedNavigation bool   `json:"collapsed_navigation"`
	AdvancedRendering   bool   `json:"advanced_rendering"`
	NativeDecorations   bool   `json:"native_decorations"`

	Telemetry       bool `json:"telemetry"`
	DiscordRPC      bool `json:"discord_rpc"`
	DeveloperMode   bool `json:"developer_mode"`
	PersonalizedAds bool `json:"personalized_ads"`
	Onboarded       bool `json:"onboarded"`

	MaxConcurrentDownloads int `json:"max_concurrent_downloads"`
	MaxConcurrentWrites    int `json:"max_concurrent_writes"`

	ExtraLaunchArgs    []string       `json:"extra_launch_args"`
	CustomEnvVars      []EnvVar       `json:"custom_env_vars"`
	Memory             MemorySettings `json:"memory"`
	ForceFullscreen    bool           `json:"force_fullscreen"`
	GameResolution     WindowSize     `json:"game_resolution"`
	HideOnProcessStart bool           `json:"hide_on_process_start"`
	Hooks              Hooks          `json:"hooks"`

	CustomDir     *string `json:"custom_dir"`
	PrevCustomDir *string `json:"prev_custom_dir"`
	Migrated      bool    `json:"migrated"`
}

type EnvVar struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// MemorySettings holds the java heap limit in MiB.
type MemorySettings struct {
	Maximum uint32 `json:"maximum"`
}

type WindowSize struct {
	Width  uint16 `json:"width"`
	Height uint16 `json:"height"`
}

// Hooks are shell commands run around a game process. A nil hook is unset.
type Hooks struct {
	PreLaunch *string `json:"pre_launch"`
	Wrapper   *string `json:"wrapper"`
	PostExit  *string `json:"post_exit"`
}

// Default returns the settings of a fresh installation.
func Default() *Settings {
	return &Settings{
		Theme:                  DefaultTheme,
		Language:               DefaultLanguage,
		DefaultPage:            DefaultPage,
		AdvancedRendering:      true,
		Telemetry:              true,
		DiscordRPC:             true,
		PersonalizedAds:        true,
		MaxConcurrentDownloads: DefaultMaxConcurrentDownloads,
		MaxConcurrentWrites:    DefaultMaxConcurrentWrites,
		ExtraLaunchArgs:        []string{},
		CustomEnvVars:          []EnvVar{},
		Memory:                 MemorySettings{Maximum: DefaultMemoryMaximum},
		GameResolution:         WindowSize{Width: DefaultResolutionWidth, Height: DefaultResolutionHeight},
	}
}

// Clone returns a deep copy of s.
func (s *Settings) Clone() *Settings {
	if s == nil {
		return nil
	}

	c := *s

	if s.ExtraLaunchArgs != nil {
		c.ExtraLaunchArgs = append([]string{}, s.ExtraLaunchArgs...)
	}
	if s.CustomEnvVars != nil {
		c.CustomEnvVars = append([]EnvVar{}, s.CustomEnvVars...)
	}

	c.Hooks = Hooks{
		PreLaunch: cloneString(s.Hooks.PreLaunch),
		Wrapper:   cloneString(s.Hooks.Wrapper),
		PostExit:  cloneString(s.Hooks.PostExit),
	}
	c.CustomDir = cloneString(s.CustomDir)
	c.PrevCustomDir = cloneString(s.PrevCustomDir)

	return &c
}

func (s *Settings) String() string {
	return fmt.Sprintf("Theme: %s, Language: %s, Telemetry: %t, Memory: %dMiB, Resolution: %dx%d",
		s.Theme, s.Language, s.Telemetry, s.Memory.Maximum, s.GameResolution.Width, s.GameResolution.Height)
}

// IsSupportedLanguage reports whether lang has a translation, ignoring case.
func IsSupportedLanguage(lang string) bool {
	lang = strings.ToLower(lang)
	for _, l := range Languages {
		if l == lang {
			return true
		}
	}
	return false
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
