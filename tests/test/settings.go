package test

import "github.com/flow-hydraulics/launcher-settings/settings"

// Settings returns a record with every field set away from its default,
// telemetry included.
func Settings() *settings.Settings {
	str := func(s string) *string { return &s }

	return &settings.Settings{
		Theme:                  "light",
		Language:               "russian",
		DefaultPage:            "library",
		CollapsedNavigation:    true,
		AdvancedRendering:      false,
		NativeDecorations:      true,
		Telemetry:              false,
		DiscordRPC:             false,
		DeveloperMode:          true,
		PersonalizedAds:        false,
		Onboarded:              true,
		MaxConcurrentDownloads: 3,
		MaxConcurrentWrites:    7,
		ExtraLaunchArgs:        []string{"-XX:+UseG1GC", "-Dfml.ignorePatchDiscrepancies=true"},
		CustomEnvVars:          []settings.EnvVar{{Name: "JAVA_TOOL_OPTIONS", Value: "-Xss4M"}},
		Memory:                 settings.MemorySettings{Maximum: 6144},
		ForceFullscreen:        true,
		GameResolution:         settings.WindowSize{Width: 1920, Height: 1080},
		HideOnProcessStart:     true,
		Hooks: settings.Hooks{
			PreLaunch: str("echo pre"),
			Wrapper:   str("gamemoderun"),
		},
		CustomDir:     str("/opt/launcher"),
		PrevCustomDir: str("/home/user/.launcher"),
		Migrated:      true,
	}
}
