package configs

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	// -- Server --

	Host string `env:"LAUNCHER_HOST"`
	Port int    `env:"LAUNCHER_PORT" envDefault:"3000"`
	// Maximum time a request may take before the server responds with 503
	ServerRequestTimeout time.Duration `env:"LAUNCHER_SERVER_REQUEST_TIMEOUT" envDefault:"60s"`

	// Trace, Debug, Info, Warning, Error, Fatal or Panic
	LogLevel string `env:"LAUNCHER_LOG_LEVEL" envDefault:"info"`

	// -- Database --

	DatabaseDSN  string `env:"LAUNCHER_DATABASE_DSN" envDefault:"launcher.db"`
	DatabaseType string `env:"LAUNCHER_DATABASE_TYPE" envDefault:"sqlite"`

	// -- Settings store --

	// shared (the database above), redis or local
	SettingsStoreType string `env:"LAUNCHER_SETTINGS_STORE_TYPE" envDefault:"shared"`
	SettingsRedisURL  string `env:"LAUNCHER_SETTINGS_REDIS_URL"`
	SettingsRedisKey  string `env:"LAUNCHER_SETTINGS_REDIS_KEY" envDefault:"launcher:settings"`

	// -- State initialization --

	// When InitRetryMin is zero a failed initialization is retried on the
	// very next call.
	InitRetryMin time.Duration `env:"LAUNCHER_INIT_RETRY_MIN" envDefault:"0s"`
	InitRetryMax time.Duration `env:"LAUNCHER_INIT_RETRY_MAX" envDefault:"30s"`
}

type Options struct {
	EnvFilePath string
}

// Parse parses environment variables into a valid Config.
func Parse() (*Config, error) {
	return ParseConfig(nil)
}

// ParseConfig parses environment variables and flags to a valid Config.
func ParseConfig(opt *Options) (*Config, error) {
	if opt != nil && opt.EnvFilePath != "" {
		// Load variables from a file to the environment of the process
		if err := godotenv.Load(opt.EnvFilePath); err != nil {
			return nil, fmt.Errorf("failed to load env file %q: %w", opt.EnvFilePath, err)
		}
	}

	cfg := Config{}

	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}

	if cfg.InitRetryMax < cfg.InitRetryMin {
		cfg.InitRetryMax = cfg.InitRetryMin
	}

	return &cfg, nil
}

func ConfigureLogger(logLevel string) {
	log.SetFormatter(&log.JSONFormatter{})

	lvl, err := log.ParseLevel(logLevel)
	if err != nil {
		log.WithFields(log.Fields{"level": logLevel}).Warn("unknown log level, using info")
		lvl = log.InfoLevel
	}

	log.SetLevel(lvl)
}
