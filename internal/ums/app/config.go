package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseFile      string        `env:"UMS_DATABASE_FILE"       envDefault:"ums.db"`         // Path to the SQLite database file
	PepperFile        string        `env:"UMS_PEPPER_FILE"         envDefault:"pepper"`         // Password pepper, generated on first start
	SessionSecretFile string        `env:"UMS_SESSION_SECRET_FILE" envDefault:"session_secret"` // HS256 key for session cookies, generated on first start
	SessionTTL        time.Duration `env:"UMS_SESSION_TTL"         envDefault:"168h"`           // Session cookie and slot lifetime
	SessionIssuer     string        `env:"UMS_SESSION_ISSUER"      envDefault:"ums"`
	CookieSecure      bool          `env:"UMS_COOKIE_SECURE"       envDefault:"true"` // Set false for plain HTTP development

	Env                  string        `env:"ENV"                   envDefault:"dev"`  // Environment (dev, staging, prod)
	LogLevel             string        `env:"LOG_LEVEL"             envDefault:"info"` // debug, info, warn, error
	LogFormat            string        `env:"LOG_FORMAT"            envDefault:"json"` // json, text
	Port                 int           `env:"PORT"                  envDefault:"8080"`
	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1h"`
}

// LoadConfig reads the configuration from the environment. A .env file in
// the working directory is loaded first when present; variables already set
// in the environment win over it.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot start with.
func (c Config) Validate() error {
	switch {
	case c.DatabaseFile == "":
		return fmt.Errorf("config: UMS_DATABASE_FILE must not be empty")
	case c.Port <= 0 || c.Port > 65535:
		return fmt.Errorf("config: PORT %d out of range", c.Port)
	case c.SessionTTL <= 0:
		return fmt.Errorf("config: UMS_SESSION_TTL must be positive")
	}
	return nil
}

// TUIConfig configures the terminal front end. It shares the database and
// secret files with the service.
type TUIConfig struct {
	Config

	LogFile string `env:"UMS_TUI_LOG_FILE" envDefault:"ums-tui.log"` // stdout belongs to the renderer
	Theme   string `env:"UMS_TUI_THEME"    envDefault:"light"`       // light, dark
	Slot    string `env:"UMS_TUI_SLOT"     envDefault:"current"`     // session slot the terminal owns
}

// LoadTUIConfig reads the terminal front end configuration the same way
// LoadConfig does.
func LoadTUIConfig() (TUIConfig, error) {
	_ = godotenv.Load()

	var cfg TUIConfig
	if err := env.Parse(&cfg); err != nil {
		return TUIConfig{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return TUIConfig{}, err
	}
	if cfg.Slot == "" {
		return TUIConfig{}, fmt.Errorf("config: UMS_TUI_SLOT must not be empty")
	}
	return cfg, nil
}
