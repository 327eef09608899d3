package inits

import (
	"errors"
	"fmt"
	"log"
	"path"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	SubmitModeDeliver  = "deliver"
	SubmitModeSimulate = "simulate"
)

// Config holds the server configuration, read from the environment after an
// optional .env file.
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	GinMode  string `env:"GIN_MODE" envDefault:"debug"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	BasePath string `env:"BASE_PATH" envDefault:"/ynot-advisory"`

	SubmitMode     string        `env:"SUBMIT_MODE" envDefault:"deliver"`
	SimulatedDelay time.Duration `env:"SIMULATED_DELAY" envDefault:"1s"`

	ContactInbox      string `env:"CONTACT_INBOX"`
	SendGridAPIKey    string `env:"SENDGRID_API_KEY"`
	SendGridFromEmail string `env:"SENDGRID_FROM_EMAIL"`
	SendGridFromName  string `env:"SENDGRID_FROM_NAME" envDefault:"Ynot Advisory"`

	TurnstileSecretKey string `env:"TURNSTILE_SECRET_KEY"`
	TurnstileSiteKey   string `env:"TURNSTILE_SITE_KEY"`
	TestToken          string `env:"TEST_TOKEN"`

	RateLimitPerMinute float64  `env:"RATE_LIMIT_PER_MINUTE" envDefault:"10"`
	AllowedHosts       []string `env:"ALLOWED_HOSTS" envSeparator:","`

	Retention       time.Duration `env:"RETENTION" envDefault:"336h"`
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" envDefault:"24h"`
	DuplicateWindow time.Duration `env:"DUPLICATE_WINDOW" envDefault:"1m"`
}

// Release reports whether gin runs in release mode.
func (c *Config) Release() bool {
	return c.GinMode == "release"
}

func (c *Config) Addr() string {
	if c.Port != "" && c.Port[0] == ':' {
		return c.Port
	}
	return ":" + c.Port
}

func (c *Config) Validate() error {
	switch c.SubmitMode {
	case SubmitModeDeliver, SubmitModeSimulate:
	default:
		return fmt.Errorf("unknown SUBMIT_MODE %q", c.SubmitMode)
	}
	if c.BasePath == "" || c.BasePath[0] != '/' {
		return fmt.Errorf("BASE_PATH must start with '/', got %q", c.BasePath)
	}
	c.BasePath = path.Clean(c.BasePath)
	if c.SimulatedDelay < 0 {
		return errors.New("SIMULATED_DELAY must not be negative")
	}
	if c.Retention <= 0 || c.CleanupInterval <= 0 {
		return errors.New("RETENTION and CLEANUP_INTERVAL must be positive")
	}
	if c.DuplicateWindow < 0 {
		return errors.New("DUPLICATE_WINDOW must not be negative")
	}
	if c.SubmitMode == SubmitModeDeliver && c.SendGridAPIKey != "" {
		if c.ContactInbox == "" || c.SendGridFromEmail == "" {
			return errors.New("CONTACT_INBOX and SENDGRID_FROM_EMAIL are required when SENDGRID_API_KEY is set")
		}
	}
	if c.RateLimitPerMinute <= 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must be positive")
	}
	return nil
}

// LoadConfig reads .env files (when present) and parses the environment.
func LoadConfig(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	if err := godotenv.Load(files...); err != nil {
		log.Printf("Warning: env file not loaded (%v), using environment only", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
