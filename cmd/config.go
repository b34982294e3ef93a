package cmd

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/pkg/errs"

	"github.com/caarlos0/env/v10"
)

// Config is read from the environment. A .env file, when present, is loaded
// into the environment first.
type Config struct {
	HTTPPort   string `env:"HTTP_PORT" envDefault:"8080"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"food_delivery"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`

	AccessTokenSecret           string `env:"ACCESS_TOKEN_SECRET"`
	RefreshTokenSecret          string `env:"REFRESH_TOKEN_SECRET"`
	AccessTokenLifetimeSeconds  int    `env:"ACCESS_TOKEN_LIFETIME_SECONDS" envDefault:"900"`
	RefreshTokenLifetimeSeconds int    `env:"REFRESH_TOKEN_LIFETIME_SECONDS" envDefault:"1209600"`
	TokenSweepSchedule          string `env:"TOKEN_SWEEP_SCHEDULE" envDefault:"@every 12h"`
	PasswordHashCost            int    `env:"PASSWORD_HASH_COST" envDefault:"10"`

	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
	AdminPhone    string `env:"ADMIN_PHONE"`
	AdminName     string `env:"ADMIN_NAME" envDefault:"Administrator"`
}

// LoadConfig parses the environment and validates the result.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate requires two distinct signing secrets and positive lifetimes.
func (c Config) Validate() error {
	var secretsErr error
	switch {
	case c.AccessTokenSecret == "":
		secretsErr = errs.NewValueIsRequiredError("ACCESS_TOKEN_SECRET")
	case c.RefreshTokenSecret == "":
		secretsErr = errs.NewValueIsRequiredError("REFRESH_TOKEN_SECRET")
	case c.AccessTokenSecret == c.RefreshTokenSecret:
		secretsErr = errs.NewValueIsInvalidErrorWithCause("REFRESH_TOKEN_SECRET",
			errors.New("must differ from ACCESS_TOKEN_SECRET"))
	}

	return errors.Join(secretsErr, c.SessionPolicy().Validate())
}

func (c Config) SessionPolicy() commands.SessionPolicy {
	return commands.SessionPolicy{
		AccessLifetime:  time.Duration(c.AccessTokenLifetimeSeconds) * time.Second,
		RefreshLifetime: time.Duration(c.RefreshTokenLifetimeSeconds) * time.Second,
	}
}

// DSN is the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// AdminConfigured reports whether an administrator account should be provisioned.
func (c Config) AdminConfigured() bool {
	return c.AdminEmail != "" && c.AdminPassword != ""
}
