package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "AIRCNC"

// defaults lists every configuration key with its default value. Keys must be
// registered here for viper to pick them up from the environment on Unmarshal.
var defaults = map[string]any{
	"server.port":                      5000,
	"server.log_level":                 "info",
	"server.cors_allowed_origins":      []string{"*"},
	"database.uri":                     "",
	"database.name":                    "aircncdb",
	"database.connect_timeout_seconds": 10,
	"auth.jwt_secret":                  "",
	"auth.token_lifetime_minutes":      1440,
	"mail.enabled":                     false,
	"mail.host":                        "",
	"mail.port":                        587,
	"mail.username":                    "",
	"mail.password":                    "",
	"mail.from":                        "",
	"payment.stripe_secret_key":        "",
	"payment.currency":                 "usd",
}

// loadDotEnv reads path into the environment. A missing file is the normal
// case outside local development and is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config.yaml, which
// take precedence over defaults. A .env file in the working directory is read
// first and never overrides variables that are already set.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
