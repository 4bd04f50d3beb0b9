// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file when one
// exists), loads them into structured Go types and validates them so the
// service fails fast on bad configuration.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for every block so a bare `go run` works locally.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads `.env` into the process env before anything
	// reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the EMPLOYEES_ prefix. A double underscore marks
	nesting, a single underscore stays part of the key:

		EMPLOYEES_SERVER__PORT              -> server.port
		EMPLOYEES_SERVER__READ_TIMEOUT      -> server.read_timeout
		EMPLOYEES_OBSERVABILITY__LOGGING__LEVEL -> observability.logging.level
*/

const (
	// EnvPrefix is the prefix every recognised environment variable carries.
	EnvPrefix = "EMPLOYEES_"

	// nestingDelimiter separates nested keys inside an env var name.
	nestingDelimiter = "__"
)

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf maps values from, the
// `validate:"..."` tags are enforced by go-playground/validator.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Store         StoreConfig          `koanf:"store"`
	RateLimit     RateLimitConfig      `koanf:"rate_limit"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=local development staging production test"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required,numeric"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`

	// MaxBodyBytes caps the size of JSON request bodies.
	MaxBodyBytes int64 `koanf:"max_body_bytes" validate:"required,min=2"`
}

// StoreConfig controls the in-memory employee store.
type StoreConfig struct {
	// SeedDemo pre-populates the store with three demo employees.
	SeedDemo bool `koanf:"seed_demo"`
}

// RateLimitConfig controls the per-client request limiter.
type RateLimitConfig struct {
	Enabled           bool          `koanf:"enabled"`
	RequestsPerSecond float64       `koanf:"requests_per_second" validate:"gt=0"`
	Burst             int           `koanf:"burst" validate:"min=1"`
	ExpiresIn         time.Duration `koanf:"expires_in" validate:"min=1s"`
}

// DefaultConfig returns the configuration used when no env var overrides a value.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{
			Env: "development",
		},
		Server: ServerConfig{
			Port:               "8080",
			ReadTimeout:        10,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
			MaxBodyBytes:       1 << 20,
		},
		Store: StoreConfig{
			SeedDemo: false,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 20,
			Burst:             40,
			ExpiresIn:         3 * time.Minute,
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// LoadConfig loads configuration from environment variables on top of
// DefaultConfig, validates it and returns the result.
//
// Behavior summary:
//   - Loads env vars with prefix EMPLOYEES_
//   - Converts env keys into koanf keys using "__" for nesting
//   - Unmarshals over the defaults, so unset keys keep their default
//   - Validates the struct tags and the observability block
//   - Forces observability service name + environment
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := DefaultConfig()

	// Unmarshal only touches keys that exist in koanf, defaults survive.
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// listKeys are the keys whose env value is a comma-separated list.
var listKeys = map[string]bool{
	"server.cors_allowed_origins": true,
}

// envValue maps an env var to its koanf key and splits list values,
// e.g. "https://a.example, https://b.example" into two origins.
func envValue(name, value string) (string, any) {
	key := envKey(name)
	if !listKeys[key] {
		return key, value
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return key, items
}

// envKey maps EMPLOYEES_SERVER__READ_TIMEOUT to server.read_timeout.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, nestingDelimiter, ".")
}
