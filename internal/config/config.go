// Package config manages environment variables.
//
// It reads variables from the `.env` file and the process environment,
// layers them over built-in defaults, loads them into structured Go types
// and validates that required values are present so they can be reused
// across the application runtime.
//
// Responsibilities:
//   - Provide defaults for every setting so the service runs with no env at all.
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad config.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it is loaded into the
	// process env before any env var is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Key layout:
	- Env vars are read using the prefix CLASSIFIEDS_
	- Keys are lowercased, the prefix is removed and "__" marks nesting
	  e.g. CLASSIFIEDS_SERVER__READ_TIMEOUT -> server.read_timeout
	- The bare PORT variable is honoured too and maps to server.port
*/

// EnvPrefix is the prefix every service env var carries.
const EnvPrefix = "CLASSIFIEDS_"

// ServiceName tags logs and APM data.
const ServiceName = "classifieds"

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags name the key koanf maps a value from; the
// `validate:"..."` tags are enforced by go-playground/validator.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Pagination    PaginationConfig     `koanf:"pagination" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`

	// Seed loads the fixture listings into the store at start-up.
	Seed bool `koanf:"seed"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are whole seconds.
type ServerConfig struct {
	Port              string `koanf:"port" validate:"required,numeric"`
	ReadTimeout       int    `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout      int    `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout       int    `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigin string `koanf:"cors_allowed_origin" validate:"required"`

	// BodyLimit uses echo's size notation, e.g. "10M".
	BodyLimit string `koanf:"body_limit" validate:"required"`
}

// PaginationConfig holds the defaults applied when a list or search request
// omits page or limit.
type PaginationConfig struct {
	DefaultPage  int `koanf:"default_page" validate:"required,min=1"`
	DefaultLimit int `koanf:"default_limit" validate:"required,min=1"`
}

// defaults returns the flat key map every source is layered over.
func defaults() map[string]interface{} {
	obs := DefaultObservabilityConfig()

	return map[string]interface{}{
		"primary.env":                                         "development",
		"primary.seed":                                        false,
		"server.port":                                         "3000",
		"server.read_timeout":                                 30,
		"server.write_timeout":                                30,
		"server.idle_timeout":                                 60,
		"server.cors_allowed_origin":                          "http://localhost:8080",
		"server.body_limit":                                   "10M",
		"pagination.default_page":                             1,
		"pagination.default_limit":                            5,
		"observability.service_name":                          obs.ServiceName,
		"observability.environment":                           obs.Environment,
		"observability.logging.level":                         obs.Logging.Level,
		"observability.logging.format":                        obs.Logging.Format,
		"observability.new_relic.license_key":                 obs.NewRelic.LicenseKey,
		"observability.new_relic.app_log_forwarding_enabled":  obs.NewRelic.AppLogForwardingEnabled,
		"observability.new_relic.distributed_tracing_enabled": obs.NewRelic.DistributedTracingEnabled,
		"observability.new_relic.debug_logging":               obs.NewRelic.DebugLogging,
	}
}

// envKey maps CLASSIFIEDS_SERVER__PORT to server.port.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// portKey maps the bare PORT variable onto server.port and drops every
// other variable that happens to share the prefix.
func portKey(s string) string {
	if s == "PORT" {
		return "server.port"
	}
	return ""
}

// LoadConfig builds the configuration from defaults, the CLASSIFIEDS_ env
// vars and PORT, in that order, then validates it.
//
// The observability block always ends up populated: its service name is
// forced to ServiceName and its environment follows primary.env.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("could not load config defaults: %w", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	if err := k.Load(env.Provider("PORT", ".", portKey), nil); err != nil {
		return nil, fmt.Errorf("could not load PORT: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
