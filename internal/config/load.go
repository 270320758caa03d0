package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is the prefix shared by all environment variables read by Load
// (e.g. MINHA_SERVER_PORT).
const envPrefix = "MINHA"

// Load reads configuration from an optional config.yaml in the working
// directory and from MINHA_-prefixed environment variables. Environment
// variables take precedence over values from the config file. The result
// is validated before it is handed back.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.shutdown_timeout_seconds", 5)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; everything can come from the
		// environment. Any other read error is a real failure.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind the environment variables we document, so they are
	// visible to Unmarshal even when no other source mentions the key.
	bindEnvs := []struct {
		key    string
		envVar string
	}{
		{"server.port", "MINHA_SERVER_PORT"},
		{"server.log_level", "MINHA_SERVER_LOG_LEVEL"},
		{"server.shutdown_timeout_seconds", "MINHA_SERVER_SHUTDOWN_TIMEOUT_SECONDS"},
	}

	for _, env := range bindEnvs {
		if err := v.BindEnv(env.key, env.envVar); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env.envVar, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
