package config

// Config is the root of the application configuration, grouped by component.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// ShutdownTimeoutSeconds bounds how long in-flight requests may keep
	// running once a termination signal arrives. Zero keeps the default.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gte=0,lte=300"`
}
