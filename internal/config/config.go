// Package config loads and validates application configuration from
// environment variables and optional config files.
package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Cache    CacheConfig    `mapstructure:"cache"    validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// CacheConfig contains the settings for the Redis cache backend.
// The cache is an accelerator, never a source of truth, so a missing or
// unreachable backend degrades service latency but not correctness.
type CacheConfig struct {
	// Addr is the host:port of the Redis server.
	Addr string `mapstructure:"addr" validate:"required"`

	// Password is the optional Redis AUTH password.
	Password string `mapstructure:"password"`

	// DB selects the Redis logical database.
	DB int `mapstructure:"db" validate:"gte=0"`

	// DefaultTTLSeconds is the time-to-live applied to cache entries when
	// the caller does not override it.
	DefaultTTLSeconds int `mapstructure:"default_ttl_seconds" validate:"required,gt=0"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	// JWTSecret is the process-wide HMAC signing key. It is injected here
	// at startup rather than read as ambient global state so that tests
	// can run isolated services with distinct secrets.
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// TokenLifetimeMinutes bounds the validity of issued bearer tokens.
	// There is no server-side revocation; expiry is the only lifecycle.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`

	// BcryptCost is the bcrypt work factor used when hashing passwords.
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"gte=4,lte=31"`
}
