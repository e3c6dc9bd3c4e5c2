package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Server     ServerConfig     `json:"server"`
	Database   DatabaseConfig   `json:"database"`
	NASA       NASAConfig       `json:"nasa"`
	Auth       AuthConfig       `json:"auth"`
	Evaluation EvaluationConfig `json:"evaluation"`
	Logging    LoggingConfig    `json:"logging"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"8000"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type DatabaseConfig struct {
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"25"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"30s"`
}

type NASAConfig struct {
	APIKey            string        `json:"-" env:"NASA_API_KEY" default:"DEMO_KEY"`
	APIKeyFile        string        `json:"-" env:"NASA_API_KEY_FILE"`
	BaseURL           string        `json:"base_url" env:"NASA_API_BASE_URL" default:"https://api.nasa.gov/neo/rest/v1"`
	ClientTimeout     time.Duration `json:"client_timeout" env:"NASA_CLIENT_TIMEOUT" default:"10s"`
	RateLimitInterval time.Duration `json:"rate_limit_interval" env:"NASA_RATE_LIMIT_INTERVAL" default:"1s"`
}

type AuthConfig struct {
	Secret     string        `json:"-" env:"SECRET_KEY"`
	SecretFile string        `json:"-" env:"SECRET_KEY_FILE"`
	Issuer     string        `json:"issuer" env:"AUTH_TOKEN_ISSUER" default:"cosmowatch"`
	TokenTTL   time.Duration `json:"token_ttl" env:"AUTH_TOKEN_TTL" default:"1440m"`
}

type EvaluationConfig struct {
	FetchTimeout   time.Duration `json:"fetch_timeout" env:"EVALUATION_FETCH_TIMEOUT" default:"5s"`
	MaxConcurrency int           `json:"max_concurrency" env:"EVALUATION_MAX_CONCURRENCY" default:"8"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

// NewConfig creates a new configuration by loading from environment variables
// with fallback to default values
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	// Load secrets from files if configured (Docker Secrets support)
	if config.Auth.SecretFile != "" {
		content, err := os.ReadFile(config.Auth.SecretFile)
		if err == nil {
			config.Auth.Secret = strings.TrimSpace(string(content))
		}
		// If file read fails, we fall back to the env var value (if any) or keep it empty
	}

	if config.NASA.APIKeyFile != "" {
		content, err := os.ReadFile(config.NASA.APIKeyFile)
		if err == nil {
			config.NASA.APIKey = strings.TrimSpace(string(content))
		}
	}

	return config, nil
}
