package config

import (
	"fmt"
	"strings"
)

// validateConfig validates the loaded configuration values
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}

	if err := validateNASAConfig(&config.NASA); err != nil {
		return fmt.Errorf("NASA config validation failed: %w", err)
	}

	if err := validateAuthConfig(&config.Auth); err != nil {
		return fmt.Errorf("auth config validation failed: %w", err)
	}

	if err := validateEvaluationConfig(&config.Evaluation); err != nil {
		return fmt.Errorf("evaluation config validation failed: %w", err)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	if config.ReadTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got ReadTimeout: %v", config.ReadTimeout)
	}

	if config.WriteTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got WriteTimeout: %v", config.WriteTimeout)
	}

	if config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got IdleTimeout: %v", config.IdleTimeout)
	}

	return nil
}

func validateDatabaseConfig(config *DatabaseConfig) error {
	if config.MaxConnections < 1 {
		return fmt.Errorf("max connections must be at least 1, got %d", config.MaxConnections)
	}

	if config.ConnectionTimeout <= 0 {
		return fmt.Errorf("connection timeout must be positive, got %v", config.ConnectionTimeout)
	}

	return nil
}

func validateNASAConfig(config *NASAConfig) error {
	if !strings.HasPrefix(config.BaseURL, "http://") && !strings.HasPrefix(config.BaseURL, "https://") {
		return fmt.Errorf("base URL must start with http:// or https://, got %s", config.BaseURL)
	}

	if config.ClientTimeout <= 0 {
		return fmt.Errorf("client timeout must be positive, got %v", config.ClientTimeout)
	}

	if config.RateLimitInterval <= 0 {
		return fmt.Errorf("rate limit interval must be positive, got %v", config.RateLimitInterval)
	}

	return nil
}

func validateAuthConfig(config *AuthConfig) error {
	if config.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive, got %v", config.TokenTTL)
	}

	return nil
}

func validateEvaluationConfig(config *EvaluationConfig) error {
	if config.FetchTimeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive, got %v", config.FetchTimeout)
	}

	if config.MaxConcurrency < 1 {
		return fmt.Errorf("max concurrency must be at least 1, got %d", config.MaxConcurrency)
	}

	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[config.Level] {
		return fmt.Errorf("log level must be one of debug/info/warn/error, got %s", config.Level)
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[config.Format] {
		return fmt.Errorf("log format must be json or text, got %s", config.Format)
	}

	return nil
}
