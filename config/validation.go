package config

import (
	"fmt"
)

// validateConfig validates the loaded configuration values
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	if err := validateIngestConfig(&config.Ingest); err != nil {
		return fmt.Errorf("ingest config validation failed: %w", err)
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
	if config.Host == "" {
		return fmt.Errorf("database host must not be empty")
	}
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("database port must be between 1 and 65535, got %d", config.Port)
	}
	if config.Name == "" {
		return fmt.Errorf("database name must not be empty")
	}
	if config.MaxConnections < 1 {
		return fmt.Errorf("max connections must be positive, got %d", config.MaxConnections)
	}
	if config.ConnectionTimeout <= 0 {
		return fmt.Errorf("connection timeout must be positive, got %v", config.ConnectionTimeout)
	}

	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	switch config.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", config.Level)
	}

	switch config.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format: %s", config.Format)
	}

	return nil
}

func validateIngestConfig(config *IngestConfig) error {
	if !config.Enabled {
		return nil
	}
	if config.Interval <= 0 {
		return fmt.Errorf("ingest interval must be positive, got %v", config.Interval)
	}
	if config.Timeout <= 0 {
		return fmt.Errorf("ingest timeout must be positive, got %v", config.Timeout)
	}
	if len(config.FeedSources()) == 0 {
		return fmt.Errorf("ingest enabled but no feed sources configured")
	}

	return nil
}
