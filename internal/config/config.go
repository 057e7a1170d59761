package config

import (
	"os"
	"strconv"

	"salescope/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Data   DataConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port           string
	MaxUploadBytes int64
}

// DataConfig holds synthetic sample generation settings. The seed is fixed by
// default so repeated generations are byte-identical.
type DataConfig struct {
	SampleSeed  int64
	SampleRows  int
	PoissonMean float64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:           getEnvOrDefault("PORT", "8080"),
			MaxUploadBytes: getEnvInt64OrDefault("MAX_UPLOAD_BYTES", 50*1024*1024),
		},
		Data: DataConfig{
			SampleSeed:  getEnvInt64OrDefault("SAMPLE_SEED", 42),
			SampleRows:  getEnvIntOrDefault("SAMPLE_ROWS", 20),
			PoissonMean: getEnvFloatOrDefault("SAMPLE_POISSON_MEAN", 20.0),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Server.MaxUploadBytes <= 0 {
		return errors.ConfigInvalid("max upload size must be positive")
	}
	if config.Data.SampleRows <= 0 {
		return errors.ConfigInvalid("sample row count must be positive")
	}
	if config.Data.PoissonMean <= 0 {
		return errors.ConfigInvalid("sample Poisson mean must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
