package config

import (
	"os"
	"strconv"

	"reliefreach/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig `validate:"required"`
	Server   ServerConfig   `validate:"required"`
	Content  ContentConfig
	Engine   EngineConfig
	Export   ExportConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL     string `validate:"required"`
	SSLMode string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port          string `validate:"required"`
	GinMode       string
	DashboardPort string
}

// ContentConfig holds content generation settings
type ContentConfig struct {
	Seed          int64
	MaxVariations int
	DefaultPrompt string
}

// EngineConfig holds decision engine defaults
type EngineConfig struct {
	DefaultTestDurationHours int
	AutoRespondEnabled       bool
}

// ExportConfig holds result export settings
type ExportConfig struct {
	ExcelFile string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{}

	dbConfig, err := loadDatabaseConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load database configuration")
	}
	config.Database = *dbConfig

	config.Server = *loadServerConfig()
	config.Content = *loadContentConfig()
	config.Engine = *loadEngineConfig()
	config.Export = *loadExportConfig()

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadDatabaseConfig() (*DatabaseConfig, error) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}

	return &DatabaseConfig{
		URL:     url,
		SSLMode: getEnvOrDefault("SSL_MODE", "disable"),
	}, nil
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:          getEnvOrDefault("PORT", "8080"),
		GinMode:       getEnvOrDefault("GIN_MODE", "debug"),
		DashboardPort: getEnvOrDefault("DASHBOARD_PORT", "8090"),
	}
}

func loadContentConfig() *ContentConfig {
	return &ContentConfig{
		Seed:          getEnvInt64OrDefault("CONTENT_SEED", 1),
		MaxVariations: getEnvIntOrDefault("MAX_VARIATIONS", 4),
		DefaultPrompt: getEnvOrDefault("DEFAULT_PROMPT", "Disaster relief workers needed"),
	}
}

func loadEngineConfig() *EngineConfig {
	return &EngineConfig{
		DefaultTestDurationHours: getEnvIntOrDefault("TEST_DURATION_HOURS", 24),
		AutoRespondEnabled:       getEnvBoolOrDefault("AUTO_RESPOND_ENABLED", true),
	}
}

func loadExportConfig() *ExportConfig {
	return &ExportConfig{
		ExcelFile: getEnvOrDefault("EXCEL_FILE", "experiment_results.xlsx"),
	}
}

func validateConfig(config *Config) error {
	if config.Database.URL == "" {
		return errors.ConfigInvalid("database URL is required")
	}
	if config.Content.MaxVariations < 1 {
		return errors.ConfigInvalid("MAX_VARIATIONS must be positive")
	}
	if config.Engine.DefaultTestDurationHours < 1 {
		return errors.ConfigInvalid("TEST_DURATION_HOURS must be positive")
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

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
