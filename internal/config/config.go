package config

import (
	"os"
	"strconv"
	"strings"

	"gradefill/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig
	Templates TemplatesConfig
	CORS      CORSConfig
	Fill      FillConfig
	Profiling ProfilingConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// TemplatesConfig locates the grading-tool template workbooks. The catalog
// reads these at startup; tests point them at fixture files.
type TemplatesConfig struct {
	Dir      string
	FlatFile string
	XTRFile  string
}

// CORSConfig holds the browser origin allow-list
type CORSConfig struct {
	AllowOrigins []string
}

// FillConfig holds fill pipeline settings
type FillConfig struct {
	// MaxConcurrent bounds simultaneous workbook fills. Zero means no bound.
	MaxConcurrent int
}

// ProfilingConfig holds the ops/pprof listener settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// DefaultAllowOrigins is the local development allow-list used when
// CORS_ALLOW_ORIGINS is not set.
var DefaultAllowOrigins = []string{
	"http://localhost:5173",
	"http://127.0.0.1:5173",
	"http://localhost:8000",
	"http://127.0.0.1:8000",
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:    loadServerConfig(),
		Templates: loadTemplatesConfig(),
		CORS:      loadCORSConfig(),
		Fill:      loadFillConfig(),
		Profiling: loadProfilingConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "debug"),
	}
}

func loadTemplatesConfig() TemplatesConfig {
	return TemplatesConfig{
		Dir:      getEnvOrDefault("TEMPLATES_DIR", "./templates"),
		FlatFile: getEnvOrDefault("TEMPLATE_FLAT_FILE", "Flat Tracker Imperial.xlsm"),
		XTRFile:  getEnvOrDefault("TEMPLATE_XTR_FILE", "XTR.xlsm"),
	}
}

func loadCORSConfig() CORSConfig {
	raw := os.Getenv("CORS_ALLOW_ORIGINS")
	if raw == "" {
		return CORSConfig{AllowOrigins: DefaultAllowOrigins}
	}

	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return CORSConfig{AllowOrigins: origins}
}

func loadFillConfig() FillConfig {
	return FillConfig{
		MaxConcurrent: getEnvIntOrDefault("FILL_MAX_CONCURRENT", 0),
	}
}

func loadProfilingConfig() ProfilingConfig {
	return ProfilingConfig{
		Port:    getEnvOrDefault("PPROF_PORT", "6060"),
		Enabled: getEnvBoolOrDefault("PPROF_ENABLED", true),
	}
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Templates.Dir == "" {
		return errors.ConfigInvalid("templates directory is required")
	}
	if config.Templates.FlatFile == "" || config.Templates.XTRFile == "" {
		return errors.ConfigInvalid("template filenames are required")
	}
	if len(config.CORS.AllowOrigins) == 0 {
		return errors.ConfigInvalid("at least one CORS origin is required")
	}
	if config.Fill.MaxConcurrent < 0 {
		return errors.ConfigInvalid("FILL_MAX_CONCURRENT cannot be negative, got %d", config.Fill.MaxConcurrent)
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

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
