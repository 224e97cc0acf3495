package config

import (
	"os"
	"strconv"

	"statclass/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Plot   PlotConfig
	Data   DataConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// PlotConfig holds distribution plot rendering settings
type PlotConfig struct {
	Width     float64 // panel width in points
	Height    float64 // panel height in points
	Bins      int     // histogram bin count, 0 = derive from sample size
	KDEPoints int     // density grid resolution
}

// DataConfig holds optional data source settings
type DataConfig struct {
	ExcelFile   string // preloaded .xlsx shown as the demo dataset
	ExcelColumn string // column to read samples from, empty = first numeric
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Plot: PlotConfig{
			Width:     getEnvFloatOrDefault("PLOT_PANEL_WIDTH", 320),
			Height:    getEnvFloatOrDefault("PLOT_PANEL_HEIGHT", 260),
			Bins:      getEnvIntOrDefault("PLOT_HIST_BINS", 0),
			KDEPoints: getEnvIntOrDefault("PLOT_KDE_POINTS", 200),
		},
		Data: DataConfig{
			ExcelFile:   os.Getenv("SAMPLE_XLSX"),
			ExcelColumn: os.Getenv("SAMPLE_XLSX_COLUMN"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT must not be empty")
	}
	if config.Plot.Width <= 0 || config.Plot.Height <= 0 {
		return errors.ConfigInvalid("plot panel dimensions must be positive")
	}
	if config.Plot.Bins < 0 {
		return errors.ConfigInvalid("PLOT_HIST_BINS must not be negative")
	}
	if config.Plot.KDEPoints < 2 {
		return errors.ConfigInvalid("PLOT_KDE_POINTS must be at least 2")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
