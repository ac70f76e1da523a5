package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	// Fixture generation
	FixtureSeed     int64
	FixtureProjects int

	// Outputs
	ExportPath   string
	ChartDir     string
	WorkbookPath string
	EnableCharts bool
	EnableXLSX   bool

	// Logging
	LogLevel string
}

func Load() *Config {
	return &Config{
		FixtureSeed:     getEnvInt64("FIXTURE_SEED", 42),
		FixtureProjects: getEnvInt("FIXTURE_PROJECTS", 50),

		ExportPath:   getEnv("EXPORT_PATH", "./out/waste_data.json"),
		ChartDir:     getEnv("CHART_DIR", "./out/charts"),
		WorkbookPath: getEnv("XLSX_PATH", "./out/waste_report.xlsx"),
		EnableCharts: getEnvBool("ENABLE_CHARTS", true),
		EnableXLSX:   getEnvBool("ENABLE_XLSX", true),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if c.FixtureProjects < 1 {
		errors = append(errors, fmt.Sprintf("invalid fixture project count %d: must be at least 1", c.FixtureProjects))
	} else if c.FixtureProjects > 10000 {
		errors = append(errors, fmt.Sprintf("invalid fixture project count %d: must be at most 10000", c.FixtureProjects))
	}

	if c.ExportPath == "" {
		errors = append(errors, "export path cannot be empty")
	} else if err := ensureDir(filepath.Dir(c.ExportPath)); err != nil {
		errors = append(errors, fmt.Sprintf("cannot create export directory: %v", err))
	}

	if c.EnableCharts {
		if c.ChartDir == "" {
			errors = append(errors, "chart directory cannot be empty when charts are enabled")
		} else if err := ensureDir(c.ChartDir); err != nil {
			errors = append(errors, fmt.Sprintf("cannot create chart directory: %v", err))
		}
	}

	if c.EnableXLSX {
		if c.WorkbookPath == "" {
			errors = append(errors, "workbook path cannot be empty when workbook output is enabled")
		} else if err := ensureDir(filepath.Dir(c.WorkbookPath)); err != nil {
			errors = append(errors, fmt.Sprintf("cannot create workbook directory: %v", err))
		}
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// ParseLevel maps the configured level name to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", level)
	}
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
