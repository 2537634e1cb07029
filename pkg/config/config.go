// Package config provides configuration management for the ledger dashboard.
// It loads configuration from environment variables and .env files.
package config

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"

	"github.com/shunichi-ikebuchi/ledger-dashboard/pkg/render"
)

// Config represents the application configuration.
type Config struct {
	Dashboard DashboardConfig
	Input     InputConfig
	Debug     bool
}

// DashboardConfig represents presentation settings of the generated documents.
type DashboardConfig struct {
	Title      string
	Currency   string
	ChartJSURL string
}

// InputConfig represents ledger parsing settings.
type InputConfig struct {
	Delimiter   string
	MappingFile string
}

// Load loads configuration from environment variables.
// It automatically loads .env file from the current directory if available.
// You can optionally specify a custom .env file path.
func Load(envPath ...string) (*Config, error) {
	// Load .env file
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Try to load .env from current directory (ignore error if not found)
		_ = godotenv.Load()
	}

	config := &Config{
		Dashboard: DashboardConfig{
			Title:      getEnvOrDefault("DASHBOARD_TITLE", "Financial Dashboard"),
			Currency:   strings.ToUpper(getEnvOrDefault("DASHBOARD_CURRENCY", render.DefaultCurrency)),
			ChartJSURL: getEnvOrDefault("DASHBOARD_CHART_JS_URL", render.DefaultChartJSURL),
		},
		Input: InputConfig{
			Delimiter:   NormalizeDelimiter(getEnvOrDefault("DASHBOARD_DELIMITER", ",")),
			MappingFile: os.Getenv("DASHBOARD_MAPPING_FILE"),
		},
		Debug: os.Getenv("DEBUG") == "true",
	}

	return config, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	var problems []string

	if !render.KnownCurrency(c.Dashboard.Currency) {
		problems = append(problems, fmt.Sprintf("unknown currency code %q", c.Dashboard.Currency))
	}
	if utf8.RuneCountInString(c.Input.Delimiter) != 1 {
		problems = append(problems, fmt.Sprintf("delimiter must be a single character, got %q", c.Input.Delimiter))
	} else if r := c.DelimiterRune(); r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		problems = append(problems, fmt.Sprintf("invalid delimiter %q", c.Input.Delimiter))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s\nPlease check your .env file, environment variables or flags", strings.Join(problems, "; "))
	}

	return nil
}

// DelimiterRune returns the configured delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Input.Delimiter)
	return r
}

// NormalizeDelimiter turns the spellings "tab" and "\t" into a tab character.
func NormalizeDelimiter(d string) string {
	switch d {
	case "tab", `\t`:
		return "\t"
	}
	return d
}

// getEnvOrDefault returns the value of the environment variable or a default value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
