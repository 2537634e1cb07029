package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// unsetEnv clears key for the duration of the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func clearDashboardEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DASHBOARD_TITLE",
		"DASHBOARD_CURRENCY",
		"DASHBOARD_CHART_JS_URL",
		"DASHBOARD_DELIMITER",
		"DASHBOARD_MAPPING_FILE",
		"DEBUG",
	} {
		unsetEnv(t, key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearDashboardEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Dashboard.Title != "Financial Dashboard" {
		t.Errorf("Title = %q", cfg.Dashboard.Title)
	}
	if cfg.Dashboard.Currency != "USD" {
		t.Errorf("Currency = %q, want USD", cfg.Dashboard.Currency)
	}
	if cfg.Dashboard.ChartJSURL == "" {
		t.Error("ChartJSURL is empty, want default CDN URL")
	}
	if cfg.Input.Delimiter != "," || cfg.DelimiterRune() != ',' {
		t.Errorf("Delimiter = %q", cfg.Input.Delimiter)
	}
	if cfg.Input.MappingFile != "" {
		t.Errorf("MappingFile = %q, want empty", cfg.Input.MappingFile)
	}
	if cfg.Debug {
		t.Error("Debug = true, want false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	clearDashboardEnv(t)
	t.Setenv("DASHBOARD_TITLE", "Branch Report")
	t.Setenv("DASHBOARD_CURRENCY", "eur")
	t.Setenv("DASHBOARD_DELIMITER", "tab")
	t.Setenv("DASHBOARD_MAPPING_FILE", "config/mapping.yaml")
	t.Setenv("DEBUG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Dashboard.Title != "Branch Report" {
		t.Errorf("Title = %q", cfg.Dashboard.Title)
	}
	if cfg.Dashboard.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", cfg.Dashboard.Currency)
	}
	if cfg.DelimiterRune() != '\t' {
		t.Errorf("DelimiterRune() = %q, want tab", cfg.DelimiterRune())
	}
	if cfg.Input.MappingFile != "config/mapping.yaml" {
		t.Errorf("MappingFile = %q", cfg.Input.MappingFile)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearDashboardEnv(t)

	path := filepath.Join(t.TempDir(), "dashboard.env")
	if err := os.WriteFile(path, []byte("DASHBOARD_TITLE=From File\nDASHBOARD_DELIMITER=;\n"), 0644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Dashboard.Title != "From File" {
		t.Errorf("Title = %q, want From File", cfg.Dashboard.Title)
	}
	if cfg.DelimiterRune() != ';' {
		t.Errorf("DelimiterRune() = %q, want ';'", cfg.DelimiterRune())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("Load(missing) error = nil, want error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		currency  string
		delimiter string
		wantErr   string
	}{
		{"valid", "USD", ",", ""},
		{"unknown currency", "ABC", ",", "unknown currency"},
		{"long delimiter", "USD", "::", "single character"},
		{"empty delimiter", "USD", "", "single character"},
		{"quote delimiter", "USD", `"`, "invalid delimiter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Dashboard: DashboardConfig{Currency: tt.currency},
				Input:     InputConfig{Delimiter: tt.delimiter},
			}
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}
