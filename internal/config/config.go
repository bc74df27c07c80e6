package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config represents the application configuration. A default file is
// written on first run; DOCDECK_* environment variables (optionally from a
// .env file) override individual fields.
type Config struct {
	APIBaseURL     string `json:"api_base_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	DebounceMS     int    `json:"debounce_ms"`
	PageSize       int    `json:"page_size"`
	MaxUploadMB    int    `json:"max_upload_mb"`
	HistoryPath    string `json:"history_path"`
	LogPath        string `json:"log_path"`
	LogLevel       string `json:"log_level"`

	// Closed enumerations the filter selectors cycle through. The first
	// entry of each is the "no constraint" sentinel. Values are passed to
	// the remote store as-is.
	OrgUnits   []string `json:"org_units"`
	Categories []string `json:"categories"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		APIBaseURL:     "http://localhost:5000",
		TimeoutSeconds: 30,
		DebounceMS:     500,
		PageSize:       10,
		MaxUploadMB:    50,
		HistoryPath:    "~/.docdeck/history.db",
		LogPath:        "~/.docdeck/docdeck.log",
		LogLevel:       "info",
		OrgUnits: []string{
			"all",
			"Operations",
			"Engineering",
			"Safety",
			"Finance",
			"Human Resources",
			"Procurement",
		},
		Categories: []string{
			"all-types",
			"safety-circular",
			"incident-report",
			"invoice",
			"tender-document",
			"policy",
			"board-minutes",
			"training-material",
		},
	}
}

// ConfigDir returns the configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".docdeck"), nil
}

// ConfigPath returns the configuration file path.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// ExpandPath expands ~ to home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

// Load loads configuration from the default config file, creating it with
// defaults when missing, then applies environment overrides.
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(cfg); err != nil {
			return nil, err
		}
	} else {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// Save saves configuration to the default config file.
func Save(cfg *Config) error {
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0644)
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DOCDECK_API_URL"); v != "" {
		c.APIBaseURL = v
	}
	if v := os.Getenv("DOCDECK_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("DOCDECK_HISTORY_DB"); v != "" {
		c.HistoryPath = v
	}
	if v := os.Getenv("DOCDECK_DEBOUNCE_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			c.DebounceMS = ms
		}
	}
	if v := os.Getenv("DOCDECK_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.PageSize = n
		}
	}
}

// Timeout returns the remote call timeout.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Debounce returns the filter quiescence window.
func (c *Config) Debounce() time.Duration {
	if c.DebounceMS <= 0 {
		return 500 * time.Millisecond
	}
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// MaxUploadBytes returns the client-side upload size cap.
func (c *Config) MaxUploadBytes() int64 {
	if c.MaxUploadMB <= 0 {
		return 50 << 20
	}
	return int64(c.MaxUploadMB) << 20
}

// GetHistoryPath returns the expanded history database path.
func (c *Config) GetHistoryPath() (string, error) {
	return ExpandPath(c.HistoryPath)
}

// GetLogPath returns the expanded log file path.
func (c *Config) GetLogPath() (string, error) {
	return ExpandPath(c.LogPath)
}
