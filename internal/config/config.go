package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAPIURL          = "http://localhost:5000"
	DefaultRequestTimeout  = 10 * time.Second
	DefaultToastDuration   = 3 * time.Second
	DefaultToastFade       = 300 * time.Millisecond
	DefaultErrorDuration   = 5 * time.Second
	DefaultRemoveDelay     = 300 * time.Millisecond
	DefaultSampleDataDelay = time.Second

	// EnvAPIURL overrides the backend base URL.
	EnvAPIURL = "NOTEBOARD_API_URL"
)

// Config holds the unified application configuration
type Config struct {
	APIURL          string
	RequestTimeout  time.Duration
	ToastDuration   time.Duration
	ToastFade       time.Duration
	ErrorDuration   time.Duration
	RemoveDelay     time.Duration
	SampleData      bool
	SampleDataDelay time.Duration
	LogDir          string
}

// Settings represents the config file structure. Durations use
// time.ParseDuration syntax, e.g. "3s" or "300ms".
type Settings struct {
	APIURL          string `yaml:"api_url,omitempty"`
	RequestTimeout  string `yaml:"request_timeout,omitempty"`
	ToastDuration   string `yaml:"toast_duration,omitempty"`
	ToastFade       string `yaml:"toast_fade,omitempty"`
	ErrorDuration   string `yaml:"error_duration,omitempty"`
	RemoveDelay     string `yaml:"remove_delay,omitempty"`
	SampleData      *bool  `yaml:"sample_data,omitempty"`
	SampleDataDelay string `yaml:"sample_data_delay,omitempty"`
	LogDir          string `yaml:"log_dir,omitempty"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	APIURL string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		APIURL:          DefaultAPIURL,
		RequestTimeout:  DefaultRequestTimeout,
		ToastDuration:   DefaultToastDuration,
		ToastFade:       DefaultToastFade,
		ErrorDuration:   DefaultErrorDuration,
		RemoveDelay:     DefaultRemoveDelay,
		SampleData:      true,
		SampleDataDelay: DefaultSampleDataDelay,
	}
}

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	cfg := Default()

	configDir, err := getConfigDir()
	if err != nil {
		return nil, err
	}
	cfg.LogDir = configDir

	// Try loading config file first for base values
	settings, err := loadConfigFile(filepath.Join(configDir, "config.yaml"))
	switch {
	case err == nil:
		if err := settings.apply(cfg); err != nil {
			return nil, err
		}
	case !errors.Is(err, os.ErrNotExist):
		return nil, err
	}

	// A missing .env is fine
	_ = godotenv.Load()

	// Priority 2: Environment variables override config file
	if envURL := strings.TrimSpace(os.Getenv(EnvAPIURL)); envURL != "" {
		cfg.APIURL = envURL
	}

	// Priority 1: CLI flags override everything
	if flagURL := strings.TrimSpace(flags.APIURL); flagURL != "" {
		cfg.APIURL = flagURL
	}

	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	return cfg, nil
}

func (s *Settings) apply(cfg *Config) error {
	if s.APIURL != "" {
		cfg.APIURL = s.APIURL
	}
	if s.LogDir != "" {
		cfg.LogDir = expandPath(s.LogDir)
	}
	if s.SampleData != nil {
		cfg.SampleData = *s.SampleData
	}

	durations := []struct {
		key   string
		value string
		dst   *time.Duration
	}{
		{"request_timeout", s.RequestTimeout, &cfg.RequestTimeout},
		{"toast_duration", s.ToastDuration, &cfg.ToastDuration},
		{"toast_fade", s.ToastFade, &cfg.ToastFade},
		{"error_duration", s.ErrorDuration, &cfg.ErrorDuration},
		{"remove_delay", s.RemoveDelay, &cfg.RemoveDelay},
		{"sample_data_delay", s.SampleDataDelay, &cfg.SampleDataDelay},
	}
	for _, d := range durations {
		if d.value == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.value)
		if err != nil {
			return fmt.Errorf("config %s: %w", d.key, err)
		}
		if parsed < 0 {
			return fmt.Errorf("config %s: must not be negative", d.key)
		}
		*d.dst = parsed
	}
	return nil
}

// getConfigDir returns the directory holding config.yaml and debug.log
func getConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "noteboard"), nil
}

// loadConfigFile loads configuration from the settings file
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &settings, nil
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configDir, err := getConfigDir()
	if err != nil {
		return err
	}
	configPath := filepath.Join(configDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	sampleData := true
	settings := Settings{
		APIURL:          DefaultAPIURL,
		RequestTimeout:  DefaultRequestTimeout.String(),
		ToastDuration:   DefaultToastDuration.String(),
		ToastFade:       DefaultToastFade.String(),
		ErrorDuration:   DefaultErrorDuration.String(),
		RemoveDelay:     DefaultRemoveDelay.String(),
		SampleData:      &sampleData,
		SampleDataDelay: DefaultSampleDataDelay.String(),
	}

	data, err := yaml.Marshal(&settings)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
