// Package config resolves llmsay settings from defaults, an optional config
// file, a .env file and the environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Hardcoded defaults, also used as the CLI flag defaults.
const (
	DefaultModel     = "llama3.2"
	DefaultCharacter = "ferris"
	DefaultURL       = "http://localhost:11434"
	DefaultTimeout   = 300 // seconds
)

// Environment variables that override the config file.
const (
	EnvModel     = "LLMSAY_MODEL"
	EnvCharacter = "LLMSAY_CHARACTER"
	EnvURL       = "LLMSAY_URL"
	EnvVerbose   = "LLMSAY_VERBOSE"
)

// DotEnvFile is loaded from the working directory when present.
const DotEnvFile = ".env"

// Config represents the user configuration
type Config struct {
	Model     string `json:"model"`
	Character string `json:"character"`
	URL       string `json:"url"`
	// TimeoutSeconds bounds the single generate request.
	TimeoutSeconds int `json:"timeout_seconds"`
	// Verbose enables debug logging on stderr.
	Verbose         bool `json:"verbose"`
	CopyToClipboard bool `json:"copy_to_clipboard"`
	Color           bool `json:"color"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Model:          DefaultModel,
		Character:      DefaultCharacter,
		URL:            DefaultURL,
		TimeoutSeconds: DefaultTimeout,
		Color:          true,
	}
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".llmsay"), nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// LoadConfig resolves the effective configuration: defaults, then
// ~/.llmsay/config.json, then .env and the environment. A broken config file
// or .env is reported but does not stop the later layers from applying.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	var errs []error
	if configPath, err := GetConfigPath(); err == nil {
		if cfg, err = LoadConfigFile(configPath); err != nil {
			errs = append(errs, err)
		}
	}

	if err := LoadDotEnv(DotEnvFile); err != nil {
		errs = append(errs, err)
	}
	return ApplyEnv(cfg), errors.Join(errs...)
}

// LoadConfigFile reads a JSON config file over the defaults. A missing file is
// not an error.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg.normalize(), nil
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment.
// Variables already set are left alone; a missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg with any LLMSAY_* variables that are set.
func ApplyEnv(cfg Config) Config {
	if v := strings.TrimSpace(os.Getenv(EnvModel)); v != "" {
		cfg.Model = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvCharacter)); v != "" {
		cfg.Character = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvURL)); v != "" {
		cfg.URL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvVerbose)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Verbose = b
		}
	}
	return cfg
}

// normalize restores defaults for fields a config file blanked out.
func (c Config) normalize() Config {
	def := DefaultConfig()
	if strings.TrimSpace(c.Model) == "" {
		c.Model = def.Model
	}
	if strings.TrimSpace(c.Character) == "" {
		c.Character = def.Character
	}
	if strings.TrimSpace(c.URL) == "" {
		c.URL = def.URL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = def.TimeoutSeconds
	}
	return c
}
