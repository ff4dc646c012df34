// Package config loads the app configuration: a YAML file in the state
// directory with environment-variable overrides for the values that change
// per machine (API key, language).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultModel is the Gemini model every capability uses.
const DefaultModel = "gemini-2.5-flash"

// stateDirName is the per-user state directory. A directory of this name in
// the current working directory takes precedence over the home one, so a
// project can carry its own state.
const stateDirName = ".agriai"

// GeminiConfig holds provider settings.
type GeminiConfig struct {
	APIKey string `yaml:"apiKey"`
	Model  string `yaml:"model"`
}

// LoggingConfig holds the debug-gated file logging settings.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debugMode"`
	Categories map[string]bool `yaml:"categories,omitempty"`
	Level      string          `yaml:"level"`
}

// Config is the full app configuration.
type Config struct {
	Gemini   GeminiConfig  `yaml:"gemini"`
	Language string        `yaml:"language"`
	Logging  LoggingConfig `yaml:"logging"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Gemini:   GeminiConfig{Model: DefaultModel},
		Language: "en",
		Logging:  LoggingConfig{Level: "info"},
	}
}

// StateDir resolves the state directory: ./.agriai if it already exists,
// otherwise ~/.agriai.
func StateDir() (string, error) {
	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, stateDirName)
		if info, err := os.Stat(local); err == nil && info.IsDir() {
			return local, nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, stateDirName), nil
}

func configPath(stateDir string) string {
	return filepath.Join(stateDir, "config.yaml")
}

// Load reads the config file from the state dir, applying defaults for
// missing fields and environment overrides last. A missing file yields the
// defaults; a malformed file is an error.
func Load(stateDir string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(configPath(stateDir))
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = DefaultModel
	}
	if cfg.Language == "" {
		cfg.Language = "en"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// applyEnvOverrides lets the environment win over the file for per-machine
// values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Gemini.APIKey = v
	}
	if v := os.Getenv("AGRIAI_LANG"); v != "" {
		cfg.Language = v
	}
}

// Save writes the config file into the state dir, creating it if needed.
func Save(stateDir string, cfg *Config) error {
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(configPath(stateDir), data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
