package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// LoadFlappy loads Flappy Bird configuration.
// Search order: customPath -> ~/.arcade/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// Files are decoded over the built-in defaults, so a partial file only overrides what it names.
// A custom file that cannot be read or parsed is an error; a broken file found by the search is
// logged at warn and skipped. The result is validated; an invalid configuration is a startup error.
func LoadFlappy(customPath string, logger *log.Logger) (FlappyConfig, error) {
	if logger == nil {
		logger = log.Default()
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decodeFlappy(data)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("flappy.yaml"), filepath.Join("configs", "flappy.yaml")} {
		if cfg, ok := tryFlappy(path, logger); ok {
			return cfg, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg, err := decodeFlappy(defaultFlappyYAML)
	if err != nil {
		return DefaultFlappyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// tryFlappy decodes the config at path. A missing file is skipped quietly.
func tryFlappy(path string, logger *log.Logger) (FlappyConfig, bool) {
	if path == "" {
		return FlappyConfig{}, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("ignoring unreadable config", "path", path, "error", err)
		}
		return FlappyConfig{}, false
	}
	cfg, err := decodeFlappy(data)
	if err != nil {
		logger.Warn("ignoring config that does not parse", "path", path, "error", err)
		return FlappyConfig{}, false
	}
	return cfg, true
}

// decodeFlappy decodes YAML over the hard-coded defaults. Unknown keys are rejected
// so that typos do not silently fall back to a default.
func decodeFlappy(data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return FlappyConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
