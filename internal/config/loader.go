package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCatcher loads the catcher configuration.
// Search order: customPath -> ~/.arcade/configs/catcher.yaml -> ./configs/catcher.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides
// the keys it names. An unreadable or invalid custom path is an error; the
// other locations are skipped when they cannot be used.
func LoadCatcher(customPath string) (CatcherConfig, error) {
	if customPath != "" {
		cfg, err := readCatcher(customPath)
		if err != nil {
			return DefaultCatcherConfig(), err
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath("catcher.yaml"), filepath.Join("configs", "catcher.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := readCatcher(path); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultCatcherConfig()
	if err := yaml.Unmarshal(defaultCatcherYAML, &cfg); err != nil {
		return DefaultCatcherConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseCatcher decodes YAML over the default configuration and validates it.
func ParseCatcher(data []byte) (CatcherConfig, error) {
	cfg := DefaultCatcherConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func readCatcher(path string) (CatcherConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CatcherConfig{}, fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	cfg, err := ParseCatcher(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
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
