package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

const (
	appDir     = "carrot-jump"
	configFile = "jumper.yaml"
)

// Source names where a configuration came from.
type Source string

const (
	SourceEmbedded Source = "embedded"
)

// LoadJumper loads the jumper configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/carrot-jump/jumper.yaml ->
// ./configs/jumper.yaml -> embedded default.
// Files are applied over the defaults, so partial files are fine.
// Only an explicit customPath that cannot be read or is invalid is an error;
// broken files further down the list are logged and skipped.
func LoadJumper(customPath string) (JumperConfig, Source, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, "", err
		}
		return cfg, Source(customPath), nil
	}

	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := loadFile(path)
		if err != nil {
			log.Warn("skipping config", "path", path, "err", err)
			continue
		}
		return cfg, Source(path), nil
	}

	cfg, err := parse(defaultJumperYAML)
	if err != nil {
		return DefaultJumperConfig(), SourceEmbedded, nil
	}
	return cfg, SourceEmbedded, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg JumperConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

func loadFile(path string) (JumperConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return JumperConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func parse(data []byte) (JumperConfig, error) {
	cfg := DefaultJumperConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// searchPaths lists candidate files after an explicit path.
func searchPaths() []string {
	var paths []string
	if p, err := xdg.SearchConfigFile(filepath.Join(appDir, configFile)); err == nil {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", configFile))
}

// UserConfigPath returns where a user config file is expected to live.
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appDir, configFile)
}
