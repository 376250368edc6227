// config.go
package mypkgs

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/arc-language/mypkgs/pkg/apt"
	"github.com/arc-language/mypkgs/pkg/dpkg"
)

// Config holds mypkgs configuration. The zero-value paths resolve to the
// standard dpkg/APT locations; overrides exist for inspecting a mounted
// system image and for tests.
type Config struct {
	ExtendedStatesPath string      `yaml:"extended_states_path"`
	StatusPath         string      `yaml:"status_path"`
	HistoryLogGlob     string      `yaml:"history_log_glob"`
	Debug              bool        `yaml:"debug"`
	Logger             *log.Logger `yaml:"-"` // Custom logger (optional)
}

// DefaultConfig returns a configuration pointing at the standard paths
func DefaultConfig() *Config {
	return &Config{
		ExtendedStatesPath: dpkg.DefaultExtendedStatesPath,
		StatusPath:         dpkg.DefaultStatusPath,
		HistoryLogGlob:     apt.DefaultHistoryLogGlob,
	}
}

// LoadConfig loads configuration from file
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".config", "mypkgs", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Rebase prefixes every input path with root, for inspecting a system
// mounted somewhere other than /
func (c *Config) Rebase(root string) {
	if root == "" || root == "/" {
		return
	}
	c.ExtendedStatesPath = filepath.Join(root, c.ExtendedStatesPath)
	c.StatusPath = filepath.Join(root, c.StatusPath)
	c.HistoryLogGlob = filepath.Join(root, c.HistoryLogGlob)
}
