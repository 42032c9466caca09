package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AravDharnikota/Civora.AI/internal/model"
	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

type Config struct {
	// RefreshDelay is how long the simulated pull-to-refresh spins before
	// completing. There is no backend, so nothing is actually refetched.
	RefreshDelay string `yaml:"refresh_delay"`

	// ShareTemplate is the share-message template; it must contain exactly
	// one %s, filled with the article title.
	ShareTemplate string `yaml:"share_template"`

	// DefaultStyle seeds the profile's writing style when set.
	DefaultStyle string `yaml:"default_style,omitempty"`
}

// RefreshDelayDuration parses the configured delay, defaulting to 1.2s.
func (c *Config) RefreshDelayDuration() time.Duration {
	d, err := time.ParseDuration(c.RefreshDelay)
	if err != nil || d <= 0 {
		return 1200 * time.Millisecond
	}
	return d
}

// Style returns the configured default writing style, or balanced.
func (c *Config) Style() model.WritingStyle {
	s := model.WritingStyle(c.DefaultStyle)
	if s.Valid() {
		return s
	}
	return model.StyleBalanced
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "civora", "config.yaml")
}

// LogPath is where the TUI writes its log; stdout belongs to the screen.
func LogPath() string {
	return filepath.Join(xdg.StateHome, "civora", "civora.log")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.RefreshDelay == "" {
		cfg.RefreshDelay = defaults.RefreshDelay
	}
	if cfg.ShareTemplate == "" {
		cfg.ShareTemplate = defaults.ShareTemplate
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	if n := strings.Count(cfg.ShareTemplate, "%s"); n != 1 {
		return fmt.Errorf("share_template must contain exactly one %%s placeholder, found %d", n)
	}
	if cfg.DefaultStyle != "" && !model.WritingStyle(cfg.DefaultStyle).Valid() {
		valid := make([]string, 0, 4)
		for _, s := range model.Styles() {
			valid = append(valid, string(s))
		}
		return fmt.Errorf("unknown default_style %q (valid: %s)", cfg.DefaultStyle, strings.Join(valid, ", "))
	}
	return nil
}
