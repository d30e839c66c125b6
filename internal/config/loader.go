package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	userConfigRel  = "flippy/config.yaml"
	localConfigRel = "configs/flippy.yaml"
)

// Load loads and validates the configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/flippy/config.yaml -> ./configs/flippy.yaml
// -> embedded default -> Default().
// Files are decoded on top of Default(), so they only need the keys they change.
// A custom path that cannot be read or parsed is an error; the other candidates are skipped.
func Load(customPath string) (FlippyConfig, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	for _, path := range searchPaths() {
		if cfg, err := LoadFile(path); err == nil {
			return cfg, cfg.Validate()
		}
	}

	cfg, err := Parse(defaultFlippyYAML)
	if err != nil {
		return Default(), nil
	}
	return cfg, cfg.Validate()
}

// LoadFile reads a single YAML file on top of Default().
func LoadFile(path string) (FlippyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: cannot parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default().
func Parse(data []byte) (FlippyConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// searchPaths returns the implicit config locations, most specific first.
func searchPaths() []string {
	var paths []string
	if p, err := xdg.SearchConfigFile(userConfigRel); err == nil {
		paths = append(paths, p)
	}
	return append(paths, filepath.FromSlash(localConfigRel))
}

// Overrides holds command-line values that replace loaded settings.
// Zero values leave the loaded setting untouched.
type Overrides struct {
	Policy   string
	Restart  string
	TickRate int
	LogLevel string
	LogFile  string
}

// ApplyOverrides replaces loaded settings with non-zero overrides and re-validates.
func (c *FlippyConfig) ApplyOverrides(o Overrides) error {
	if o.Policy != "" {
		p, err := ParsePolicy(o.Policy)
		if err != nil {
			return err
		}
		c.Progression.Policy = p
	}
	if o.Restart != "" {
		m, err := ParseRestartMode(o.Restart)
		if err != nil {
			return err
		}
		c.Runtime.Restart = m
	}
	if o.TickRate > 0 {
		c.Runtime.TickRate = o.TickRate
	}
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}
	if o.LogFile != "" {
		c.Log.File = o.LogFile
	}
	return c.Validate()
}
