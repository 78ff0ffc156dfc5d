package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/julianstephens/edtfloc/internal/constants"
	"github.com/julianstephens/edtfloc/internal/utils"
	"github.com/julianstephens/edtfloc/pkg/datefmt"
)

// Config holds the user's formatting defaults.
type Config struct {
	Locale   string `toml:"locale" yaml:"locale"`
	Format   string `toml:"format" yaml:"format"`
	Timezone string `toml:"timezone" yaml:"timezone"`
	LogLevel string `toml:"log_level,omitempty" yaml:"log_level,omitempty"`
}

// Default returns the built-in configuration. An empty locale means the
// locale is taken from the environment.
func Default() Config {
	return Config{
		Format:   string(datefmt.DefaultStyle),
		Timezone: constants.DefaultTimezone,
	}
}

// DefaultPath returns the default config file path, unexpanded.
func DefaultPath() string {
	return filepath.Join(constants.DefaultConfigDir, constants.DefaultConfigFile)
}

// ExpandPath replaces a leading "~" with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// Load reads the config file at path on top of Default. A missing file is
// not an error. The decoder is picked from the extension: .yaml and .yml
// use YAML, anything else TOML.
func Load(path string) (Config, error) {
	cfg := Default()

	expanded, err := ExpandPath(path)
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(expanded)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", expanded, err)
	}

	if isYAML(expanded) {
		err = yaml.Unmarshal(data, &cfg)
	} else {
		_, err = toml.Decode(string(data), &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", expanded, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", expanded, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the parent directory.
func Save(path string, cfg Config) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := Marshal(cfg, isYAML(expanded))
	if err != nil {
		return err
	}
	if err := os.WriteFile(expanded, data, 0644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", expanded, err)
	}
	return nil
}

// Marshal encodes cfg as YAML or TOML.
func Marshal(cfg Config, asYAML bool) ([]byte, error) {
	if asYAML {
		return yaml.Marshal(cfg)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// Override replaces fields with any non-empty argument. Command-line flags
// and environment variables take precedence over the file this way.
func (c *Config) Override(locale, format, timezone string) {
	if locale != "" {
		c.Locale = locale
	}
	if format != "" {
		c.Format = format
	}
	if timezone != "" {
		c.Timezone = timezone
	}
}

// Validate checks that every set field is usable.
func (c Config) Validate() error {
	if c.Locale != "" {
		if _, err := datefmt.ResolveLocale(c.Locale); err != nil {
			return err
		}
	}
	if err := datefmt.ValidateFormat(c.Format); err != nil {
		return err
	}
	if !utils.ValidateTimezone(c.Timezone) {
		return fmt.Errorf("unknown timezone %q", c.Timezone)
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
