// Package config loads application configuration: store location, locale
// and date format, the NTP 330 ordinal scales, and user-facing messages.
//
// Defaults are embedded in the binary; an optional YAML file overlays
// them field by field.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"riskeval/internal/risk"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config is the full application configuration.
type Config struct {
	Store      StoreConfig `yaml:"store"`
	Locale     string      `yaml:"locale"`
	DateFormat string      `yaml:"date_format"`
	Scales     risk.Scales `yaml:"scales"`
	Messages   Messages    `yaml:"messages"`
}

// StoreConfig locates the key-value medium.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// Messages are the user-visible notices, kept in the deployment's fixed
// locale.
type Messages struct {
	Saved       string `yaml:"saved"`
	Deleted     string `yaml:"deleted"`
	Cleared     string `yaml:"cleared"`
	EmptyReport string `yaml:"empty_report"`
}

// Default returns the embedded configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		// The embedded asset ships with the binary; failing to parse it
		// is a build defect, not a runtime condition.
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load reads a YAML config file and overlays it on the defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Store.Path == "" {
		return fmt.Errorf("store.path must not be empty")
	}
	if c.DateFormat == "" {
		return fmt.Errorf("date_format must not be empty")
	}
	if len(c.Scales.Deficiency) == 0 || len(c.Scales.Exposure) == 0 || len(c.Scales.Consequence) == 0 {
		return fmt.Errorf("all three ordinal scales must be non-empty")
	}
	return nil
}

// LanguageTag parses the configured locale for the collator. An
// unrecognized locale falls back to Spanish rather than failing: sort
// order degrades, nothing else does.
func (c Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Spanish
	}
	return tag
}
