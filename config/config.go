package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ColorMode controls coloring of diagnostics.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

const DefaultPrompt = ">> "

// Config holds the run settings. Command-line flags override values read
// from a config file.
type Config struct {
	// FailFast aborts the run at the first failing line instead of reporting
	// the failure and continuing with the next one.
	FailFast bool `yaml:"fail_fast"`
	// Echo prints "<line> = <value>" for every expression statement.
	Echo    bool      `yaml:"echo"`
	Color   ColorMode `yaml:"color"`
	Prompt  string    `yaml:"prompt"`
	DumpAST bool      `yaml:"dump_ast"`
}

func Default() *Config {
	return &Config{
		Color:  ColorAuto,
		Prompt: DefaultPrompt,
	}
}

// Load reads a YAML config file. Keys the file leaves out keep their
// default values; an empty file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML config data on top of the defaults. Unknown keys are
// rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}
}
