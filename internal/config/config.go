// Package config loads the site generator configuration from a YAML file
// and environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"

	"github.com/rgonek/mdhtml/mdconverter"
	"github.com/rgonek/mdhtml/site"
)

// Config holds the site generator configuration.
type Config struct {
	Static        string `yaml:"static"`
	Content       string `yaml:"content"`
	Template      string `yaml:"template"`
	Public        string `yaml:"public"`
	Engine        string `yaml:"engine"`
	Workers       int    `yaml:"workers"`
	BasePath      string `yaml:"basePath"`
	HeadingOffset int    `yaml:"headingOffset"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// Load reads the YAML file at path, when present, then applies MDSITE_*
// environment overrides and defaults.
func Load(path string) (Config, error) {
	var cfg Config
	if err := cfg.readYAML(path); err != nil {
		return Config{}, err
	}
	if err := cfg.readEnv(); err != nil {
		return Config{}, err
	}
	return cfg.applyDefaults(), nil
}

func (c *Config) readYAML(path string) error {
	if path == "" {
		return nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Info().
			Str("path", path).
			Msg("No YAML configuration file found, skipping")
		return nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- only loading a config file
	if err != nil {
		return fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse YAML from %s: %w", path, err)
	}

	log.Info().
		Str("path", path).
		Msg("Loaded configuration")

	return nil
}

func (c *Config) readEnv() error {
	c.Static = envOr("MDSITE_STATIC", c.Static)
	c.Content = envOr("MDSITE_CONTENT", c.Content)
	c.Template = envOr("MDSITE_TEMPLATE", c.Template)
	c.Public = envOr("MDSITE_PUBLIC", c.Public)
	c.Engine = envOr("MDSITE_ENGINE", c.Engine)
	c.BasePath = envOr("MDSITE_BASE_PATH", c.BasePath)
	c.Log.Level = envOr("MDSITE_LOG_LEVEL", c.Log.Level)
	c.Log.Format = envOr("MDSITE_LOG_FORMAT", c.Log.Format)

	var err error
	if c.Workers, err = envInt("MDSITE_WORKERS", c.Workers); err != nil {
		return err
	}
	if c.HeadingOffset, err = envInt("MDSITE_HEADING_OFFSET", c.HeadingOffset); err != nil {
		return err
	}
	return nil
}

func (c Config) applyDefaults() Config {
	if c.Static == "" {
		c.Static = "./static"
	}
	if c.Content == "" {
		c.Content = "./content"
	}
	if c.Template == "" {
		c.Template = "./template.html"
	}
	if c.Public == "" {
		c.Public = "./public"
	}
	if c.Engine == "" {
		c.Engine = "native"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	return c
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.BasePath != "" && !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("basePath must start with /, got %q", c.BasePath)
	}
	if site.Overlapping(c.Static, c.Public) {
		return fmt.Errorf("static and public must be different, non-nested directories: %w", site.ErrOverlappingDirs)
	}
	if _, err := mdconverter.New(c.Markdown()); err != nil {
		return err
	}
	return nil
}

// Markdown returns the converter configuration derived from c.
func (c Config) Markdown() mdconverter.Config {
	return mdconverter.Config{
		HeadingOffset: c.HeadingOffset,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}
