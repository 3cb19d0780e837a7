package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bianoble/ai-tao/internal/source"
	"github.com/bianoble/ai-tao/internal/target"
)

// Load reads and validates a .ai-tao.yaml file. Empty URL fields are filled
// with the built-in defaults unless template_dir is set.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	cfg.fillDefaults()
	return &cfg, nil
}

// LoadOrDefault behaves like Load but returns Default when path does not
// exist. Environment overrides are applied in both cases.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = Default(), nil
	}
	if err != nil {
		return nil, err
	}

	cfg.applyEnv()
	if errs := Validate(cfg); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}
	return cfg, nil
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Validate checks a Config for semantic correctness.
// Returns a list of validation error messages (empty if valid).
func Validate(cfg *Config) []string {
	var errs []string

	if cfg.Version != 1 {
		errs = append(errs, fmt.Sprintf("unsupported version %d — only version 1 is supported", cfg.Version))
	}

	if cfg.TemplateDir != "" && (cfg.TemplateURL != "" || cfg.FlavorURL != "") {
		errs = append(errs, "'template_dir' and 'template_url'/'flavor_url' are mutually exclusive — use one or the other")
	}
	if cfg.FlavorURL != "" && !strings.Contains(cfg.FlavorURL, source.FlavorPlaceholder) {
		errs = append(errs, fmt.Sprintf("'flavor_url' must contain the %s placeholder", source.FlavorPlaceholder))
	}

	reg := target.NewRegistry()
	for i, name := range cfg.Defaults.Tools {
		if _, err := reg.Parse(name); err != nil {
			errs = append(errs, fmt.Sprintf("defaults.tools[%d]: %s", i, err))
		}
	}
	for i, name := range cfg.Defaults.Flavors {
		if _, err := source.ParseFlavor(name); err != nil {
			errs = append(errs, fmt.Sprintf("defaults.flavors[%d]: %s", i, err))
		}
	}

	return errs
}

func (c *Config) fillDefaults() {
	if c.TemplateDir != "" {
		return
	}
	if c.TemplateURL == "" {
		c.TemplateURL = DefaultTemplateURL
	}
	if c.FlavorURL == "" {
		c.FlavorURL = DefaultFlavorURL
	}
}

// applyEnv overlays AI_TAO_* environment variables. A directory override
// replaces any URLs and a URL override replaces any directory.
func (c *Config) applyEnv() {
	if dir := os.Getenv("AI_TAO_TEMPLATE_DIR"); dir != "" {
		c.TemplateDir = dir
		c.TemplateURL, c.FlavorURL = "", ""
	}
	if u := os.Getenv("AI_TAO_TEMPLATE_URL"); u != "" {
		c.TemplateURL = u
		c.TemplateDir = ""
	}
	if u := os.Getenv("AI_TAO_FLAVOR_URL"); u != "" {
		c.FlavorURL = u
		c.TemplateDir = ""
	}
	c.fillDefaults()
}

// ContentSource returns the source described by the config. A relative
// template_dir is taken relative to projectRoot.
func (c *Config) ContentSource(projectRoot string) source.ContentSource {
	if c.TemplateDir != "" {
		dir := c.TemplateDir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(projectRoot, dir)
		}
		return &source.LocalSource{Dir: dir}
	}
	return &source.URLSource{TemplateURL: c.TemplateURL, FlavorURL: c.FlavorURL}
}
