package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bianoble/ai-tao/internal/source"
)

const exampleConfig = `version: 1
template_url: https://example.com/base.md
flavor_url: https://example.com/flavors/{flavor}.md
defaults:
  tools: [claude, cursor]
  local: true
  flavors: [react]
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func containsSubstring(errs []string, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func TestLoadValidConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, exampleConfig))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TemplateURL != "https://example.com/base.md" {
		t.Errorf("template_url = %q", cfg.TemplateURL)
	}
	if len(cfg.Defaults.Tools) != 2 || cfg.Defaults.Tools[1] != "cursor" {
		t.Errorf("defaults.tools = %v", cfg.Defaults.Tools)
	}
	if !cfg.Defaults.Local {
		t.Error("defaults.local should be true")
	}
	if len(cfg.Defaults.Flavors) != 1 || cfg.Defaults.Flavors[0] != "react" {
		t.Errorf("defaults.flavors = %v", cfg.Defaults.Flavors)
	}
}

func TestLoadFillsDefaultURLs(t *testing.T) {
	cfg, err := Load(writeConfig(t, "version: 1\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TemplateURL != DefaultTemplateURL || cfg.FlavorURL != DefaultFlavorURL {
		t.Errorf("urls not defaulted: %q %q", cfg.TemplateURL, cfg.FlavorURL)
	}
}

func TestLoadTemplateDirKeepsURLsEmpty(t *testing.T) {
	cfg, err := Load(writeConfig(t, "version: 1\ntemplate_dir: ./templates\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TemplateURL != "" || cfg.FlavorURL != "" {
		t.Errorf("urls should stay empty with template_dir: %q %q", cfg.TemplateURL, cfg.FlavorURL)
	}
	src, ok := cfg.ContentSource("/work/project").(*source.LocalSource)
	if !ok {
		t.Fatalf("expected LocalSource, got %T", cfg.ContentSource("/work/project"))
	}
	if want := filepath.Join("/work/project", "templates"); src.Dir != want {
		t.Errorf("Dir = %q, want %q", src.Dir, want)
	}
}

func TestContentSourceAbsoluteTemplateDir(t *testing.T) {
	cfg := &Config{Version: 1, TemplateDir: "/opt/templates"}
	src, ok := cfg.ContentSource("/work/project").(*source.LocalSource)
	if !ok {
		t.Fatalf("expected LocalSource, got %T", cfg.ContentSource("/work/project"))
	}
	if src.Dir != "/opt/templates" {
		t.Errorf("Dir = %q, want /opt/templates", src.Dir)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/.ai-tao.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap ErrNotExist: %v", err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "version: [1\n"))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadOrDefaultMissing(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if cfg.TemplateURL != DefaultTemplateURL {
		t.Errorf("template_url = %q", cfg.TemplateURL)
	}
	if _, ok := cfg.ContentSource("").(*source.URLSource); !ok {
		t.Errorf("expected URLSource, got %T", cfg.ContentSource(""))
	}
}

func TestLoadOrDefaultEnvOverrides(t *testing.T) {
	t.Setenv("AI_TAO_TEMPLATE_DIR", "/opt/templates")

	cfg, err := LoadOrDefault(writeConfig(t, exampleConfig))
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if cfg.TemplateDir != "/opt/templates" {
		t.Errorf("template_dir = %q", cfg.TemplateDir)
	}
	if cfg.TemplateURL != "" || cfg.FlavorURL != "" {
		t.Errorf("env dir should clear urls: %q %q", cfg.TemplateURL, cfg.FlavorURL)
	}
}

func TestLoadOrDefaultEnvURL(t *testing.T) {
	t.Setenv("AI_TAO_TEMPLATE_URL", "https://mirror.example.com/base.md")

	cfg, err := LoadOrDefault(writeConfig(t, "version: 1\ntemplate_dir: ./t\n"))
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if cfg.TemplateURL != "https://mirror.example.com/base.md" {
		t.Errorf("template_url = %q", cfg.TemplateURL)
	}
	if cfg.TemplateDir != "" {
		t.Errorf("template_dir should be cleared, got %q", cfg.TemplateDir)
	}
	if cfg.FlavorURL != DefaultFlavorURL {
		t.Errorf("flavor_url = %q", cfg.FlavorURL)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"version", Config{Version: 2}, "unsupported version"},
		{"zero version", Config{}, "unsupported version"},
		{"exclusive", Config{Version: 1, TemplateDir: "./t", TemplateURL: "https://x"}, "mutually exclusive"},
		{"placeholder", Config{Version: 1, FlavorURL: "https://x/flavor.md"}, "placeholder"},
		{"unknown tool", Config{Version: 1, Defaults: Defaults{Tools: []string{"vim"}}}, "defaults.tools[0]"},
		{"unknown flavor", Config{Version: 1, Defaults: Defaults{Flavors: []string{"go", "rails"}}}, "defaults.flavors[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(&tt.cfg)
			if !containsSubstring(errs, tt.want) {
				t.Errorf("expected %q in %v", tt.want, errs)
			}
		})
	}
}

func TestValidateCollectsAll(t *testing.T) {
	cfg := &Config{Version: 3, Defaults: Defaults{Tools: []string{"x"}, Flavors: []string{"y"}}}
	errs := Validate(cfg)
	if len(errs) != 3 {
		t.Errorf("got %d errors, want 3: %v", len(errs), errs)
	}

	_, err := Load(writeConfig(t, "version: 3\n"))
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
}

func TestValidateDefaultIsValid(t *testing.T) {
	if errs := Validate(Default()); len(errs) != 0 {
		t.Errorf("default config invalid: %v", errs)
	}
}

func TestEnvNonInteractive(t *testing.T) {
	t.Setenv("AI_TAO_NON_INTERACTIVE", "TRUE")
	if !EnvNonInteractive() {
		t.Error("expected true")
	}
	t.Setenv("AI_TAO_NON_INTERACTIVE", "no")
	if EnvNonInteractive() {
		t.Error("expected false")
	}
}
