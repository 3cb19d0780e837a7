package config

// Config represents the optional .ai-tao.yaml project configuration.
type Config struct {
	Version int `yaml:"version"`

	// Remote content. FlavorURL contains a {flavor} placeholder.
	TemplateURL string `yaml:"template_url,omitempty"`
	FlavorURL   string `yaml:"flavor_url,omitempty"`

	// TemplateDir reads content from a local directory instead of URLs.
	TemplateDir string `yaml:"template_dir,omitempty"`

	Defaults Defaults `yaml:"defaults,omitempty"`
}

// Defaults supplies first-time setup answers when running non-interactively.
type Defaults struct {
	Tools   []string `yaml:"tools,omitempty"`
	Local   bool     `yaml:"local,omitempty"`
	Flavors []string `yaml:"flavors,omitempty"`
}

// Built-in content locations used when the config names none.
const (
	DefaultTemplateURL = "https://raw.githubusercontent.com/ai-tao/ai-tao/main/templates/base.md"
	DefaultFlavorURL   = "https://raw.githubusercontent.com/ai-tao/ai-tao/main/templates/flavors/{flavor}.md"
)

// FileName is the config file looked up in the project root.
const FileName = ".ai-tao.yaml"

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Version:     1,
		TemplateURL: DefaultTemplateURL,
		FlavorURL:   DefaultFlavorURL,
	}
}
