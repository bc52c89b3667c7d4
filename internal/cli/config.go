package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/springkeys/quotectl/internal/quote"
)

// DefaultConfigPath is probed when no --config flag is given. Its absence
// is not an error.
const DefaultConfigPath = "quotectl.yaml"

// Config is the optional YAML configuration for the extract pipeline.
// Flags win over config values; config values win over built-in defaults.
type Config struct {
	// Source is the Rust file to scan for quote literals.
	Source string `yaml:"source"`

	// Out is the corpus directory partition files are written to.
	Out string `yaml:"out"`

	// Categories overrides the output filename per category label,
	// e.g. "Programming: prog.json". Unknown labels are rejected.
	Categories map[string]string `yaml:"categories"`
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	for label := range cfg.Categories {
		if !quote.Category(label).Known() {
			return nil, fmt.Errorf("parse config %s: unknown category %q", path, label)
		}
	}
	return &cfg, nil
}

// FileOverrides converts the config's category map to the typed form the
// corpus writer takes.
func (c *Config) FileOverrides() map[quote.Category]string {
	if c == nil || len(c.Categories) == 0 {
		return nil
	}
	files := make(map[quote.Category]string, len(c.Categories))
	for label, name := range c.Categories {
		files[quote.Category(label)] = name
	}
	return files
}

// resolveConfig loads the config for a command. An explicitly passed path
// must exist; the default path is optional.
func resolveConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	cfg, err := LoadConfig(path)
	if os.IsNotExist(err) && !explicit {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
