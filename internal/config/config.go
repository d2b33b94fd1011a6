// Package config loads the optional "come.yaml" project file (SPEC_FULL.md
// §6): the host C compiler to shell out to, the runtime include/library
// paths, and the default line-directive setting.
package config

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Config is come.yaml's shape. Every field has a usable zero value so a
// missing file is equivalent to an empty Config, not an error.
type Config struct {
	CC             string `yaml:"cc"`
	RuntimeInclude string `yaml:"runtime_include"`
	RuntimeLib     string `yaml:"runtime_lib"`
	LineDirectives *bool  `yaml:"line_directives"`
}

// Default returns the configuration used when no come.yaml is found: "cc"
// as the host compiler, line directives on.
func Default() *Config {
	on := true
	return &Config{CC: "cc", LineDirectives: &on}
}

// CCCommand returns the host C compiler to invoke: the CC environment
// variable takes precedence over come.yaml's "cc:" key, which in turn
// overrides the "cc" default (SPEC_FULL.md §6 driver contract).
func (c *Config) CCCommand() string {
	if env := os.Getenv("CC"); env != "" {
		return env
	}
	if c != nil && c.CC != "" {
		return c.CC
	}
	return "cc"
}

// WantsLineDirectives reports whether #line directives should be emitted,
// defaulting to true when come.yaml is silent on the question.
func (c *Config) WantsLineDirectives() bool {
	if c == nil || c.LineDirectives == nil {
		return true
	}
	return *c.LineDirectives
}

// Load looks up "come.yaml" next to inputPath, then in the current working
// directory, and parses the first one found. A missing file is not an
// error: Load returns Default() instead (come.yaml is optional,
// SPEC_FULL.md §6).
func Load(inputPath string) (*Config, error) {
	candidates := []string{
		filepath.Join(filepath.Dir(inputPath), "come.yaml"),
		"come.yaml",
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		cfg := Default()
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return Default(), nil
}
