// Package config holds the file-backed settings the frame pipeline consumes:
// template roots, output directory, the fallback frame size, and browser
// overrides. It replaces hidden global state with an explicit struct the
// calling layer loads once and passes into constructors.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-framegen/pkg/template"
)

// Browser configures the rendering surface executable.
type Browser struct {
	// Executable pins a browser binary, skipping discovery.
	Executable string `yaml:"executable"`

	// Candidates overrides the probed install locations.
	Candidates []string `yaml:"candidates"`

	// Flags are extra command line switches, applied on top of the built-in
	// stability set.
	Flags map[string]any `yaml:"flags"`
}

// Config is the explicit settings struct for the frame pipeline.
type Config struct {
	// TemplateRoots are the directories probed for template keys, in order.
	TemplateRoots []string `yaml:"template_roots"`

	// OutputDir receives auto-generated frame files.
	OutputDir string `yaml:"output_dir"`

	// DefaultSize applies when a template path carries no size segment.
	DefaultSize template.Size `yaml:"default_size"`

	Browser Browser `yaml:"browser"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		TemplateRoots: []string{"data/templates", "templates"},
		OutputDir:     "output",
		DefaultSize:   template.DefaultSize,
	}
}

// Load reads a YAML configuration file over the defaults. Keys absent from
// the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %q: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.DefaultSize.Width < 0 || c.DefaultSize.Height < 0 {
		return fmt.Errorf("config: default size %s is invalid", c.DefaultSize)
	}
	if (c.DefaultSize.Width == 0) != (c.DefaultSize.Height == 0) {
		return fmt.Errorf("config: default size %s needs both dimensions", c.DefaultSize)
	}
	return nil
}

// Resolver builds a template resolver over the configured roots.
func (c Config) Resolver() *template.Resolver {
	return template.NewResolver(c.TemplateRoots...)
}
