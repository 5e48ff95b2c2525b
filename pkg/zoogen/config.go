package zoogen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the optional per-project configuration file, looked up in
// the base directory.
const ConfigFile = "zoogen.yaml"

// Config holds the file locations for a generation run. Relative paths are
// resolved against BasePath; the base is always an explicit parameter,
// never the ambient working directory.
type Config struct {
	BasePath     string `env:"ZOOGEN_BASE" yaml:"-"`
	DataPath     string `env:"ZOOGEN_DATA" yaml:"data"`
	TemplatePath string `env:"ZOOGEN_TEMPLATE" yaml:"template"`
	OutputPath   string `env:"ZOOGEN_OUT" yaml:"output"`

	// VerbatimValues disables HTML escaping of field values, reproducing
	// the legacy renderer's output byte for byte.
	VerbatimValues bool `env:"ZOOGEN_VERBATIM" yaml:"verbatim_values"`
}

// DefaultConfig returns the conventional project layout rooted at base.
func DefaultConfig(base string) Config {
	if base == "" {
		base = "."
	}
	return Config{
		BasePath:     base,
		DataPath:     filepath.Join("data", "animals.json"),
		TemplatePath: filepath.Join("templates", "animals_template.html"),
		OutputPath:   "animals.html",
	}
}

// LoadConfig layers, in increasing precedence: defaults, the optional
// zoogen.yaml in the base directory, and ZOOGEN_* environment variables.
func LoadConfig(base string) (Config, error) {
	cfg := DefaultConfig(base)

	path := filepath.Join(cfg.BasePath, ConfigFile)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("invalid config file %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Data returns the dataset path resolved against the base.
func (c Config) Data() string { return c.resolve(c.DataPath) }

// Template returns the template path resolved against the base.
func (c Config) Template() string { return c.resolve(c.TemplatePath) }

// Output returns the output path resolved against the base.
func (c Config) Output() string { return c.resolve(c.OutputPath) }

func (c Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.BasePath, p)
}
