package rewrite

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is read when no configuration file is named.
const DefaultConfigPath = ".idxloop.yaml"

// Config names the source root, the output root and the units to rewrite.
// Units are paths relative to Source.
type Config struct {
	Name   string   `yaml:"name"`
	Source string   `yaml:"source"`
	Output string   `yaml:"output"`
	Units  []string `yaml:"units,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Name:   "idxloop",
		Source: ".",
		Output: "idxloop-out",
	}
}

// LoadConfig decodes the file at path over the defaults. A missing file is
// an error unless path is the default location.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		path = DefaultConfigPath
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == DefaultConfigPath {
			return config, nil
		}
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return config, fmt.Errorf("decode %s: %w", path, err)
	}
	return config, nil
}

// WriteConfig stores config at path, replacing any existing file.
func WriteConfig(path string, config Config) error {
	if path == "" {
		path = DefaultConfigPath
	}

	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, d, 0o644)
}

// Validate reports configuration that cannot be processed.
func (c Config) Validate() error {
	switch {
	case c.Source == "":
		return errors.New("source root is not set")
	case c.Output == "":
		return errors.New("output root is not set")
	}
	return nil
}
