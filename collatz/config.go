package collatz

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where the CLI looks for its configuration.
const DefaultConfigPath = ".mainterm.yaml"

// Config represents the overall configuration of a proof run.
type Config struct {
	Name string `yaml:"name"`
	// MaxIterations bounds every proof; zero means unbounded.
	MaxIterations int `yaml:"max_iterations"`
	Verbose       int `yaml:"verbose"`
	// Workers is the number of intervals proved at once; zero means NumCPU.
	Workers   int      `yaml:"workers"`
	Intervals []string `yaml:"intervals"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Name:          "mainterm",
		MaxIterations: 10000,
		Intervals:     []string{"(0, 4]"},
	}
}

// LoadConfig reads the configuration file at path. A missing file yields
// DefaultConfig.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("error parsing %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("error in %s: %w", path, err)
	}
	return config, nil
}

// Validate checks the numeric fields.
func (c Config) Validate() error {
	if c.MaxIterations < 0 {
		return fmt.Errorf("max_iterations must not be negative, got %d", c.MaxIterations)
	}
	if c.Verbose < 0 {
		return fmt.Errorf("verbose must not be negative, got %d", c.Verbose)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// WriteConfig stores config at path as YAML.
func WriteConfig(path string, config Config) error {
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	return err
}
