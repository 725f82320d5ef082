// Package config loads the CLI's optional YAML configuration file
// (.mytableau.yml), supplying defaults the command-line flags can override.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the ambient settings the CLI reads before acting on its
// flags. Nothing here changes the prover's decision procedure except
// MaxSteps, which only bounds how long it is allowed to keep searching.
type Config struct {
	MaxSteps int  `yaml:"max_steps"`
	Color    bool `yaml:"color"`
	Trace    bool `yaml:"trace"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{MaxSteps: 0, Color: true, Trace: false}
}

// Load reads and parses the YAML file at path, starting from Default() so
// a file only needs to mention the fields it overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
