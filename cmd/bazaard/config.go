package main

import (
	"os"

	"github.com/iov-one/bazaar/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the daemon settings that can be provided in a file. Every
// value can also be set with the flag of the same name.
type Config struct {
	Home     string `yaml:"home"`
	Bind     string `yaml:"bind"`
	Debug    bool   `yaml:"debug"`
	LogLevel string `yaml:"log_level"`
}

// loadConfig reads a YAML config file and expands ${VAR} environment
// variables.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "read config file: %s", err)
	}
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "parse config yaml: %s", err)
	}
	return &cfg, nil
}

// merge overwrites the values of c with the explicitly set flags.
func (c *Config) merge(flags *Config, set map[string]bool) {
	if set[flagHome] || c.Home == "" {
		c.Home = flags.Home
	}
	if set[flagLogLevel] || c.LogLevel == "" {
		c.LogLevel = flags.LogLevel
	}
}
